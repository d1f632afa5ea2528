package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := 5.0
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("Vec2.Normalize() of zero vector should be zero")
	}
}

func TestVec2Cross(t *testing.T) {
	x := Vec2{1, 0}
	y := Vec2{0, 1}
	if got := x.Cross(y); got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("Vec2.Cross() = %v, want -1", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		angle float64
		want  Vec2
	}{
		{"zero angle", Vec2{2, 3}, 0, Vec2{2, 3}},
		{"quarter turn", Vec2{1, 0}, math.Pi / 2, Vec2{0, 1}},
		{"half turn", Vec2{1, 2}, math.Pi, Vec2{-1, -2}},
		{"thirty degrees", Vec2{1, 0}, math.Pi / 6, Vec2{math.Sqrt(3) / 2, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("Vec2.Rotate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Mid(t *testing.T) {
	got := Vec2{0, 0}.Mid(Vec2{2, -4})
	want := Vec2{1, -2}
	if got != want {
		t.Errorf("Vec2.Mid() = %v, want %v", got, want)
	}
}

func TestPolar(t *testing.T) {
	got := Polar(2, math.Pi/2)
	if !got.ApproxEqual(Vec2{0, 2}, 1e-12) {
		t.Errorf("Polar() = %v, want {0 2}", got)
	}
	if d := got.Distance(Vec2{}); math.Abs(d-2) > 1e-12 {
		t.Errorf("Polar() distance = %v, want 2", d)
	}
}
