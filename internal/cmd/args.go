package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// run executes root with args after moving negative numbers out of the way
// of flag parsing.
func run(root *cobra.Command, args []string) error {
	root.SetArgs(positionalNumbers(root, args))
	return root.Execute()
}

// positionalNumbers rewrites args so that negative numbers such as "-3" reach
// the command as positional arguments instead of being read as shorthand
// flags. Flags and their values keep their place ahead of a "--" separator;
// every positional argument follows it in the original order. Args without a
// negative positional number are returned unchanged.
func positionalNumbers(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}

	var chain []*cobra.Command
	for c := cmd; c.HasParent(); c = c.Parent() {
		chain = append([]*cobra.Command{c}, chain...)
	}

	var names, flags, positional []string
	negative, terminated := false, false
	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case terminated:
			positional = append(positional, s)
		case s == "--":
			terminated = true
		case isNegativeNumber(s):
			positional = append(positional, s)
			negative = true
		case strings.HasPrefix(s, "-") && len(s) > 1:
			flags = append(flags, s)
			if flagNeedsNext(cmd, s) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case len(positional) == 0 && len(names) < len(chain) && matchesCommand(chain[len(names)], s):
			names = append(names, s)
		default:
			positional = append(positional, s)
		}
	}
	if !negative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, names...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	if c := s[1]; c != '.' && (c < '0' || c > '9') {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func matchesCommand(c *cobra.Command, s string) bool {
	return c.Name() == s || c.HasAlias(s)
}

// flagNeedsNext reports whether the flag token s takes its value from the
// following argument.
func flagNeedsNext(cmd *cobra.Command, s string) bool {
	if name, ok := strings.CutPrefix(s, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f := lookupFlag(cmd, name, false)
		return f != nil && f.NoOptDefVal == ""
	}

	// A shorthand group like -qO reads its value from the rest of the token
	// or, when the value flag is last, from the next argument.
	shorts := s[1:]
	for i := range len(shorts) {
		f := lookupFlag(cmd, shorts[i:i+1], true)
		if f == nil || f.NoOptDefVal != "" {
			continue
		}
		return i == len(shorts)-1
	}
	return false
}

func lookupFlag(cmd *cobra.Command, name string, short bool) *pflag.Flag {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		var f *pflag.Flag
		if short {
			f = fs.ShorthandLookup(name)
		} else {
			f = fs.Lookup(name)
		}
		if f != nil {
			return f
		}
	}
	return nil
}
