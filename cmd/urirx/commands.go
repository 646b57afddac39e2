package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uritools/rx"
	"github.com/uritools/rx/rfc3986"
)

// newRootCommand creates the urirx root command.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "urirx",
		Short:         "Render and match RFC 3986 URI grammar rules",
		Long:          "urirx exposes the RFC 3986 Appendix A grammar: list its rules,\nprint the regular expression a rule renders to, and match values\nagainst a rule.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRulesCommand(), newRenderCommand(), newMatchCommand())

	return cmd
}

// newRulesCommand creates the rules command.
func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List all RFC 3986 grammar rule names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, rule := range rfc3986.Rules() {
				fmt.Fprintln(cmd.OutOrStdout(), string(rule))
			}
			return nil
		},
	}
}

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Anchored bool // Wrap the rendered rule in ^...$ anchors
}

// newRenderCommand creates the render command.
func newRenderCommand() *cobra.Command {
	opts := &RenderOptions{}
	cmd := &cobra.Command{
		Use:   "render <rule>",
		Short: "Print the regular expression a grammar rule renders to",
		Example: `  # Print the full URI-reference pattern
  urirx render URI-reference

  # Print the IPv6address pattern with whole-input anchors
  urirx render --anchored IPv6address`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rfc3986.Rule(args[0]), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Anchored, "anchored", false, "Wrap the pattern in ^...$ anchors")

	return cmd
}

// runRender prints the rendered pattern for one rule.
func runRender(cmd *cobra.Command, rule rfc3986.Rule, opts *RenderOptions) error {
	node, err := rfc3986.Expr(rule)
	if err != nil {
		return err
	}

	if opts.Anchored {
		node = rx.Sequence(rx.Start(), node, rx.End())
	}
	fmt.Fprintln(cmd.OutOrStdout(), rx.Render(node))

	return nil
}

// MatchOptions holds options for the match command.
type MatchOptions struct {
	Quiet bool // Suppress per-value output, report via exit status only
}

// newMatchCommand creates the match command.
func newMatchCommand() *cobra.Command {
	opts := &MatchOptions{}
	cmd := &cobra.Command{
		Use:   "match <rule> <value>...",
		Short: "Match values against a grammar rule",
		Long:  "Match each value against the named rule, anchored to the whole\ninput. The exit status is non-zero if any value does not match.",
		Example: `  # Check a full URI
  urirx match URI "foo://bar/a/b/c;d=1?foo=bar#xyz"

  # Check several IPv6 addresses
  urirx match IPv6address ::1 2001:db8::ff00:42:8329`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, rfc3986.Rule(args[0]), args[1:], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress per-value output")

	return cmd
}

// runMatch checks each value against the anchored rule matcher.
func runMatch(cmd *cobra.Command, rule rfc3986.Rule, values []string, opts *MatchOptions) error {
	re, err := rfc3986.Get(rule)
	if err != nil {
		return err
	}

	failed := 0
	for _, v := range values {
		ok := re.MatchString(v)
		if !ok {
			failed++
		}
		if opts.Quiet {
			continue
		}
		if ok {
			fmt.Fprintf(cmd.OutOrStdout(), "match\t%s\n", v)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "no match\t%s\n", v)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values did not match %s", failed, len(values), string(rule))
	}

	return nil
}
