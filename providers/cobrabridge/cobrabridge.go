// Package cobrabridge adapts a built schema.Schema into a *cobra.Command
// tree, the way cmd/root.go wires rootCmd.AddGroup/AddCommand: one
// cobra.Command per concrete (non-fragment) domain, grouped under a
// single root. Every leaf sets DisableFlagParsing so cobra keeps its
// own job — command-tree navigation, help-tree structure, shell
// completion registration — while Argos keeps the job of binding
// flags that pflag would otherwise have done.
package cobrabridge

import (
	"github.com/spf13/cobra"

	"argos/parser"
	"argos/schema"
)

// RunFunc is invoked once cobra has located the right leaf command and
// Argos has parsed the remaining args against that domain.
type RunFunc func(outcome *parser.Outcome)

// Build returns a root *cobra.Command with one child per concrete
// domain in sch, named use (e.g. "argosdemo"). Each child's RunE calls
// parser.Parse with args scoped to that domain's own selection token
// prepended, then hands the outcome to run. optsRef, if non-nil, is
// dereferenced fresh on every RunE call rather than captured once —
// this lets a root-level PersistentPreRunE (e.g. one that builds an
// internal/logx.Logger only after flags are parsed, the way
// cmd/root.go's initAll does) fill it in before any subcommand fires.
func Build(use, short string, sch *schema.Schema, providers parser.Providers, run RunFunc, optsRef *parser.Options) *cobra.Command {
	root := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, d := range sch.Domains() {
		if d.Fragment || len(d.Names) == 0 {
			continue
		}
		root.AddCommand(domainCommand(d, sch, providers, run, optsRef))
	}

	return root
}

func domainCommand(d *schema.DomainSpec, sch *schema.Schema, providers parser.Providers, run RunFunc, optsRef *parser.Options) *cobra.Command {
	name := d.Names[0]
	aliases := d.Names[1:]

	cmd := &cobra.Command{
		Use:                name,
		Aliases:            aliases,
		Short:              d.Label,
		Long:               d.Description,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opt parser.Options
			if optsRef != nil {
				opt = *optsRef
			}
			full := append([]string{name}, args...)
			outcome := parser.Parse(sch, full, providers, opt)
			run(outcome)
			return nil
		},
	}
	return cmd
}
