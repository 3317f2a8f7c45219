// Command argosdemo is a runnable demonstration of the Argos engine:
// a two-domain schema (deploy/backup) mirroring the fragment/domain
// inheritance scenario of spec.md §8 S3, dispatched through
// providers/cobrabridge the way cmd/root.go dispatches pig's own
// subcommands, with internal/logx wired to --debug/--log-level the
// same way cmd/root.go's initLogger is.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"argos/examples/jwtconv"
	"argos/internal/logx"
	"argos/parser"
	"argos/providers/cobrabridge"
	"argos/providers/interactive"
	"argos/schema"
	"argos/value"
)

var (
	debug    bool
	logLevel = "info"
	logPath  string
)

func buildSchema() *schema.Schema {
	b := schema.NewBuilder()

	b.Option("key", "--key", "-k").String().Interactive().Help("static API key for authentication")
	b.Option("token", "--token").Custom(jwtconv.Converter(), "ES256 JWT").Help("signed auth token")
	auth := b.Fragment("auth")
	auth.Group(schema.GroupExactlyOne, "key", "token")

	b.Option("env", "--env", "-e").String().Required(1).Help("target environment")
	b.Option("region", "--region").String().Default(func() any { return "us-east-1" }).Help("deployment region")
	b.Option("verbose", "--verbose", "-v").Count().Help("increase verbosity")
	b.Option("help", "--help", "-h").Flag().Eager(schema.EagerHelp).Help("show help and exit")

	deploy := b.Domain("deploy", "deploy")
	deploy.Inherits(auth.Handle())
	deploy.Label("Deploy")
	deploy.Description("Roll out a release to the target environment")

	backup := b.Domain("backup", "backup")
	backup.Inherits(auth.Handle())
	backup.Label("Backup")
	backup.Description("Snapshot the target environment's state")
	b.Positional("destination", 0).String().Domains("backup").Help("backup destination path")

	return b.Build()
}

// promptInteractive honours spec.md §6.1: options the schema marks
// Interactive are left ordinarily unbound by the core, and it's the
// host's job to fill them in after parsing, before the value is used.
// "key" and "token" satisfy the same auth group, so a bound token
// means the group is already satisfied and key has nothing to fill.
func promptInteractive(sch *schema.Schema, out *parser.Outcome, prompt *interactive.Prompter) {
	if _, tokenBound := out.Get("token"); tokenBound {
		return
	}
	for _, o := range sch.Options() {
		if !o.Interactive || !o.InDomain(out.ActiveDomain) {
			continue
		}
		if _, bound := out.Get(o.Owner); bound {
			continue
		}
		v, err := prompt.Secret(o.Owner + ": ")
		if err != nil || v == "" {
			continue
		}
		out.Cells[o.Owner].BindScalar(v, value.SourceUser)
	}
}

func run(sch *schema.Schema, prompt *interactive.Prompter, out *parser.Outcome) {
	switch out.Kind {
	case parser.HelpRequested:
		fmt.Println("argosdemo [deploy|backup] --env <name> (--key <key> | --token <jwt>) [--region <region>] [-v...]")
	case parser.VersionRequested:
		fmt.Println("argosdemo 0.1.0")
	case parser.Parsed:
		promptInteractive(sch, out, prompt)
		env, _ := out.Get("env")
		region, _ := out.Get("region")
		key, _ := out.Get("key")
		fmt.Printf("%s: env=%v region=%v key-set=%v\n", out.ActiveDomain, env, region, key != nil)
	case parser.Failed:
		for _, e := range out.Errors {
			fmt.Fprintln(os.Stderr, "error:", e.Error())
		}
		os.Exit(1)
	}
}

func main() {
	sch := buildSchema()
	providers := parser.DefaultProviders()
	opts := &parser.Options{}
	prompt := interactive.NewPrompter()

	root := cobrabridge.Build("argosdemo", "demonstration Argos CLI", sch, providers, func(out *parser.Outcome) {
		run(sch, prompt, out)
	}, opts)
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logPath, "log-path", "", "log file path, terminal by default")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if debug {
			level = "debug"
		}
		log, err := logx.New(level, logPath)
		if err != nil {
			return err
		}
		opts.Logger = log
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
