package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/pyset-format/go-pyset/parse"
	"github.com/pyset-format/go-pyset/textdiff"
)

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("Parse settings files and verify they render back unchanged.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runCheck(cfg, cc, args)
		})
}

func runCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check wants at least one settings file", cli.ErrUsage)
	}
	failed := false
	for _, arg := range args {
		d, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d)
		if err != nil {
			failed = true
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			continue
		}
		if got := doc.String(); got != string(d) {
			failed = true
			fmt.Fprintf(cc.Out, "%s: render differs from source:\n%s", arg,
				textdiff.Unified(string(d), got, cfg.colorize()))
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", arg)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
