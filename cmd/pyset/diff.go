package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/pyset-format/go-pyset/parse"
	"github.com/pyset-format/go-pyset/textdiff"
)

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <settings file> <settings file>").
		WithDescription("Show a line diff between two settings files.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff wants two settings files", cli.ErrUsage)
	}
	texts := make([]string, 2)
	for i, arg := range args {
		d, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		texts[i] = string(d)
	}
	_, err = io.WriteString(cc.Out, textdiff.Unified(texts[0], texts[1], cfg.colorize()))
	return err
}
