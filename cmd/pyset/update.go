package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	pyset "github.com/pyset-format/go-pyset"
	"github.com/pyset-format/go-pyset/cst"
	"github.com/pyset-format/go-pyset/textdiff"
)

type SetConfig struct {
	*MainConfig
	Set *cli.Command

	Write bool `cli:"name=w desc='write the result back to the settings file'"`
	Diff  bool `cli:"name=diff desc='print a line diff instead of the result'"`

	Entries cst.Map
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "setting to create, may be repeated",
		Type:        cli.NamedFuncOpt(entryOpt(&cfg.Entries), "(NAME=<literal>)"),
	})
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-w|-diff] -e NAME=<literal> [-e ...] <settings file>").
		WithDescription("Add new assignment statements to a settings file.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Set.Parse(cc, args)
			if err != nil {
				return err
			}
			return applyUpdate(cfg.MainConfig, cc, args, updateReq{
				create: cfg.Entries,
				write:  cfg.Write,
				diff:   cfg.Diff,
			})
		})
}

type AppendConfig struct {
	*MainConfig
	Append *cli.Command

	Write           bool `cli:"name=w desc='write the result back to the settings file'"`
	Diff            bool `cli:"name=diff desc='print a line diff instead of the result'"`
	CreateIfMissing bool `cli:"name=create-if-missing desc='create settings that are missing from the file'"`

	Entries cst.Map
}

func AppendCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AppendConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "value to append to a container setting, may be repeated",
		Type:        cli.NamedFuncOpt(entryOpt(&cfg.Entries), "(NAME=<literal>)"),
	})
	return cli.NewCommandAt(&cfg.Append, "append").
		WithAliases("a", "add").
		WithSynopsis("append [-w|-diff] [-create-if-missing] -e NAME=<literal> [-e ...] <settings file>").
		WithDescription("Append values to container-valued settings.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Append.Parse(cc, args)
			if err != nil {
				return err
			}
			return applyUpdate(cfg.MainConfig, cc, args, updateReq{
				extend:          cfg.Entries,
				createIfMissing: cfg.CreateIfMissing,
				write:           cfg.Write,
				diff:            cfg.Diff,
			})
		})
}

type updateReq struct {
	create          cst.Map
	extend          cst.Map
	createIfMissing bool
	write           bool
	diff            bool
}

func applyUpdate(cfg *MainConfig, cc *cli.Context, args []string, req updateReq) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: exactly one settings file expected", cli.ErrUsage)
	}
	if len(req.create) == 0 && len(req.extend) == 0 {
		return fmt.Errorf("%w: nothing to do, no -e given", cli.ErrUsage)
	}
	s, err := pyset.OpenFile(args[0])
	if err != nil {
		return err
	}
	before := s.Text()
	if err := s.Update(entriesMap(req.create), entriesMap(req.extend), req.createIfMissing); err != nil {
		return err
	}
	switch {
	case req.diff:
		_, err = io.WriteString(cc.Out, textdiff.Unified(before, s.Text(), cfg.colorize()))
		return err
	case req.write:
		_, err = s.Persist("")
		return err
	default:
		_, err = io.WriteString(cc.Out, s.Text())
		return err
	}
}
