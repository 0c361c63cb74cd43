package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/pyset-format/go-pyset/cst"
	"github.com/pyset-format/go-pyset/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) colorize() bool {
	if cfg.Color {
		return true
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// entryOpt accumulates -e NAME=<literal> occurrences, keeping flag order.
func entryOpt(entries *cst.Map) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		name, lit, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: -e wants NAME=<literal>, got %q", cli.ErrUsage, a)
		}
		v, err := evalLiteral(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", cli.ErrUsage, a, err)
		}
		*entries = append(*entries, cst.KeyVal{Key: name, Val: v})
		return nil, nil
	})
}

// evalLiteral parses a command line literal like 42, 'text' or ['a', 'b'].
func evalLiteral(lit string) (any, error) {
	doc, err := parse.Parse([]byte(lit))
	if err != nil {
		return nil, err
	}
	if len(doc.Children) != 2 || doc.Children[0].Kind != cst.StatementKind {
		return nil, fmt.Errorf("%q is not a single literal", lit)
	}
	kids := doc.Children[0].Children
	if n := len(kids); n > 0 && kids[n-1].Kind == cst.NewlineKind {
		kids = kids[:n-1]
	}
	if len(kids) != 1 {
		return nil, fmt.Errorf("%q is not a single literal", lit)
	}
	return cst.Eval(kids[0])
}

func entriesMap(entries cst.Map) map[string]any {
	res := make(map[string]any, len(entries))
	for _, kv := range entries {
		res[kv.Key] = kv.Val
	}
	return res
}
