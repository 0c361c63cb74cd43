package main

import (
	"fmt"

	gyaml "github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	pyset "github.com/pyset-format/go-pyset"
	"github.com/pyset-format/go-pyset/cst"
)

type ExportConfig struct {
	*MainConfig
	Export *cli.Command
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export <settings file>").
		WithDescription("Evaluate every assignment statement and emit the settings as YAML.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runExport(cfg, cc, args)
		})
}

func runExport(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: export wants one settings file", cli.ErrUsage)
	}
	s, err := pyset.OpenFile(args[0])
	if err != nil {
		return err
	}
	// last assignment wins, first position kept
	index := map[string]int{}
	out := gyaml.MapSlice{}
	for _, a := range pyset.Assignments(s.Doc()) {
		v, err := cst.Eval(a.Value)
		if err != nil {
			// settings may legally hold non-literal values; skip them
			continue
		}
		if i, ok := index[a.Name]; ok {
			out[i].Value = yamlValue(v)
			continue
		}
		index[a.Name] = len(out)
		out = append(out, gyaml.MapItem{Key: a.Name, Value: yamlValue(v)})
	}
	d, err := gyaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

// yamlValue converts evaluated setting values to shapes goccy/go-yaml
// renders with insertion order kept.
func yamlValue(v any) any {
	switch x := v.(type) {
	case cst.Map:
		ms := make(gyaml.MapSlice, 0, len(x))
		for _, kv := range x {
			ms = append(ms, gyaml.MapItem{Key: kv.Key, Value: yamlValue(kv.Val)})
		}
		return ms
	case cst.Tuple:
		return yamlSeq(x)
	case []any:
		return yamlSeq(x)
	}
	return v
}

func yamlSeq(elems []any) []any {
	res := make([]any, len(elems))
	for i, e := range elems {
		res[i] = yamlValue(e)
	}
	return res
}
