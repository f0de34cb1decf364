package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dual/daplug-base/encode"
	"github.com/dual/daplug-base/merge"
)

type mergeConfig struct {
	*cli.Command
	Lists string `cli:"name=lists desc='list strategy: add, remove or replace'"`
	Dicts string `cli:"name=dicts desc='dict strategy: upsert or remove'"`
}

// MergeCommand returns the merge subcommand.
func MergeCommand() *cli.Command {
	cfg := &mergeConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "merge").
		WithSynopsis("merge <base> <incoming> [--lists S] [--dicts S] - Deep-merge two documents").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *mergeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("merge takes exactly 2 arguments, got %d", len(args))
	}
	var mc merge.Config
	if cfg.Lists != "" {
		if err := mc.Lists.UnmarshalText([]byte(cfg.Lists)); err != nil {
			return err
		}
	}
	if cfg.Dicts != "" {
		if err := mc.Dicts.UnmarshalText([]byte(cfg.Dicts)); err != nil {
			return err
		}
	}
	base, err := readNode(args[0])
	if err != nil {
		return err
	}
	incoming, err := readNode(args[1])
	if err != nil {
		return err
	}
	merged, err := merge.Merge(base, incoming, mc)
	if err != nil {
		return err
	}
	return encode.Encode(merged, cc.Out, encodeOptions(cc.Out)...)
}
