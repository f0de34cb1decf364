package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	daplug "github.com/dual/daplug-base"
	"github.com/dual/daplug-base/encode"
)

type diffConfig struct {
	*cli.Command
}

// DiffCommand returns the diff subcommand.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <a> <b> - Structural diff of two documents").
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("diff takes exactly 2 arguments, got %d", len(args))
	}
	a, err := readNode(args[0])
	if err != nil {
		return err
	}
	b, err := readNode(args[1])
	if err != nil {
		return err
	}
	d := daplug.Diff(a, b)
	if d == nil {
		fmt.Fprintln(cc.Out, "no differences")
		return nil
	}
	return encode.Encode(d, cc.Out, encodeOptions(cc.Out)...)
}
