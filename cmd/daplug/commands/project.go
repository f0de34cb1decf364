package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dual/daplug-base/encode"
	"github.com/dual/daplug-base/logging"
	"github.com/dual/daplug-base/schema"
)

type projectConfig struct {
	*cli.Command
	Schemas string `cli:"name=schemas desc='schema directory (default $DAPLUG_SCHEMAS)'"`
}

// ProjectCommand returns the project subcommand.
func ProjectCommand() *cli.Command {
	cfg := &projectConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "project").
		WithSynopsis("project <schema> <payload-file> [--schemas DIR] - Project a payload onto a schema").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *projectConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("project takes exactly 2 arguments, got %d", len(args))
	}
	registry := schema.NewRegistry(logging.New(logging.Config{Level: logging.Warning}))
	if err := registry.LoadDir(schemasDir(cfg.Schemas)); err != nil {
		return err
	}
	resolved, err := registry.Resolved(args[0])
	if err != nil {
		return err
	}
	payload, err := readNode(args[1])
	if err != nil {
		return err
	}
	projected := schema.Project(payload, resolved)
	return encode.Encode(projected, cc.Out, encodeOptions(cc.Out)...)
}
