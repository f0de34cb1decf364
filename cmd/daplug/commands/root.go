package commands

import (
	"github.com/scott-cotton/cli"
)

const usageText = `daplug - shape and merge structured payloads

Usage:
  daplug project <schema> <payload-file> [--schemas DIR]   Project a payload onto a schema
  daplug merge <base> <incoming> [--lists S] [--dicts S]   Deep-merge two documents
  daplug diff <a> <b>                                      Structural diff of two documents

Environment:
  DAPLUG_SCHEMAS   Default schema directory for 'project'
  DAPLUG_COLOR     auto (default), always or never

Examples:
  daplug project order order.json --schemas ./schemas
  daplug merge base.yaml update.yaml --lists replace
  daplug merge base.json removals.json --dicts remove
  daplug diff before.json after.json`

// Root returns the root command for daplug.
func Root() *cli.Command {
	return cli.NewCommand("daplug").
		WithSynopsis("daplug - shape and merge structured payloads").
		WithDescription(usageText).
		WithSubs(
			ProjectCommand(),
			MergeCommand(),
			DiffCommand(),
		)
}
