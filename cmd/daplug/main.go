package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/dual/daplug-base/cmd/daplug/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
