package main

import (
	"github.com/urfave/cli/v2"
)

var sources = cli.Command{
	Name:   "sources",
	Usage:  "list the provider shape the daemon is wired to",
	Action: sourcesAction,
}

func sourcesAction(ctx *cli.Context) error {
	return getJSON(ctx, "/v1/sources")
}
