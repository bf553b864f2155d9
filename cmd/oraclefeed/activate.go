package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var activate = cli.Command{
	Name:   "activate",
	Usage:  "acknowledge this adapter as the consumer's active price source",
	Action: activateAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "consumer",
			Usage: "reference of the consuming system, e.g. settlement-engine",
		},
	},
}

func activateAction(ctx *cli.Context) error {
	consumer := ctx.String("consumer")
	if consumer == "" {
		return fmt.Errorf("consumer must be given")
	}

	return postJSON(ctx, "/v1/activate", map[string]string{
		"consumer": consumer,
	})
}
