package main

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"
)

var price = cli.Command{
	Name:   "price",
	Usage:  "load the canonical pip price for a symbol",
	Action: priceAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "symbol",
			Usage: "symbol to load the price for, e.g. ETH",
		},
	},
}

func priceAction(ctx *cli.Context) error {
	symbol := ctx.String("symbol")
	if symbol == "" {
		return fmt.Errorf("symbol must be given")
	}

	return getJSON(ctx, "/v1/price/"+url.PathEscape(symbol))
}
