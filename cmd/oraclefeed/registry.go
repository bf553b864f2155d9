package main

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"
)

var (
	registry = cli.Command{
		Name:  "registry",
		Usage: "manage the symbol registry",
		Subcommands: []*cli.Command{
			addSymbol, listSymbols, resolveSymbol, resolveFeedID,
		},
	}
	addSymbol = &cli.Command{
		Name:   "add",
		Usage:  "bind a new symbol to a feed identifier (admin only)",
		Action: addSymbolAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "symbol",
				Usage: "human-readable symbol of the base asset, e.g. ETH",
			},
			&cli.StringFlag{
				Name:  "feed_id",
				Usage: "feed identifier on the upstream provider",
			},
		},
	}
	listSymbols = &cli.Command{
		Name:   "list",
		Usage:  "list all registered symbol bindings",
		Action: listSymbolsAction,
	}
	resolveSymbol = &cli.Command{
		Name:   "resolve",
		Usage:  "resolve a symbol to its feed identifier",
		Action: resolveSymbolAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "symbol",
				Usage: "symbol to resolve",
			},
		},
	}
	resolveFeedID = &cli.Command{
		Name:   "reverse",
		Usage:  "resolve a feed identifier back to its symbol",
		Action: resolveFeedIDAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "feed_id",
				Usage: "feed identifier to resolve",
			},
		},
	}
)

func addSymbolAction(ctx *cli.Context) error {
	symbol := ctx.String("symbol")
	feedID := ctx.String("feed_id")
	if symbol == "" || feedID == "" {
		return fmt.Errorf("both symbol and feed_id must be given")
	}

	return postJSON(ctx, "/v1/registry", map[string]string{
		"symbol": symbol,
		"feedId": feedID,
	})
}

func listSymbolsAction(ctx *cli.Context) error {
	return getJSON(ctx, "/v1/registry")
}

func resolveSymbolAction(ctx *cli.Context) error {
	symbol := ctx.String("symbol")
	if symbol == "" {
		return fmt.Errorf("symbol must be given")
	}

	return getJSON(ctx, "/v1/registry/symbol/"+url.PathEscape(symbol))
}

func resolveFeedIDAction(ctx *cli.Context) error {
	feedID := ctx.String("feed_id")
	if feedID == "" {
		return fmt.Errorf("feed_id must be given")
	}

	return getJSON(ctx, "/v1/registry/feed/"+url.PathEscape(feedID))
}
