package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "oraclefeed operator CLI"
	app.Usage = "Command line interface for oraclefeedd daemon operators"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "rpcserver",
			Usage:   "base url of the oraclefeedd HTTP interface",
			Value:   "http://localhost:9960",
			EnvVars: []string{"ORACLEFEED_RPCSERVER"},
		},
		&cli.StringFlag{
			Name:    "admin_token",
			Usage:   "token identifying the registry administrator",
			EnvVars: []string{"ORACLEFEED_ADMIN_TOKEN"},
		},
	}
	app.Commands = append(
		app.Commands,
		&price,
		&registry,
		&activate,
		&sources,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[oraclefeed] %v\n", err)
	os.Exit(1)
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func getJSON(ctx *cli.Context, path string) error {
	url := ctx.String("rpcserver") + path

	res, err := httpClient().Get(url)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return printResponse(res)
}

func postJSON(ctx *cli.Context, path string, body interface{}) error {
	url := ctx.String("rpcserver") + path

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := ctx.String("admin_token"); token != "" {
		req.Header.Set("X-Admin-Token", token)
	}

	res, err := httpClient().Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return printResponse(res)
}

func printResponse(res *http.Response) error {
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: %s", res.Status, string(body))
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, body, "", "\t"); err != nil {
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(indented.String())
	return nil
}
