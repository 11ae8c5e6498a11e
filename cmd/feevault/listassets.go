package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
)

var listassets = cli.Command{
	Name:   "listassets",
	Usage:  "list the supported assets with their accounting state",
	Action: listAssetsAction,
}

func listAssetsAction(ctx *cli.Context) error {
	resp, err := callDaemon(http.MethodGet, "/v1/assets", nil)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
