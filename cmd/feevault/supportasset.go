package main

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"
)

var supportasset = cli.Command{
	Name:  "supportasset",
	Usage: "bind an asset to its vault-share token so its fees get captured",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "asset identifier in hex",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "share_token",
			Usage:    "vault share token identifier in hex",
			Required: true,
		},
	},
	Action: supportAssetAction,
}

func supportAssetAction(ctx *cli.Context) error {
	_, err := callDaemon(http.MethodPost, "/v1/operator/assets", map[string]string{
		"asset":      ctx.String("asset"),
		"shareToken": ctx.String("share_token"),
	})
	if err != nil {
		return err
	}

	fmt.Println("asset is now supported")
	return nil
}
