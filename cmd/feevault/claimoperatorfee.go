package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
)

var claimoperatorfee = cli.Command{
	Name:  "claimoperatorfee",
	Usage: "pay out the accrued operator share of an asset to the owner",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "asset identifier in hex",
			Required: true,
		},
	},
	Action: claimOperatorFeeAction,
}

func claimOperatorFeeAction(ctx *cli.Context) error {
	resp, err := callDaemon(http.MethodPost, "/v1/operator/claims", map[string]string{
		"asset": ctx.String("asset"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
