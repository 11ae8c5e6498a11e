package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
)

var listwithdrawals = cli.Command{
	Name:  "listwithdrawals",
	Usage: "list the payout audit trail of an asset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "asset identifier in hex",
			Required: true,
		},
	},
	Action: listWithdrawalsAction,
}

func listWithdrawalsAction(ctx *cli.Context) error {
	resp, err := callDaemon(
		http.MethodGet, "/v1/operator/withdrawals/"+ctx.String("asset"), nil,
	)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
