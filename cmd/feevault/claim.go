package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
)

var claim = cli.Command{
	Name:  "claim",
	Usage: "pay out the pending reward of a participant",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "asset",
			Usage:    "asset identifier in hex",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "participant",
			Usage:    "participant identifier",
			Required: true,
		},
	},
	Action: claimAction,
}

func claimAction(ctx *cli.Context) error {
	resp, err := callDaemon(http.MethodPost, "/v1/claims", map[string]string{
		"asset":       ctx.String("asset"),
		"participant": ctx.String("participant"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
