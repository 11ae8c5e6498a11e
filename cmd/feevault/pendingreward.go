package main

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"
)

var pendingreward = cli.Command{
	Name:  "pendingreward",
	Usage: "show the claimable reward of a participant for an asset",
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
		&cli.BoolFlag{
			Name:  "underlying",
			Usage: "convert the reward through the current vault share price",
		},
	},
	Action: pendingRewardAction,
}

func pendingRewardAction(ctx *cli.Context) error {
	endpoint := fmt.Sprintf(
		"/v1/rewards/%s/%s", ctx.String("asset"), ctx.String("participant"),
	)
	if ctx.Bool("underlying") {
		endpoint += "?unit=underlying"
	}

	resp, err := callDaemon(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
