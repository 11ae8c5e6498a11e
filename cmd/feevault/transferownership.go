package main

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"
)

var transferownership = cli.Command{
	Name:  "transferownership",
	Usage: "hand the owner capability to a new owner",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "new_owner",
			Usage:    "identity of the new owner",
			Required: true,
		},
	},
	Action: transferOwnershipAction,
}

func transferOwnershipAction(ctx *cli.Context) error {
	newOwner := ctx.String("new_owner")
	_, err := callDaemon(http.MethodPost, "/v1/operator/ownership", map[string]string{
		"newOwner": newOwner,
	})
	if err != nil {
		return err
	}

	fmt.Println("ownership transferred, update the local requester with:")
	fmt.Printf("  feevault config set requester %s\n", newOwner)
	return nil
}
