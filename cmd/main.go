package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"rawsock/cmd/listen"
	"rawsock/cmd/version"
)

func main() {
	app := &cli.Command{
		Name:  "rawsock",
		Usage: "raw socket listen-and-echo demo",
		Commands: []*cli.Command{
			listen.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("[!] Error: %s\n", err)
	}
}
