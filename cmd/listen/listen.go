package listen

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"rawsock/pkg/config"
	"rawsock/pkg/log"
	"rawsock/pkg/server"
	"rawsock/pkg/socket"
)

const portFlag = "port"
const backlogFlag = "backlog"
const sslFlag = "ssl"
const keyFlag = "key"
const verboseFlag = "verbose"

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "listen",
		Usage: "Listen for connections and echo their data back",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := &config.Shared{
				Port:    int(cmd.Int(portFlag)),
				Backlog: int(cmd.Int(backlogFlag)),
				SSL:     cmd.Bool(sslFlag),
				Key:     cmd.String(keyFlag),
				Verbose: cmd.Bool(verboseFlag),
			}

			log.SetVerbose(cfg.Verbose)

			if errors := cfg.Validate(); len(errors) > 0 {
				log.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					log.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			s, err := server.New(cfg)
			if err != nil {
				return fmt.Errorf("server.New(): %s", err)
			}
			defer s.Close()

			if err := s.Listen(); err != nil {
				return fmt.Errorf("listening: %s", err)
			}

			if err := s.Serve(); err != nil {
				return fmt.Errorf("serving: %s", err)
			}

			return nil
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     portFlag,
				Aliases:  []string{"p"},
				Usage:    "Local port, 0 for an OS-assigned ephemeral port",
				Required: true,
			},
			&cli.IntFlag{
				Name:  backlogFlag,
				Usage: "Maximum number of pending connections",
				Value: socket.DefaultBacklog,
			},
			&cli.BoolFlag{
				Name:  sslFlag,
				Usage: "Wrap connections in TLS",
			},
			&cli.StringFlag{
				Name:  keyFlag,
				Usage: "Shared key for mutual TLS authentication",
			},
			&cli.BoolFlag{
				Name:    verboseFlag,
				Aliases: []string{"v"},
				Usage:   "Verbose output",
			},
		},
	}
}
