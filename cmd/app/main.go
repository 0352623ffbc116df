// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/slalom/capabilities/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "capabilities",
		Usage:   "Consulting capability registry service",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, cmd.Root().Version)
				},
			},
			{
				Name:  "hash-password",
				Usage: "Hash a practice lead password for the accounts file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Plain text password to hash",
					},
					&cli.BoolFlag{
						Name:    "argon2",
						Aliases: []string{"a"},
						Value:   false,
						Usage:   "Produce an Argon2id hash instead of a SHA-256 digest",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunHashPassword(
						commands.DefaultIO(),
						cmd.String("password"),
						cmd.Bool("argon2"),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
