// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/config"
	"github.com/ns1ctl/ns1ctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the ns1ctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// allow short if-style local cfg; no actual outer cfg
	cfg2, _ := config.Load(ns) //nolint
	meta := meta.Meta{
		Args:        args,
		Config:      cfg2,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "ns1ctl",
		Usage: "NS1 Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "ns1ctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		zoneCommandBuilder(meta),
		recordCommandBuilder(meta),
		monitorCommandBuilder(meta),
		notifyListCommandBuilder(meta),
		dataSourceCommandBuilder(meta),
		dataFeedCommandBuilder(meta),
		tsigCommandBuilder(meta),
		teamCommandBuilder(meta),
		inspectCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text, at both the kind and
	// the subcommand level.
	for _, cmd := range app.Commands {
		sortFlags(cmd)
		for _, sub := range cmd.Commands {
			sortFlags(sub)
		}
	}

	return app, nil
}

func sortFlags(cmd *cli.Command) {
	sort.Slice(cmd.Flags, func(i, j int) bool {
		return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
	})
}
