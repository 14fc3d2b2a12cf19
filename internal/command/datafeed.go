// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/api"
	"github.com/ns1ctl/ns1ctl/internal/meta"
	"github.com/ns1ctl/ns1ctl/internal/recon"
	"github.com/ns1ctl/ns1ctl/internal/resource"
)

// dataFeedDefaultAttrs specifies the default attributes displayed for
// data feeds.
var dataFeedDefaultAttrs = []string{"id", "name", "config"}

// dataFeedScopeFlags returns the addressing flag feeds need on get/list/rm.
// On apply the source comes from the manifest instead.
func dataFeedScopeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "data source the feed hangs off of",
		},
	}
}

// dataFeedRemote resolves the source name to its id and returns the scoped
// feed service.
func dataFeedRemote(ctx context.Context, client *api.Client, scope Scope) (*api.DataFeedsService, error) {
	if scope.Source == "" {
		return nil, errors.New("data feeds need a source")
	}

	sourceID, err := client.DataSources().ResolveID(ctx, scope.Source)
	if err != nil {
		return nil, err
	}
	return client.DataFeeds(sourceID), nil
}

// dataFeedCommandBuilder constructs the cli.Command for "datafeed". Feed
// paths carry the parent source id, so every subcommand resolves the source
// name first.
func dataFeedCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindDataFeed,
		Usage:        "manage data feeds",
		DefaultAttrs: dataFeedDefaultAttrs,
		ScopeFlags:   dataFeedScopeFlags,
		Remote: func(ctx context.Context, client *api.Client, scope Scope) (recon.Remote, error) {
			return dataFeedRemote(ctx, client, scope)
		},
		List: func(ctx context.Context, client *api.Client, scope Scope) ([]map[string]interface{}, error) {
			feeds, err := dataFeedRemote(ctx, client, scope)
			if err != nil {
				return nil, err
			}
			return feeds.List(ctx)
		},
		Meta: meta,
	}).Build()
}
