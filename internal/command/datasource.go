// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/api"
	"github.com/ns1ctl/ns1ctl/internal/meta"
	"github.com/ns1ctl/ns1ctl/internal/recon"
	"github.com/ns1ctl/ns1ctl/internal/resource"
)

// dataSourceDefaultAttrs specifies the default attributes displayed for
// data sources.
var dataSourceDefaultAttrs = []string{"id", "name", "sourcetype", "status"}

// dataSourceCommandBuilder constructs the cli.Command for "datasource".
// Data sources are inspected, not converged; feeds are the declared side of
// the data pipeline, so this kind carries only get and list.
func dataSourceCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindDataSource,
		Usage:        "inspect data sources",
		DefaultAttrs: dataSourceDefaultAttrs,
		ReadOnly:     true,
		Remote: func(_ context.Context, client *api.Client, _ Scope) (recon.Remote, error) {
			return client.DataSources(), nil
		},
		List: func(ctx context.Context, client *api.Client, _ Scope) ([]map[string]interface{}, error) {
			return client.DataSources().List(ctx)
		},
		Meta: meta,
	}).Build()
}
