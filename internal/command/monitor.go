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

// monitorDefaultAttrs specifies the default attributes displayed for
// monitoring jobs.
var monitorDefaultAttrs = []string{"name", "job_type", "active", "frequency", "regions"}

// monitorCommandBuilder constructs the cli.Command for "monitor".
func monitorCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindMonitor,
		Usage:        "manage monitoring jobs",
		DefaultAttrs: monitorDefaultAttrs,
		Remote: func(_ context.Context, client *api.Client, _ Scope) (recon.Remote, error) {
			return client.Monitors(), nil
		},
		List: func(ctx context.Context, client *api.Client, _ Scope) ([]map[string]interface{}, error) {
			return client.Monitors().List(ctx)
		},
		Meta: meta,
	}).Build()
}
