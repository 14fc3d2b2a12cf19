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

// teamDefaultAttrs specifies the default attributes displayed for teams.
var teamDefaultAttrs = []string{"id", "name", "ip_whitelist"}

// teamCommandBuilder constructs the cli.Command for "team".
func teamCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindTeam,
		Usage:        "manage account teams",
		DefaultAttrs: teamDefaultAttrs,
		Remote: func(_ context.Context, client *api.Client, _ Scope) (recon.Remote, error) {
			return client.Teams(), nil
		},
		List: func(ctx context.Context, client *api.Client, _ Scope) ([]map[string]interface{}, error) {
			return client.Teams().List(ctx)
		},
		Meta: meta,
	}).Build()
}
