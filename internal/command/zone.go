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

// zoneDefaultAttrs specifies the default attributes displayed for zones.
var zoneDefaultAttrs = []string{"zone", "ttl", "nx_ttl", "expiry"}

// zoneCommandBuilder constructs the cli.Command for "zone", wiring the
// apply/get/list/rm subcommands to the zones service.
func zoneCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindZone,
		Usage:        "manage DNS zones",
		DefaultAttrs: zoneDefaultAttrs,
		Remote: func(_ context.Context, client *api.Client, _ Scope) (recon.Remote, error) {
			return client.Zones(), nil
		},
		List: func(ctx context.Context, client *api.Client, _ Scope) ([]map[string]interface{}, error) {
			return client.Zones().List(ctx)
		},
		Meta: meta,
	}).Build()
}
