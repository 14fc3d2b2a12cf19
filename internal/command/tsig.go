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

// tsigDefaultAttrs specifies the default attributes displayed for TSIG keys.
var tsigDefaultAttrs = []string{"name", "algorithm"}

// tsigCommandBuilder constructs the cli.Command for "tsig".
func tsigCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindTSIG,
		Usage:        "manage TSIG keys",
		DefaultAttrs: tsigDefaultAttrs,
		Remote: func(_ context.Context, client *api.Client, _ Scope) (recon.Remote, error) {
			return client.TSIG(), nil
		},
		List: func(ctx context.Context, client *api.Client, _ Scope) ([]map[string]interface{}, error) {
			return client.TSIG().List(ctx)
		},
		Meta: meta,
	}).Build()
}
