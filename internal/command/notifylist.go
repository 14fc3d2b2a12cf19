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

// notifyListDefaultAttrs specifies the default attributes displayed for
// notify lists.
var notifyListDefaultAttrs = []string{"name", "notify_list"}

// notifyListCommandBuilder constructs the cli.Command for "notifylist".
func notifyListCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindNotifyList,
		Usage:        "manage notify lists",
		DefaultAttrs: notifyListDefaultAttrs,
		Remote: func(_ context.Context, client *api.Client, _ Scope) (recon.Remote, error) {
			return client.NotifyLists(), nil
		},
		List: func(ctx context.Context, client *api.Client, _ Scope) ([]map[string]interface{}, error) {
			return client.NotifyLists().List(ctx)
		},
		Meta: meta,
	}).Build()
}
