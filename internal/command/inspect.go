// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/api"
	"github.com/ns1ctl/ns1ctl/internal/log"
	"github.com/ns1ctl/ns1ctl/internal/meta"
	"github.com/ns1ctl/ns1ctl/internal/query"
	"github.com/ns1ctl/ns1ctl/internal/recon"
	"github.com/ns1ctl/ns1ctl/internal/resource"
)

// inspectRemote routes an inspect target to its kind's API service. Records
// and data feeds need their addressing flags; everything else is reached by
// bare name.
func inspectRemote(ctx context.Context, client *api.Client, kind resource.Kind, scope Scope) (recon.Remote, error) {
	switch kind {
	case resource.KindZone:
		return client.Zones(), nil
	case resource.KindRecord:
		if scope.Zone == "" || scope.Type == "" {
			return nil, fmt.Errorf("inspecting a record needs both --zone and --type")
		}
		return client.Records(scope.Zone, scope.Type), nil
	case resource.KindMonitor:
		return client.Monitors(), nil
	case resource.KindNotifyList:
		return client.NotifyLists(), nil
	case resource.KindDataSource:
		return client.DataSources(), nil
	case resource.KindDataFeed:
		return dataFeedRemote(ctx, client, scope)
	case resource.KindTSIG:
		return client.TSIG(), nil
	case resource.KindTeam:
		return client.Teams(), nil
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}

// inspectCommandAction fetches the named resource and hands its tree to the
// interactive console.
func inspectCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "inspect") {
		return nil
	}

	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("inspect needs a kind and a name")
	}

	kind, err := resource.ParseKind(args[0])
	if err != nil {
		return err
	}
	name := args[1]

	client, err := NewAPIClient(cmd, true)
	if err != nil {
		return err
	}

	remote, err := inspectRemote(ctx, client, kind, scopeFromFlags(cmd))
	if err != nil {
		return err
	}

	data, err := remote.Fetch(ctx, name)
	if err != nil {
		return err
	}

	return query.RunConsole(kind.String(), name, data)
}

// inspectCommandBuilder constructs the cli.Command for "inspect", the
// interactive resource console.
func inspectCommandBuilder(meta meta.Meta) *cli.Command {
	flags := append(recordScopeFlags(), dataFeedScopeFlags()...)
	flags = append(flags,
		NewAPIKeyFlag("inspect", meta.Config.Source),
		NewEndpointFlag("inspect", meta.Config.Source),
		passphraseFlag,
		tldrFlag,
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "interactive resource inspector",
		UsageText: "ns1ctl inspect KIND NAME [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  flags,
		Action: inspectCommandAction,
	}
}
