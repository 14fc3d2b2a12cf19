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

// recordDefaultAttrs specifies the default attributes displayed for records.
// short_answers is the flattened answer list the API reports alongside the
// structured answers.
var recordDefaultAttrs = []string{"domain", "type", "ttl", "short_answers"}

// recordScopeFlags returns the addressing flags records need on get/list/rm.
// On apply the zone and type come from the manifest instead.
func recordScopeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "zone",
			Usage: "zone the record lives in",
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: "record type (A, CNAME, MX, ...)",
		},
	}
}

// recordCommandBuilder constructs the cli.Command for "record". The records
// service is scoped by zone and type, so the remote factory insists on both.
func recordCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ResourceCommandBuilder{
		Kind:         resource.KindRecord,
		Usage:        "manage DNS records",
		DefaultAttrs: recordDefaultAttrs,
		ScopeFlags:   recordScopeFlags,
		Remote: func(_ context.Context, client *api.Client, scope Scope) (recon.Remote, error) {
			if scope.Zone == "" || scope.Type == "" {
				return nil, errors.New("records need both a zone and a type")
			}
			return client.Records(scope.Zone, scope.Type), nil
		},
		List: func(ctx context.Context, client *api.Client, scope Scope) ([]map[string]interface{}, error) {
			if scope.Zone == "" {
				return nil, errors.New("record list needs --zone")
			}

			// The zone object carries its records; there is no separate
			// record collection endpoint.
			zone, err := client.Zones().Fetch(ctx, scope.Zone)
			if err != nil {
				return nil, err
			}

			records, _ := zone["records"].([]interface{})
			dataset := make([]map[string]interface{}, 0, len(records))
			for _, record := range records {
				entry, ok := record.(map[string]interface{})
				if !ok {
					continue
				}
				if scope.Type != "" && entry["type"] != scope.Type {
					continue
				}
				dataset = append(dataset, entry)
			}
			return dataset, nil
		},
		Policy: func(scope Scope) recon.Policy {
			mode := scope.RecordMode
			if mode == "" {
				mode = resource.RecordModePurge
			}
			return resource.RecordPolicy(mode)
		},
		Meta: meta,
	}).Build()
}
