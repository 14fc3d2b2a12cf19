// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/api"
	"github.com/ns1ctl/ns1ctl/internal/attrs"
	"github.com/ns1ctl/ns1ctl/internal/cacheutil"
	"github.com/ns1ctl/ns1ctl/internal/credentials"
	"github.com/ns1ctl/ns1ctl/internal/log"
	"github.com/ns1ctl/ns1ctl/internal/meta"
	"github.com/ns1ctl/ns1ctl/internal/output"
	"github.com/ns1ctl/ns1ctl/internal/recon"
	"github.com/ns1ctl/ns1ctl/internal/resource"
	"github.com/ns1ctl/ns1ctl/internal/snapshot"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// EmitDataset marshals a dataset as JSON and passes it to the common output
// routine.
func EmitDataset(results []map[string]interface{}, al attrs.AttrList, cmd *cli.Command) error {
	var raw bytes.Buffer
	if err := json.NewEncoder(&raw).Encode(results); err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	output.SliceDiceSpit(raw, al, cmd, "", os.Stdout, nil)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewAPIClient builds an NS1 API client from the command's credential and
// endpoint flags. Only read-only commands should enable cacheReads;
// reconciliation always needs a fresh fetch.
func NewAPIClient(cmd *cli.Command, cacheReads bool) (*api.Client, error) {
	key, err := credentials.Resolve(cmd.String("apikey"), cmd.String("passphrase"))
	if err != nil {
		return nil, err
	}

	return api.NewClient(key,
		api.WithEndpoint(cmd.String("endpoint")),
		api.WithCacheReads(cacheReads && cacheutil.Enabled()),
	)
}

// SnapshotBefore saves the current remote state of the named resource to the
// configured snapshot stores. A resource that does not exist yet has nothing
// worth keeping, so ErrNotFound is not an error here.
func SnapshotBefore(ctx context.Context, remote recon.Remote, kind resource.Kind, name string) error {
	have, err := remote.Fetch(ctx, name)
	if err != nil {
		if errors.Is(err, recon.ErrNotFound) {
			return nil
		}
		return err
	}

	store, err := snapshot.FromConfig(ctx)
	if err != nil {
		return err
	}

	location, err := store.Save(ctx, kind.String(), name, have)
	if err != nil {
		return fmt.Errorf("failed to snapshot %s %s: %w", kind, name, err)
	}

	log.Debugf("snapshot saved: location=%s", location)
	return nil
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr ns1ctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "ns1ctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// summaryLine formats the one-line outcome report for an apply or rm of a
// single resource.
func summaryLine(kind resource.Kind, name string, result recon.Result) string {
	op := "ok"
	if result.Changed {
		op = string(result.Op)
	}
	return fmt.Sprintf("%-7s %s/%s", op, kind, name)
}

// reportResult prints the summary line for one reconciliation and, when
// --diff is set and something moved, the rendered before/after difference.
func reportResult(cmd *cli.Command, kind resource.Kind, name string, result recon.Result) error {
	fmt.Fprintln(os.Stdout, summaryLine(kind, name, result))

	if cmd.Bool("diff") && result.Changed {
		rendered, err := recon.RenderDelta(result, cmd.Bool("color"))
		if err != nil {
			return fmt.Errorf("failed to render difference for %s %s: %w", kind, name, err)
		}
		if rendered != "" {
			fmt.Fprint(os.Stdout, rendered)
		}
	}

	return nil
}
