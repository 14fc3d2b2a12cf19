// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/api"
	"github.com/ns1ctl/ns1ctl/internal/config"
	"github.com/ns1ctl/ns1ctl/internal/meta"
	"github.com/ns1ctl/ns1ctl/internal/recon"
	"github.com/ns1ctl/ns1ctl/internal/resource"
)

func testMeta() meta.Meta {
	return meta.Meta{
		Args:    []string{"ns1ctl", "zone", "apply"},
		Context: context.Background(),
	}
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("NS1CTL_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestScopeFromManifest(t *testing.T) {
	m := resource.Manifest{
		Kind:       "record",
		Name:       "www.example.com",
		Zone:       "example.com",
		Type:       "A",
		RecordMode: "append",
	}

	scope := scopeFromManifest(m)
	assert.Equal(t, "example.com", scope.Zone)
	assert.Equal(t, "A", scope.Type)
	assert.Equal(t, resource.RecordModeAppend, scope.RecordMode)
	assert.Empty(t, scope.Source)
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name     string
		result   recon.Result
		expected string
	}{
		{
			name:     "no drift",
			result:   recon.Result{Changed: false, Op: recon.OpNone},
			expected: "ok      zone/example.com",
		},
		{
			name:     "created",
			result:   recon.Result{Changed: true, Op: recon.OpCreate},
			expected: "create  zone/example.com",
		},
		{
			name:     "updated",
			result:   recon.Result{Changed: true, Op: recon.OpUpdate},
			expected: "update  zone/example.com",
		},
		{
			name:     "deleted",
			result:   recon.Result{Changed: true, Op: recon.OpDelete},
			expected: "delete  zone/example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := summaryLine(resource.KindZone, "example.com", tt.result)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestResourceCommandBuilderSubcommands(t *testing.T) {
	zone := zoneCommandBuilder(testMeta())
	var names []string
	for _, sub := range zone.Commands {
		names = append(names, sub.Name)
	}
	assert.Equal(t, []string{"apply", "get", "list", "rm"}, names)
}

func TestResourceCommandBuilderReadOnlySubcommands(t *testing.T) {
	ds := dataSourceCommandBuilder(testMeta())
	var names []string
	for _, sub := range ds.Commands {
		names = append(names, sub.Name)
	}
	assert.Equal(t, []string{"get", "list"}, names)
}

func TestBuildAttrs(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "attrs", Value: "serial,!ttl"},
		},
	}

	al := BuildAttrs(cmd, "zone", "ttl")

	keys := map[string]bool{}
	for _, attr := range al {
		keys[attr.Key] = attr.Include
	}
	assert.True(t, keys["zone"])
	assert.True(t, keys["serial"])
	assert.False(t, keys["ttl"], "excluded attr should not be included")
}

func TestGetMetaMissing(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
}

func TestInspectRemoteRouting(t *testing.T) {
	client, err := api.NewClient("testkey")
	require.NoError(t, err)

	remote, err := inspectRemote(context.Background(), client, resource.KindZone, Scope{})
	require.NoError(t, err)
	assert.NotNil(t, remote)

	remote, err = inspectRemote(context.Background(), client, resource.KindRecord,
		Scope{Zone: "example.com", Type: "A"})
	require.NoError(t, err)
	assert.NotNil(t, remote)

	_, err = inspectRemote(context.Background(), client, resource.KindRecord, Scope{})
	assert.Error(t, err)

	_, err = inspectRemote(context.Background(), client, resource.Kind("bogus"), Scope{})
	assert.Error(t, err)
}

func TestApplyRejectsForeignManifest(t *testing.T) {
	isolateConfig(t)
	t.Setenv("NS1_APIKEY", "testkey")

	manifest := filepath.Join(t.TempDir(), "monitor.yaml")
	doc := "kind: monitor\nname: ping-www\nspec:\n  job_type: tcp\n"
	require.NoError(t, os.WriteFile(manifest, []byte(doc), 0o644))

	zone := zoneCommandBuilder(testMeta())
	err := zone.Run(context.Background(), []string{"zone", "apply", "-f", manifest})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares a monitor, not a zone")
}

func TestApplyFailsWithoutManifest(t *testing.T) {
	isolateConfig(t)
	t.Setenv("NS1_APIKEY", "testkey")

	zone := zoneCommandBuilder(testMeta())
	err := zone.Run(context.Background(), []string{"zone", "apply", "-f", "/nonexistent/manifest.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open manifest")
}
