// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"sort"
	"strconv"

	"github.com/ns1ctl/ns1ctl/internal/recon"
)

// RecordMode selects how declared list fields of a record combine with
// what the server already holds.
type RecordMode string

const (
	// RecordModePurge replaces remote answers and filters with exactly
	// the declared entries.
	RecordModePurge RecordMode = "purge"

	// RecordModeAppend extends remote answers and filters with declared
	// entries not already present, preserving remote order.
	RecordModeAppend RecordMode = "append"
)

// defaultUserAgent is the agent string the monitoring backend fills in
// when none is declared.
const defaultUserAgent = "NS1 HTTP Monitoring Job"

// protocolParams steer a run but are never part of an API payload.
var protocolParams = []string{"state", "name"}

// recordAppendable names the record fields that honor append mode.
var recordAppendable = []string{"answers", "filters"}

// PolicyFor returns the comparison policy for a kind. Records vary by
// write mode; use RecordPolicy for them.
func PolicyFor(kind Kind) recon.Policy {
	switch kind {
	case KindZone:
		return recon.Policy{
			SetFields:   []string{"other_ips", "other_ports", "networks"},
			StripRemote: []string{"id", "dns_servers", "pool"},
			DropParams:  protocolParams,
			Secondaries: "primary.secondaries",
		}
	case KindRecord:
		return RecordPolicy(RecordModePurge)
	case KindMonitor:
		return recon.Policy{
			SetFields: []string{"regions"},
			StripRemote: []string{
				"id", "name", "status", "created_at", "updated_at",
				"last_run", "region_scope",
				"follow_redirect", "ipv6", "user_agent", "response_codes",
			},
			DropParams: protocolParams,
			Normalize:  normalizeMonitor,
			FullUpdate: true,
		}
	case KindNotifyList:
		return recon.Policy{
			StripRemote: []string{"id", "created_at", "updated_at", "created_by", "updated_by"},
			DropParams:  []string{"state"},
			FullUpdate:  true,
		}
	case KindDataSource:
		return recon.Policy{
			StripRemote: []string{"id", "feeds", "status"},
			DropParams:  []string{"state"},
		}
	case KindDataFeed:
		return recon.Policy{
			StripRemote: []string{"id", "destinations", "networks"},
			DropParams:  []string{"state", "source_id"},
		}
	case KindTSIG:
		return recon.Policy{
			SetFields:   []string{"other_ips", "other_ports", "networks"},
			StripRemote: []string{"id"},
			DropParams:  protocolParams,
			Secondaries: "primary.secondaries",
		}
	case KindTeam:
		return recon.Policy{
			SetFields:   []string{"ip_whitelist"},
			StripRemote: []string{"id"},
			DropParams:  []string{"state"},
		}
	default:
		return recon.Policy{DropParams: protocolParams}
	}
}

// RecordPolicy returns the record comparison policy for the given write
// mode. Record ids are generated per answer and region, so ids are
// stripped at every level, along with the feeds the server attaches to
// answers.
func RecordPolicy(mode RecordMode) recon.Policy {
	policy := recon.Policy{
		StripRemote: []string{"id", "feeds"},
		DropParams:  []string{"state", "name", "record_mode"},
	}
	if mode == RecordModeAppend {
		policy.Amend = appendRecordLists
	}
	return policy
}

// appendRecordLists unions declared appendable lists with the remote
// ones, keeping remote entries first and skipping declared entries the
// server already holds.
func appendRecordLists(have, want map[string]interface{}) map[string]interface{} {
	out := recon.Merge(want, nil)

	for _, key := range recordAppendable {
		wantList, ok := out[key].([]interface{})
		if !ok {
			continue
		}
		haveList, ok := have[key].([]interface{})
		if !ok {
			continue
		}

		union := make([]interface{}, len(haveList), len(haveList)+len(wantList))
		copy(union, haveList)
		for _, item := range wantList {
			if !containsValue(haveList, item) {
				union = append(union, item)
			}
		}
		out[key] = union
	}

	return out
}

func containsValue(list []interface{}, item interface{}) bool {
	for _, existing := range list {
		if len(recon.Diff(
			map[string]interface{}{"v": existing},
			map[string]interface{}{"v": item},
			nil,
		)) == 0 {
			return true
		}
	}
	return false
}

// normalizeMonitor rewrites a declared monitoring job into the shape the
// API reports it in: sorted regions, integer timeouts, and backend-default
// config switches omitted.
func normalizeMonitor(want map[string]interface{}) map[string]interface{} {
	out := recon.Merge(want, nil)

	if regions, ok := out["regions"].([]interface{}); ok {
		sorted := make([]interface{}, len(regions))
		copy(sorted, regions)
		sort.Slice(sorted, func(i, j int) bool {
			a, _ := sorted[i].(string)
			b, _ := sorted[j].(string)
			return a < b
		})
		out["regions"] = sorted
	}

	config, ok := out["config"].(map[string]interface{})
	if !ok {
		return out
	}
	config = recon.Merge(config, nil)
	out["config"] = config

	for _, key := range []string{"idle_timeout", "connect_timeout"} {
		if value, found := config[key]; found {
			config[key] = coerceInt(value)
		}
	}

	if enabled, found := config["follow_redirect"]; found && enabled == false {
		delete(config, "follow_redirect")
	}
	if enabled, found := config["ipv6"]; found && enabled == false {
		delete(config, "ipv6")
	}
	if agent, found := config["user_agent"]; found && agent == defaultUserAgent {
		delete(config, "user_agent")
	}

	return out
}

func coerceInt(value interface{}) interface{} {
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return value
}
