// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"fmt"
	"strings"
)

// Kind identifies one managed NS1 resource type. The set is closed;
// routing to a kind's client happens through this tag, never through
// runtime name construction.
type Kind string

const (
	KindZone       Kind = "zone"
	KindRecord     Kind = "record"
	KindMonitor    Kind = "monitor"
	KindNotifyList Kind = "notifylist"
	KindDataSource Kind = "datasource"
	KindDataFeed   Kind = "datafeed"
	KindTSIG       Kind = "tsig"
	KindTeam       Kind = "team"
)

// Kinds returns every managed kind, in catalog order.
func Kinds() []Kind {
	return []Kind{
		KindZone,
		KindRecord,
		KindMonitor,
		KindNotifyList,
		KindDataSource,
		KindDataFeed,
		KindTSIG,
		KindTeam,
	}
}

// kindAliases maps the spellings accepted in manifests and on the
// command line to their canonical kind.
var kindAliases = map[string]Kind{
	"zone":        KindZone,
	"record":      KindRecord,
	"monitor":     KindMonitor,
	"monitor_job": KindMonitor,
	"notifylist":  KindNotifyList,
	"notify_list": KindNotifyList,
	"notifier":    KindNotifyList,
	"datasource":  KindDataSource,
	"datafeed":    KindDataFeed,
	"data_feed":   KindDataFeed,
	"tsig":        KindTSIG,
	"team":        KindTeam,
}

// ParseKind resolves a user-supplied kind name.
func ParseKind(name string) (Kind, error) {
	kind, found := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return "", fmt.Errorf("unknown resource kind %q", name)
	}
	return kind, nil
}

func (k Kind) String() string {
	return string(k)
}
