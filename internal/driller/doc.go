// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller navigates NS1 API payloads using a flexible dot path
// notation, including array indexing for record answers and zone
// secondaries.
package driller
