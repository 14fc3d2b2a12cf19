// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package resource holds the catalog of managed NS1 resource kinds: the
// closed set of kinds, the per-kind comparison policy consumed by the
// reconciler, and the YAML manifest format operators declare desired
// state in.
package resource
