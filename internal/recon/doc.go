// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package recon implements the declarative reconciliation engine: it
// compares a desired configuration tree against the current remote
// representation of a resource and produces the minimal delta needed to
// converge them.
//
// The comparison is policy-driven. A Policy names the fields that are
// compared as unordered collections (set fields), the server-generated
// fields stripped from the remote side before comparison, and an optional
// peer-server list that is keyed by (ip, port) instead of compared
// positionally.
//
// Diff, Sanitize and PruneNulls are pure functions over nested
// key/value trees. All network traffic is delegated to a Remote, and an
// empty delta never triggers a write.
package recon
