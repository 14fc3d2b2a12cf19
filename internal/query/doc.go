// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package query implements the interactive inspect console. A fetched
// resource is explored with dotted-path queries or HCL expressions
// evaluated against its tree.
package query
