// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package snapshot persists the remote state of a resource before it is
// changed or removed, so an operator can recover the prior definition.
// Snapshots always land on local disk and can additionally be pushed to an
// S3 bucket when one is configured.
package snapshot
