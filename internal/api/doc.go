// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package api is the NS1 REST client. It owns authentication, transport,
// error translation and read caching, and exposes one service per managed
// resource kind. Each service satisfies the reconciler's Remote interface,
// so the reconciliation engine never sees HTTP.
package api
