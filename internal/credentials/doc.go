// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package credentials resolves the NS1 API key. The key may come from a
// flag, the NS1_APIKEY environment variable, the config file, or an
// encrypted keyfile protected by a passphrase (PBKDF2-SHA512 + AES-GCM).
package credentials
