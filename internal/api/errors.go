// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ns1ctl/ns1ctl/internal/recon"
)

// Error is a non-2xx answer from the NS1 API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// Unwrap maps a 404 onto the reconciler's not-found sentinel so callers
// can errors.Is without knowing HTTP.
func (e *Error) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return recon.ErrNotFound
	}
	return nil
}

// ErrorContext carries input context for improving API error messages.
type ErrorContext struct {
	Endpoint  string
	Kind      string // e.g., "zone", "monitor"
	Name      string
	Operation string // e.g., "fetch zone", "update record"
}

// Friendly wraps an NS1 API error with a contextual, user-friendly message
// while preserving the original error for inspection via errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	endpoint := nonEmpty(ctx.Endpoint, DefaultEndpoint)
	operation := nonEmpty(ctx.Operation, "request")

	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized:
			return fmt.Errorf("%s on %s: authentication failed (401). Set NS1_APIKEY or apikey in the config file",
				operation, endpoint)

		case http.StatusNotFound:
			if ctx.Name != "" {
				return fmt.Errorf("%s: %s %q not found on %s: %w",
					operation, nonEmpty(ctx.Kind, "resource"), ctx.Name, endpoint, err)
			}
			return fmt.Errorf("%s: not found on %s: %w", operation, endpoint, err)

		case http.StatusTooManyRequests:
			return fmt.Errorf("%s on %s: rate limited (429); rerun once the quota window passes: %w",
				operation, endpoint, err)
		}
	}

	// Unknown error: provide generic context and wrap.
	return fmt.Errorf("%s on %s for %s %q: %w",
		operation, endpoint, nonEmpty(ctx.Kind, "resource"), ctx.Name, err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
