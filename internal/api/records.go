// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/url"
)

// RecordsService manages the records of one zone and record type. The
// scoping happens at construction so the reconciler can address records by
// bare domain name.
type RecordsService struct {
	client *Client
	zone   string
	rtype  string
}

// Records returns a record service scoped to a zone and record type
// (A, CNAME, MX, ...).
func (c *Client) Records(zone, rtype string) *RecordsService {
	return &RecordsService{client: c, zone: zone, rtype: rtype}
}

func (s *RecordsService) path(domain string) string {
	return fmt.Sprintf("zones/%s/%s/%s",
		url.PathEscape(s.zone), url.PathEscape(domain), url.PathEscape(s.rtype))
}

func (s *RecordsService) errCtx(domain, operation string) ErrorContext {
	return ErrorContext{
		Endpoint:  s.client.endpoint,
		Kind:      s.rtype + " record",
		Name:      domain,
		Operation: operation,
	}
}

// Fetch retrieves one record by domain.
func (s *RecordsService) Fetch(ctx context.Context, domain string) (map[string]interface{}, error) {
	var record map[string]interface{}
	if err := s.client.get(ctx, s.path(domain), &record); err != nil {
		return nil, Friendly(err, s.errCtx(domain, "fetch record"))
	}
	return record, nil
}

// Create registers a new record. The zone, domain and type fields are part
// of the payload and are forced from the service scope.
func (s *RecordsService) Create(ctx context.Context, domain string, obj map[string]interface{}) (map[string]interface{}, error) {
	body := withField(obj, "zone", s.zone)
	body["domain"] = domain
	body["type"] = s.rtype

	var record map[string]interface{}
	if err := s.client.put(ctx, s.path(domain), body, &record); err != nil {
		return nil, Friendly(err, s.errCtx(domain, "create record"))
	}
	return record, nil
}

// Update applies a partial change set to an existing record.
func (s *RecordsService) Update(ctx context.Context, domain string, obj map[string]interface{}) (map[string]interface{}, error) {
	var record map[string]interface{}
	if err := s.client.post(ctx, s.path(domain), obj, &record); err != nil {
		return nil, Friendly(err, s.errCtx(domain, "update record"))
	}
	return record, nil
}

// Delete removes a record.
func (s *RecordsService) Delete(ctx context.Context, domain string) error {
	if err := s.client.del(ctx, s.path(domain)); err != nil {
		return Friendly(err, s.errCtx(domain, "delete record"))
	}
	return nil
}
