// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// MonitorsService manages monitoring jobs. Jobs are id-addressed but
// declared by name, so lookups go through the collection listing.
type MonitorsService struct {
	endpoint *namedEndpoint
}

// Monitors returns the monitoring job service.
func (c *Client) Monitors() *MonitorsService {
	return &MonitorsService{endpoint: newNamedEndpoint(c, "monitor", "monitoring/jobs")}
}

// List returns every monitoring job.
func (s *MonitorsService) List(ctx context.Context) ([]map[string]interface{}, error) {
	return s.endpoint.list(ctx)
}

// Fetch retrieves one monitoring job by name.
func (s *MonitorsService) Fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	return s.endpoint.fetch(ctx, name)
}

// Create registers a new monitoring job.
func (s *MonitorsService) Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.create(ctx, name, obj)
}

// Update replaces a monitoring job. The monitoring API treats update as a
// full replacement, so callers send the merged object, not a delta.
func (s *MonitorsService) Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.update(ctx, name, obj)
}

// Delete removes a monitoring job.
func (s *MonitorsService) Delete(ctx context.Context, name string) error {
	return s.endpoint.delete(ctx, name)
}
