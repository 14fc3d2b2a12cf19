// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/url"
)

// ZonesService manages DNS zones. Zones are addressed by their FQDN, so
// every operation maps straight onto a path.
type ZonesService struct {
	client *Client
}

// Zones returns the zone service.
func (c *Client) Zones() *ZonesService {
	return &ZonesService{client: c}
}

// List returns every zone visible to the key.
func (s *ZonesService) List(ctx context.Context) ([]map[string]interface{}, error) {
	var zones []map[string]interface{}
	if err := s.client.get(ctx, "zones", &zones); err != nil {
		return nil, Friendly(err, ErrorContext{
			Endpoint:  s.client.endpoint,
			Kind:      "zone",
			Operation: "list zones",
		})
	}
	return zones, nil
}

// Fetch retrieves one zone by FQDN.
func (s *ZonesService) Fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	var zone map[string]interface{}
	if err := s.client.get(ctx, "zones/"+url.PathEscape(name), &zone); err != nil {
		return nil, Friendly(err, ErrorContext{
			Endpoint:  s.client.endpoint,
			Kind:      "zone",
			Name:      name,
			Operation: "fetch zone",
		})
	}
	return zone, nil
}

// Create registers a new zone.
func (s *ZonesService) Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	body := withField(obj, "zone", name)

	var zone map[string]interface{}
	if err := s.client.put(ctx, "zones/"+url.PathEscape(name), body, &zone); err != nil {
		return nil, Friendly(err, ErrorContext{
			Endpoint:  s.client.endpoint,
			Kind:      "zone",
			Name:      name,
			Operation: "create zone",
		})
	}
	return zone, nil
}

// Update applies a partial change set to an existing zone.
func (s *ZonesService) Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	var zone map[string]interface{}
	if err := s.client.post(ctx, "zones/"+url.PathEscape(name), obj, &zone); err != nil {
		return nil, Friendly(err, ErrorContext{
			Endpoint:  s.client.endpoint,
			Kind:      "zone",
			Name:      name,
			Operation: "update zone",
		})
	}
	return zone, nil
}

// Delete removes a zone and all its records.
func (s *ZonesService) Delete(ctx context.Context, name string) error {
	if err := s.client.del(ctx, "zones/"+url.PathEscape(name)); err != nil {
		return Friendly(err, ErrorContext{
			Endpoint:  s.client.endpoint,
			Kind:      "zone",
			Name:      name,
			Operation: "delete zone",
		})
	}
	return nil
}

// withField returns a copy of obj with one field forced to a value.
func withField(obj map[string]interface{}, key string, value interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(obj)+1)
	for k, v := range obj {
		out[k] = v
	}
	out[key] = value
	return out
}
