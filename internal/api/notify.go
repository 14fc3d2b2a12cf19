// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// NotifyListsService manages notification lists, the webhook/email/pager
// targets monitoring jobs alert through.
type NotifyListsService struct {
	endpoint *namedEndpoint
}

// NotifyLists returns the notification list service.
func (c *Client) NotifyLists() *NotifyListsService {
	return &NotifyListsService{endpoint: newNamedEndpoint(c, "notify list", "lists")}
}

// List returns every notification list.
func (s *NotifyListsService) List(ctx context.Context) ([]map[string]interface{}, error) {
	return s.endpoint.list(ctx)
}

// Fetch retrieves one notification list by name.
func (s *NotifyListsService) Fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	return s.endpoint.fetch(ctx, name)
}

// Create registers a new notification list.
func (s *NotifyListsService) Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.create(ctx, name, obj)
}

// Update replaces a notification list's definition.
func (s *NotifyListsService) Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.update(ctx, name, obj)
}

// Delete removes a notification list.
func (s *NotifyListsService) Delete(ctx context.Context, name string) error {
	return s.endpoint.delete(ctx, name)
}
