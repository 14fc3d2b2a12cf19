// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// TeamsService manages account teams and their portal/API permissions.
type TeamsService struct {
	endpoint *namedEndpoint
}

// Teams returns the team service.
func (c *Client) Teams() *TeamsService {
	return &TeamsService{endpoint: newNamedEndpoint(c, "team", "account/teams")}
}

// List returns every team on the account.
func (s *TeamsService) List(ctx context.Context) ([]map[string]interface{}, error) {
	return s.endpoint.list(ctx)
}

// Fetch retrieves one team by name.
func (s *TeamsService) Fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	return s.endpoint.fetch(ctx, name)
}

// Create registers a new team.
func (s *TeamsService) Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.create(ctx, name, obj)
}

// Update applies permission changes to an existing team.
func (s *TeamsService) Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.update(ctx, name, obj)
}

// Delete removes a team.
func (s *TeamsService) Delete(ctx context.Context, name string) error {
	return s.endpoint.delete(ctx, name)
}
