// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/ns1ctl/ns1ctl/internal/recon"
)

// DataSourcesService manages data sources, the ingest points feeds hang
// off of.
type DataSourcesService struct {
	endpoint *namedEndpoint
}

// DataSources returns the data source service.
func (c *Client) DataSources() *DataSourcesService {
	return &DataSourcesService{endpoint: newNamedEndpoint(c, "data source", "data/sources")}
}

// List returns every data source.
func (s *DataSourcesService) List(ctx context.Context) ([]map[string]interface{}, error) {
	return s.endpoint.list(ctx)
}

// Fetch retrieves one data source by name.
func (s *DataSourcesService) Fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	return s.endpoint.fetch(ctx, name)
}

// Create registers a new data source.
func (s *DataSourcesService) Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.create(ctx, name, obj)
}

// Update replaces a data source's definition.
func (s *DataSourcesService) Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	return s.endpoint.update(ctx, name, obj)
}

// Delete removes a data source and its feeds.
func (s *DataSourcesService) Delete(ctx context.Context, name string) error {
	return s.endpoint.delete(ctx, name)
}

// ResolveID maps a data source name onto its id, for scoping feed calls.
func (s *DataSourcesService) ResolveID(ctx context.Context, name string) (string, error) {
	return s.endpoint.resolve(ctx, name)
}

// DataFeedsService manages the feeds of one data source. Feed paths carry
// the source id, so the service is scoped at construction.
type DataFeedsService struct {
	client   *Client
	sourceID string
	ids      map[string]string
}

// DataFeeds returns a feed service scoped to a data source id.
func (c *Client) DataFeeds(sourceID string) *DataFeedsService {
	return &DataFeedsService{client: c, sourceID: sourceID, ids: map[string]string{}}
}

func (s *DataFeedsService) base() string {
	return "data/feeds/" + s.sourceID
}

func (s *DataFeedsService) errCtx(name, operation string) ErrorContext {
	return ErrorContext{
		Endpoint:  s.client.endpoint,
		Kind:      "data feed",
		Name:      name,
		Operation: operation,
	}
}

// List returns every feed of the source.
func (s *DataFeedsService) List(ctx context.Context) ([]map[string]interface{}, error) {
	var feeds []map[string]interface{}
	if err := s.client.get(ctx, s.base(), &feeds); err != nil {
		return nil, Friendly(err, s.errCtx("", "list data feeds"))
	}
	return feeds, nil
}

func (s *DataFeedsService) resolve(ctx context.Context, name string) (string, error) {
	if id, found := s.ids[name]; found {
		return id, nil
	}

	feeds, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	for _, feed := range feeds {
		if feed["name"] == name {
			id, _ := feed["id"].(string)
			s.ids[name] = id
			return id, nil
		}
	}

	return "", fmt.Errorf("data feed %q: %w", name, recon.ErrNotFound)
}

// Fetch retrieves one feed by name.
func (s *DataFeedsService) Fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	id, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	var feed map[string]interface{}
	if err := s.client.get(ctx, s.base()+"/"+id, &feed); err != nil {
		return nil, Friendly(err, s.errCtx(name, "fetch data feed"))
	}
	return feed, nil
}

// Create registers a new feed on the source.
func (s *DataFeedsService) Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	body := withField(obj, "name", name)

	var feed map[string]interface{}
	if err := s.client.put(ctx, s.base(), body, &feed); err != nil {
		return nil, Friendly(err, s.errCtx(name, "create data feed"))
	}

	if id, ok := feed["id"].(string); ok {
		s.ids[name] = id
	}
	return feed, nil
}

// Update replaces a feed's config.
func (s *DataFeedsService) Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	id, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	body := withField(obj, "name", name)

	var feed map[string]interface{}
	if err := s.client.post(ctx, s.base()+"/"+id, body, &feed); err != nil {
		return nil, Friendly(err, s.errCtx(name, "update data feed"))
	}
	return feed, nil
}

// Delete removes a feed.
func (s *DataFeedsService) Delete(ctx context.Context, name string) error {
	id, err := s.resolve(ctx, name)
	if err != nil {
		return err
	}

	if err := s.client.del(ctx, s.base()+"/"+id); err != nil {
		return Friendly(err, s.errCtx(name, "delete data feed"))
	}

	delete(s.ids, name)
	return nil
}
