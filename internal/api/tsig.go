// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/url"
)

// TSIGService manages TSIG keys used to authenticate zone transfers. Keys
// are addressed by name.
type TSIGService struct {
	client *Client
}

// TSIG returns the TSIG key service.
func (c *Client) TSIG() *TSIGService {
	return &TSIGService{client: c}
}

func (s *TSIGService) errCtx(name, operation string) ErrorContext {
	return ErrorContext{
		Endpoint:  s.client.endpoint,
		Kind:      "tsig key",
		Name:      name,
		Operation: operation,
	}
}

// List returns every TSIG key.
func (s *TSIGService) List(ctx context.Context) ([]map[string]interface{}, error) {
	var keys []map[string]interface{}
	if err := s.client.get(ctx, "tsig", &keys); err != nil {
		return nil, Friendly(err, s.errCtx("", "list tsig keys"))
	}
	return keys, nil
}

// Fetch retrieves one TSIG key by name.
func (s *TSIGService) Fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	var key map[string]interface{}
	if err := s.client.get(ctx, "tsig/"+url.PathEscape(name), &key); err != nil {
		return nil, Friendly(err, s.errCtx(name, "fetch tsig key"))
	}
	return key, nil
}

// Create registers a new TSIG key.
func (s *TSIGService) Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	var key map[string]interface{}
	if err := s.client.put(ctx, "tsig/"+url.PathEscape(name), obj, &key); err != nil {
		return nil, Friendly(err, s.errCtx(name, "create tsig key"))
	}
	return key, nil
}

// Update applies a partial change set to an existing TSIG key.
func (s *TSIGService) Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	var key map[string]interface{}
	if err := s.client.post(ctx, "tsig/"+url.PathEscape(name), obj, &key); err != nil {
		return nil, Friendly(err, s.errCtx(name, "update tsig key"))
	}
	return key, nil
}

// Delete removes a TSIG key.
func (s *TSIGService) Delete(ctx context.Context, name string) error {
	if err := s.client.del(ctx, "tsig/"+url.PathEscape(name)); err != nil {
		return Friendly(err, s.errCtx(name, "delete tsig key"))
	}
	return nil
}
