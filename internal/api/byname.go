// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/apex/log"

	"github.com/ns1ctl/ns1ctl/internal/recon"
)

// namedEndpoint handles the NS1 collections whose members are addressed by
// a server-generated id but declared by name (monitoring jobs, notify
// lists, teams, data sources). Names are resolved by listing the
// collection; resolved ids are remembered for the following write.
type namedEndpoint struct {
	client *Client
	kind   string
	base   string
	ids    map[string]string
}

func newNamedEndpoint(client *Client, kind, base string) *namedEndpoint {
	return &namedEndpoint{
		client: client,
		kind:   kind,
		base:   base,
		ids:    map[string]string{},
	}
}

func (n *namedEndpoint) errCtx(name, operation string) ErrorContext {
	return ErrorContext{
		Endpoint:  n.client.endpoint,
		Kind:      n.kind,
		Name:      name,
		Operation: operation,
	}
}

func (n *namedEndpoint) list(ctx context.Context) ([]map[string]interface{}, error) {
	var items []map[string]interface{}
	if err := n.client.get(ctx, n.base, &items); err != nil {
		return nil, Friendly(err, n.errCtx("", "list "+n.kind+"s"))
	}
	return items, nil
}

// resolve maps a name onto its server-generated id. Names are not
// guaranteed unique by the API; the first match wins and a duplicate is
// logged.
func (n *namedEndpoint) resolve(ctx context.Context, name string) (string, error) {
	if id, found := n.ids[name]; found {
		return id, nil
	}

	items, err := n.list(ctx)
	if err != nil {
		return "", err
	}

	var id string
	for _, item := range items {
		if item["name"] != name {
			continue
		}
		if id != "" {
			log.Warnf("duplicate %s name %q, using id %s", n.kind, name, id)
			break
		}
		id, _ = item["id"].(string)
	}

	if id == "" {
		return "", fmt.Errorf("%s %q: %w", n.kind, name, recon.ErrNotFound)
	}

	n.ids[name] = id
	return id, nil
}

func (n *namedEndpoint) fetch(ctx context.Context, name string) (map[string]interface{}, error) {
	id, err := n.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	var item map[string]interface{}
	if err := n.client.get(ctx, n.base+"/"+id, &item); err != nil {
		return nil, Friendly(err, n.errCtx(name, "fetch "+n.kind))
	}
	return item, nil
}

func (n *namedEndpoint) create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	body := withField(obj, "name", name)

	var item map[string]interface{}
	if err := n.client.put(ctx, n.base, body, &item); err != nil {
		return nil, Friendly(err, n.errCtx(name, "create "+n.kind))
	}

	if id, ok := item["id"].(string); ok {
		n.ids[name] = id
	}
	return item, nil
}

func (n *namedEndpoint) update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error) {
	id, err := n.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	body := withField(obj, "name", name)

	var item map[string]interface{}
	if err := n.client.post(ctx, n.base+"/"+id, body, &item); err != nil {
		return nil, Friendly(err, n.errCtx(name, "update "+n.kind))
	}
	return item, nil
}

func (n *namedEndpoint) delete(ctx context.Context, name string) error {
	id, err := n.resolve(ctx, name)
	if err != nil {
		return err
	}

	if err := n.client.del(ctx, n.base+"/"+id); err != nil {
		return Friendly(err, n.errCtx(name, "delete "+n.kind))
	}

	delete(n.ids, name)
	return nil
}
