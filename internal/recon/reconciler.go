// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
)

// ErrNotFound is returned by a Remote's Fetch when the named resource does
// not exist. The reconciler turns it into a create, never an error.
var ErrNotFound = errors.New("resource not found")

// Remote is the capability surface a resource client must provide. Every
// resource kind implements the same four operations; there is no dynamic
// dispatch beyond this interface.
type Remote interface {
	Fetch(ctx context.Context, name string) (map[string]interface{}, error)
	Create(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error)
	Update(ctx context.Context, name string, obj map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, name string) error
}

// Policy captures the comparison rules for one resource kind.
type Policy struct {
	// SetFields are list-valued fields compared as unordered collections.
	SetFields []string

	// StripRemote names the server-generated fields removed from the
	// fetched object before comparison.
	StripRemote []string

	// DropParams names declared fields that steer the run but are never
	// part of the payload sent to the API.
	DropParams []string

	// Secondaries is the dotted path of a peer-server list keyed by
	// (ip, port). Empty means the kind has no such list.
	Secondaries string

	// Normalize, when set, rewrites the declared tree into the shape the
	// API returns it in, so equal configurations compare equal.
	Normalize func(want map[string]interface{}) map[string]interface{}

	// Amend, when set, rewrites the declared tree with knowledge of the
	// sanitized remote state before diffing. Used for append-style list
	// merges where declared entries extend what the server already holds.
	Amend func(have, want map[string]interface{}) map[string]interface{}

	// FullUpdate sends the merged object on update instead of the bare
	// delta, for APIs that treat update as full replacement.
	FullUpdate bool
}

// Op identifies the write a reconciliation performed or would perform.
type Op string

const (
	OpNone   Op = "none"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Result reports the outcome of one reconciliation.
type Result struct {
	Changed bool
	Op      Op

	// Delta holds the fields that moved, keyed as sent to the API.
	Delta map[string]interface{}

	// Before and After are the sanitized remote state on entry and the
	// state the run converged (or would converge) to.
	Before map[string]interface{}
	After  map[string]interface{}
}

// Reconciler drives one resource kind toward its declared state.
type Reconciler struct {
	remote Remote
	policy Policy
	check  bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithCheckMode makes the reconciler report what it would change without
// issuing any write.
func WithCheckMode(check bool) Option {
	return func(r *Reconciler) {
		r.check = check
	}
}

// New returns a Reconciler for one resource kind.
func New(remote Remote, policy Policy, opts ...Option) *Reconciler {
	r := &Reconciler{
		remote: remote,
		policy: policy,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ensure converges the named resource to the declared state. The declared
// tree is sanitized and null-pruned before comparison; a missing resource
// is created, a divergent one updated, a convergent one left alone.
func (r *Reconciler) Ensure(ctx context.Context, name string, want map[string]interface{}) (Result, error) {
	log.Debugf(">> Ensure(): name=%s check=%v", name, r.check)

	want = PruneNulls(Sanitize(want, r.policy.DropParams))
	if r.policy.Normalize != nil {
		want = r.policy.Normalize(want)
	}

	have, err := r.remote.Fetch(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return r.create(ctx, name, want)
		}
		return Result{}, fmt.Errorf("failed to fetch %s: %w", name, err)
	}

	have = Sanitize(have, r.policy.StripRemote)
	if r.policy.Amend != nil {
		want = r.policy.Amend(have, want)
	}

	delta, err := r.delta(have, want)
	if err != nil {
		return Result{}, fmt.Errorf("failed to compare %s: %w", name, err)
	}

	if len(delta) == 0 {
		log.Debugf("no drift: name=%s", name)
		return Result{Changed: false, Op: OpNone, Before: have, After: have}, nil
	}

	after := Merge(have, delta)

	result := Result{
		Changed: true,
		Op:      OpUpdate,
		Delta:   delta,
		Before:  have,
		After:   after,
	}

	if r.check {
		return result, nil
	}

	payload := delta
	if r.policy.FullUpdate {
		payload = after
	}

	if _, err := r.remote.Update(ctx, name, payload); err != nil {
		return Result{}, fmt.Errorf("failed to update %s: %w", name, err)
	}

	return result, nil
}

// Remove deletes the named resource if it exists.
func (r *Reconciler) Remove(ctx context.Context, name string) (Result, error) {
	log.Debugf(">> Remove(): name=%s check=%v", name, r.check)

	have, err := r.remote.Fetch(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Result{Changed: false, Op: OpNone}, nil
		}
		return Result{}, fmt.Errorf("failed to fetch %s: %w", name, err)
	}

	result := Result{
		Changed: true,
		Op:      OpDelete,
		Before:  Sanitize(have, r.policy.StripRemote),
	}

	if r.check {
		return result, nil
	}

	if err := r.remote.Delete(ctx, name); err != nil {
		return Result{}, fmt.Errorf("failed to delete %s: %w", name, err)
	}

	return result, nil
}

func (r *Reconciler) create(ctx context.Context, name string, want map[string]interface{}) (Result, error) {
	result := Result{
		Changed: true,
		Op:      OpCreate,
		Delta:   want,
		After:   want,
	}

	if r.check {
		return result, nil
	}

	created, err := r.remote.Create(ctx, name, want)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create %s: %w", name, err)
	}
	if created != nil {
		result.After = Sanitize(created, r.policy.StripRemote)
	}

	return result, nil
}

// delta computes the full change set, routing the peer-server list (when
// the policy names one) through the keyed comparison so its order never
// reads as drift.
func (r *Reconciler) delta(have, want map[string]interface{}) (map[string]interface{}, error) {
	if r.policy.Secondaries == "" {
		return Diff(have, want, r.policy.SetFields), nil
	}

	path := strings.Split(r.policy.Secondaries, ".")

	wantServers, declared := listAt(want, path)
	if declared && wantServers == nil {
		return nil, fmt.Errorf("declared %s is not a list of servers", r.policy.Secondaries)
	}
	haveServers, _ := listAt(have, path)

	var changed bool
	if declared {
		var err error
		changed, err = SecondariesDiffer(haveServers, wantServers, r.policy.SetFields)
		if err != nil {
			return nil, err
		}
	}

	delta := Diff(cutPath(have, path), cutPath(want, path), r.policy.SetFields)
	if changed {
		setPath(delta, path, wantServers)
	}

	return delta, nil
}

// Merge returns a new tree holding base with delta applied over it.
// Nested objects merge recursively; everything else is replaced. Neither
// input is modified.
func Merge(base, delta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(delta))
	for key, value := range base {
		out[key] = value
	}

	for key, value := range delta {
		nested, ok := value.(map[string]interface{})
		if !ok {
			out[key] = value
			continue
		}
		baseNested, ok := out[key].(map[string]interface{})
		if !ok {
			out[key] = value
			continue
		}
		out[key] = Merge(baseNested, nested)
	}

	return out
}

// listAt walks a dotted path and returns the list found there. The bool
// reports whether the leaf key exists at all, so a declared-empty list is
// distinguishable from an undeclared one. A leaf that exists but is not a
// list comes back as (nil, true); the caller owns rejecting that shape.
func listAt(obj map[string]interface{}, path []string) ([]interface{}, bool) {
	for _, key := range path[:len(path)-1] {
		nested, ok := obj[key].(map[string]interface{})
		if !ok {
			return nil, false
		}
		obj = nested
	}

	value, found := obj[path[len(path)-1]]
	if !found {
		return nil, false
	}

	list, ok := value.([]interface{})
	if !ok {
		return nil, value != nil
	}
	return list, true
}

// cutPath returns a copy of obj without the leaf key of path.
func cutPath(obj map[string]interface{}, path []string) map[string]interface{} {
	if obj == nil {
		return nil
	}

	out := make(map[string]interface{}, len(obj))
	for key, value := range obj {
		out[key] = value
	}

	key := path[0]
	if len(path) == 1 {
		delete(out, key)
		return out
	}

	if nested, ok := out[key].(map[string]interface{}); ok {
		out[key] = cutPath(nested, path[1:])
	}

	return out
}

// setPath stores value at the dotted path, creating intermediate objects
// as needed.
func setPath(obj map[string]interface{}, path []string, value interface{}) {
	for _, key := range path[:len(path)-1] {
		nested, ok := obj[key].(map[string]interface{})
		if !ok {
			nested = map[string]interface{}{}
			obj[key] = nested
		}
		obj = nested
	}
	obj[path[len(path)-1]] = value
}
