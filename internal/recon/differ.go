// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recon

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"
)

// Sanitize returns a copy of obj with every key named in strip removed, at
// every nesting level. The input is never modified.
func Sanitize(obj map[string]interface{}, strip []string) map[string]interface{} {
	if obj == nil {
		return nil
	}

	clean := make(map[string]interface{}, len(obj))
	for key, value := range obj {
		if slices.Contains(strip, key) {
			continue
		}
		clean[key] = sanitizeValue(value, strip)
	}

	return clean
}

func sanitizeValue(value interface{}, strip []string) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return Sanitize(v, strip)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = sanitizeValue(item, strip)
		}
		return out
	default:
		return value
	}
}

// PruneNulls returns a copy of obj with every nil-valued key removed, at
// every nesting level. A nested object left empty by the pruning is removed
// with it. Declared parameters left unset decode as nulls and must never
// force a change, so the desired side is pruned before any comparison. The
// remote side is never pruned; a null the server actually returned is a
// real value.
func PruneNulls(obj map[string]interface{}) map[string]interface{} {
	if obj == nil {
		return nil
	}

	clean := make(map[string]interface{}, len(obj))
	for key, value := range obj {
		if value == nil {
			continue
		}
		if nested, ok := value.(map[string]interface{}); ok {
			pruned := PruneNulls(nested)
			if len(pruned) == 0 {
				continue
			}
			clean[key] = pruned
			continue
		}
		clean[key] = value
	}

	return clean
}

// Diff computes the fields of want that differ from have. Fields named in
// setFields are list-valued and compared as unordered collections. Nested
// objects are diffed recursively and contribute a partial sub-tree holding
// only their changed keys. Fields present in have but absent from want are
// never considered.
//
// Keys are visited in sorted order so the delta renders deterministically.
// The returned tree shares no structure with either input. An empty result
// means no change is required.
func Diff(have, want map[string]interface{}, setFields []string) map[string]interface{} {
	delta := map[string]interface{}{}

	keys := make([]string, 0, len(want))
	for key := range want {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		wantValue := want[key]

		haveValue, found := have[key]
		if !found {
			delta[key] = wantValue
			continue
		}

		if wantNested, ok := wantValue.(map[string]interface{}); ok {
			haveNested, ok := haveValue.(map[string]interface{})
			if !ok {
				// Shape divergence reads as absent. The apply layer owns
				// rejecting or coercing it.
				delta[key] = wantValue
				continue
			}
			if sub := Diff(haveNested, wantNested, setFields); len(sub) > 0 {
				delta[key] = sub
			}
			continue
		}

		if slices.Contains(setFields, key) {
			wantList, wantOK := wantValue.([]interface{})
			haveList, haveOK := haveValue.([]interface{})
			if wantOK && haveOK {
				if !sameSet(haveList, wantList) {
					delta[key] = wantValue
				}
				continue
			}
		}

		if !equalValues(haveValue, wantValue) {
			delta[key] = wantValue
		}
	}

	return delta
}

// SecondariesDiffer reports whether two peer-server lists differ, ignoring
// list order. Entries are keyed by their (ip, port) pair; an entry missing
// either key is an error because its identity is undefined. A nil want
// means the caller declared nothing and is never a difference.
func SecondariesDiffer(have, want []interface{}, setFields []string) (bool, error) {
	if want == nil {
		return false, nil
	}
	if have == nil {
		return true, nil
	}
	if len(have) != len(want) {
		return true, nil
	}

	haveByPeer, err := keyByPeer(have)
	if err != nil {
		return false, err
	}
	wantByPeer, err := keyByPeer(want)
	if err != nil {
		return false, err
	}

	return len(Diff(haveByPeer, wantByPeer, setFields)) > 0, nil
}

// keyByPeer converts a peer-server list into a map keyed by each entry's
// (ip, port) identity.
func keyByPeer(servers []interface{}) (map[string]interface{}, error) {
	keyed := make(map[string]interface{}, len(servers))

	for i, entry := range servers {
		server, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("secondary server %d is not an object: %v", i, entry)
		}

		ip, ok := server["ip"]
		if !ok || ip == nil {
			return nil, fmt.Errorf("secondary server %d has no ip: %v", i, server)
		}
		port, ok := server["port"]
		if !ok || port == nil {
			return nil, fmt.Errorf("secondary server %d has no port: %v", i, server)
		}

		keyed[encodeValue(ip)+"|"+encodeValue(port)] = server
	}

	return keyed, nil
}

// sameSet compares two lists as sets, ignoring order and duplicates.
// Elements may be scalars or objects; each is reduced to its canonical
// JSON encoding for membership.
func sameSet(a, b []interface{}) bool {
	return encodeSet(a) == encodeSet(b)
}

func encodeSet(list []interface{}) string {
	members := make([]string, 0, len(list))
	for _, item := range list {
		members = append(members, encodeValue(item))
	}
	sort.Strings(members)
	members = slices.Compact(members)

	out, _ := json.Marshal(members)
	return string(out)
}

// equalValues compares two decoded values through their canonical JSON
// encoding, so an int from YAML and a float64 from JSON carrying the same
// number compare equal.
func equalValues(a, b interface{}) bool {
	aj, aerr := json.Marshal(a)
	bj, berr := json.Marshal(b)
	if aerr != nil || berr != nil {
		return reflect.DeepEqual(a, b)
	}
	return string(aj) == string(bj)
}

// encodeValue returns the canonical JSON encoding of a decoded value.
func encodeValue(value interface{}) string {
	out, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(out)
}
