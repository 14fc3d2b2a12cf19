// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	raw := map[string]interface{}{
		"id":     "abc123",
		"zone":   "example.com",
		"ttl":    3600,
		"s_tags": map[string]interface{}{"id": "inner", "env": "prod"},
		"answers": []interface{}{
			map[string]interface{}{"id": "ans1", "answer": []interface{}{"1.1.1.1"}},
		},
	}

	clean := Sanitize(raw, []string{"id"})

	expected := map[string]interface{}{
		"zone":   "example.com",
		"ttl":    3600,
		"s_tags": map[string]interface{}{"env": "prod"},
		"answers": []interface{}{
			map[string]interface{}{"answer": []interface{}{"1.1.1.1"}},
		},
	}
	assert.Equal(t, expected, clean)

	// The input tree is never modified.
	assert.Equal(t, "abc123", raw["id"])
	assert.Equal(t, "inner", raw["s_tags"].(map[string]interface{})["id"])
}

func TestSanitizeNil(t *testing.T) {
	assert.Nil(t, Sanitize(nil, []string{"id"}))
}

func TestPruneNulls(t *testing.T) {
	declared := map[string]interface{}{
		"zone":    "example.com",
		"refresh": nil,
		"secondary": map[string]interface{}{
			"enabled":     true,
			"primary_ip":  nil,
			"primary_port": nil,
		},
	}

	pruned := PruneNulls(declared)

	expected := map[string]interface{}{
		"zone": "example.com",
		"secondary": map[string]interface{}{
			"enabled": true,
		},
	}
	assert.Equal(t, expected, pruned)
}

func TestPruneNullsDropsAllNilSubObject(t *testing.T) {
	declared := map[string]interface{}{
		"zone": "example.com",
		"secondary": map[string]interface{}{
			"primary_ip":   nil,
			"primary_port": nil,
		},
	}

	pruned := PruneNulls(declared)

	assert.Equal(t, map[string]interface{}{"zone": "example.com"}, pruned)

	// A sub-object holding nothing but nulls must not read as drift
	// against a remote that has no such key.
	remote := map[string]interface{}{"zone": "example.com"}
	assert.Empty(t, Diff(remote, pruned, nil))
}

func TestDiff(t *testing.T) {
	setFields := []string{"networks"}

	tests := []struct {
		name     string
		have     map[string]interface{}
		want     map[string]interface{}
		expected map[string]interface{}
	}{
		{
			name:     "missing param",
			have:     map[string]interface{}{},
			want:     map[string]interface{}{"nx_ttl": 1},
			expected: map[string]interface{}{"nx_ttl": 1},
		},
		{
			name:     "missing set param",
			have:     map[string]interface{}{},
			want:     map[string]interface{}{"networks": []interface{}{1, 2, 3}},
			expected: map[string]interface{}{"networks": []interface{}{1, 2, 3}},
		},
		{
			name: "missing dict param",
			have: map[string]interface{}{},
			want: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
			expected: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
		},
		{
			name:     "updated param",
			have:     map[string]interface{}{"nx_ttl": 1},
			want:     map[string]interface{}{"nx_ttl": 2},
			expected: map[string]interface{}{"nx_ttl": 2},
		},
		{
			name:     "updated set param",
			have:     map[string]interface{}{"networks": []interface{}{1, 2, 3}},
			want:     map[string]interface{}{"networks": []interface{}{3, 4, 5}},
			expected: map[string]interface{}{"networks": []interface{}{3, 4, 5}},
		},
		{
			name: "updated dict param",
			have: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": false},
			},
			want: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
			expected: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
		},
		{
			name: "updated nested dict param yields partial subtree",
			have: map[string]interface{}{
				"secondary": map[string]interface{}{
					"enabled":    true,
					"primary_ip": "1.1.1.1",
				},
			},
			want: map[string]interface{}{
				"secondary": map[string]interface{}{
					"enabled":    true,
					"primary_ip": "2.2.2.2",
				},
			},
			expected: map[string]interface{}{
				"secondary": map[string]interface{}{"primary_ip": "2.2.2.2"},
			},
		},
		{
			name:     "removed set param",
			have:     map[string]interface{}{"networks": []interface{}{1, 2, 3}},
			want:     map[string]interface{}{"networks": []interface{}{}},
			expected: map[string]interface{}{"networks": []interface{}{}},
		},
		{
			name:     "no diff param",
			have:     map[string]interface{}{"nx_ttl": 1},
			want:     map[string]interface{}{"nx_ttl": 1},
			expected: map[string]interface{}{},
		},
		{
			name:     "set param order is ignored",
			have:     map[string]interface{}{"networks": []interface{}{1, 2, 3}},
			want:     map[string]interface{}{"networks": []interface{}{3, 2, 1}},
			expected: map[string]interface{}{},
		},
		{
			name: "extra remote sub-fields are ignored",
			have: map[string]interface{}{
				"secondary": map[string]interface{}{
					"enabled":    true,
					"primary_ip": "1.1.1.1",
				},
			},
			want: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
			expected: map[string]interface{}{},
		},
		{
			name: "extra remote fields are ignored",
			have: map[string]interface{}{"nx_ttl": 1, "refresh": 900},
			want: map[string]interface{}{"nx_ttl": 1},
			expected: map[string]interface{}{},
		},
		{
			name: "shape divergence reads as absent",
			have: map[string]interface{}{"secondary": "yes"},
			want: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
			expected: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
		},
		{
			name: "new nested dict with existing dict sub-field",
			have: map[string]interface{}{
				"secondary": map[string]interface{}{"enabled": true},
			},
			want: map[string]interface{}{
				"secondary": map[string]interface{}{
					"enabled":      true,
					"primary_port": 0,
				},
			},
			expected: map[string]interface{}{
				"secondary": map[string]interface{}{"primary_port": 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.have, tt.want, setFields)
			assert.Equal(t, tt.expected, got)

			// Same inputs, same output.
			assert.Equal(t, got, Diff(tt.have, tt.want, setFields))
		})
	}
}

func TestDiffNumericEncodings(t *testing.T) {
	// A YAML-decoded int and a JSON-decoded float carrying the same number
	// must not read as drift.
	have := map[string]interface{}{"ttl": float64(3600)}
	want := map[string]interface{}{"ttl": 3600}

	assert.Empty(t, Diff(have, want, nil))
}

func TestDiffIdempotence(t *testing.T) {
	state := map[string]interface{}{
		"zone":     "example.com",
		"nx_ttl":   1,
		"networks": []interface{}{1, 2, 3},
		"secondary": map[string]interface{}{
			"enabled":    true,
			"primary_ip": "1.1.1.1",
		},
	}

	assert.Empty(t, Diff(state, Sanitize(state, nil), []string{"networks"}))
}

func TestDiffAbsenceIsSilence(t *testing.T) {
	want := PruneNulls(map[string]interface{}{"nx_ttl": nil})
	assert.Empty(t, Diff(map[string]interface{}{}, want, nil))
}

func secondary(ip string, port int, extra map[string]interface{}) map[string]interface{} {
	server := map[string]interface{}{"ip": ip, "port": port}
	for key, value := range extra {
		server[key] = value
	}
	return server
}

func TestSecondariesDiffer(t *testing.T) {
	setFields := []string{"networks"}

	tests := []struct {
		name     string
		have     []interface{}
		want     []interface{}
		expected bool
	}{
		{
			name:     "undeclared want is never a difference",
			have:     []interface{}{secondary("1.1.1.1", 53, nil)},
			want:     nil,
			expected: false,
		},
		{
			name:     "first-time configuration",
			have:     nil,
			want:     []interface{}{secondary("1.1.1.1", 53, nil)},
			expected: true,
		},
		{
			name: "order is ignored",
			have: []interface{}{
				secondary("1.1.1.1", 53, nil),
				secondary("2.2.2.2", 53, nil),
			},
			want: []interface{}{
				secondary("2.2.2.2", 53, nil),
				secondary("1.1.1.1", 53, nil),
			},
			expected: false,
		},
		{
			name: "network order is ignored",
			have: []interface{}{
				secondary("1.1.1.1", 53, map[string]interface{}{
					"networks": []interface{}{1, 2, 3},
				}),
			},
			want: []interface{}{
				secondary("1.1.1.1", 53, map[string]interface{}{
					"networks": []interface{}{3, 2, 1},
				}),
			},
			expected: false,
		},
		{
			name: "extra key in have is ignored",
			have: []interface{}{
				secondary("1.1.1.1", 53, map[string]interface{}{"notify": true}),
			},
			want:     []interface{}{secondary("1.1.1.1", 53, nil)},
			expected: false,
		},
		{
			name: "removed secondary",
			have: []interface{}{
				secondary("1.1.1.1", 53, nil),
				secondary("2.2.2.2", 53, nil),
			},
			want:     []interface{}{secondary("1.1.1.1", 53, nil)},
			expected: true,
		},
		{
			name: "added secondary",
			have: []interface{}{secondary("1.1.1.1", 53, nil)},
			want: []interface{}{
				secondary("1.1.1.1", 53, nil),
				secondary("2.2.2.2", 53, nil),
			},
			expected: true,
		},
		{
			name: "updated peer setting",
			have: []interface{}{
				secondary("1.1.1.1", 53, map[string]interface{}{"notify": false}),
			},
			want: []interface{}{
				secondary("1.1.1.1", 53, map[string]interface{}{"notify": true}),
			},
			expected: true,
		},
		{
			name:     "same peer on a different port",
			have:     []interface{}{secondary("1.1.1.1", 53, nil)},
			want:     []interface{}{secondary("1.1.1.1", 5353, nil)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SecondariesDiffer(tt.have, tt.want, setFields)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSecondariesDifferMissingIdentity(t *testing.T) {
	valid := []interface{}{secondary("1.1.1.1", 53, nil)}

	_, err := SecondariesDiffer(valid, []interface{}{
		map[string]interface{}{"port": 53},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ip")

	_, err = SecondariesDiffer(valid, []interface{}{
		map[string]interface{}{"ip": "1.1.1.1"},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no port")

	_, err = SecondariesDiffer(valid, []interface{}{"1.1.1.1:53"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an object")
}
