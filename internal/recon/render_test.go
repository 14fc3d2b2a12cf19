// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDelta(t *testing.T) {
	result := Result{
		Before: map[string]interface{}{"zone": "example.com", "nx_ttl": 1},
		After:  map[string]interface{}{"zone": "example.com", "nx_ttl": 2},
	}

	out, err := RenderDelta(result, false)
	require.NoError(t, err)
	assert.Contains(t, out, "nx_ttl")
	assert.Contains(t, out, "2")
}

func TestRenderDeltaIdentical(t *testing.T) {
	state := map[string]interface{}{"zone": "example.com"}

	out, err := RenderDelta(Result{Before: state, After: state}, false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBeforeAfterYAML(t *testing.T) {
	result := Result{
		Before: map[string]interface{}{"nx_ttl": 1},
		After:  map[string]interface{}{"nx_ttl": 2},
	}

	before, after, err := BeforeAfterYAML(result)
	require.NoError(t, err)
	assert.Equal(t, "nx_ttl: 1\n", before)
	assert.Equal(t, "nx_ttl: 2\n", after)
}
