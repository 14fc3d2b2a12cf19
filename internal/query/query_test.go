// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZone() map[string]interface{} {
	return map[string]interface{}{
		"zone":   "example.com",
		"ttl":    float64(3600),
		"nx_ttl": float64(60),
		"primary": map[string]interface{}{
			"enabled": true,
			"secondaries": []interface{}{
				map[string]interface{}{"ip": "10.0.0.1", "port": float64(53)},
				map[string]interface{}{"ip": "10.0.0.2", "port": float64(5353)},
			},
		},
		"dns_servers": []interface{}{"dns1.p01.nsone.net", "dns2.p01.nsone.net"},
		"link":        nil,
	}
}

func TestEvaluate_Scalar(t *testing.T) {
	assert.Equal(t, "example.com", Evaluate(testZone(), "zone"))
	assert.Equal(t, "3600", Evaluate(testZone(), "ttl"))
}

func TestEvaluate_NestedPath(t *testing.T) {
	assert.Equal(t, "true", Evaluate(testZone(), "primary.enabled"))
	assert.Equal(t, "5353", Evaluate(testZone(), "primary.secondaries[1].port"))
}

func TestEvaluate_MissingPath(t *testing.T) {
	assert.Equal(t, "No results found.", Evaluate(testZone(), "serial"))
}

func TestEvaluate_JSONMode(t *testing.T) {
	out := Evaluate(testZone(), ".primary")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["enabled"])
}

func TestEvaluate_WholeResource(t *testing.T) {
	out := Evaluate(testZone(), ".")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "example.com", got["zone"])
}

func TestEvaluate_Keys(t *testing.T) {
	out := Evaluate(testZone(), "keys")
	assert.Equal(t, "dns_servers\nlink\nnx_ttl\nprimary\nttl\nzone", out)
}

func TestEvaluate_Expression(t *testing.T) {
	assert.Equal(t, "2", Evaluate(testZone(), "/length(dns_servers)"))
	assert.Equal(t, "EXAMPLE.COM", Evaluate(testZone(), "/upper(zone)"))
	assert.Equal(t, "fallback", Evaluate(testZone(), `/coalesce(link, "fallback")`))
}

func TestEvaluate_ExpressionWithoutSlash(t *testing.T) {
	// Balanced parens imply expression mode.
	assert.Equal(t, "2", Evaluate(testZone(), "length(dns_servers)"))
}

func TestEvaluate_ExpressionIndexing(t *testing.T) {
	assert.Equal(t, "10.0.0.1", Evaluate(testZone(), "/primary.secondaries[0].ip"))
}

func TestEvaluate_ResourceVariable(t *testing.T) {
	out := Evaluate(testZone(), "/length(keys(resource))")
	assert.Equal(t, "6", out)
}

func TestEvaluate_BadExpression(t *testing.T) {
	out := Evaluate(testZone(), "/length(")
	assert.Contains(t, out, "Error parsing expression")
}

func TestEvaluate_UnknownVariable(t *testing.T) {
	out := Evaluate(testZone(), "/upper(bogus)")
	assert.Contains(t, out, "Error evaluating expression")
}

func TestHasBalancedParens(t *testing.T) {
	assert.True(t, hasBalancedParens("length(x)"))
	assert.False(t, hasBalancedParens("length(x"))
	assert.False(t, hasBalancedParens("zone"))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", formatValue(nil))
	assert.Equal(t, "x", formatValue("x"))
	assert.Equal(t, "53", formatValue(float64(53)))
	assert.Equal(t, "1.5", formatValue(1.5))
	assert.Equal(t, `["a","b"]`, formatValue([]interface{}{"a", "b"}))
}
