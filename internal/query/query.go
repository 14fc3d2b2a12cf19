// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ns1ctl/ns1ctl/internal/driller"
)

// Evaluate answers a single console query against the resource tree and
// returns the rendered result.
//
// Three query modes are supported:
//   - /expr or anything with balanced parens: HCL expression evaluation
//   - .path: dotted-path extraction rendered as indented JSON
//   - path: dotted-path extraction rendered as a scalar (JSON for
//     composites)
//
// A bare "." dumps the whole resource, "keys" lists its top-level keys.
func Evaluate(data map[string]interface{}, q string) string {
	q = strings.TrimSpace(q)

	// Function evaluation mode.
	if strings.HasPrefix(q, "/") {
		return evaluateExpression(strings.TrimPrefix(q, "/"), data)
	}
	if hasBalancedParens(q) {
		return evaluateExpression(q, data)
	}

	jsonMode := strings.HasPrefix(q, ".")
	q = strings.TrimPrefix(q, ".")

	if q == "" {
		return renderJSON(data)
	}

	if q == "keys" {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return strings.Join(keys, "\n")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("Error encoding resource: %s", err)
	}

	result := driller.Driller(string(raw), q)
	if !result.Exists() {
		return "No results found."
	}

	if jsonMode {
		return renderJSON(result.Value())
	}
	return formatValue(result.Value())
}

// hasBalancedParens checks if a string has balanced parentheses
func hasBalancedParens(s string) bool {
	openCount := 0
	closeCount := 0

	for _, char := range s {
		switch char {
		case '(':
			openCount++
		case ')':
			closeCount++
		}
	}

	// Must have at least one pair of parens and they must be balanced
	return openCount > 0 && openCount == closeCount
}

// formatValue formats an extracted value for plain string output.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return "null"
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		if jsonBytes, err := json.Marshal(v); err == nil {
			return string(jsonBytes)
		}
		return fmt.Sprintf("%v", v)
	}
}

// renderJSON outputs data as formatted JSON.
func renderJSON(data interface{}) string {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error formatting JSON: %s", err)
	}
	return string(jsonBytes)
}
