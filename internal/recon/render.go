// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recon

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
	yaml "gopkg.in/yaml.v2"
)

// RenderDelta formats the before/after pair of a Result as a unified,
// human-readable diff. An empty string means the trees are identical.
func RenderDelta(result Result, coloring bool) (string, error) {
	before := result.Before
	if before == nil {
		before = map[string]interface{}{}
	}
	after := result.After
	if after == nil {
		after = map[string]interface{}{}
	}

	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return "", fmt.Errorf("failed to marshal before state: %w", err)
	}
	afterJSON, err := json.Marshal(after)
	if err != nil {
		return "", fmt.Errorf("failed to marshal after state: %w", err)
	}

	delta, err := gojsondiff.New().Compare(beforeJSON, afterJSON)
	if err != nil {
		return "", fmt.Errorf("failed to compare states: %w", err)
	}

	if !delta.Modified() {
		return "", nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	out, err := formatter.NewAsciiFormatter(before, config).Format(delta)
	if err != nil {
		return "", err
	}

	return out, nil
}

// BeforeAfterYAML renders the before and after trees of a Result as two
// YAML documents, for callers that report drift rather than patch syntax.
func BeforeAfterYAML(result Result) (string, string, error) {
	before, err := yaml.Marshal(result.Before)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal before state: %w", err)
	}
	after, err := yaml.Marshal(result.After)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal after state: %w", err)
	}
	return string(before), string(after), nil
}
