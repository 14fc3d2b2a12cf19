// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ns1ctl/ns1ctl/internal/config"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{
			name:     "no version flag",
			args:     []string{"ns1ctl", "zone", "list"},
			expected: false,
		},
		{
			name:     "long flag",
			args:     []string{"ns1ctl", "--version"},
			expected: true,
		},
		{
			name:     "short flag",
			args:     []string{"ns1ctl", "-v"},
			expected: true,
		},
		{
			name:     "flag after command",
			args:     []string{"ns1ctl", "zone", "--version"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.expected {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command appends help",
			args:     []string{"ns1ctl"},
			expected: []string{"ns1ctl", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"ns1ctl", "zone", "list"},
			expected: []string{"ns1ctl", "zone", "list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestProcessCommandArgsCompletionShortCircuit(t *testing.T) {
	args := []string{"ns1ctl", "completion", "bash"}
	result := processCommandArgs(args)
	if !reflect.DeepEqual(result, args) {
		t.Errorf("completion args were rewritten: got %v, want %v", result, args)
	}
}

func TestProcessSetOnlyNoSet(t *testing.T) {
	t.Setenv("NS1CTL_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	config.Config = config.Type{}

	args := []string{"ns1ctl", "zone", "list", "--titles"}
	result := processSetOnly(args)
	if !reflect.DeepEqual(result, args) {
		t.Errorf("args without @set were rewritten: got %v, want %v", result, args)
	}
}

func TestProcessSetOnlyExpandsNamedSet(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "ns1ctl.yaml")
	doc := "zone:\n  wide:\n    - \"--titles\"\n    - \"--output text\"\n"
	if err := os.WriteFile(cfg, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NS1CTL_CFG_FILE", cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	args := []string{"ns1ctl", "zone", "list", "@wide", "--color"}
	result := processSetOnly(args)
	expected := []string{"ns1ctl", "zone", "list", "--titles", "--output", "text", "--color"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("processSetOnly() = %v, want %v", result, expected)
	}
}

func TestProcessSetOnlyMissingSetIsDropped(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "ns1ctl.yaml")
	if err := os.WriteFile(cfg, []byte("zone: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NS1CTL_CFG_FILE", cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	args := []string{"ns1ctl", "zone", "list", "@nosuch"}
	result := processSetOnly(args)
	expected := []string{"ns1ctl", "zone", "list"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("processSetOnly() = %v, want %v", result, expected)
	}
}
