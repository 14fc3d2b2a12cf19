// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Desired lifecycle states a manifest may declare.
const (
	StatePresent = "present"
	StateAbsent  = "absent"
)

// Manifest is one declared resource. A manifest file may hold any number
// of YAML documents, each one manifest.
type Manifest struct {
	Kind  string `yaml:"kind"`
	Name  string `yaml:"name"`
	State string `yaml:"state,omitempty"`

	// Zone and Type scope a record manifest; Source scopes a data feed.
	Zone   string `yaml:"zone,omitempty"`
	Type   string `yaml:"type,omitempty"`
	Source string `yaml:"source,omitempty"`

	// RecordMode selects append or purge semantics for record lists.
	RecordMode string `yaml:"record_mode,omitempty"`

	// Spec is the desired configuration tree handed to the reconciler.
	Spec map[string]interface{} `yaml:"spec"`
}

// ResourceKind resolves the manifest's kind tag.
func (m Manifest) ResourceKind() (Kind, error) {
	return ParseKind(m.Kind)
}

// Validate checks the manifest for the fields its kind requires.
func (m Manifest) Validate() error {
	kind, err := m.ResourceKind()
	if err != nil {
		return err
	}

	if m.Name == "" {
		return fmt.Errorf("%s manifest has no name", kind)
	}

	switch m.State {
	case "", StatePresent, StateAbsent:
	default:
		return fmt.Errorf("%s %s: invalid state %q", kind, m.Name, m.State)
	}

	switch kind {
	case KindRecord:
		if m.Zone == "" || m.Type == "" {
			return fmt.Errorf("record %s needs both zone and type", m.Name)
		}
		switch RecordMode(m.RecordMode) {
		case "", RecordModePurge, RecordModeAppend:
		default:
			return fmt.Errorf("record %s: invalid record_mode %q", m.Name, m.RecordMode)
		}
	case KindDataFeed:
		if m.Source == "" {
			return fmt.Errorf("datafeed %s needs a source", m.Name)
		}
	}

	return nil
}

// DesiredState returns the declared state, defaulting to present.
func (m Manifest) DesiredState() string {
	if m.State == "" {
		return StatePresent
	}
	return m.State
}

// Load reads every manifest document in the named file.
func Load(path string) ([]Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer f.Close()

	manifests, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}
	return manifests, nil
}

// Decode parses a stream of YAML manifest documents.
func Decode(r io.Reader) ([]Manifest, error) {
	decoder := yaml.NewDecoder(r)

	var manifests []Manifest
	for {
		var m Manifest
		if err := decoder.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		if err := m.Validate(); err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}

	return manifests, nil
}
