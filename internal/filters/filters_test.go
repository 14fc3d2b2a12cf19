// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/ns1ctl/ns1ctl/internal/attrs"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildFiltersCase represents a single test case for TestBuildFilters.
type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

// testCheckStringOperandCase represents a single test case for
// TestCheckStringOperand.
type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// testCheckNumericOperandCase represents a single test case for
// TestCheckNumericOperand.
type testCheckNumericOperandCase struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Filter Filter  `yaml:"filter"`
	Want   bool    `yaml:"want"`
}

// testCheckContainsOperandCase represents a single test case for
// TestCheckContainsOperand.
type testCheckContainsOperandCase struct {
	Name   string      `yaml:"name"`
	Value  interface{} `yaml:"value"`
	Filter Filter      `yaml:"filter"`
	Want   bool        `yaml:"want"`
}

// testToFloat64Case represents a single test case for TestToFloat64.
type testToFloat64Case struct {
	Name   string      `yaml:"name"`
	Value  interface{} `yaml:"value"`
	Want   float64     `yaml:"want"`
	WantOk bool        `yaml:"wantOk"`
}

// testApplyFiltersCase represents a single test case for TestApplyFilters.
type testApplyFiltersCase struct {
	Name    string   `yaml:"name"`
	Filters []Filter `yaml:"filters"`
	Want    bool     `yaml:"want"`
}

// testFilterDatasetCase represents a single test case for TestFilterDataset.
type testFilterDatasetCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	WantCount int      `yaml:"wantCount"`
	WantZones []string `yaml:"wantZones"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("filters_test_build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("NS1CTL_FILTER_DELIM", tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			assert.Len(t, got, tt.WantCount)
			if tt.Want != nil {
				for i, filter := range tt.Want {
					assert.Equal(t, filter.Key, got[i].Key)
					assert.Equal(t, filter.Operand, got[i].Operand)
					assert.Equal(t, filter.Value, got[i].Value)
					assert.Equal(t, filter.Negate, got[i].Negate)
				}
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("filters_test_check_string_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := checkStringOperand(tt.Value, tt.Filter)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	var tests []testCheckNumericOperandCase
	require.NoError(t, loadTestData("filters_test_check_numeric_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := checkNumericOperand(tt.Value, tt.Filter)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestCheckContainsOperand(t *testing.T) {
	var tests []testCheckContainsOperandCase
	require.NoError(t, loadTestData("filters_test_check_contains_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := checkContainsOperand(tt.Value, tt.Filter)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestToFloat64(t *testing.T) {
	var tests []testToFloat64Case
	require.NoError(t, loadTestData("filters_test_to_float64.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got, ok := toFloat64(tt.Value)
			assert.Equal(t, tt.WantOk, ok)
			if ok {
				assert.Equal(t, tt.Want, got)
			}
		})
	}
}

func TestApplyFilters(t *testing.T) {
	var tests []testApplyFiltersCase
	require.NoError(t, loadTestData("filters_test_apply_filters.yaml", &tests))

	testData := `
	{
		"zone": "example.com",
		"ttl": 3600,
		"nx_ttl": 60,
		"dns_servers": ["dns1.p01.nsone.net", "dns2.p01.nsone.net"],
		"primary": {"enabled": true},
		"link": null,
		"networks": [0, 1]
	}
	`

	attrList := attrs.AttrList{
		{Key: "zone", OutputKey: "zone", Include: true},
		{Key: "ttl", OutputKey: "ttl", Include: true},
		{Key: "nx_ttl", OutputKey: "nx_ttl", Include: true},
		{Key: "dns_servers", OutputKey: "dns_servers", Include: true},
		{Key: "link", OutputKey: "link", Include: true},
		{Key: "networks", OutputKey: "networks", Include: true},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			result := gjson.Parse(testData)
			got := applyFilters(result, attrList, tt.Filters)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestFilterDataset(t *testing.T) {
	var tests []testFilterDatasetCase
	require.NoError(t, loadTestData("filters_test_filter_dataset.yaml", &tests))

	testData := `
	[
		{
			"zone": "example.com",
			"ttl": 3600,
			"network_pools": ["p01"]
		},
		{
			"zone": "prod.example.net",
			"ttl": 300,
			"network_pools": ["p01"]
		},
		{
			"zone": "staging.example.net",
			"ttl": 300,
			"network_pools": ["p02"]
		}
	]
	`

	attrList := attrs.AttrList{
		{Key: "zone", OutputKey: "zone", Include: true},
		{Key: "ttl", OutputKey: "ttl", Include: true},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			candidates := gjson.Parse(testData)
			got := FilterDataset(candidates, attrList, tt.Spec)
			assert.Len(t, got, tt.WantCount)
			for i, expected := range tt.WantZones {
				assert.Equal(t, expected, got[i]["zone"])
			}
		})
	}
}
