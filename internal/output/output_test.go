// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/ns1ctl/ns1ctl/internal/attrs"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"zone": "zebra.net", "ttl": 600.0, "pool": "p01"},
		{"zone": "alpha.com", "ttl": 60.0, "pool": "p03"},
		{"zone": "beta.org", "ttl": 300.0, "pool": "p02"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by zone",
			spec:      "zone",
			wantOrder: []string{"alpha.com", "beta.org", "zebra.net"},
		},
		{
			name:      "descending by zone",
			spec:      "-zone",
			wantOrder: []string{"zebra.net", "beta.org", "alpha.com"},
		},
		{
			name:      "ascending by ttl",
			spec:      "ttl",
			wantOrder: []string{"alpha.com", "beta.org", "zebra.net"},
		},
		{
			name:      "descending by ttl",
			spec:      "-ttl",
			wantOrder: []string{"zebra.net", "beta.org", "alpha.com"},
		},
		{
			name:      "case sensitive",
			spec:      "!zone",
			wantOrder: []string{"alpha.com", "beta.org", "zebra.net"},
		},
		{
			name:      "multiple fields",
			spec:      "ttl,zone",
			wantOrder: []string{"alpha.com", "beta.org", "zebra.net"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"zebra.net", "alpha.com", "beta.org"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedZone := range tt.wantOrder {
				assert.Equal(t, expectedZone, data[i]["zone"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "example.com",
			want:  "example.com",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float64",
			value: 42.5,
			want:  "42",
		},
		{
			name:  "float64 with decimal",
			value: 42.7,
			want:  "43",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false is zero value",
			value: false,
			want:  "",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:  "zero value int",
			value: 0,
			want:  "",
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "N/A",
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	// This test verifies that getColors returns color.Color values.
	header, even, odd := getColors("colors")

	// Should return non-nil color.Color values.
	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}

// newTestCommand builds a cli.Command with the output-related flags that
// SliceDiceSpit and TableWriter read.
func newTestCommand(output string) *cli.Command {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: output},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort"},
			&cli.BoolFlag{Name: "local"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "titles", Value: true},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
	}
	cmd.Metadata = make(map[string]interface{})
	return cmd
}

func TestSliceDiceSpit_Raw(t *testing.T) {
	raw := *bytes.NewBufferString(`[{"zone":"example.com"}]`)
	var out bytes.Buffer

	SliceDiceSpit(raw, attrs.AttrList{}, newTestCommand("raw"), "", &out, nil)

	assert.Equal(t, `[{"zone":"example.com"}]`, out.String())
}

func TestSliceDiceSpit_JSON(t *testing.T) {
	raw := *bytes.NewBufferString(`[
		{"zone": "example.com", "ttl": 3600},
		{"zone": "example.net", "ttl": 300}
	]`)

	attrList := attrs.AttrList{
		{Key: "zone", OutputKey: "zone", Include: true},
		{Key: "ttl", OutputKey: "ttl", Include: true},
	}

	var out bytes.Buffer
	SliceDiceSpit(raw, attrList, newTestCommand("json"), "", &out, nil)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "example.com", rows[0]["zone"])
	assert.Equal(t, float64(3600), rows[0]["ttl"])
}

func TestSliceDiceSpit_Parent(t *testing.T) {
	raw := *bytes.NewBufferString(`{"zones": [{"zone": "example.com"}]}`)

	attrList := attrs.AttrList{
		{Key: "zone", OutputKey: "zone", Include: true},
	}

	var out bytes.Buffer
	SliceDiceSpit(raw, attrList, newTestCommand("json"), "zones", &out, nil)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "example.com", rows[0]["zone"])
}

func TestSliceDiceSpit_Table(t *testing.T) {
	raw := *bytes.NewBufferString(`[
		{"zone": "example.com", "ttl": 3600},
		{"zone": "example.net", "ttl": 300}
	]`)

	attrList := attrs.AttrList{
		{Key: "zone", OutputKey: "zone", Include: true},
		{Key: "ttl", OutputKey: "ttl", Include: true},
	}

	var out bytes.Buffer
	SliceDiceSpit(raw, attrList, newTestCommand("text"), "", &out, nil)

	assert.Contains(t, out.String(), "example.com")
	assert.Contains(t, out.String(), "3600")
	assert.Contains(t, out.String(), "zone")
}

func TestTableWriter(t *testing.T) {
	tests := []struct {
		name      string
		resultSet []map[string]interface{}
		attrs     attrs.AttrList
		wantEmpty bool
		contains  []string
		excludes  []string
	}{
		{
			name:      "empty result set returns early",
			resultSet: []map[string]interface{}{},
			attrs:     attrs.AttrList{},
			wantEmpty: true,
		},
		{
			name: "single row renders data",
			resultSet: []map[string]interface{}{
				{"zone": "example.com", "ttl": 3600.0},
			},
			attrs: attrs.AttrList{
				{OutputKey: "zone", Include: true},
				{OutputKey: "ttl", Include: true},
			},
			contains: []string{"example.com", "3600"},
		},
		{
			name: "respects include flag filtering",
			resultSet: []map[string]interface{}{
				{"zone": "example.com", "link": "hidden.example.com"},
			},
			attrs: attrs.AttrList{
				{OutputKey: "zone", Include: true},
				{OutputKey: "link", Include: false},
			},
			contains: []string{"example.com"},
			excludes: []string{"hidden.example.com"},
		},
		{
			name: "missing values render placeholder",
			resultSet: []map[string]interface{}{
				{"zone": "example.com"},
			},
			attrs: attrs.AttrList{
				{OutputKey: "zone", Include: true},
				{OutputKey: "ttl", Include: true},
			},
			contains: []string{"example.com", "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			TableWriter(tt.resultSet, tt.attrs, newTestCommand("text"), &out)

			if tt.wantEmpty {
				assert.Empty(t, out.String())
				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, out.String(), not)
			}
		})
	}
}

func TestTableWriter_HeaderFooter(t *testing.T) {
	cmd := newTestCommand("text")
	cmd.Metadata["header"] = "ZONES"
	cmd.Metadata["footer"] = "2 rows"

	var out bytes.Buffer
	TableWriter([]map[string]interface{}{{"zone": "example.com"}},
		attrs.AttrList{{OutputKey: "zone", Include: true}}, cmd, &out)

	assert.Contains(t, out.String(), "ZONES")
	assert.Contains(t, out.String(), "2 rows")
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"zone": "zebra.net", "ttl": 600.0},
		{"zone": "alpha.com", "ttl": 60.0},
		{"zone": "beta.org", "ttl": 300.0},
	}

	spec := "zone"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, spec)
	}
}

func BenchmarkInterfaceToString(b *testing.B) {
	values := []interface{}{
		"example.com",
		42,
		42.5,
		true,
		nil,
		[]string{"a", "b"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			InterfaceToString(v)
		}
	}
}
