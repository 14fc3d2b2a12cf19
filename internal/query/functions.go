// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// evaluateExpression evaluates an HCL expression against the resource tree.
// The resource's top-level keys are exposed as variables, and the whole
// document is available as "resource". HCL's native index syntax covers
// paths like answers[0].answer.
func evaluateExpression(expression string, data map[string]interface{}) string {
	ctx := &hcl.EvalContext{
		Variables: buildVariableMap(data),
		Functions: buildFunctionMap(),
	}

	expr, diags := hclsyntax.ParseExpression([]byte(expression), "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return fmt.Sprintf("Error parsing expression: %s", diags.Error())
	}

	result, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return fmt.Sprintf("Error evaluating expression: %s", diags.Error())
	}

	return formatCtyValue(result)
}

// buildFunctionMap dynamically builds the function map
// While we can't use full reflection on package exports in Go,
// we can at least make this more maintainable and systematic
func buildFunctionMap() map[string]function.Function {
	funcs := make(map[string]function.Function)

	// Define all stdlib functions in a systematic way
	// This approach makes it easy to add new functions when they become available
	stdlibFunctions := map[string]function.Function{
		// Arithmetic functions
		"abs":    stdlib.AbsoluteFunc,
		"ceil":   stdlib.CeilFunc,
		"floor":  stdlib.FloorFunc,
		"log":    stdlib.LogFunc,
		"max":    stdlib.MaxFunc,
		"min":    stdlib.MinFunc,
		"pow":    stdlib.PowFunc,
		"signum": stdlib.SignumFunc,

		// String functions
		"chomp":      stdlib.ChompFunc,
		"format":     stdlib.FormatFunc,
		"indent":     stdlib.IndentFunc,
		"join":       stdlib.JoinFunc,
		"lower":      stdlib.LowerFunc,
		"replace":    stdlib.ReplaceFunc,
		"split":      stdlib.SplitFunc,
		"substr":     stdlib.SubstrFunc,
		"title":      stdlib.TitleFunc,
		"trim":       stdlib.TrimFunc,
		"trimprefix": stdlib.TrimPrefixFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"trimsuffix": stdlib.TrimSuffixFunc,
		"upper":      stdlib.UpperFunc,

		// Collection functions
		"chunklist":       stdlib.ChunklistFunc,
		"coalesce":        stdlib.CoalesceFunc,
		"coalescelist":    stdlib.CoalesceListFunc,
		"compact":         stdlib.CompactFunc,
		"concat":          stdlib.ConcatFunc,
		"contains":        stdlib.ContainsFunc,
		"distinct":        stdlib.DistinctFunc,
		"element":         stdlib.ElementFunc,
		"flatten":         stdlib.FlattenFunc,
		"index":           stdlib.IndexFunc,
		"keys":            stdlib.KeysFunc,
		"length":          stdlib.LengthFunc,
		"lookup":          stdlib.LookupFunc,
		"merge":           stdlib.MergeFunc,
		"reverse":         stdlib.ReverseFunc,
		"reverselist":     stdlib.ReverseListFunc,
		"setintersection": stdlib.SetIntersectionFunc,
		"setproduct":      stdlib.SetProductFunc,
		"setsubtract":     stdlib.SetSubtractFunc,
		"setunion":        stdlib.SetUnionFunc,
		"slice":           stdlib.SliceFunc,
		"sort":            stdlib.SortFunc,
		"values":          stdlib.ValuesFunc,
		"zipmap":          stdlib.ZipmapFunc,

		// Data functions
		"csvdecode":  stdlib.CSVDecodeFunc,
		"jsondecode": stdlib.JSONDecodeFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"formatdate": stdlib.FormatDateFunc,
		"formatlist": stdlib.FormatListFunc,
		"parseint":   stdlib.ParseIntFunc,
		"range":      stdlib.RangeFunc,
		"timeadd":    stdlib.TimeAddFunc,

		// Pattern functions
		"regex":    stdlib.RegexFunc,
		"regexall": stdlib.RegexAllFunc,
	}

	// Add all functions to the map
	for name, fn := range stdlibFunctions {
		funcs[name] = fn
	}

	// Add HCL extension functions
	funcs["try"] = tryfunc.TryFunc
	funcs["can"] = tryfunc.CanFunc

	return funcs
}

// buildVariableMap converts the resource tree to cty values for HCL
// evaluation.
func buildVariableMap(data map[string]interface{}) map[string]cty.Value {
	vars := make(map[string]cty.Value)

	if data != nil {
		vars["resource"] = convertToCtyValue(data)

		// Also expose top-level keys directly
		for key, value := range data {
			vars[key] = convertToCtyValue(value)
		}
	}

	return vars
}

// convertToCtyValue converts Go values to cty values
func convertToCtyValue(val interface{}) cty.Value {
	switch v := val.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case bool:
		return cty.BoolVal(v)
	case int:
		return cty.NumberIntVal(int64(v))
	case int64:
		return cty.NumberIntVal(v)
	case float64:
		return cty.NumberFloatVal(v)
	case string:
		return cty.StringVal(v)
	case []interface{}:
		vals := make([]cty.Value, len(v))
		for i, item := range v {
			vals[i] = convertToCtyValue(item)
		}
		return cty.TupleVal(vals)
	case map[string]interface{}:
		vals := make(map[string]cty.Value)
		for key, item := range v {
			vals[key] = convertToCtyValue(item)
		}
		return cty.ObjectVal(vals)
	default:
		// Fallback to string representation
		return cty.StringVal(fmt.Sprintf("%v", v))
	}
}

// formatCtyValue converts a cty value back to a string for display
func formatCtyValue(val cty.Value) string {
	if val.IsNull() {
		return "null"
	}

	switch val.Type() {
	case cty.Bool:
		return fmt.Sprintf("%t", val.True())
	case cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return fmt.Sprintf("%d", i)
		}
		f, _ := bf.Float64()
		return fmt.Sprintf("%g", f)
	case cty.String:
		return val.AsString()
	default:
		// For complex types, convert to JSON
		goVal := ctyValueToGo(val)
		if jsonBytes, err := json.Marshal(goVal); err == nil {
			return string(jsonBytes)
		}
		return fmt.Sprintf("%#v", goVal)
	}
}

// ctyValueToGo converts cty values to Go values
func ctyValueToGo(val cty.Value) interface{} {
	if val.IsNull() {
		return nil
	}

	switch {
	case val.Type() == cty.Bool:
		return val.True()
	case val.Type() == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return i
		}
		f, _ := bf.Float64()
		return f
	case val.Type() == cty.String:
		return val.AsString()
	case val.Type().IsTupleType(), val.Type().IsListType(), val.Type().IsSetType():
		var result []interface{}
		for it := val.ElementIterator(); it.Next(); {
			_, elemVal := it.Element()
			result = append(result, ctyValueToGo(elemVal))
		}
		return result
	case val.Type().IsObjectType(), val.Type().IsMapType():
		result := make(map[string]interface{})
		for it := val.ElementIterator(); it.Next(); {
			keyVal, elemVal := it.Element()
			key := keyVal.AsString()
			result[key] = ctyValueToGo(elemVal)
		}
		return result
	default:
		return fmt.Sprintf("%#v", val)
	}
}
