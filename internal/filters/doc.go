// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides row filtering for NS1 resource listings.
//
// The package parses filter expressions to select subsets of resources based on
// attribute values. Filters are specified as key-operator-target expressions and
// can be combined using a configurable delimiter (default: comma).
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than (numeric comparison)
//   - > : greater than (numeric comparison)
//   - @ : contains substring or member (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "zone=example.com" : matches rows where zone equals "example.com"
//   - "zone^prod-" : matches rows where zone starts with "prod-"
//   - "ttl>300" : matches rows where ttl is greater than 300
//   - "zone!@test" : matches rows where zone does not contain "test"
//   - "networks@1" : matches rows whose networks list contains 1
//
// Filter Keys and Attributes:
//
// Filter keys are matched against the OutputKey of attributes (see attrs
// package).
//
// Filter Parsing:
//
// The BuildFilters function parses a comma-delimited (or custom-delimited)
// filter specification string. Invalid specifications (unsupported operands or
// malformed expressions) are logged as warnings and skipped, allowing partial
// filter sets to be processed.
//
// Filter Application:
//
// FilterDataset filters a list of candidate rows, keeping only those that
// match all provided filter expressions. Attributes specified in the attrs
// parameter determine which fields from the row are included in the filtered
// result.
package filters
