// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package response

import (
	"strings"

	"github.com/beevik/etree"
)

// DefaultRepeatable names the logical fields the TRACES schema declares as
// repeatable. They round-trip as arrays even when exactly one instance is
// present.
var DefaultRepeatable = Repeatable(
	"commodities",
	"producers",
	"speciesInfo",
	"associatedStatements",
	"identifier",
	"statementInfo",
)

// Repeatable builds a repeatable-field set from names.
func Repeatable(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// ToTree converts an element into a generic tree: leaf elements become
// their trimmed text, inner elements become map[string]any keyed by local
// name, and naturally repeated siblings become []any. Attributes and
// namespace prefixes are dropped.
func ToTree(e *etree.Element) any {
	children := e.ChildElements()
	if len(children) == 0 {
		return strings.TrimSpace(e.Text())
	}

	m := make(map[string]any, len(children))
	for _, child := range children {
		value := ToTree(child)
		switch existing := m[child.Tag].(type) {
		case nil:
			m[child.Tag] = value
		case []any:
			m[child.Tag] = append(existing, value)
		default:
			m[child.Tag] = []any{existing, value}
		}
	}
	return m
}

// NormalizeArrays recursively coerces every field named in repeatable to
// an array, including single occurrences that collapsed into a bare
// value during tree-ization. It recurses into nested structures and is
// idempotent: applying it twice equals applying it once.
func NormalizeArrays(node any, repeatable map[string]bool) any {
	switch v := node.(type) {
	case map[string]any:
		for key, value := range v {
			value = NormalizeArrays(value, repeatable)
			if repeatable[key] {
				if _, isList := value.([]any); !isList {
					value = []any{value}
				}
			}
			v[key] = value
		}
		return v
	case []any:
		for i := range v {
			v[i] = NormalizeArrays(v[i], repeatable)
		}
		return v
	default:
		return node
	}
}

// Text returns the string value at a key path inside a normalized tree,
// or "" when the path does not resolve.
func Text(node any, path ...string) string {
	current := node
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current = m[key]
	}
	s, _ := current.(string)
	return s
}

// List returns the slice value at a key path, or nil.
func List(node any, path ...string) []any {
	current := node
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	list, _ := current.([]any)
	return list
}
