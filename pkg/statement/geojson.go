// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package statement

import (
	"encoding/base64"
	"encoding/json"
)

// GeoJSONKind tags how a producer geometry value was supplied.
type GeoJSONKind int

const (
	// GeoJSONRaw is a structured value to be JSON-serialized then
	// base64-encoded.
	GeoJSONRaw GeoJSONKind = iota
	// GeoJSONPlain is a plain JSON string to be base64-encoded as-is.
	GeoJSONPlain
	// GeoJSONEncoded is already base64-encoded and is emitted untouched.
	GeoJSONEncoded
)

// GeoJSON is a producer geometry in one of three caller-chosen input
// variants. The variant is explicit rather than inferred, so ambiguous
// inputs (a JSON document that happens to also decode as base64) cannot
// be misclassified.
type GeoJSON struct {
	kind    GeoJSONKind
	raw     any
	text    string
	encoded string
}

// GeoJSONFromValue wraps a structured value (typically a map or a struct
// describing a FeatureCollection).
func GeoJSONFromValue(v any) *GeoJSON {
	return &GeoJSON{kind: GeoJSONRaw, raw: v}
}

// GeoJSONFromString wraps a plain JSON document string.
func GeoJSONFromString(s string) *GeoJSON {
	return &GeoJSON{kind: GeoJSONPlain, text: s}
}

// GeoJSONFromEncoded wraps a string that is already base64-encoded JSON.
func GeoJSONFromEncoded(s string) *GeoJSON {
	return &GeoJSON{kind: GeoJSONEncoded, encoded: s}
}

// DetectGeoJSON classifies an untagged string the way older callers
// supplied it: if the value base64-decodes to valid JSON it is treated as
// already encoded, otherwise as a plain JSON document.
func DetectGeoJSON(s string) *GeoJSON {
	if decoded, err := base64.StdEncoding.DecodeString(s); err == nil && json.Valid(decoded) {
		return GeoJSONFromEncoded(s)
	}
	return GeoJSONFromString(s)
}

// Kind reports the input variant.
func (g *GeoJSON) Kind() GeoJSONKind { return g.kind }

// Encode returns the base64 wire form of the geometry. ok is false when
// the input could not be converted (structured value that fails JSON
// serialization, or a plain string that is not valid JSON); the value is
// then passed through unchanged so the server, not this layer, is the one
// that rejects it, and the caller receives a warning.
func (g *GeoJSON) Encode() (value string, ok bool) {
	switch g.kind {
	case GeoJSONEncoded:
		return g.encoded, true
	case GeoJSONPlain:
		if !json.Valid([]byte(g.text)) {
			return g.text, false
		}
		return base64.StdEncoding.EncodeToString([]byte(g.text)), true
	default:
		data, err := json.Marshal(g.raw)
		if err != nil {
			return "", false
		}
		return base64.StdEncoding.EncodeToString(data), true
	}
}
