// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package validation

// supplementaryUnits maps HS headings to the supplementary unit TRACES
// requires for Import/Export statements. Keys are either full codes
// (exact match, tried first) or 4-digit headings (prefix match).
// Loaded once, never mutated.
var supplementaryUnits = map[string]string{
	// live cattle, number of animals
	"0102": "NAR",

	// rubber tyres and tubes, number of articles
	"4011": "NAR",
	"4012": "NAR",
	"4013": "NAR",

	// wood in the rough, sleepers, sawn and worked wood, cubic metres
	"4403": "MTQ",
	"4406": "MTQ",
	"4407": "MTQ",
	"4408": "MTQ",
	"4409": "MTQ",
	"4410": "MTQ",
	"4411": "MTQ",
	"4413": "MTQ",

	// plywood of bamboo or tropical wood, square metres (full-code
	// entries override the 4412 heading below)
	"441231": "MTK",
	"441233": "MTK",
	"441234": "MTK",
	"4412":   "MTQ",

	// pulp, kilograms of dry matter at 90%
	"4701": "KSD",
	"4702": "KSD",
	"4703": "KSD",
	"4704": "KSD",
	"4705": "KSD",
}

// validQualifiers is the enumerated set of supplementary unit qualifiers
// the schema accepts.
var validQualifiers = map[string]bool{
	"KSD": true,
	"MTQ": true,
	"MTK": true,
	"NAR": true,
	"LTR": true,
	"TNE": true,
}

// RequiredSupplementaryUnit returns the supplementary unit mandated for an
// HS heading, if any. Full-code lookup wins over the 4-digit heading.
func RequiredSupplementaryUnit(hsHeading string) (unit string, required bool) {
	if unit, ok := supplementaryUnits[hsHeading]; ok {
		return unit, true
	}
	if len(hsHeading) > 4 {
		if unit, ok := supplementaryUnits[hsHeading[:4]]; ok {
			return unit, true
		}
	}
	return "", false
}

// IsValidQualifier reports whether q is an accepted supplementary unit
// qualifier.
func IsValidQualifier(q string) bool {
	return validQualifiers[q]
}
