package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredSupplementaryUnit(t *testing.T) {
	tests := []struct {
		heading  string
		unit     string
		required bool
	}{
		{"4701", "KSD", true},
		{"470199", "KSD", true}, // 4-digit prefix match
		{"4407", "MTQ", true},
		{"440791", "MTQ", true},
		{"4412", "MTQ", true},
		{"441231", "MTK", true}, // full-code entry wins over heading
		{"441239", "MTQ", true},
		{"0102", "NAR", true},
		{"4401", "", false},
		{"1801", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			unit, required := RequiredSupplementaryUnit(tt.heading)
			assert.Equal(t, tt.required, required)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

func TestIsValidQualifier(t *testing.T) {
	for _, q := range []string{"KSD", "MTQ", "MTK", "NAR", "LTR", "TNE"} {
		assert.True(t, IsValidQualifier(q), q)
	}
	assert.False(t, IsValidQualifier("KG"))
	assert.False(t, IsValidQualifier(""))
	assert.False(t, IsValidQualifier("mtq"))
}
