package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryToAlpha2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"alpha-2 code", "US", "US"},
		{"alpha-3 code", "USA", "US"},
		{"full name", "United States", "US"},
		{"lowercase name", "france", "FR"},
		{"misspelled name", "Frence", "FR"},
		{"subdivision code", "CH-AI", "CH"},
		{"name with hyphen", "Guinea-Bissau", "GW"},
		{"unidentifiable input", "Atlantis12345", "Atlantis12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountryToAlpha2(tt.input))
		})
	}
}
