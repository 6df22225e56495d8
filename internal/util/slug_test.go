package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Spice Junction", "spice-junction"},
		{"Raj's Café & Catering", "rajs-cafe-catering"},
		{"  multi   word ", "multi-word"},
		{"snake_case_name", "snake-case-name"},
		{"UPPER-CASE", "upper-case"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"crème brûlée", "creme-brulee"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
