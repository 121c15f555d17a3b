package fmtstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoIdent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		valid bool
	}{
		{"x", true},
		{"snake_case", true},
		{"_leading", true},
		{"arg2", true},
		{"café", true},
		{"", false},
		{"2x", false},
		{"a-b", false},
		{"has space", false},
		{"func", false}, // keywords are not identifiers
		{"return", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, GoIdent(tt.name), "GoIdent(%q)", tt.name)
	}
}
