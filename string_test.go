package fmtstr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "braces are re-escaped",
			input:    "a{{b}}c",
			expected: "a{{b}}c",
		},
		{
			name:     "plain display drops the colon",
			input:    "{0:}",
			expected: "{0}",
		},
		{
			name:     "canonical flag spelling",
			input:    "{addr:x#}",
			expected: "{addr:#x?}",
		},
		{
			name:     "debug marker is kept",
			input:    "{:?}",
			expected: "{:?}",
		},
		{
			name:     "mixed template",
			input:    "read {count} bytes from {0:b}",
			expected: "read {count} bytes from {0:b?}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fs.Template())
		})
	}
}

// Re-parsing a serialized template must yield an equal structure.
func TestTemplateRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"plain text",
		"{{}}{{",
		"{}",
		"{007}",
		"{name}{other:#}",
		"a {0:#b?} b {1:x} c {:##?}",
		"tail }}",
	}

	for _, input := range inputs {
		fs, err := Parse(input)
		require.NoError(t, err, "input %q", input)

		again, err := Parse(fs.Template())
		require.NoError(t, err, "re-parse of %q", fs.Template())

		if diff := cmp.Diff(fs.Components(), again.Components()); diff != "" {
			t.Errorf("round trip of %q not stable (-first +second):\n%s", input, diff)
		}
	}
}
