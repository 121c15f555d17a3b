package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/fmtstr"
)

func TestBindImplicitOrder(t *testing.T) {
	t.Parallel()
	fs := fmtstr.MustParse("{} {} {}")
	plan, err := Bind(fs, Args{Values: []any{"a", "b", "c"}})
	require.NoError(t, err)

	var indices []int
	for _, step := range plan {
		if step.Binding != nil {
			indices = append(indices, step.Binding.Index)
		}
	}
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestBindMixedSelectors(t *testing.T) {
	t.Parallel()
	// implicit indices advance independently of explicit and named ones
	fs := fmtstr.MustParse("{2}{}{name}{}")
	args := Args{
		Values: []any{"v0", "v1", "v2"},
		Names:  map[string]int{"name": 2},
	}

	plan, err := Bind(fs, args)
	require.NoError(t, err)
	require.Len(t, plan, 4)

	assert.Equal(t, 2, plan[0].Binding.Index)
	assert.Equal(t, 0, plan[1].Binding.Index)
	assert.Equal(t, 2, plan[2].Binding.Index)
	assert.Equal(t, "name", plan[2].Binding.Name)
	assert.Equal(t, 1, plan[3].Binding.Index)
}

func TestBindErrors(t *testing.T) {
	t.Parallel()

	_, err := Bind(fmtstr.MustParse("{missing}"), Args{Values: []any{1}})
	assert.ErrorIs(t, err, ErrUnknownName)

	_, err = Bind(fmtstr.MustParse("{5}"), Args{Values: []any{1}})
	assert.ErrorIs(t, err, ErrIndexRange)

	_, err = Bind(fmtstr.MustParse("{}{}"), Args{Values: []any{1}})
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestRender(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		template string
		args     Args
		expected string
	}{
		{
			name:     "display",
			template: "count={}",
			args:     Args{Values: []any{42}},
			expected: "count=42",
		},
		{
			name:     "binary and hex",
			template: "{0:b} {0:x}",
			args:     Args{Values: []any{255}},
			expected: "11111111 ff",
		},
		{
			name:     "alternate bases get prefixes",
			template: "{0:#b} {0:#x}",
			args:     Args{Values: []any{255}},
			expected: "0b11111111 0xff",
		},
		{
			name:     "named with escapes",
			template: "{{{name:x}}}",
			args:     Args{Values: []any{4096}, Names: map[string]int{"name": 0}},
			expected: "{1000}",
		},
		{
			name:     "debug mode uses go syntax",
			template: "{:?}",
			args:     Args{Values: []any{[]int{1, 2}}},
			expected: "[]int{1, 2}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs, err := fmtstr.Parse(tt.template)
			require.NoError(t, err)

			got, err := Render(fs, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
