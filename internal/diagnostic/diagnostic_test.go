package diagnostic

import (
	"go/token"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/gnolang/fmtstr/internal/types"
)

func TestFormat(t *testing.T) {
	color.NoColor = true

	source := &SourceCode{Lines: []string{
		`package main`,
		``,
		`var tmpl = fmtstr.MustParse("pid {pid")`,
	}}
	issue := types.Issue{
		Rule:     "unclosed-arg",
		Filename: "main.go",
		Message:  "unclosed argument at offset 4: '{' has no matching '}'",
		Start:    token.Position{Filename: "main.go", Line: 3, Column: 34},
		End:      token.Position{Filename: "main.go", Line: 3, Column: 38},
	}

	out := Format([]types.Issue{issue}, source)

	assert.Contains(t, out, "error: unclosed-arg")
	assert.Contains(t, out, " --> main.go:3:34")
	assert.Contains(t, out, `fmtstr.MustParse("pid {pid")`)
	assert.Contains(t, out, "^^^^ unclosed argument")
}

func TestFormatOutOfRangePosition(t *testing.T) {
	color.NoColor = true

	source := &SourceCode{Lines: []string{"one line"}}
	issue := types.Issue{
		Rule:    "not-a-number",
		Message: "invalid positional argument",
		Start:   token.Position{Line: 99, Column: 1},
	}

	out := Format([]types.Issue{issue}, source)
	assert.Contains(t, out, "invalid positional argument")
}

func TestCaretWidth(t *testing.T) {
	issue := types.Issue{
		Start: token.Position{Line: 1, Column: 5},
		End:   token.Position{Line: 1, Column: 9},
	}
	assert.Equal(t, "^^^^", carets(issue))

	// end before start collapses to a single caret
	issue.End.Column = 2
	assert.Equal(t, "^", carets(issue))
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "        x", expandTabs("\tx"))
	assert.Equal(t, "plain", expandTabs("plain"))
}
