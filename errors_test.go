package fmtstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      *ParseError
		contains string
	}{
		{&ParseError{Pos: 4, Kind: UnclosedArg}, "unclosed argument at offset 4"},
		{&ParseError{Pos: 0, Kind: InvalidClosedArg}, "unexpected '}'"},
		{&ParseError{Pos: 1, Kind: NotANumber, What: "1a"}, `"1a"`},
		{&ParseError{Pos: 1, Kind: NotAnIdent, What: "a-b"}, `"a-b"`},
		{&ParseError{Pos: 2, Kind: UnknownFormatting, What: "z"}, "unknown formatting spec"},
	}

	for _, tt := range tests {
		assert.Contains(t, tt.err.Error(), tt.contains)
	}
}

func TestParseErrorKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "unclosed-arg", UnclosedArg.String())
	assert.Equal(t, "invalid-closed-arg", InvalidClosedArg.String())
	assert.Equal(t, "not-a-number", NotANumber.String())
	assert.Equal(t, "not-an-ident", NotAnIdent.String())
	assert.Equal(t, "unknown-formatting", UnknownFormatting.String())
}
