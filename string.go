package fmtstr

import (
	"strings"
)

// Template re-serializes the parsed structure back into template text.
// Braces in literal text are re-escaped and formatting specs are
// written in a canonical spelling ('#' first, then the base flag, then
// '?'), so parsing the result yields an equal structure.
func (f *FormatStr) Template() string {
	var buf strings.Builder
	for _, c := range f.components {
		if c.Kind == ComponentLiteral {
			buf.WriteString(escapeLiteral(c.Text))
			continue
		}
		buf.WriteByte('{')
		buf.WriteString(c.Arg.Selector.String())
		buf.WriteString(flagSpec(c.Arg.Flags))
		buf.WriteByte('}')
	}
	return buf.String()
}

func (f *FormatStr) String() string {
	return f.Template()
}

func escapeLiteral(text string) string {
	text = strings.ReplaceAll(text, "{", "{{")
	return strings.ReplaceAll(text, "}", "}}")
}

// flagSpec renders the canonical formatting spec including the leading
// ':', or an empty string for plain display mode.
func flagSpec(flags FormattingFlags) string {
	if flags.Mode == ModeDisplay {
		if flags.Alternate {
			return ":#"
		}
		return ""
	}

	var buf strings.Builder
	buf.WriteByte(':')
	if flags.Alternate {
		buf.WriteByte('#')
	}
	switch flags.Mode {
	case ModeDebugBinary:
		buf.WriteByte('b')
	case ModeDebugHex:
		buf.WriteByte('x')
	}
	buf.WriteByte('?')
	return buf.String()
}
