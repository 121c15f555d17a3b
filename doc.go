/*
Package fmtstr parses a compact, printf-style template language embedded
in string literals into a structured component list, for consumption by
code and text generators.

# Template Syntax

A template is literal text interspersed with argument placeholders:

	"received {count} events from {}"

Placeholders are delimited by braces. Literal braces are escaped by
doubling: "{{" produces "{" and "}}" produces "}". A lone "}" outside a
placeholder is an error.

Inside a placeholder, text before the first ':' selects which value to
substitute:

  - "{}"     implicit positional; the consumer assigns the next index
  - "{2}"    explicit positional index
  - "{name}" named selector; must be a valid identifier

Text after the ':' is the formatting spec:

  - ""   display mode
  - "#"  display mode, alternate form
  - "?"  debug mode
  - "b"  debug mode, binary base ("b?" is equivalent)
  - "x"  debug mode, hexadecimal base ("x?" is equivalent)
  - '#' may be combined with any debug spec for the alternate form

Any non-empty spec other than "#" selects debug mode; the trailing '?'
is an optional marker with no effect of its own. 'b' and 'x' are
mutually exclusive.

# Parsing

Parse is the single entry point:

	fs, err := fmtstr.Parse("loading {0:x} at {addr:#x?}")
	if err != nil {
		pe := err.(*fmtstr.ParseError)
		// pe.Pos is a byte offset into the original input
	}
	for _, c := range fs.Components() {
		// c.Kind is ComponentLiteral or ComponentArgument
	}

The first error aborts the parse; there is no partial result. Every
ParseError carries the byte offset of the offending construct in the
original input, suitable for caret diagnostics.

This package only classifies: resolving selectors against an actual
argument list and rendering values according to the parsed flags belong
to the consumer (see the gen package). Identifier validity is a
pluggable boundary (ParseWith); the default accepts Go identifiers.
*/
package fmtstr
