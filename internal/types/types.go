package types

import "go/token"

// Issue represents one invalid format template found in a source file.
type Issue struct {
	Rule      string // a ParseErrorKind string, e.g. "unclosed-arg"
	Filename  string
	Message   string
	Offending string // offending text carried by the parse error, if any
	Start     token.Position
	End       token.Position
}
