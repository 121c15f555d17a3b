package fmtstr

import "fmt"

// ParseErrorKind classifies what went wrong while parsing a template.
type ParseErrorKind int

const (
	// UnclosedArg: a '{' with no matching '}' before end of input.
	UnclosedArg ParseErrorKind = iota
	// InvalidClosedArg: a '}' outside an argument block not paired with
	// a following '}'.
	InvalidClosedArg
	// NotANumber: a digit-leading selector that is not a valid
	// non-negative integer.
	NotANumber
	// NotAnIdent: a non-empty, non-numeric selector that is not a valid
	// identifier.
	NotAnIdent
	// UnknownFormatting: a formatting spec with a character outside the
	// flag set, or a base flag given twice.
	UnknownFormatting
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnclosedArg:
		return "unclosed-arg"
	case InvalidClosedArg:
		return "invalid-closed-arg"
	case NotANumber:
		return "not-a-number"
	case NotAnIdent:
		return "not-an-ident"
	case UnknownFormatting:
		return "unknown-formatting"
	default:
		return "unknown"
	}
}

// ParseError is the error returned by Parse. Pos is a byte offset into
// the original input where the offending construct begins; What holds
// the offending text for the kinds that have one.
type ParseError struct {
	Pos  int
	Kind ParseErrorKind
	What string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnclosedArg:
		return fmt.Sprintf("unclosed argument at offset %d: '{' has no matching '}'", e.Pos)
	case InvalidClosedArg:
		return fmt.Sprintf("unexpected '}' at offset %d: escape it as '}}' or open an argument first", e.Pos)
	case NotANumber:
		return fmt.Sprintf("invalid positional argument %q at offset %d: not a non-negative integer", e.What, e.Pos)
	case NotAnIdent:
		return fmt.Sprintf("invalid argument name %q at offset %d: not a valid identifier", e.What, e.Pos)
	case UnknownFormatting:
		return fmt.Sprintf("unknown formatting spec %q at offset %d", e.What, e.Pos)
	default:
		return fmt.Sprintf("parse error at offset %d", e.Pos)
	}
}
