package fmtstr

import (
	"fmt"
	"strconv"
)

// ComponentKind distinguishes the two kinds of components a template
// breaks down into.
type ComponentKind int

const (
	ComponentLiteral  ComponentKind = iota // verbatim text, brace escapes already resolved
	ComponentArgument                      // one {...} placeholder
)

func (k ComponentKind) String() string {
	switch k {
	case ComponentLiteral:
		return "literal"
	case ComponentArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// Component is a single element of a parsed template: either a run of
// literal text or an argument placeholder. Exactly one of Text and Arg
// is meaningful, according to Kind.
type Component struct {
	Kind ComponentKind
	Text string    // literal text (ComponentLiteral only)
	Arg  *Argument // placeholder contents (ComponentArgument only)
}

// Argument is the parsed form of one {...} block: which value to
// substitute and how to format it.
type Argument struct {
	Selector Selector
	Flags    FormattingFlags
}

// SelectorKind distinguishes how an argument names the value it
// substitutes.
type SelectorKind int

const (
	// SelectorImplicit means no selector was written ({}); the consumer
	// assigns the next sequential index.
	SelectorImplicit SelectorKind = iota
	// SelectorPositional is an explicit index ({0}, {12}).
	SelectorPositional
	// SelectorNamed refers to a value by identifier ({name}).
	SelectorNamed
)

func (k SelectorKind) String() string {
	switch k {
	case SelectorImplicit:
		return "implicit"
	case SelectorPositional:
		return "positional"
	case SelectorNamed:
		return "named"
	default:
		return "unknown"
	}
}

// Selector identifies the value an argument substitutes. Index is
// meaningful only for SelectorPositional, Name only for SelectorNamed.
type Selector struct {
	Kind  SelectorKind
	Index uint64
	Name  string
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectorPositional:
		return strconv.FormatUint(s.Index, 10)
	case SelectorNamed:
		return s.Name
	default:
		return ""
	}
}

// Mode is the rendering mode of a formatting spec. ModeDisplay is the
// plain form; the debug modes come from any non-trivial spec, with
// binary and hexadecimal selected by the 'b' and 'x' flags.
type Mode int

const (
	ModeDisplay Mode = iota
	ModeDebug
	ModeDebugBinary
	ModeDebugHex
)

func (m Mode) String() string {
	switch m {
	case ModeDisplay:
		return "display"
	case ModeDebug:
		return "debug"
	case ModeDebugBinary:
		return "debug-binary"
	case ModeDebugHex:
		return "debug-hex"
	default:
		return "unknown"
	}
}

// FormattingFlags is the parsed formatting spec of one argument. The
// semantics of each mode (how values actually render) is up to the
// consumer; this package only classifies.
type FormattingFlags struct {
	Mode      Mode
	Alternate bool
}

// FormatStr is a fully parsed template: an ordered component list.
// It is immutable once built; literal components are maximal (no two
// adjacent) and never empty.
type FormatStr struct {
	components []Component
}

// Components returns the ordered component list. The returned slice is
// a copy; the FormatStr itself never changes after parsing.
func (f *FormatStr) Components() []Component {
	out := make([]Component, len(f.components))
	copy(out, f.components)
	return out
}

// Len returns the number of components.
func (f *FormatStr) Len() int {
	return len(f.components)
}

// NumArgs returns the number of argument components.
func (f *FormatStr) NumArgs() int {
	n := 0
	for _, c := range f.components {
		if c.Kind == ComponentArgument {
			n++
		}
	}
	return n
}

func (c Component) String() string {
	if c.Kind == ComponentLiteral {
		return fmt.Sprintf("Literal(%q)", c.Text)
	}
	return fmt.Sprintf("Argument(%s:%s)", c.Arg.Selector.Kind, c.Arg.Flags.Mode)
}

// Literal builds a literal component. Helper for constructing expected
// values in tests and for consumers that synthesize templates.
func Literal(text string) Component {
	return Component{Kind: ComponentLiteral, Text: text}
}

// Arg builds an argument component from a selector and flags.
func Arg(sel Selector, flags FormattingFlags) Component {
	return Component{
		Kind: ComponentArgument,
		Arg:  &Argument{Selector: sel, Flags: flags},
	}
}

// Implicit returns the selector of a bare {}.
func Implicit() Selector {
	return Selector{Kind: SelectorImplicit}
}

// Positional returns an explicit positional selector.
func Positional(index uint64) Selector {
	return Selector{Kind: SelectorPositional, Index: index}
}

// Named returns a named selector.
func Named(name string) Selector {
	return Selector{Kind: SelectorNamed, Name: name}
}

// Display returns display-mode flags.
func Display(alternate bool) FormattingFlags {
	return FormattingFlags{Mode: ModeDisplay, Alternate: alternate}
}

// Debug returns debug-mode flags with the given base mode.
func Debug(mode Mode, alternate bool) FormattingFlags {
	return FormattingFlags{Mode: mode, Alternate: alternate}
}
