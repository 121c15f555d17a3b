// Package gen resolves parsed format templates against concrete
// argument lists and renders them. It is the consuming side of the
// fmtstr data model: selector resolution and the meaning of each
// formatting mode live here, not in the parser.
package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnolang/fmtstr"
)

var (
	// ErrUnknownName is returned when a named selector has no entry in
	// the argument names.
	ErrUnknownName = errors.New("unknown argument name")
	// ErrIndexRange is returned when a positional selector is out of
	// range of the argument values.
	ErrIndexRange = errors.New("argument index out of range")
)

// Args is the concrete value set a template is resolved against.
// Names maps named selectors to indices into Values.
type Args struct {
	Values []any
	Names  map[string]int
}

// Step is one element of a render plan: either a literal to emit
// verbatim (Binding == nil) or a bound argument.
type Step struct {
	Literal string
	Binding *Binding
}

// Binding is a fully resolved argument: the index into Args.Values it
// renders, and how.
type Binding struct {
	Index int
	Name  string // original name, for named selectors
	Flags fmtstr.FormattingFlags
}

// Bind walks the component list and resolves every selector: implicit
// positionals get sequential indices in template order, explicit
// positionals and names are checked against args. The returned plan
// preserves component order.
func Bind(fs *fmtstr.FormatStr, args Args) ([]Step, error) {
	var plan []Step
	next := 0 // next implicit positional index

	for _, c := range fs.Components() {
		if c.Kind == fmtstr.ComponentLiteral {
			plan = append(plan, Step{Literal: c.Text})
			continue
		}

		b := Binding{Flags: c.Arg.Flags}
		switch sel := c.Arg.Selector; sel.Kind {
		case fmtstr.SelectorImplicit:
			b.Index = next
			next++
		case fmtstr.SelectorPositional:
			b.Index = int(sel.Index)
		case fmtstr.SelectorNamed:
			index, ok := args.Names[sel.Name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownName, sel.Name)
			}
			b.Index = index
			b.Name = sel.Name
		}

		if b.Index < 0 || b.Index >= len(args.Values) {
			return nil, fmt.Errorf("%w: %d (have %d values)", ErrIndexRange, b.Index, len(args.Values))
		}
		plan = append(plan, Step{Binding: &b})
	}

	return plan, nil
}

// Render executes the plan for fs against args and returns the
// rendered text.
func Render(fs *fmtstr.FormatStr, args Args) (string, error) {
	plan, err := Bind(fs, args)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, step := range plan {
		if step.Binding == nil {
			buf.WriteString(step.Literal)
			continue
		}
		buf.WriteString(renderValue(args.Values[step.Binding.Index], step.Binding.Flags))
	}
	return buf.String(), nil
}

// renderValue maps a formatting spec onto fmt verbs. The alternate flag
// follows fmt's '#' semantics for the numeric bases (0b/0x prefixes)
// and '+' for display mode.
func renderValue(value any, flags fmtstr.FormattingFlags) string {
	return fmt.Sprintf(verb(flags), value)
}

func verb(flags fmtstr.FormattingFlags) string {
	switch flags.Mode {
	case fmtstr.ModeDisplay:
		if flags.Alternate {
			return "%+v"
		}
		return "%v"
	case fmtstr.ModeDebugBinary:
		if flags.Alternate {
			return "%#b"
		}
		return "%b"
	case fmtstr.ModeDebugHex:
		if flags.Alternate {
			return "%#x"
		}
		return "%x"
	default:
		return "%#v"
	}
}
