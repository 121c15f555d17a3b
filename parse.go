package fmtstr

import (
	"strconv"
	"strings"
)

// Parse parses a format template into its component list. Named
// selectors are validated with GoIdent; use ParseWith to supply a
// different identifier grammar.
//
// On failure the returned error is always a *ParseError carrying the
// byte offset of the offending construct in input.
func Parse(input string) (*FormatStr, error) {
	return ParseWith(input, GoIdent)
}

// ParseWith is Parse with an explicit identifier validator.
func ParseWith(input string, isIdent IdentFunc) (*FormatStr, error) {
	p := &parser{input: input, isIdent: isIdent}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &FormatStr{components: p.components}, nil
}

// MustParse is Parse but panics on error. Intended for templates fixed
// at compile time.
func MustParse(input string) *FormatStr {
	f, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return f
}

// parser scans the input once, left to right. All positions are byte
// offsets into the original input; the delimiter characters are ASCII,
// so byte scanning never splits a UTF-8 sequence.
type parser struct {
	input      string
	isIdent    IdentFunc
	components []Component
}

func (p *parser) run() error {
	cursor := 0

	for {
		openPos := indexFrom(p.input, '{', cursor)

		end := len(p.input)
		if openPos >= 0 {
			end = openPos
		}
		text, err := unescapeMidText(p.input[cursor:end], cursor)
		if err != nil {
			return err
		}
		p.pushLiteral(text)

		if openPos < 0 {
			return nil
		}

		afterOpen := openPos + 1
		if afterOpen < len(p.input) && p.input[afterOpen] == '{' {
			// '{{' escape, not an argument
			p.pushLiteral("{")
			cursor = openPos + 2
			continue
		}

		closePos := indexFrom(p.input, '}', afterOpen)
		if closePos < 0 {
			return &ParseError{Pos: openPos, Kind: UnclosedArg}
		}

		arg, err := p.parseArg(p.input[afterOpen:closePos], afterOpen)
		if err != nil {
			return err
		}
		p.components = append(p.components, Component{Kind: ComponentArgument, Arg: arg})
		cursor = closePos + 1
	}
}

// pushLiteral appends literal text, merging into a preceding literal so
// the component list never holds two adjacent (or empty) literals.
func (p *parser) pushLiteral(text string) {
	if text == "" {
		return
	}
	if n := len(p.components); n > 0 && p.components[n-1].Kind == ComponentLiteral {
		p.components[n-1].Text += text
		return
	}
	p.components = append(p.components, Component{Kind: ComponentLiteral, Text: text})
}

// unescapeMidText resolves '}}' escapes in the text between arguments.
// A '}' not followed by another '}' has no opening brace to pair with
// and is rejected. startsAt is the offset of text in the original
// input.
func unescapeMidText(text string, startsAt int) (string, error) {
	closePos := strings.IndexByte(text, '}')
	if closePos < 0 {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))
	start := 0
	for closePos >= 0 {
		afterClose := closePos + 1
		if afterClose >= len(text) || text[afterClose] != '}' {
			return "", &ParseError{Pos: startsAt + closePos, Kind: InvalidClosedArg}
		}
		buf.WriteString(text[start:afterClose])
		start = afterClose + 1
		closePos = indexFrom(text, '}', start)
	}
	buf.WriteString(text[start:])
	return buf.String(), nil
}

// parseArg parses the inner text of one {...} block. startsAt is the
// offset of inner in the original input (just past the '{').
func (p *parser) parseArg(inner string, startsAt int) (*Argument, error) {
	selText := inner
	flagText := ""
	flagStart := startsAt + len(inner)

	if colon := strings.IndexByte(inner, ':'); colon >= 0 {
		selText = inner[:colon]
		flagText = inner[colon+1:]
		flagStart = startsAt + colon + 1
	}

	sel, err := p.parseSelector(selText, startsAt)
	if err != nil {
		return nil, err
	}
	flags, err := parseFlags(flagText, flagStart)
	if err != nil {
		return nil, err
	}
	return &Argument{Selector: sel, Flags: flags}, nil
}

// parseSelector classifies the selector text of one argument: empty
// means implicit positional, digit-leading means an explicit index, and
// anything else must be an identifier.
func (p *parser) parseSelector(text string, startsAt int) (Selector, error) {
	if text == "" {
		return Implicit(), nil
	}
	if isASCIIDigit(text[0]) {
		// Leading zeros are fine ({007} selects argument 7); any
		// non-digit byte or uint64 overflow is not.
		index, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Selector{}, &ParseError{Pos: startsAt, Kind: NotANumber, What: text}
		}
		return Positional(index), nil
	}
	if !p.isIdent(text) {
		return Selector{}, &ParseError{Pos: startsAt, Kind: NotAnIdent, What: text}
	}
	return Named(text), nil
}

// parseFlags classifies the formatting text after the ':'. The empty
// spec and the bare "#" are display mode; everything else is a debug
// spec: an optional trailing '?' is stripped, then each remaining byte
// must be 'b', 'x' or '#', with 'b' and 'x' mutually exclusive.
func parseFlags(text string, startsAt int) (FormattingFlags, error) {
	switch text {
	case "":
		return Display(false), nil
	case "#":
		return Display(true), nil
	}

	spec := text
	if spec[len(spec)-1] == '?' {
		spec = spec[:len(spec)-1]
	}

	mode := ModeDebug
	alternate := false
	for i := 0; i < len(spec); i++ {
		switch c := spec[i]; {
		case c == 'b' && mode == ModeDebug:
			mode = ModeDebugBinary
		case c == 'x' && mode == ModeDebug:
			mode = ModeDebugHex
		case c == '#':
			alternate = true
		default:
			return FormattingFlags{}, &ParseError{Pos: startsAt, Kind: UnknownFormatting, What: text}
		}
	}
	return Debug(mode, alternate), nil
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// indexFrom is strings.IndexByte starting the search at from, with the
// result still relative to the start of s.
func indexFrom(s string, c byte, from int) int {
	if i := strings.IndexByte(s[from:], c); i >= 0 {
		return i + from
	}
	return -1
}
