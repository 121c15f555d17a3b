package fmtstr

import "go/token"

// IdentFunc decides whether a selector is a valid identifier. The
// parser never hardcodes a lexical grammar; named selectors are
// validated through this boundary so hosts with other identifier rules
// can plug their own in via ParseWith.
type IdentFunc func(string) bool

// GoIdent is the default IdentFunc: a valid Go identifier that is not
// a keyword.
func GoIdent(name string) bool {
	return token.IsIdentifier(name)
}
