package mathresolver

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================
// Symbol substitution
// ============================================================

// Style selects how variables are displayed.
type Style int

const (
	StyleDefault Style = iota
	StyleGreek
)

func (s Style) String() string {
	if s == StyleGreek {
		return "greek"
	}
	return "default"
}

// ParseStyle accepts "default", "plain" and "greek".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "plain":
		return StyleDefault, nil
	case "greek":
		return StyleGreek, nil
	}
	return StyleDefault, fmt.Errorf("unknown style %q", s)
}

// Domain selects the task domain of an expression.
type Domain int

const (
	DomainAlgebra Domain = iota
	DomainSet
)

func (d Domain) String() string {
	if d == DomainSet {
		return "set"
	}
	return "algebra"
}

// ParseDomain accepts "algebra", "algebraic", "default" and "set".
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "algebra", "algebraic":
		return DomainAlgebra, nil
	case "set", "sets", "set_theory":
		return DomainSet, nil
	}
	return DomainAlgebra, fmt.Errorf("unknown domain %q", s)
}

// P (pi in trigonometry) and X (the free variable of context rules) are
// left out so they stay unambiguous.
var greekSymbols = map[string]string{
	"A": "α",
	"B": "β",
	"C": "c",
	"D": "δ",
	"E": "ε",
	"F": "φ",
	"G": "γ",
	"H": "η",
	"I": "ι",
	"J": "j",
	"K": "κ",
	"L": "λ",
	"M": "μ",
	"N": "ν",
	"O": "ω",
	"Q": "q",
	"R": "ρ",
	"S": "ς",
	"T": "τ",
	"U": "υ",
	"V": "v",
	"W": "w",
	"Y": "y",
	"Z": "ζ",
}

var setSymbols = map[string]string{
	"0": "∅",
	"1": "U",
}

var decorativeSymbols = map[string]string{
	"cherry": "\U0001F352",
}

// Substitute returns the display text of a leaf and whether it differs
// from the raw token. Tokens without a parent are shown literally; then
// Greek style, the set domain and the decorative table are tried in turn.
func Substitute(value string, hasParent bool, style Style, domain Domain) (string, bool) {
	if !hasParent {
		return value, false
	}
	if style == StyleGreek {
		// Casers are stateful, so each call gets its own.
		if g, ok := greekSymbols[cases.Upper(language.Und).String(value)]; ok {
			return g, true
		}
	}
	if domain == DomainSet {
		if g, ok := setSymbols[value]; ok {
			return g, true
		}
	}
	if g, ok := decorativeSymbols[value]; ok {
		return g, true
	}
	return value, false
}
