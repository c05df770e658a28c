package demo

import (
	"strconv"
	"strings"
)

// Principle names one of the five SOLID principles.
type Principle string

const (
	SRP Principle = "srp"
	OCP Principle = "ocp"
	LSP Principle = "lsp"
	ISP Principle = "isp"
	DIP Principle = "dip"
)

// Principles lists every principle in presentation order.
var Principles = []Principle{SRP, OCP, LSP, ISP, DIP}

// Title returns the principle's full name.
func (p Principle) Title() string {
	switch p {
	case SRP:
		return "Single Responsibility Principle"
	case OCP:
		return "Open/Closed Principle"
	case LSP:
		return "Liskov Substitution Principle"
	case ISP:
		return "Interface Segregation Principle"
	case DIP:
		return "Dependency Inversion Principle"
	}
	return string(p)
}

func (p Principle) order() int {
	for i, q := range Principles {
		if q == p {
			return i
		}
	}
	return len(Principles)
}

// Variant selects the snippet before (Bad) or after (Good) the refactoring.
type Variant string

const (
	Bad  Variant = "bad"
	Good Variant = "good"
)

// Variants lists both variants, Bad first.
var Variants = []Variant{Bad, Good}

// UnknownPrincipleError is returned by ParsePrinciple.
type UnknownPrincipleError struct{ Name string }

// Error implements the error interface.
func (e UnknownPrincipleError) Error() string {
	return "demo: unknown principle " + strconv.Quote(e.Name)
}

// UnknownVariantError is returned by ParseVariant.
type UnknownVariantError struct{ Name string }

// Error implements the error interface.
func (e UnknownVariantError) Error() string {
	return "demo: unknown variant " + strconv.Quote(e.Name)
}

// ParsePrinciple accepts a principle name in any case.
func ParsePrinciple(s string) (Principle, error) {
	p := Principle(strings.ToLower(strings.TrimSpace(s)))
	for _, q := range Principles {
		if p == q {
			return p, nil
		}
	}
	return "", UnknownPrincipleError{Name: s}
}

// ParseVariant accepts a variant name in any case.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case Bad, Good:
		return v, nil
	}
	return "", UnknownVariantError{Name: s}
}

// Key identifies one snippet.
type Key struct {
	Principle Principle
	Variant   Variant
}

// String renders the key as "principle/variant".
func (k Key) String() string { return string(k.Principle) + "/" + string(k.Variant) }

// Keys builds the cross product of principles and variants, principles outermost.
func Keys(principles []Principle, variants []Variant) []Key {
	out := make([]Key, 0, len(principles)*len(variants))
	for _, p := range principles {
		for _, v := range variants {
			out = append(out, Key{Principle: p, Variant: v})
		}
	}
	return out
}
