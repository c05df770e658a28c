// Package principles groups one package per SOLID principle.
//
// Every package exposes the same pair of entry points:
//
//	func Bad(w io.Writer) error
//	func Good(w io.Writer) error
//
// Bad shows the snippet before the refactoring, Good the snippet after it.
// Both write the same literal lines to w, so the contrast lies in how the
// types are shaped rather than in what they print.
package principles
