// Package lsp illustrates the Liskov Substitution Principle with click
// listeners that must be interchangeable behind one capability.
package lsp

import (
	"fmt"
	"io"
)

// ClickListener signals a click.
type ClickListener interface {
	Click(w io.Writer) error
}

// -----------------------------------------------------------------------------
// Bad: a radio button that only works if the caller knows to enable it first.
// -----------------------------------------------------------------------------

// LegacyRadioButton relies on the caller to run Enable before Click.
type LegacyRadioButton struct {
	ID int
}

// Enable must run before Click; nothing enforces it.
func (r *LegacyRadioButton) Enable(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Enable the radio button")
	return err
}

// Click signals the click only.
func (r *LegacyRadioButton) Click(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Clicked RadioButton %d\n", r.ID)
	return err
}

// LegacyCheckBox has no enable step at all.
type LegacyCheckBox struct {
	ID int
}

// Click signals the click.
func (c *LegacyCheckBox) Click(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Clicked CheckBox %d\n", c.ID)
	return err
}

// ClickTypeChecked cannot treat every ClickListener alike.
func ClickTypeChecked(w io.Writer, l ClickListener) error {
	if rb, ok := l.(*LegacyRadioButton); ok {
		if err := rb.Enable(w); err != nil {
			return err
		}
	}
	return l.Click(w)
}

// Bad clicks a LegacyRadioButton through the type-checking consumer.
func Bad(w io.Writer) error {
	return ClickTypeChecked(w, &LegacyRadioButton{ID: 1})
}

// -----------------------------------------------------------------------------
// Good: every listener does its local work before signaling.
// -----------------------------------------------------------------------------

// RadioButton enables itself before signaling.
type RadioButton struct {
	ID int
}

// Click enables the button, then signals.
func (r RadioButton) Click(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Enable the radio button"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Clicked RadioButton %d\n", r.ID)
	return err
}

// CheckBox enables itself before signaling.
type CheckBox struct {
	ID int
}

// Click enables the box, then signals.
func (c CheckBox) Click(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Enable the check box"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Clicked CheckBox %d\n", c.ID)
	return err
}

// ClickAny works for every ClickListener without knowing which one it got.
func ClickAny(w io.Writer, l ClickListener) error {
	return l.Click(w)
}

// Good clicks a RadioButton through the substitutable consumer.
func Good(w io.Writer) error {
	return ClickAny(w, RadioButton{ID: 1})
}
