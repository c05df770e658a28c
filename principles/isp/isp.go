// Package isp illustrates the Interface Segregation Principle by splitting an
// overloaded click listener into item and radio listeners.
package isp

import (
	"errors"
	"fmt"
	"io"
)

// DemoPosition is the list position tapped by the demo.
const DemoPosition = 4

// ErrRadioClickUnsupported is what an item-only listener is forced to return
// from the radio method it never wanted.
var ErrRadioClickUnsupported = errors.New("isp: radio click not supported")

// -----------------------------------------------------------------------------
// Bad: one listener for everything.
// -----------------------------------------------------------------------------

// ClickListener forces every implementation to handle both kinds of click.
type ClickListener interface {
	OnItemClick(w io.Writer, position int) error
	OnRadioClick(w io.Writer, id int) error
}

// FatPositionPrinter only cares about item clicks but must stub radio clicks.
type FatPositionPrinter struct{}

// OnItemClick prints the tapped position.
func (FatPositionPrinter) OnItemClick(w io.Writer, position int) error {
	return printPosition(w, position)
}

// OnRadioClick exists only to satisfy ClickListener.
func (FatPositionPrinter) OnRadioClick(io.Writer, int) error {
	return ErrRadioClickUnsupported
}

// FatItemList dispatches item taps through the overloaded listener.
type FatItemList struct {
	listener ClickListener
}

// NewFatItemList returns a list dispatching to l.
func NewFatItemList(l ClickListener) *FatItemList { return &FatItemList{listener: l} }

// Tap reports a tap at position.
func (l *FatItemList) Tap(w io.Writer, position int) error {
	return l.listener.OnItemClick(w, position)
}

// Bad taps DemoPosition through the overloaded listener.
func Bad(w io.Writer) error {
	return NewFatItemList(FatPositionPrinter{}).Tap(w, DemoPosition)
}

// -----------------------------------------------------------------------------
// Good: narrow listeners.
// -----------------------------------------------------------------------------

// ItemClickListener handles list item clicks.
type ItemClickListener interface {
	OnItemClick(w io.Writer, position int) error
}

// RadioClickListener handles radio button clicks.
type RadioClickListener interface {
	OnRadioClick(w io.Writer, id int) error
}

// PositionPrinter implements only what it needs.
type PositionPrinter struct{}

// OnItemClick prints the tapped position.
func (PositionPrinter) OnItemClick(w io.Writer, position int) error {
	return printPosition(w, position)
}

// ItemList depends on item clicks alone.
type ItemList struct {
	listener ItemClickListener
}

// NewItemList returns a list dispatching to l.
func NewItemList(l ItemClickListener) *ItemList { return &ItemList{listener: l} }

// Tap reports a tap at position.
func (l *ItemList) Tap(w io.Writer, position int) error {
	return l.listener.OnItemClick(w, position)
}

// RadioGroup depends on radio clicks alone.
type RadioGroup struct {
	listener RadioClickListener
}

// NewRadioGroup returns a group dispatching to l.
func NewRadioGroup(l RadioClickListener) *RadioGroup { return &RadioGroup{listener: l} }

// Check reports that radio id was selected.
func (g *RadioGroup) Check(w io.Writer, id int) error {
	return g.listener.OnRadioClick(w, id)
}

// Good taps DemoPosition through the narrow listener.
func Good(w io.Writer) error {
	return NewItemList(PositionPrinter{}).Tap(w, DemoPosition)
}

func printPosition(w io.Writer, position int) error {
	_, err := fmt.Fprintf(w, "Clicked position is %d\n", position)
	return err
}
