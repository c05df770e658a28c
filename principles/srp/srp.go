// Package srp illustrates the Single Responsibility Principle with a user
// adapter that binds a user's fields to text views.
package srp

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoUsers is returned by the bad adapter when it has nothing to bind.
var ErrNoUsers = errors.New("srp: no users to bind")

// DemoName is the user bound by both adapters.
const DemoName = "Android User"

// DemoNumbers are DemoName's mobile numbers, unformatted.
var DemoNumbers = []string{"987654321", "9999999999"}

// TextView is the sink the adapters bind into.
type TextView struct {
	w io.Writer
}

// NewTextView returns a view writing to w.
func NewTextView(w io.Writer) TextView { return TextView{w: w} }

// SetName binds a name.
func (v TextView) SetName(name string) error {
	_, err := fmt.Fprintf(v.w, "Name has been set as %s to TextView\n", name)
	return err
}

// SetMobileNumber binds an already formatted mobile number.
func (v TextView) SetMobileNumber(number string) error {
	_, err := fmt.Fprintf(v.w, "Mobile number has been set as %s to TextView\n", number)
	return err
}

// -----------------------------------------------------------------------------
// Bad: the adapter formats as well as binds.
// -----------------------------------------------------------------------------

// RawUser keeps its mobile numbers unformatted.
type RawUser struct {
	Name          string
	MobileNumbers []string
}

// RawUserAdapter binds the first user and joins its numbers on the way.
type RawUserAdapter struct {
	users []RawUser
}

// NewRawUserAdapter wraps users for binding.
func NewRawUserAdapter(users []RawUser) *RawUserAdapter {
	return &RawUserAdapter{users: users}
}

// Bind formats and binds users[0].
func (a *RawUserAdapter) Bind(view TextView) error {
	if len(a.users) == 0 {
		return ErrNoUsers
	}
	u := a.users[0]
	if err := view.SetName(u.Name); err != nil {
		return err
	}
	// formatting is a second reason for this type to change
	var b strings.Builder
	for i, n := range u.MobileNumbers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
	}
	return view.SetMobileNumber(b.String())
}

// Bad runs the adapter that owns both binding and formatting.
func Bad(w io.Writer) error {
	users := []RawUser{{Name: DemoName, MobileNumbers: DemoNumbers}}
	return NewRawUserAdapter(users).Bind(NewTextView(w))
}

// -----------------------------------------------------------------------------
// Good: the model formats, the adapter only binds.
// -----------------------------------------------------------------------------

// User holds a pre-joined mobile number.
type User struct {
	Name         string
	MobileNumber string
}

// NewUser joins numbers once, at construction.
func NewUser(name string, numbers ...string) User {
	return User{Name: name, MobileNumber: strings.Join(numbers, ", ")}
}

// UserAdapter binds a single user.
type UserAdapter struct {
	user User
}

// NewUserAdapter wraps u for binding.
func NewUserAdapter(u User) *UserAdapter { return &UserAdapter{user: u} }

// Bind writes the user's fields into view.
func (a *UserAdapter) Bind(view TextView) error {
	if err := view.SetName(a.user.Name); err != nil {
		return err
	}
	return view.SetMobileNumber(a.user.MobileNumber)
}

// Good runs the adapter with a single responsibility.
func Good(w io.Writer) error {
	return NewUserAdapter(NewUser(DemoName, DemoNumbers...)).Bind(NewTextView(w))
}
