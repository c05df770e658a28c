package demo

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/sghaida/solid/principles/dip"
	"github.com/sghaida/solid/principles/isp"
	"github.com/sghaida/solid/principles/lsp"
	"github.com/sghaida/solid/principles/ocp"
	"github.com/sghaida/solid/principles/srp"
)

// Func runs one snippet, writing its output to w.
type Func func(w io.Writer) error

// ErrRegistryPanic is returned if a lookup panics.
var ErrRegistryPanic = errors.New("demo: panic during Resolve")

// MissingDemoError is returned when no snippet is registered under Key.
type MissingDemoError struct{ Key Key }

// Error implements the error interface.
func (e MissingDemoError) Error() string {
	return fmt.Sprintf("demo: no snippet registered for %q", e.Key.String())
}

// Registry is a simple in-memory map of snippets.
type Registry struct {
	items map[Key]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[Key]Func{}}
}

// Default returns a registry holding every Bad/Good pair.
func Default() *Registry {
	return NewRegistry().
		Provide(Key{SRP, Bad}, srp.Bad).
		Provide(Key{SRP, Good}, srp.Good).
		Provide(Key{OCP, Bad}, ocp.Bad).
		Provide(Key{OCP, Good}, ocp.Good).
		Provide(Key{LSP, Bad}, lsp.Bad).
		Provide(Key{LSP, Good}, lsp.Good).
		Provide(Key{ISP, Bad}, isp.Bad).
		Provide(Key{ISP, Good}, isp.Good).
		Provide(Key{DIP, Bad}, dip.Bad).
		Provide(Key{DIP, Good}, dip.Good)
}

// Provide stores fn under key and returns the registry for chaining.
// A later Provide for the same key replaces the earlier one.
func (r *Registry) Provide(key Key, fn Func) *Registry {
	r.items[key] = fn
	return r
}

// Resolve returns the snippet for key and converts panics into errors.
func (r *Registry) Resolve(key Key) (fn Func, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			fn = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	fn, ok = r.items[key]
	return fn, ok && fn != nil, nil
}

// MustGet returns the snippet for key or panics with MissingDemoError.
func (r *Registry) MustGet(key Key) Func {
	fn, ok := r.items[key]
	if !ok || fn == nil {
		panic(MissingDemoError{Key: key})
	}
	return fn
}

// Keys returns the registered keys, ordered by principle then variant.
func (r *Registry) Keys() []Key {
	out := make([]Key, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].Principle.order(), out[j].Principle.order()
		if oi != oj {
			return oi < oj
		}
		// only unknown principles share an order; keep them stable by name
		if out[i].Principle != out[j].Principle {
			return out[i].Principle < out[j].Principle
		}
		return out[i].Variant < out[j].Variant
	})
	return out
}
