package di

import (
	"errors"
	"reflect"
	"strconv"
)

// Wiring failures. Every *Error wraps exactly one of these, so callers test
// with errors.Is and reach the key with errors.As.
var (
	ErrNilTarget     = errors.New("di: nil target service")
	ErrNilDependency = errors.New("di: nil dependency service")
	ErrNilBind       = errors.New("di: nil bind function")
	ErrDuplicateKey  = errors.New("di: duplicate dependency key")
	ErrMissing       = errors.New("di: missing dependency")
	ErrWrongType     = errors.New("di: dependency has wrong type")
)

// DependencyKey names a slot in a Service's Deps bag.
type DependencyKey string

// Error ties a wiring failure to the key it happened on.
type Error struct {
	Key  DependencyKey
	Kind error

	// GotType is the stored type when Kind is ErrWrongType.
	GotType string
}

// Error renders e.g. `di: missing dependency "fetcher"`.
func (e *Error) Error() string {
	msg := e.Kind.Error() + " " + strconv.Quote(string(e.Key))
	if e.GotType != "" {
		msg += " (" + e.GotType + ")"
	}
	return msg
}

// Unwrap exposes Kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

func keyErr(key DependencyKey, kind error) error { return &Error{Key: key, Kind: kind} }

// Service holds a constructed value and the dependencies wired into it.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T { return s.Val }

// Injector wires one dependency into a Service.
type Injector[T any] func(*Service[T]) error

// With applies injectors in order, skipping nil ones, and stops at the
// first failure. Injectors applied before the failure stay applied.
func (s *Service[T]) With(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if inj == nil {
			continue
		}
		if err := inj(s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting returns an Injector that records dep under key and hands it to
// bind. Each key can be wired once per Service.
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		switch {
		case s == nil || s.Val == nil:
			return ErrNilTarget
		case dep == nil || dep.Val == nil:
			return keyErr(key, ErrNilDependency)
		case bind == nil:
			return keyErr(key, ErrNilBind)
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, taken := s.Deps[key]; taken {
			return keyErr(key, ErrDuplicateKey)
		}
		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}

// Has reports whether anything was wired under key.
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// Lookup returns the dependency wired under key as a *D.
func Lookup[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil {
		return nil, keyErr(key, ErrMissing)
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, keyErr(key, ErrMissing)
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, &Error{Key: key, Kind: ErrWrongType, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}
