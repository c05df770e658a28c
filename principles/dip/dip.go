// Package dip illustrates the Dependency Inversion Principle with a syncer
// that depends on a DataFetcher abstraction instead of a concrete backend.
//
// The good variant wires the fetcher through the di package, so the
// composition root, not the Syncer, chooses the backend.
package dip

import (
	"errors"
	"fmt"
	"io"

	"github.com/sghaida/solid/di"
)

// Keys under which the Syncer's backends are recorded.
const (
	KeyFetcher  di.DependencyKey = "fetcher"
	KeyFallback di.DependencyKey = "fallback"
)

// ErrNoFetcher is returned when a Syncer runs before a fetcher was injected.
var ErrNoFetcher = errors.New("dip: no data fetcher wired")

// DataFetcher is the abstraction both high and low level code depend on.
type DataFetcher interface {
	Fetch(w io.Writer) error
}

// FirebaseFetcher syncs from remote storage.
type FirebaseFetcher struct{}

// Fetch prints the firebase sync line.
func (FirebaseFetcher) Fetch(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Syncing the data from the firebase storage")
	return err
}

// RoomFetcher syncs from the local database.
type RoomFetcher struct{}

// Fetch prints the room sync line.
func (RoomFetcher) Fetch(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Syncing the data from the room database")
	return err
}

// -----------------------------------------------------------------------------
// Bad: the syncer builds its own backend.
// -----------------------------------------------------------------------------

// HardwiredSyncer is welded to FirebaseFetcher.
type HardwiredSyncer struct {
	fetcher FirebaseFetcher
}

// NewHardwiredSyncer builds the syncer and its backend in one place.
func NewHardwiredSyncer() *HardwiredSyncer {
	return &HardwiredSyncer{fetcher: FirebaseFetcher{}}
}

// Sync fetches from Firebase; there is no way to choose otherwise.
func (s *HardwiredSyncer) Sync(w io.Writer) error {
	return s.fetcher.Fetch(w)
}

// Bad syncs through the hardwired Firebase backend.
func Bad(w io.Writer) error {
	return NewHardwiredSyncer().Sync(w)
}

// -----------------------------------------------------------------------------
// Good: the backend is injected.
// -----------------------------------------------------------------------------

// Syncer receives its DataFetcher, and optionally a fallback, from outside.
type Syncer struct {
	fetcher  DataFetcher
	fallback DataFetcher
}

// NewSyncer returns an unwired Syncer; use it as a di.Init constructor.
func NewSyncer() *Syncer { return &Syncer{} }

// BindFetcher is the di bind function for KeyFetcher.
func BindFetcher(s *Syncer, f *DataFetcher) { s.fetcher = *f }

// BindFallback is the di bind function for KeyFallback.
func BindFallback(s *Syncer, f *DataFetcher) { s.fallback = *f }

// Sync fetches from the primary backend and retries once on the fallback
// when the primary fails.
func (s *Syncer) Sync(w io.Writer) error {
	if s.fetcher == nil {
		return ErrNoFetcher
	}
	err := s.fetcher.Fetch(w)
	if err == nil || s.fallback == nil {
		return err
	}
	return s.fallback.Fetch(w)
}

// Wire builds a Syncer backed by f. A nil f leaves the syncer unwired and
// yields ErrNoFetcher.
func Wire(f DataFetcher) (*di.Service[Syncer], error) {
	return wire(inject(KeyFetcher, f, BindFetcher))
}

// WireWithFallback builds a Syncer that falls back to fallback when
// primary fails.
func WireWithFallback(primary, fallback DataFetcher) (*di.Service[Syncer], error) {
	return wire(
		inject(KeyFetcher, primary, BindFetcher),
		inject(KeyFallback, fallback, BindFallback),
	)
}

func inject(key di.DependencyKey, f DataFetcher, bind func(*Syncer, *DataFetcher)) di.Injector[Syncer] {
	if f == nil {
		return nil
	}
	return di.Injecting(key, di.Init(func() *DataFetcher { return &f }), bind)
}

func wire(injs ...di.Injector[Syncer]) (*di.Service[Syncer], error) {
	syncer, err := di.Init(NewSyncer).With(injs...)
	if err != nil {
		return nil, fmt.Errorf("dip: wire syncer: %w", err)
	}
	if _, err := di.Lookup[Syncer, DataFetcher](syncer, KeyFetcher); err != nil {
		if errors.Is(err, di.ErrMissing) {
			return nil, ErrNoFetcher
		}
		return nil, fmt.Errorf("dip: wire syncer: %w", err)
	}
	return syncer, nil
}

// Good syncs through an injected Firebase backend.
func Good(w io.Writer) error {
	syncer, err := Wire(FirebaseFetcher{})
	if err != nil {
		return err
	}
	return syncer.Value().Sync(w)
}
