package dip_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/sghaida/solid/di"
	"github.com/sghaida/solid/principles/dip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	firebaseLine = "Syncing the data from the firebase storage\n"
	roomLine     = "Syncing the data from the room database\n"
)

// offlineFetcher fails without writing.
type offlineFetcher struct{}

var errOffline = errors.New("offline")

func (offlineFetcher) Fetch(io.Writer) error { return errOffline }

func TestVariants_SyncFromFirebase(t *testing.T) {
	t.Parallel()

	for name, run := range map[string]func(io.Writer) error{"bad": dip.Bad, "good": dip.Good} {
		name, run := name, run
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, run(&buf))
			assert.Equal(t, firebaseLine, buf.String())
		})
	}
}

func TestWire_SwapsBackend(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		fetcher dip.DataFetcher
		want    string
	}{
		{"firebase", dip.FirebaseFetcher{}, firebaseLine},
		{"room", dip.RoomFetcher{}, roomLine},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			syncer, err := dip.Wire(tc.fetcher)
			require.NoError(t, err)
			assert.True(t, syncer.Has(dip.KeyFetcher))
			assert.False(t, syncer.Has(dip.KeyFallback))

			got, err := di.Lookup[dip.Syncer, dip.DataFetcher](syncer, dip.KeyFetcher)
			require.NoError(t, err)
			assert.Equal(t, tc.fetcher, *got)

			var buf bytes.Buffer
			require.NoError(t, syncer.Value().Sync(&buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWire_NilBackendIsNoFetcher(t *testing.T) {
	t.Parallel()

	syncer, err := dip.Wire(nil)
	require.ErrorIs(t, err, dip.ErrNoFetcher)
	assert.Nil(t, syncer)

	_, err = dip.WireWithFallback(nil, dip.RoomFetcher{})
	require.ErrorIs(t, err, dip.ErrNoFetcher)
}

func TestWireWithFallback(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		primary  dip.DataFetcher
		fallback dip.DataFetcher
		want     string
		wantErr  error
	}{
		{name: "primary succeeds", primary: dip.FirebaseFetcher{}, fallback: dip.RoomFetcher{}, want: firebaseLine},
		{name: "primary fails", primary: offlineFetcher{}, fallback: dip.RoomFetcher{}, want: roomLine},
		{name: "no fallback", primary: offlineFetcher{}, wantErr: errOffline},
		{name: "both fail", primary: offlineFetcher{}, fallback: offlineFetcher{}, wantErr: errOffline},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			syncer, err := dip.WireWithFallback(tc.primary, tc.fallback)
			require.NoError(t, err)
			assert.Equal(t, tc.fallback != nil, syncer.Has(dip.KeyFallback))

			var buf bytes.Buffer
			err = syncer.Value().Sync(&buf)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestSyncer_Unwired(t *testing.T) {
	t.Parallel()

	err := dip.NewSyncer().Sync(io.Discard)
	require.ErrorIs(t, err, dip.ErrNoFetcher)
}

func TestSyncer_DuplicateInjection(t *testing.T) {
	t.Parallel()

	syncer, err := dip.Wire(dip.RoomFetcher{})
	require.NoError(t, err)

	var f dip.DataFetcher = dip.FirebaseFetcher{}
	_, err = syncer.With(di.Injecting(dip.KeyFetcher, di.Init(func() *dip.DataFetcher { return &f }), dip.BindFetcher))
	require.ErrorIs(t, err, di.ErrDuplicateKey)

	var wiring *di.Error
	require.ErrorAs(t, err, &wiring)
	assert.Equal(t, dip.KeyFetcher, wiring.Key)

	var buf bytes.Buffer
	require.NoError(t, syncer.Value().Sync(&buf))
	assert.Equal(t, roomLine, buf.String())
}
