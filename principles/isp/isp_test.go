package isp_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/sghaida/solid/principles/isp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts calls on both click paths.
type recorder struct {
	items  []int
	radios []int
}

func (r *recorder) OnItemClick(w io.Writer, position int) error {
	r.items = append(r.items, position)
	_, err := fmt.Fprintf(w, "Clicked position is %d\n", position)
	return err
}

func (r *recorder) OnRadioClick(_ io.Writer, id int) error {
	r.radios = append(r.radios, id)
	return nil
}

func TestVariants_PrintPosition(t *testing.T) {
	t.Parallel()

	for name, run := range map[string]func(io.Writer) error{"bad": isp.Bad, "good": isp.Good} {
		name, run := name, run
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, run(&buf))
			assert.Equal(t, "Clicked position is 4\n", buf.String())
		})
	}
}

func TestTap_NeverInvokesRadioPath(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	var buf bytes.Buffer

	require.NoError(t, isp.NewItemList(rec).Tap(&buf, isp.DemoPosition))
	require.NoError(t, isp.NewFatItemList(rec).Tap(&buf, isp.DemoPosition))

	assert.Equal(t, []int{4, 4}, rec.items)
	assert.Empty(t, rec.radios)
}

func TestRadioGroup_UsesRadioPathOnly(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	require.NoError(t, isp.NewRadioGroup(rec).Check(io.Discard, 7))

	assert.Equal(t, []int{7}, rec.radios)
	assert.Empty(t, rec.items)
}

func TestFatPositionPrinter_StubbedRadioClick(t *testing.T) {
	t.Parallel()

	err := isp.FatPositionPrinter{}.OnRadioClick(io.Discard, 1)
	require.ErrorIs(t, err, isp.ErrRadioClickUnsupported)
}
