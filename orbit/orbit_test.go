package orbit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/flag"
	"github.com/katalvlaran/wythoff/orbit"
)

// seed returns the start flag and mirrors for a preset.
func seed(tb testing.TB, preset string) (flag.Flag, []flag.Vector, int) {
	tb.Helper()
	p, err := coxeter.Preset(preset)
	require.NoError(tb, err)
	m, err := p.Matrix.Mirrors()
	require.NoError(tb, err)
	mirrors, err := flag.Columns(m)
	require.NoError(tb, err)
	start, err := flag.FromMirrors(m)
	require.NoError(tb, err)

	return start, mirrors, p.Order
}

func TestGenerate_A3Has24Flags(t *testing.T) {
	start, mirrors, _ := seed(t, "A3")

	res, err := orbit.Generate(start, mirrors, orbit.WithIndex(orbit.NewLinearIndex(flag.DefaultEpsilon2)))
	require.NoError(t, err)
	assert.Len(t, res.Flags, 24)
	assert.Equal(t, 24*3, res.Reflections, "each flag tries every mirror exactly once")
	assert.True(t, res.Flags[0].Same(start))
}

func TestGenerate_FlagCountIsGroupOrder(t *testing.T) {
	for _, name := range []string{"A1", "A1xA1", "A2", "I2(5)", "A1xA1xA1", "A3", "B3", "H3", "A4", "D4", "B4", "F4"} {
		name := name
		t.Run(name, func(t *testing.T) {
			start, mirrors, order := seed(t, name)
			res, err := orbit.Generate(start, mirrors)
			require.NoError(t, err)
			assert.Len(t, res.Flags, order)
		})
	}
}

func TestGenerate_H4(t *testing.T) {
	if testing.Short() {
		t.Skip("14400 flags")
	}
	start, mirrors, order := seed(t, "H4")
	res, err := orbit.Generate(start, mirrors)
	require.NoError(t, err)
	assert.Len(t, res.Flags, order)
}

func TestGenerate_FlagsAreDistinct(t *testing.T) {
	start, mirrors, _ := seed(t, "B3")
	res, err := orbit.Generate(start, mirrors)
	require.NoError(t, err)

	d := start.Dim()
	for i := range res.Flags {
		for j := range res.Flags {
			c := res.Flags[i].Compare(res.Flags[j])
			if i == j {
				assert.Equal(t, d, c)
				continue
			}
			assert.LessOrEqual(t, c, d-1, "flags %d and %d", i, j)
		}
	}
}

func TestGenerate_LinearAndBucketAgree(t *testing.T) {
	start, mirrors, _ := seed(t, "H3")

	lin, err := orbit.Generate(start, mirrors, orbit.WithIndex(orbit.NewLinearIndex(flag.DefaultEpsilon2)))
	require.NoError(t, err)
	buck, err := orbit.Generate(start, mirrors, orbit.WithIndex(orbit.NewBucketIndex(flag.DefaultEpsilon2)))
	require.NoError(t, err)

	require.Equal(t, len(lin.Flags), len(buck.Flags))
	assert.Equal(t, lin.Reflections, buck.Reflections)
	for i := range lin.Flags {
		assert.True(t, lin.Flags[i].Same(buck.Flags[i]), "flag %d", i)
	}
}

func TestGenerate_ClosedUnderReflection(t *testing.T) {
	start, mirrors, _ := seed(t, "A3")
	res, err := orbit.Generate(start, mirrors)
	require.NoError(t, err)

	idx := orbit.NewLinearIndex(flag.DefaultEpsilon2)
	for _, f := range res.Flags {
		idx.Add(f)
	}
	for i, f := range res.Flags {
		for j, m := range mirrors {
			r, err := f.Reflect(m)
			require.NoError(t, err)
			_, ok := idx.Find(r)
			assert.True(t, ok, "flag %d reflected across mirror %d", i, j)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	start, mirrors, _ := seed(t, "A3")

	_, err := orbit.Generate(start, nil)
	assert.ErrorIs(t, err, orbit.ErrNoMirrors)

	_, err = orbit.Generate(start, mirrors[:2])
	assert.ErrorIs(t, err, flag.ErrDimensionMismatch)

	_, err = orbit.Generate(flag.Flag{}, mirrors)
	assert.ErrorIs(t, err, flag.ErrEmpty)

	bad := []flag.Vector{mirrors[0], {1, 0}, mirrors[2]}
	_, err = orbit.Generate(start, bad)
	assert.ErrorIs(t, err, flag.ErrDimensionMismatch)
}

func TestGenerate_MaxFlags(t *testing.T) {
	start, mirrors, _ := seed(t, "B3")

	res, err := orbit.Generate(start, mirrors, orbit.WithMaxFlags(10))
	assert.ErrorIs(t, err, orbit.ErrFlagLimit)
	require.NotNil(t, res)
	assert.Len(t, res.Flags, 11)

	res, err = orbit.Generate(start, mirrors, orbit.WithMaxFlags(48))
	require.NoError(t, err)
	assert.Len(t, res.Flags, 48)

	assert.Panics(t, func() { orbit.WithMaxFlags(-1) })
	assert.Panics(t, func() { orbit.WithEpsilon2(0) })
}

func TestGenerate_OnDiscover(t *testing.T) {
	start, mirrors, _ := seed(t, "A2")

	var seen []int
	res, err := orbit.Generate(start, mirrors, orbit.WithOnDiscover(func(i int, f flag.Flag) error {
		seen = append(seen, i)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, seen)
	assert.Len(t, res.Flags, 6)

	boom := errors.New("boom")
	_, err = orbit.Generate(start, mirrors, orbit.WithOnDiscover(func(i int, f flag.Flag) error {
		if i == 3 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestGenerate_ContextCancelled(t *testing.T) {
	start, mirrors, _ := seed(t, "F4")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := orbit.Generate(start, mirrors, orbit.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Len(t, res.Flags, 1, "only the start flag is recorded")
}

func TestGenerate_StackDepthBounded(t *testing.T) {
	start, mirrors, order := seed(t, "A3")
	res, err := orbit.Generate(start, mirrors)
	require.NoError(t, err)
	assert.Greater(t, res.MaxStackDepth, 0)
	assert.LessOrEqual(t, res.MaxStackDepth, order)
}
