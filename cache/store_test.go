package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wythoff/cache"
	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/flag"
	"github.com/katalvlaran/wythoff/orbit"
)

// generated returns the full flag set and cache name of a preset.
func generated(t *testing.T, preset string) ([]flag.Flag, string, int) {
	t.Helper()
	p, err := coxeter.Preset(preset)
	require.NoError(t, err)
	m, err := p.Matrix.Mirrors()
	require.NoError(t, err)
	mirrors, err := flag.Columns(m)
	require.NoError(t, err)
	start, err := flag.FromMirrors(m)
	require.NoError(t, err)
	res, err := orbit.Generate(start, mirrors)
	require.NoError(t, err)

	return res.Flags, p.Matrix.CacheName(), p.Matrix.Dim()
}

// stores returns a fresh file store and a fresh in-memory badger store.
func stores(t *testing.T) map[string]cache.Store {
	t.Helper()
	bs, err := cache.OpenBadger(cache.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bs.Close() })

	return map[string]cache.Store{
		"file":   cache.NewFileStore(t.TempDir()),
		"badger": bs,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	flags, name, dim := generated(t, "B3")
	for kind, s := range stores(t) {
		s := s
		t.Run(kind, func(t *testing.T) {
			require.NoError(t, s.Save(name, flags))
			got, err := s.Load(name, dim)
			require.NoError(t, err)
			require.Len(t, got, len(flags))
			for i := range flags {
				assert.Equal(t, dim, flags[i].Compare(got[i]), "flag %d", i)
			}
		})
	}
}

func TestStore_SaveIsExclusive(t *testing.T) {
	flags, name, dim := generated(t, "A2")
	for kind, s := range stores(t) {
		s := s
		t.Run(kind, func(t *testing.T) {
			require.NoError(t, s.Save(name, flags))
			err := s.Save(name, flags[:1])
			assert.ErrorIs(t, err, cache.ErrExists)

			got, err := s.Load(name, dim)
			require.NoError(t, err)
			assert.Len(t, got, len(flags), "existing entry must be kept")
		})
	}
}

func TestStore_Missing(t *testing.T) {
	for kind, s := range stores(t) {
		s := s
		t.Run(kind, func(t *testing.T) {
			_, err := s.Load("13.flag", 2)
			assert.ErrorIs(t, err, cache.ErrNotFound)
		})
	}
}

func TestStore_InvalidName(t *testing.T) {
	for kind, s := range stores(t) {
		s := s
		t.Run(kind, func(t *testing.T) {
			assert.ErrorIs(t, s.Save("../x.flag", nil), cache.ErrInvalidName)
			_, err := s.Load("", 2)
			assert.ErrorIs(t, err, cache.ErrInvalidName)
		})
	}
}

func TestFileStore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "13.flag"), []byte("1 0 oops 1 \n"), 0o644))

	_, err := cache.NewFileStore(dir).Load("13.flag", 2)
	assert.ErrorIs(t, err, cache.ErrMalformedToken)

	got, err := cache.NewFileStore(dir, cache.WithLenient()).Load("13.flag", 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	flags, name, _ := generated(t, "A1")
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	s := cache.NewFileStore(dir)
	require.NoError(t, s.Save(name, flags))

	data, err := os.ReadFile(s.Path(name))
	require.NoError(t, err)
	assert.Equal(t, "1 \n-1 \n", string(data))
	assert.NoError(t, s.Close())
}

func TestBadger_PersistsAcrossReopen(t *testing.T) {
	flags, name, dim := generated(t, "A3")
	dir := t.TempDir()

	s, err := cache.OpenBadger(cache.BadgerConfig{Path: dir})
	require.NoError(t, err)
	require.NoError(t, s.Save(name, flags))
	require.NoError(t, s.Close())

	s, err = cache.OpenBadger(cache.BadgerConfig{Path: dir})
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(name, dim)
	require.NoError(t, err)
	assert.Len(t, got, len(flags))
}

func TestOpenBadger_RequiresPath(t *testing.T) {
	_, err := cache.OpenBadger(cache.BadgerConfig{})
	assert.Error(t, err)
}
