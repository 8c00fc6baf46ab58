package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()

	first, err := r.Register("xyz")
	require.NoError(t, err)

	first.Set("k", 1)

	second, err := r.Register("xyz")
	require.NoError(t, err)

	// Entries inserted via the first handle are visible via the second.
	v, found := second.Get("k")
	require.True(t, found)
	require.Equal(t, 1, v)
}

func TestRegistry_CacheUnknownName(t *testing.T) {
	r := NewRegistry()

	_, err := r.Cache("never-registered")
	require.ErrorIs(t, err, ErrUnknownCache)
}

func TestRegistry_InvalidNames(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"", " ", " leading", "trailing "} {
		_, err := r.Register(name)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestRegistry_MustRegisterPanicsOnInvalidName(t *testing.T) {
	r := NewRegistry()

	require.Panics(t, func() { r.MustRegister("") })
	require.NotPanics(t, func() { r.MustRegister("ok") })
}

func TestRegistry_ClearEmptiesOnlyNamedCache(t *testing.T) {
	r := NewRegistry()
	x := r.MustRegister("x")
	y := r.MustRegister("y")
	x.Set("k", 1)
	y.Set("k", 2)

	require.NoError(t, r.Clear("x"))

	require.Equal(t, 0, x.Len())
	require.Equal(t, 1, y.Len())

	// Registration survives clearing.
	again, err := r.Cache("x")
	require.NoError(t, err)
	require.Same(t, x, again)
}

func TestRegistry_ClearUnknownName(t *testing.T) {
	r := NewRegistry()
	require.ErrorIs(t, r.Clear("absent"), ErrUnknownCache)
}

func TestRegistry_ClearAllEmptiesEveryCache(t *testing.T) {
	r := NewRegistry()
	x := r.MustRegister("x")
	y := r.MustRegister("y")
	x.Set("k", 1)
	y.Set("k", 2)

	r.ClearAll()

	require.Equal(t, 0, x.Len())
	require.Equal(t, 0, y.Len())
	require.Equal(t, []string{"x", "y"}, r.Names())
}

func TestRegistry_NamesAreCaseSensitive(t *testing.T) {
	r := NewRegistry()
	a := r.MustRegister("Models")
	b := r.MustRegister("models")

	require.NotSame(t, a, b)
	require.Equal(t, []string{"Models", "models"}, r.Names())
}

func TestRegistry_ConcurrentRegisterSameName(t *testing.T) {
	r := NewRegistry()

	stores := make([]*Store, 16)
	var wg sync.WaitGroup
	for i := range stores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stores[i] = r.MustRegister("shared")
		}(i)
	}
	wg.Wait()

	for _, s := range stores[1:] {
		require.Same(t, stores[0], s)
	}
}

func TestStore_StatsCountHitsAndMisses(t *testing.T) {
	r := NewRegistry()
	s := r.MustRegister("stats")

	_, _ = s.Get("k")
	s.Set("k", 1)
	_, _ = s.Get("k")
	_, _ = s.Get("k")

	stats := s.Stats()
	require.Equal(t, uint64(2), stats.Hits)
	require.Equal(t, uint64(1), stats.Misses)
}

func TestDefault_SingletonAndReset(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	first := Default()
	require.Same(t, first, Default())

	ResetDefault()
	require.NotSame(t, first, Default())
}
