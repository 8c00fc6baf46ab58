package structures

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazyCaseInsensitiveMap_DeferredEvaluatesOnFirstGet(t *testing.T) {
	m := NewLazyCaseInsensitiveMap[int]()

	var calls int32
	m.SetDeferred("Hernandez", func() int {
		atomic.AddInt32(&calls, 1)
		return 2
	})
	m.Set("McCamy", 1)

	require.Equal(t, int32(0), atomic.LoadInt32(&calls))

	v, ok := m.Get("hernandez")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Subsequent reads return the memoized result without re-invoking.
	for i := 0; i < 5; i++ {
		v, ok = m.Get("HERNANDEZ")
		require.True(t, ok)
		require.Equal(t, 2, v)
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLazyCaseInsensitiveMap_ContainsDoesNotForce(t *testing.T) {
	m := NewLazyCaseInsensitiveMap[int]()

	var calls int32
	m.SetDeferred("Judd", func() int {
		atomic.AddInt32(&calls, 1)
		return 7
	})

	require.True(t, m.Contains("judd"))
	require.True(t, m.Contains("JUDD"))
	require.False(t, m.Resolved("Judd"))
	require.Equal(t, int32(0), atomic.LoadInt32(&calls))

	_, _ = m.Get("Judd")
	require.True(t, m.Resolved("judd"))
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLazyCaseInsensitiveMap_ConcurrentGetEvaluatesOnce(t *testing.T) {
	m := NewLazyCaseInsensitiveMap[int]()

	var calls int32
	m.SetDeferred("Planck", func() int {
		atomic.AddInt32(&calls, 1)
		return 42
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := m.Get("planck")
			require.True(t, ok)
			require.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLazyCaseInsensitiveMap_ResolutionKeepsDisplayCase(t *testing.T) {
	m := NewLazyCaseInsensitiveMap[int]()
	m.SetDeferred("Ohno", func() int { return 1 })

	_, _ = m.Get("OHNO")
	require.Equal(t, []string{"Ohno"}, m.Keys())
}

func TestLazyCaseInsensitiveMap_DeleteAndLen(t *testing.T) {
	m := NewLazyCaseInsensitiveMap[string]()
	m.Set("A", "a")
	m.SetDeferred("B", func() string { return "b" })

	require.Equal(t, 2, m.Len())
	require.True(t, m.Delete("a"))
	require.Equal(t, 1, m.Len())

	_, ok := m.Get("A")
	require.False(t, ok)
}
