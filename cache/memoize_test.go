package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/prism/config"
)

func TestMemoize_ComputesOncePerKey(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	s := NewRegistry().MustRegister("m")

	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := Memoize(context.Background(), s, "answer", compute)
		require.NoError(t, err)
		require.Equal(t, 42, v)
	}
	require.Equal(t, 1, calls)
}

func TestMemoize_DistinctKeysComputeSeparately(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	s := NewRegistry().MustRegister("m")

	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	a, err := Memoize(context.Background(), s, "a", compute)
	require.NoError(t, err)
	b, err := Memoize(context.Background(), s, "b", compute)
	require.NoError(t, err)

	require.Equal(t, 1, a)
	require.Equal(t, 2, b)
	require.Equal(t, 2, s.Len())
}

func TestMemoize_ErrorIsNotCached(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	s := NewRegistry().MustRegister("m")

	boom := errors.New("boom")
	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 7, nil
	}

	_, err := Memoize(context.Background(), s, "k", compute)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, s.Len())

	v, err := Memoize(context.Background(), s, "k", compute)
	require.NoError(t, err)
	require.Equal(t, 7, v)
	require.Equal(t, 2, calls)
}

func TestMemoize_DisabledCachingComputesEveryTime(t *testing.T) {
	t.Cleanup(config.Reset)
	settings := config.Defaults()
	settings.DisableCaching = true
	config.Apply(settings)

	s := NewRegistry().MustRegister("m")

	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return 1, nil
	}

	_, _ = Memoize(context.Background(), s, "k", compute)
	_, _ = Memoize(context.Background(), s, "k", compute)

	require.Equal(t, 2, calls)
	require.Equal(t, 0, s.Len())
}

func TestMemoize_WrongTypeEntryIsRecomputed(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	s := NewRegistry().MustRegister("m")
	s.Set("k", "not an int")

	v, err := Memoize(context.Background(), s, "k", func(context.Context) (int, error) {
		return 5, nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, v)

	// The bad entry was overwritten with the computed value.
	raw, found := s.Get("k")
	require.True(t, found)
	require.Equal(t, 5, raw)
}

func TestMemoize_MissCreatesSpan(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Reset()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	s := NewRegistry().MustRegister("traced")

	_, err := Memoize(context.Background(), s, "k", func(context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)

	// Hit path creates no span.
	_, err = Memoize(context.Background(), s, "k", func(context.Context) (int, error) {
		return 2, nil
	})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "cache.compute", spans[0].Name())
}
