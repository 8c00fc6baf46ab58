package cache

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/prism/config"
	"github.com/zjrosen/prism/internal/log"
)

func tracer() trace.Tracer {
	return otel.Tracer("github.com/zjrosen/prism/cache")
}

// Memoize implements the get, else compute-and-insert pattern against a
// store. The key must be derived from the computation's arguments by value,
// so equal arguments yield equal keys.
//
// When caching is disabled globally the computation runs every time and the
// store is left untouched. Cache misses run inside a span so expensive
// recomputation is visible when the embedding application installs a tracer
// provider.
func Memoize[V any](ctx context.Context, s *Store, key string, compute func(context.Context) (V, error)) (V, error) {
	if config.Current().DisableCaching {
		return compute(ctx)
	}

	if value, found := s.Get(key); found {
		if typed, ok := value.(V); ok {
			log.Debug(log.CatCache, "cache hit", "name", s.Name(), "key", key)
			return typed, nil
		}
		// Entry of the wrong type under this key: recompute and overwrite.
		log.Error(log.CatCache, "wrong type assertion when getting value", "name", s.Name(), "key", key)
	}

	ctx, span := tracer().Start(ctx, "cache.compute",
		trace.WithAttributes(
			attribute.String("cache.name", s.Name()),
			attribute.String("cache.key", key),
		))
	defer span.End()

	value, err := compute(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var zero V
		return zero, err
	}

	s.Set(key, value)
	log.Debug(log.CatCache, "cache miss computed", "name", s.Name(), "key", key)
	return value, nil
}
