package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Loader busca o valor na origem
type Loader[T any] func(ctx context.Context) (T, error)

// TTL guarda um único valor em memória por um período. Quando a recarga falha,
// o último valor conhecido é devolvido mesmo que esteja vencido.
type TTL[T any] struct {
	mutex    sync.Mutex
	clock    clockwork.Clock
	ttl      time.Duration
	value    T
	loadedAt time.Time
	loaded   bool
}

func NewTTL[T any](ttl time.Duration, clock clockwork.Clock) *TTL[T] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TTL[T]{
		clock: clock,
		ttl:   ttl,
	}
}

// Get devolve o valor em cache enquanto válido; caso contrário chama o loader.
// O segundo retorno indica se o valor veio do cache.
func (c *TTL[T]) Get(ctx context.Context, forceRefresh bool, loader Loader[T]) (T, bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !forceRefresh && c.loaded && c.clock.Since(c.loadedAt) < c.ttl {
		return c.value, true, nil
	}

	value, err := loader(ctx)
	if err != nil {
		if c.loaded {
			return c.value, true, nil
		}
		var zero T
		return zero, false, err
	}

	c.value = value
	c.loadedAt = c.clock.Now()
	c.loaded = true

	return value, false, nil
}

// Invalidate descarta o valor guardado
func (c *TTL[T]) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var zero T
	c.value = zero
	c.loaded = false
}
