package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTL_Get(t *testing.T) {
	ctx := context.Background()
	errLoad := errors.New("falha na origem")

	tests := []struct {
		name     string
		validate func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock)
	}{
		{
			name: "Primeira leitura chama o loader",
			validate: func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock) {
				value, fromCache, err := c.Get(ctx, false, func(context.Context) ([]string, error) {
					return []string{"a"}, nil
				})
				require.NoError(t, err)
				assert.False(t, fromCache)
				assert.Equal(t, []string{"a"}, value)
			},
		},
		{
			name: "Valor dentro do TTL vem do cache",
			validate: func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock) {
				calls := 0
				loader := func(context.Context) ([]string, error) {
					calls++
					return []string{"a"}, nil
				}
				_, _, _ = c.Get(ctx, false, loader)
				clock.Advance(10 * time.Minute)
				value, fromCache, err := c.Get(ctx, false, loader)
				require.NoError(t, err)
				assert.True(t, fromCache)
				assert.Equal(t, []string{"a"}, value)
				assert.Equal(t, 1, calls)
			},
		},
		{
			name: "Valor vencido é recarregado",
			validate: func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock) {
				_, _, _ = c.Get(ctx, false, func(context.Context) ([]string, error) {
					return []string{"a"}, nil
				})
				clock.Advance(31 * time.Minute)
				value, fromCache, err := c.Get(ctx, false, func(context.Context) ([]string, error) {
					return []string{"b"}, nil
				})
				require.NoError(t, err)
				assert.False(t, fromCache)
				assert.Equal(t, []string{"b"}, value)
			},
		},
		{
			name: "Refresh forçado ignora o TTL",
			validate: func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock) {
				_, _, _ = c.Get(ctx, false, func(context.Context) ([]string, error) {
					return []string{"a"}, nil
				})
				value, fromCache, err := c.Get(ctx, true, func(context.Context) ([]string, error) {
					return []string{"b"}, nil
				})
				require.NoError(t, err)
				assert.False(t, fromCache)
				assert.Equal(t, []string{"b"}, value)
			},
		},
		{
			name: "Falha na recarga devolve o valor vencido",
			validate: func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock) {
				_, _, _ = c.Get(ctx, false, func(context.Context) ([]string, error) {
					return []string{"a"}, nil
				})
				clock.Advance(time.Hour)
				value, fromCache, err := c.Get(ctx, false, func(context.Context) ([]string, error) {
					return nil, errLoad
				})
				require.NoError(t, err)
				assert.True(t, fromCache)
				assert.Equal(t, []string{"a"}, value)
			},
		},
		{
			name: "Falha sem valor anterior devolve o erro",
			validate: func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock) {
				value, _, err := c.Get(ctx, false, func(context.Context) ([]string, error) {
					return nil, errLoad
				})
				assert.ErrorIs(t, err, errLoad)
				assert.Nil(t, value)
			},
		},
		{
			name: "Invalidate força nova leitura",
			validate: func(t *testing.T, c *TTL[[]string], clock clockwork.FakeClock) {
				_, _, _ = c.Get(ctx, false, func(context.Context) ([]string, error) {
					return []string{"a"}, nil
				})
				c.Invalidate()
				_, _, err := c.Get(ctx, false, func(context.Context) ([]string, error) {
					return nil, errLoad
				})
				assert.ErrorIs(t, err, errLoad)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			tt.validate(t, NewTTL[[]string](30*time.Minute, clock), clock)
		})
	}
}
