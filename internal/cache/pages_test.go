package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPages(t *testing.T) *Pages {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPages(client)
}

func TestPagesSetGet(t *testing.T) {
	p := newTestPages(t)
	ctx := context.Background()

	assert.Equal(t, "", p.Get(ctx, "/"))

	p.Set(ctx, "/", "<html>listing</html>")
	assert.Equal(t, "<html>listing</html>", p.Get(ctx, "/"))
}

func TestPagesInvalidate(t *testing.T) {
	p := newTestPages(t)
	ctx := context.Background()

	p.Set(ctx, "/", "listing")
	p.Set(ctx, "/recipes/1", "detail")
	require.Equal(t, "listing", p.Get(ctx, "/"))

	p.Invalidate(ctx, "/", "/recipes/1")
	assert.Equal(t, "", p.Get(ctx, "/"))
	assert.Equal(t, "", p.Get(ctx, "/recipes/1"))
}

func TestPagesInvalidateOnlyNamedPaths(t *testing.T) {
	p := newTestPages(t)
	ctx := context.Background()

	p.Set(ctx, "/", "listing")
	p.Set(ctx, "/recipes/1", "detail")

	// A like invalidates the detail page only.
	p.Invalidate(ctx, "/recipes/1")
	assert.Equal(t, "listing", p.Get(ctx, "/"))
	assert.Equal(t, "", p.Get(ctx, "/recipes/1"))
}

func TestPagesNilClient(t *testing.T) {
	p := NewPages(nil)
	ctx := context.Background()

	p.Set(ctx, "/", "listing")
	assert.Equal(t, "", p.Get(ctx, "/"))
	p.Invalidate(ctx, "/")
}
