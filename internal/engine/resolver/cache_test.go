package resolver_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/engine/resolver"
)

func TestCache_LoadOrStoreKeepsFirstEntry(t *testing.T) {
	c := resolver.NewCache()

	got, loaded := c.LoadOrStore("/a.vue", domain.NotFound)
	assert.False(t, loaded)
	assert.Equal(t, domain.NotFound, got)

	got, loaded = c.LoadOrStore("/a.vue", domain.Resolved("/a.js"))
	assert.True(t, loaded)
	assert.Equal(t, domain.NotFound, got)

	cached, ok := c.Get("/a.vue")
	assert.True(t, ok)
	assert.Equal(t, domain.NotFound, cached)
	assert.Equal(t, 1, c.Len())
}

func TestCache_GetOrResolve(t *testing.T) {
	c := resolver.NewCache()
	var calls atomic.Int64
	resolve := func(path string) domain.Resolution {
		calls.Add(1)
		return domain.Resolved(path + ".js")
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			res := c.GetOrResolve("/x.vue", resolve)
			assert.Equal(t, domain.Resolved("/x.vue.js"), res)
		})
	}
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())

	res := c.GetOrResolve("/y.vue", resolve)
	assert.True(t, res.Found)
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 2, c.Len())
}
