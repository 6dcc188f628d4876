package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scriptmerge/internal/adapters/watcher"
)

// recorder collects debouncer callbacks.
type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) get() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/p/src/b.vue")
		time.Sleep(50 * time.Millisecond)
		d.Add("/p/src/a.js")
		d.Add("/p/src/b.vue")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		batches := rec.get()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/p/src/a.js", "/p/src/b.vue"}, batches[0])
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/p/one.js")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/p/two.js")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/p/one.js"}, {"/p/two.js"}}, rec.get())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(time.Hour, rec.record)

		d.Add("/p/x.js")
		d.Flush()

		assert.Equal(t, [][]string{{"/p/x.js"}}, rec.get())

		d.Flush()
		assert.Len(t, rec.get(), 1, "nothing pending")
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/p/x.js")
		d.Stop()

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.get())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/p/x.js")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
