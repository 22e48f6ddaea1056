package regkit_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/regkit/pkg/regkit"
)

// TestLazyConcurrentFirstGet races N goroutines on the first Get of a lazy
// entry; the underlying factory must run exactly once and every caller must
// observe the same result.
func TestLazyConcurrentFirstGet(t *testing.T) {
	const goroutines = 64

	reg := regkit.New()

	var calls atomic.Int64
	require.NoError(t, reg.Lazy("svc", func() any {
		return calls.Add(1)
	}))

	var (
		start   sync.WaitGroup
		done    sync.WaitGroup
		results [goroutines]any
	)
	start.Add(1)
	for i := 0; i < goroutines; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			v, err := reg.Get("svc")
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	start.Done()
	done.Wait()

	assert.Equal(t, int64(1), calls.Load(), "factory must run exactly once")
	for i := 0; i < goroutines; i++ {
		assert.Equal(t, int64(1), results[i])
	}
}

// TestConcurrentRegistration races goroutines registering distinct keys;
// every write must land and no entry may be lost or duplicated.
func TestConcurrentRegistration(t *testing.T) {
	const writers = 32

	reg := regkit.New()

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("svc-%d", i)
			assert.NoError(t, reg.Value(key, i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, writers, reg.Len())
	for i := 0; i < writers; i++ {
		v, err := reg.Get(fmt.Sprintf("svc-%d", i))
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

// TestConcurrentDuplicateRegistration races goroutines on one key; exactly
// one write wins.
func TestConcurrentDuplicateRegistration(t *testing.T) {
	const writers = 16

	reg := regkit.New()

	var wins atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := reg.Value("svc", i); err == nil {
				wins.Add(1)
			} else {
				assert.ErrorIs(t, err, regkit.ErrKeyExists)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load())
	assert.Equal(t, 1, reg.Len())
}

// TestFreezeVisibleToWriters races Freeze against writers: every write must
// either land before the freeze or fail with ErrFrozen, and no write may
// land after Freeze returns.
func TestFreezeVisibleToWriters(t *testing.T) {
	const writers = 32

	reg := regkit.New()

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := reg.Value(fmt.Sprintf("k-%d", i), i)
			if err != nil {
				assert.ErrorIs(t, err, regkit.ErrFrozen)
			}
		}(i)
	}
	reg.Freeze()
	wg.Wait()

	assert.True(t, reg.Frozen())
	// Whatever landed is still readable; nothing can land now.
	assert.ErrorIs(t, reg.Value("post", 1), regkit.ErrFrozen)
	for _, key := range reg.Keys() {
		_, err := reg.Get(key)
		assert.NoError(t, err)
	}
}

// TestConcurrentReads hammers Get/Has/Kind from many goroutines while the
// entries include a memoizing lazy producer. Run with -race.
func TestConcurrentReads(t *testing.T) {
	reg := regkit.New()
	require.NoError(t, reg.Value("v", 1))
	require.NoError(t, reg.Singleton("s", &struct{}{}))
	require.NoError(t, reg.Lazy("l", func() any { return "built" }))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, key := range []string{"v", "s", "l"} {
					_, err := reg.Get(key)
					assert.NoError(t, err)
					assert.True(t, reg.Has(key))
					_, ok := reg.Kind(key)
					assert.True(t, ok)
				}
			}
		}()
	}
	wg.Wait()
}
