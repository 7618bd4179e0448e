package cache

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productsKey = KeyFor(models.ResourceProducts, nil)

func constant(calls *int32, value interface{}) FetchFunc {
	return func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func TestKeyFor_CanonicalParams(t *testing.T) {
	a := KeyFor(models.ResourceProducts, url.Values{"price": {"10"}, "category": {"tools"}})
	b := KeyFor(models.ResourceProducts, url.Values{"category": {"tools"}, "price": {"10"}})

	assert.Equal(t, a, b)
	assert.Equal(t, "products?category=tools&price=10", a.String())
	assert.Equal(t, "products", productsKey.String())
	assert.Equal(t, productsKey, KeyFor(models.ResourceProducts, url.Values{}))
}

func TestFetch_ServesFreshValueFromMemory(t *testing.T) {
	c := New(time.Second)
	var calls int32

	first, err := c.Fetch(context.Background(), productsKey, constant(&calls, "v1"))
	require.NoError(t, err)
	second, err := c.Fetch(context.Background(), productsKey, constant(&calls, "v2"))
	require.NoError(t, err)

	assert.Equal(t, "v1", first)
	assert.Equal(t, "v1", second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_ConcurrentCallersShareOneRequest(t *testing.T) {
	c := New(time.Second)
	var calls int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{"Widget"}, nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]interface{}, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Fetch(context.Background(), productsKey, fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, []string{"Widget"}, v)
	}
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	c := New(time.Second)
	var calls int32
	c.Set(productsKey, "old")

	c.Invalidate(productsKey)

	_, ok := c.Get(productsKey)
	assert.False(t, ok)
	v, stale, ok := c.Peek(productsKey)
	require.True(t, ok)
	assert.True(t, stale)
	assert.Equal(t, "old", v)

	v, err := c.Fetch(context.Background(), productsKey, constant(&calls, "new"))
	require.NoError(t, err)
	assert.Equal(t, "new", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, stale, _ = c.Peek(productsKey)
	assert.False(t, stale)
}

func TestInvalidateResource_CoversEveryParamSet(t *testing.T) {
	c := New(time.Second)
	tools := KeyFor(models.ResourceProducts, url.Values{"category": {"tools"}})
	accounts := KeyFor(models.ResourceAccounts, nil)
	c.Set(productsKey, 1)
	c.Set(tools, 2)
	c.Set(accounts, 3)

	c.InvalidateResource(models.ResourceProducts)

	_, ok := c.Get(productsKey)
	assert.False(t, ok)
	_, ok = c.Get(tools)
	assert.False(t, ok)
	_, ok = c.Get(accounts)
	assert.True(t, ok)
}

func TestFetch_FailureKeepsPreviousValue(t *testing.T) {
	c := New(time.Second)
	c.Set(productsKey, "old")
	c.Invalidate(productsKey)
	boom := errors.New("boom")

	_, err := c.Fetch(context.Background(), productsKey, func(ctx context.Context) (interface{}, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	v, stale, ok := c.Peek(productsKey)
	require.True(t, ok)
	assert.True(t, stale)
	assert.Equal(t, "old", v)
}

func TestFetch_InvalidatedDuringFlightStaysStale(t *testing.T) {
	c := New(time.Second)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan interface{})

	go func() {
		v, _ := c.Fetch(context.Background(), productsKey, func(ctx context.Context) (interface{}, error) {
			close(started)
			<-release
			return "before-mutation", nil
		})
		done <- v
	}()

	<-started
	c.Invalidate(productsKey)
	close(release)

	assert.Equal(t, "before-mutation", <-done)
	v, stale, ok := c.Peek(productsKey)
	require.True(t, ok)
	assert.True(t, stale)
	assert.Equal(t, "before-mutation", v)

	var calls int32
	v, err := c.Fetch(context.Background(), productsKey, constant(&calls, "after-mutation"))
	require.NoError(t, err)
	assert.Equal(t, "after-mutation", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_CallerCancelDoesNotAbortSharedFetch(t *testing.T) {
	c := New(time.Second)
	release := make(chan struct{})
	started := make(chan struct{})
	var fetchErr atomic.Value

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_, _ = c.Fetch(ctx, productsKey, func(fctx context.Context) (interface{}, error) {
			close(started)
			<-release
			if fctx.Err() != nil {
				fetchErr.Store(fctx.Err())
			}
			return "value", nil
		})
	}()

	<-started
	cancel()
	close(release)

	require.Eventually(t, func() bool {
		_, ok := c.Get(productsKey)
		return ok
	}, time.Second, 5*time.Millisecond)
	assert.Nil(t, fetchErr.Load())
}

func TestFetch_TimeoutBoundsBackendCall(t *testing.T) {
	c := New(20 * time.Millisecond)

	_, err := c.Fetch(context.Background(), productsKey, func(ctx context.Context) (interface{}, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, c.Len())
}

func TestClose_RejectsFetchesAndDropsEntries(t *testing.T) {
	c := New(time.Second)
	var calls int32
	c.Set(productsKey, "v")

	c.Close()

	assert.Equal(t, 0, c.Len())
	_, err := c.Fetch(context.Background(), productsKey, constant(&calls, "v"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.Zero(t, atomic.LoadInt32(&calls))

	c.Set(productsKey, "ignored")
	_, _, ok := c.Peek(productsKey)
	assert.False(t, ok)
}

func TestQuery_Typed(t *testing.T) {
	c := New(time.Second)

	products, err := Query(context.Background(), c, productsKey, func(ctx context.Context) ([]models.Product, error) {
		return []models.Product{{ID: 1, Name: "Widget"}}, nil
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)

	_, err = Query(context.Background(), c, productsKey, func(ctx context.Context) ([]models.Account, error) {
		return nil, nil
	})
	assert.Error(t, err)
}
