package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"backoffice/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCounter_CountsByMethod(t *testing.T) {
	counter := middleware.NewRequestCounter()
	app := fiber.New()
	app.Use(counter.Handler())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Post("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, int64(4), counter.Count(middleware.TotalKey))
	assert.Equal(t, int64(3), counter.Count(http.MethodGet))
	assert.Equal(t, int64(1), counter.Count(http.MethodPost))
	assert.Equal(t, int64(0), counter.Count(http.MethodDelete))
	assert.Equal(t, map[string]int64{"total": 4, "GET": 3, "POST": 1}, counter.Snapshot())
}

func TestRequestCounter_ConcurrentIncrements(t *testing.T) {
	counter := middleware.NewRequestCounter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Increment("k")
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), counter.Count("k"))
}
