package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/internal/repositories"
	"backoffice/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type discardPublisher struct{}

func (discardPublisher) PublishEvent(rabbitmq.Event) error { return nil }

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repositories.OpenDatabase("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		events string
	}{
		{name: "without_broker", opts: Options{}, events: "disabled"},
		{name: "with_broker", opts: Options{Publisher: discardPublisher{}}, events: "enabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.DB = openDB(t)
			app := New(tt.opts)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var status map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
			assert.Equal(t, "healthy", status["status"])
			assert.Equal(t, tt.events, status["events"])
		})
	}
}

func TestNumberOfRequests(t *testing.T) {
	app := New(Options{DB: openDB(t)})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	_, err = app.Test(req)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/number-of-requests", nil))
	require.NoError(t, err)
	var counts map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&counts))

	assert.Equal(t, int64(3), counts["total"])
	assert.Equal(t, int64(2), counts["GET"])
	assert.Equal(t, int64(1), counts["POST"])
}

func TestCORSPreflight(t *testing.T) {
	app := New(Options{DB: openDB(t), CORSOrigins: "*"})

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PUT")
}
