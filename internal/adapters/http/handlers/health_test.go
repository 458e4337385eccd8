package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/movie-quotes/internal/adapters/memory"
	"github.com/jsamuelsen/movie-quotes/internal/domain"
	"github.com/jsamuelsen/movie-quotes/internal/mocks"
	"github.com/jsamuelsen/movie-quotes/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newHealthRouter(t *testing.T, registry ports.HealthRegistry, gatherer prometheus.Gatherer) *gin.Engine {
	t.Helper()

	engine := gin.New()
	handler := NewHealthHandler(registry, NewBuildInfo("1.2.0", "abc123", "2026-10-01T10:00:00Z"), gatherer)
	handler.RegisterHealthRoutes(engine.Group("/-"))

	return engine
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2024-01-15T10:00:00Z")

	assert.Equal(t, "1.0.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2024-01-15T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	w := serve(newHealthRouter(t, ports.NewHealthRegistry(), nil), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Run("empty store is not ready", func(t *testing.T) {
		registry := ports.NewHealthRegistry()
		require.NoError(t, registry.Register(memory.NewQuoteStore()))

		w := serve(newHealthRouter(t, registry, nil), "/-/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp readinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(ports.HealthStatusUnhealthy), resp.Status)
		assert.Equal(t, "no quotes loaded", resp.Checks["quote-store"].Message)
	})

	t.Run("loaded store is ready", func(t *testing.T) {
		store := memory.NewQuoteStore()
		store.BulkLoad(context.Background(), []domain.QuoteItem{{Quote: "A", Author: "X"}})

		registry := ports.NewHealthRegistry()
		require.NoError(t, registry.Register(store))

		w := serve(newHealthRouter(t, registry, nil), "/-/ready")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("any failing checker", func(t *testing.T) {
		checker := mocks.NewMockHealthChecker(t)
		checker.EXPECT().Name().Return("remote-corpus")
		checker.EXPECT().Check(mock.Anything).Return(assert.AnError)

		registry := ports.NewHealthRegistry()
		require.NoError(t, registry.Register(checker))

		w := serve(newHealthRouter(t, registry, nil), "/-/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "remote-corpus")
	})
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	w := serve(newHealthRouter(t, ports.NewHealthRegistry(), nil), "/-/build")

	assert.Equal(t, http.StatusOK, w.Code)

	var bi BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bi))
	assert.Equal(t, "1.2.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Metrics(t *testing.T) {
	store := memory.NewQuoteStore()
	store.BulkLoad(context.Background(), []domain.QuoteItem{{Quote: "A", Author: "X"}, {Quote: "B", Author: "Y"}})

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(store.Collector()))

	w := serve(newHealthRouter(t, ports.NewHealthRegistry(), reg), "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quotes_stored 2")
}
