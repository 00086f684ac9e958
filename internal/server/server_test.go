package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubHealth struct {
	err error
}

func (s stubHealth) Ping(ctx context.Context) error {
	return s.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		health         HealthChecker
		expectedStatus int
	}{
		{name: "no database", health: nil, expectedStatus: http.StatusOK},
		{name: "database reachable", health: stubHealth{}, expectedStatus: http.StatusOK},
		{name: "database unreachable", health: stubHealth{err: errors.New("connection refused")}, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New("127.0.0.1:0", tc.health, "release", nil)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, req)

			require.Equal(t, tc.expectedStatus, resp.Code)
		})
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	s := New("127.0.0.1:0", nil, "release", []string{"http://localhost:5173"})
	s.Engine.POST("/api/login", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Equal(t, "http://localhost:5173", resp.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp = httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)

	require.Equal(t, http.StatusForbidden, resp.Code)
	require.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := New("127.0.0.1:0", nil, "release", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}
