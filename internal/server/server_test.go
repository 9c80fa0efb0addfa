package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/config"
	"github.com/gramin-samriddhi/backend/internal/api"
	"github.com/gramin-samriddhi/backend/internal/mocks"
	"github.com/gramin-samriddhi/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupSQLiteDatabase(t)

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: "0", AllowedOrigins: []string{"capacitor://localhost"}}
	srv := New(cfg, api.Dependencies{DB: db, Auth: new(mocks.MockAuthService)}, zap.NewNop())
	require.NotNil(t, srv)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewWithoutOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: "0"}
	var srv *Server
	require.NotPanics(t, func() {
		srv = New(cfg, api.Dependencies{Auth: new(mocks.MockAuthService)}, zap.NewNop())
	})
	require.NotNil(t, srv)
}

func TestStartAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: "0", AllowedOrigins: []string{"capacitor://localhost"}}
	srv := New(cfg, api.Dependencies{Auth: new(mocks.MockAuthService)}, zap.NewNop())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	// give ListenAndServe a moment to bind
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
