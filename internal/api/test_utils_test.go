package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/config"
	"github.com/gramin-samriddhi/backend/internal/middleware"
	"github.com/gramin-samriddhi/backend/internal/models"
	"github.com/gramin-samriddhi/backend/internal/service"
	"github.com/gramin-samriddhi/backend/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	deps   Dependencies
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires every route against SQLite with the simulated delays switched off
func newTestServer(t *testing.T, override func(*Dependencies)) *testServer {
	t.Helper()

	db := testhelpers.SetupSQLiteDatabase(t)
	logger := zap.NewNop()
	authService := service.NewAuthService(db, testJWTSecret, time.Hour, nil, logger)

	deps := Dependencies{
		DB:              db,
		Auth:            authService,
		Profiles:        service.NewProfileService(service.NewGormFarmerStore(db), logger),
		Detection:       service.NewDetectionService(0, 1024, logger),
		Recommendations: service.NewRecommendationService(0, logger),
		Dashboard:       service.NewDashboardService(logger),
		Sessions:        middleware.NewSessionManager("test-session-secret", false, time.Hour),
		Manifest:        config.DefaultMobileManifest(),
		Logger:          logger,
	}
	if override != nil {
		override(&deps)
	}

	router := gin.New()
	RegisterRoutes(router, deps)
	return &testServer{router: router, db: db, auth: authService, deps: deps}
}

// signIn creates a user and returns a bearer token for it
func (s *testServer) signIn(t *testing.T, email string) (*models.User, string) {
	t.Helper()
	user := testhelpers.CreateTestUser(t, s.db, email, "password123")
	token, _, err := s.auth.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, w.Code, w.Body.String())
}
