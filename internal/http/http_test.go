package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authRepository "github.com/slalom/capabilities/internal/auth/repository"
	authService "github.com/slalom/capabilities/internal/auth/service"
	authUC "github.com/slalom/capabilities/internal/auth/usecase"
	catalogDomain "github.com/slalom/capabilities/internal/catalog/domain"
	catalogHTTP "github.com/slalom/capabilities/internal/catalog/http"
	catalogRepository "github.com/slalom/capabilities/internal/catalog/repository"
	catalogUC "github.com/slalom/capabilities/internal/catalog/usecase"
	"github.com/slalom/capabilities/internal/config"
	"github.com/slalom/capabilities/internal/metrics"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// practiceLeadsFixture holds one practice lead whose password is
// "CloudLead2024!", hashed with SHA-256.
const practiceLeadsFixture = `{
  "practice_leads": [
    {
      "username": "sarah.mitchell@slalom.com",
      "password_hash": "db7df292b830aa1e36d0d2c34f3be8050aa59c7cbd34e94aebf9c8aa54b913f5",
      "role": "practice_lead"
    }
  ]
}`

// createTestDependencies wires a real registry stack backed by temp files.
func createTestDependencies(t *testing.T) Dependencies {
	t.Helper()

	staticDir := t.TempDir()
	indexPath := filepath.Join(staticDir, "index.html")
	require.NoError(t, os.WriteFile(indexPath, []byte("<html><body>Capability Registry</body></html>"), 0o600))

	leadsPath := filepath.Join(t.TempDir(), "practice_leads.json")
	require.NoError(t, os.WriteFile(leadsPath, []byte(practiceLeadsFixture), 0o600))

	accountRepo, err := authRepository.NewJSONAccountRepository(leadsPath)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	capabilityRepo := catalogRepository.NewMemoryCapabilityRepository(catalogDomain.SeedCapabilities())
	capabilityUseCase := catalogUC.NewCapabilityUseCase(capabilityRepo)

	return Dependencies{
		Config: &config.Config{
			ServerHost: "localhost",
			ServerPort: 8080,
			StaticDir:  staticDir,
		},
		AuthUseCase:       authUC.NewAuthUseCase(accountRepo, authService.NewPasswordService()),
		CapabilityHandler: catalogHTTP.NewCapabilityHandler(capabilityUseCase, logger),
	}
}

// createTestServer creates a full server with a discarding logger.
func createTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(createTestDependencies(t), "localhost", 0, logger)
}

// TestHealthHandler tests the health check endpoint handler.
func TestHealthHandler(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "healthy", response["status"])
}

// TestReadinessHandler_Ready tests the readiness endpoint on a running server.
func TestReadinessHandler_Ready(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	server.readinessHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ready", response["status"])
}

// TestReadinessHandler_NotReadyAfterShutdown tests that readiness flips once
// shutdown starts.
func TestReadinessHandler_NotReadyAfterShutdown(t *testing.T) {
	server := createTestServer(t)

	require.NoError(t, server.Shutdown(context.Background()))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

	server.readinessHandler(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "not_ready", response["status"])
}

// TestCustomLoggerMiddleware tests the custom logging middleware.
func TestCustomLoggerMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/capabilities", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/capabilities?email=carol@slalom.com", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "test", response["message"])
}

// TestRecoveryMiddleware tests Gin's built-in recovery middleware.
func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)

	// Should not panic - Recovery middleware catches it
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestRequestIDMiddleware_HeaderPresent verifies X-Request-Id header is present in response.
func TestRequestIDMiddleware_HeaderPresent(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	requestID := w.Header().Get("X-Request-Id")
	assert.NotEmpty(t, requestID, "X-Request-Id header should be present")

	// Verify it's a valid UUID
	parsedUUID, err := uuid.Parse(requestID)
	require.NoError(t, err, "X-Request-Id should be a valid UUID")
	assert.NotEqual(t, uuid.Nil, parsedUUID, "X-Request-Id should not be nil UUID")
}

// TestRouter_RootRedirectsToStaticIndex tests the front end redirect.
func TestRouter_RootRedirectsToStaticIndex(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/static/index.html", w.Header().Get("Location"))
}

// TestRouter_ServesStaticAssets tests that static files come from the
// configured directory.
func TestRouter_ServesStaticAssets(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/static/index.html", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Capability Registry")
}

// TestRouter_CapabilityListIsOpen tests that the catalog needs no credentials.
func TestRouter_CapabilityListIsOpen(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/capabilities", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response, 9)

	cloudArchitecture, ok := response["Cloud Architecture"]
	require.True(t, ok)
	assert.Equal(t, "Technology", cloudArchitecture["practice_area"])
}

// TestRouter_RegisterRequiresCredentials tests that roster changes without
// credential headers are rejected.
func TestRouter_RegisterRequiresCredentials(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/capabilities/Cloud%20Architecture/register?email=carol@slalom.com", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestRouter_RegisterRejectsUnknownCredentials tests that wrong credentials
// are rejected with 403.
func TestRouter_RegisterRejectsUnknownCredentials(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/capabilities/Cloud%20Architecture/register?email=carol@slalom.com", nil)
	req.Header.Set("X-Username", "sarah.mitchell@slalom.com")
	req.Header.Set("X-Password", "wrong-password")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// TestRouter_RegisterWithValidCredentials tests the whole register path
// through routing, authentication, and the catalog.
func TestRouter_RegisterWithValidCredentials(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/capabilities/Cloud%20Architecture/register?email=carol@slalom.com", nil)
	req.Header.Set("X-Username", "sarah.mitchell@slalom.com")
	req.Header.Set("X-Password", "CloudLead2024!")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Registered carol@slalom.com for Cloud Architecture"}`, w.Body.String())
}

// TestRouter_UnregisterWithValidCredentials tests the whole unregister path.
func TestRouter_UnregisterWithValidCredentials(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/capabilities/Cloud%20Architecture/unregister?email=alice.smith@slalom.com", nil)
	req.Header.Set("X-Username", "sarah.mitchell@slalom.com")
	req.Header.Set("X-Password", "CloudLead2024!")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Unregistered alice.smith@slalom.com from Cloud Architecture"}`, w.Body.String())
}

// TestRouter_RegisterCapabilityNameWithSlash tests that an encoded slash in a
// capability name routes to the single name parameter instead of 404ing.
func TestRouter_RegisterCapabilityNameWithSlash(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/capabilities/UX%2FUI%20Design/register?email=carol@slalom.com", nil)
	req.Header.Set("X-Username", "sarah.mitchell@slalom.com")
	req.Header.Set("X-Password", "CloudLead2024!")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Registered carol@slalom.com for UX/UI Design"}`, w.Body.String())
}

// TestRouter_RateLimitAppliesToProtectedRoutes tests that the per-client
// limiter runs before authentication on roster routes.
func TestRouter_RateLimitAppliesToProtectedRoutes(t *testing.T) {
	deps := createTestDependencies(t)
	deps.Config.RateLimitEnabled = true
	deps.Config.RateLimitRequestsPerSec = 1.0
	deps.Config.RateLimitBurst = 1

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(deps, "localhost", 0, logger)

	// First request consumes the burst even though it lacks credentials.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/capabilities/Cybersecurity/register?email=carol@slalom.com", nil)
	server.GetHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/capabilities/Cybersecurity/register?email=carol@slalom.com", nil)
	server.GetHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

// TestRouter_NotFoundEndpoint tests 404 handling.
func TestRouter_NotFoundEndpoint(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestServer_NoMetricsEndpoint tests that the main server does NOT expose /metrics.
func TestServer_NoMetricsEndpoint(t *testing.T) {
	server := createTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestServer_ShutdownGracefully tests graceful server shutdown.
func TestServer_ShutdownGracefully(t *testing.T) {
	server := createTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Give server time to start
	time.Sleep(100 * time.Millisecond)

	// Shutdown server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	assert.NoError(t, err)

	// Verify no startup errors
	select {
	case err := <-errChan:
		t.Fatalf("server startup failed: %v", err)
	default:
		// No error, good
	}
}

// TestMetricsServer_Endpoints tests the metrics server endpoints.
func TestMetricsServer_Endpoints(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider, err := metrics.NewProvider("capabilities_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 0, logger, provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsServer.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
