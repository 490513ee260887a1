package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/coursecatalog/internal/config"
	contentHTTP "github.com/allisson/coursecatalog/internal/content/http"
	contentUseCase "github.com/allisson/coursecatalog/internal/content/usecase"
	contentMocks "github.com/allisson/coursecatalog/internal/content/usecase/mocks"
	"github.com/allisson/coursecatalog/internal/contentful"
	"github.com/allisson/coursecatalog/internal/metrics"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
	settingsHTTP "github.com/allisson/coursecatalog/internal/settings/http"
	settingsMocks "github.com/allisson/coursecatalog/internal/settings/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestServer creates a test server with a discarding logger.
func createTestServer(readiness ReadinessChecker) *Server {
	return NewServer(readiness, "localhost", 8080, discardLogger())
}

type fullRouter struct {
	server   *Server
	gateway  *contentMocks.MockGateway
	settings *settingsMocks.MockSettingsUseCase
}

// createFullRouter wires the complete router over mocked use cases.
func createFullRouter(t *testing.T, cfg *config.Config) *fullRouter {
	t.Helper()

	gateway := contentMocks.NewMockGateway(t)
	settingsUseCase := settingsMocks.NewMockSettingsUseCase(t)
	logger := discardLogger()

	server := NewServer(gateway, "localhost", 8080, logger)
	store := settingsHTTP.NewCookieStore(false, logger)
	err := server.SetupRouter(
		t.Context(),
		cfg,
		contentHTTP.NewPageHandler(gateway, logger),
		settingsHTTP.NewSettingsHandler(settingsUseCase, store, logger),
		store,
		nil,
	)
	require.NoError(t, err)

	return &fullRouter{server: server, gateway: gateway, settings: settingsUseCase}
}

func (r *fullRouter) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.server.GetHandler().ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer(nil)

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

func TestReadinessHandler(t *testing.T) {
	readinessResponse := func(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		components, ok := response["components"].(map[string]interface{})
		require.True(t, ok)
		return response["status"].(string), components["content_api"].(string)
	}

	t.Run("Error_NilChecker", func(t *testing.T) {
		server := createTestServer(nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		status, component := readinessResponse(t, w)
		assert.Equal(t, "not_ready", status)
		assert.Equal(t, "error", component)
	})

	t.Run("Error_SpaceUnreachable", func(t *testing.T) {
		gateway := contentMocks.NewMockGateway(t)
		gateway.On("Space", mock.Anything).Return(nil, errors.New("connection refused")).Once()
		server := createTestServer(gateway)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		status, component := readinessResponse(t, w)
		assert.Equal(t, "not_ready", status)
		assert.Equal(t, "error", component)
	})

	t.Run("Success_SpaceResolved", func(t *testing.T) {
		gateway := contentMocks.NewMockGateway(t)
		gateway.On("Space", mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline
		})).Return(&contentful.Space{Name: "University"}, nil).Once()
		server := createTestServer(gateway)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

		server.readinessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		status, component := readinessResponse(t, w)
		assert.Equal(t, "ready", status)
		assert.Equal(t, "ok", component)
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test?api=cpa", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/test?api=cpa", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
}

func TestCustomLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusNotFound, level: "WARN"},
		{status: http.StatusInternalServerError, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf strings.Builder
			router := gin.New()
			router.Use(CustomLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil))))
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.status)
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
			assert.Equal(t, tt.level, entry["level"])
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSetupRouter(t *testing.T) {
	cfg := &config.Config{RateLimitSettingsEnabled: false}

	t.Run("Success_HealthEndpoint", func(t *testing.T) {
		r := createFullRouter(t, cfg)

		w := r.do(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("Success_ReadyEndpoint", func(t *testing.T) {
		r := createFullRouter(t, cfg)
		r.gateway.On("Space", mock.Anything).Return(&contentful.Space{Name: "University"}, nil).Once()

		w := r.do(httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_UnknownRouteRendersNotFoundPage", func(t *testing.T) {
		r := createFullRouter(t, cfg)

		w := r.do(httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "404 Not Found")
	})

	t.Run("Success_CoursesPageUsesPreviewAPI", func(t *testing.T) {
		r := createFullRouter(t, cfg)
		previewCtx := mock.MatchedBy(func(ctx context.Context) bool {
			return contentUseCase.APIFromContext(ctx) == contentful.APIPreview
		})
		r.gateway.On("GetCourses", previewCtx).Return([]*contentful.Entry{}, nil).Once()
		r.gateway.On("GetCategories", previewCtx).Return([]*contentful.Entry{}, nil).Once()

		w := r.do(httptest.NewRequest(http.MethodGet, "/courses?api=cpa", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success_CategoryRouteDoesNotShadowCourse", func(t *testing.T) {
		r := createFullRouter(t, cfg)
		r.gateway.On("GetCourse", mock.Anything, "hello-world").
			Return(&contentful.Entry{Fields: map[string]any{"title": "Hello world"}}, nil).
			Once()

		w := r.do(httptest.NewRequest(http.MethodGet, "/courses/hello-world", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hello world")
	})

	t.Run("Success_SettingsPageReadsCookie", func(t *testing.T) {
		r := createFullRouter(t, cfg)
		r.settings.On("ConnectedSpace", mock.Anything).Return(nil).Once()

		cookie, err := json.Marshal(settingsDomain.CredentialSet{Space: "cookie-space", CDA: "cda", CPA: "cpa"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/settings", nil)
		req.AddCookie(&http.Cookie{Name: settingsDomain.CookieName, Value: url.QueryEscape(string(cookie))})

		w := r.do(req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cookie-space")
	})

	t.Run("Success_SettingsPostRateLimited", func(t *testing.T) {
		limited := &config.Config{
			RateLimitSettingsEnabled:        true,
			RateLimitSettingsRequestsPerSec: 0.001,
			RateLimitSettingsBurst:          1,
		}
		r := createFullRouter(t, limited)
		outcome := settingsDomain.NewOutcome(settingsDomain.CredentialSet{}, nil)
		r.settings.On("Validate", mock.Anything, mock.Anything).Return(outcome).Once()
		r.settings.On("ConnectedSpace", mock.Anything).Return(nil).Twice()

		post := func() *httptest.ResponseRecorder {
			form := url.Values{"space": {"space"}, "cda": {"cda"}, "cpa": {"cpa"}}
			req := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			return r.do(req)
		}

		assert.Equal(t, http.StatusOK, post().Code)
		assert.Equal(t, http.StatusTooManyRequests, post().Code)
	})
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server := createTestServer(nil)
	server.router = gin.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	assert.NoError(t, err)

	select {
	case err := <-errChan:
		t.Fatalf("server startup failed: %v", err)
	default:
	}
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsServer.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	w = httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsServer_NilProvider(t *testing.T) {
	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), nil)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_NoMetricsEndpoint(t *testing.T) {
	r := createFullRouter(t, &config.Config{MetricsEnabled: true})

	w := r.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
