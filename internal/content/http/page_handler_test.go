package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contentDomain "github.com/allisson/coursecatalog/internal/content/domain"
	contentUseCase "github.com/allisson/coursecatalog/internal/content/usecase"
	"github.com/allisson/coursecatalog/internal/content/usecase/mocks"
	"github.com/allisson/coursecatalog/internal/contentful"
	"github.com/allisson/coursecatalog/internal/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(t *testing.T, gateway contentUseCase.Gateway) *gin.Engine {
	t.Helper()

	tmpl, err := web.LoadTemplates()
	require.NoError(t, err)

	handler := NewPageHandler(gateway, slog.Default())

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(APIMiddleware())
	router.GET("/", handler.IndexHandler)
	router.GET("/courses", handler.CoursesHandler)
	router.GET("/courses/categories/:category", handler.CategoryHandler)
	router.GET("/courses/:slug", handler.CourseHandler)
	router.GET("/courses/:slug/lessons/:lesson", handler.LessonHandler)
	return router
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func entry(id string, fields map[string]any) *contentful.Entry {
	return &contentful.Entry{Sys: contentful.Sys{ID: id}, Fields: fields}
}

func TestPageHandler_IndexHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		course := entry("course-1", map[string]any{"title": "Hello SDKs", "slug": "hello-sdks"})
		page := entry("landing", map[string]any{
			"title": "Contentful University",
			"contentModules": []any{
				entry("copy", map[string]any{"headline": "Welcome", "copy": "Learn *everything*"}),
				entry("highlight", map[string]any{"course": course}),
			},
		})
		gateway.On("GetLandingPage", mock.Anything).Return(page, nil).Once()

		w := get(setupRouter(t, gateway), "/")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Contentful University")
		assert.Contains(t, body, "<em>everything</em>")
		assert.Contains(t, body, `href="/courses/hello-sdks"`)
	})

	t.Run("Error_NotInitialized", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.On("GetLandingPage", mock.Anything).Return(nil, contentDomain.ErrNotInitialized).Once()

		w := get(setupRouter(t, gateway), "/")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "No space is connected")
	})
}

func TestPageHandler_CoursesHandler(t *testing.T) {
	t.Run("Success_PreviewAPI", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		previewCtx := mock.MatchedBy(func(ctx context.Context) bool {
			return contentUseCase.APIFromContext(ctx) == contentful.APIPreview
		})
		gateway.On("GetCourses", previewCtx).
			Return([]*contentful.Entry{entry("c1", map[string]any{"title": "Draft course", "slug": "draft"})}, nil).
			Once()
		gateway.On("GetCategories", previewCtx).
			Return([]*contentful.Entry{entry("sdks", map[string]any{"title": "SDKs"})}, nil).
			Once()

		w := get(setupRouter(t, gateway), "/courses?api=cpa")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Draft course")
		assert.Contains(t, body, `href="/courses/draft?api=cpa"`)
		assert.Contains(t, body, `href="/courses/categories/sdks?api=cpa"`)
	})

	t.Run("Error_RemoteFailure", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		remoteErr := &contentful.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid token"}
		gateway.On("GetCourses", mock.Anything).Return(nil, remoteErr).Maybe()
		gateway.On("GetCategories", mock.Anything).Return(nil, remoteErr).Maybe()

		w := get(setupRouter(t, gateway), "/courses")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPageHandler_CategoryHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.On("GetCoursesByCategory", mock.Anything, "sdks").
			Return([]*contentful.Entry{entry("c1", map[string]any{"title": "Hello SDKs", "slug": "hello-sdks"})}, nil).
			Once()
		gateway.On("GetCategories", mock.Anything).
			Return([]*contentful.Entry{entry("sdks", map[string]any{"title": "Software Development Kits"})}, nil).
			Once()

		w := get(setupRouter(t, gateway), "/courses/categories/sdks")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<h1>Software Development Kits</h1>")
		assert.Contains(t, w.Body.String(), "Hello SDKs")
	})

	t.Run("Error_InvalidCategory", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)

		w := get(setupRouter(t, gateway), "/courses/categories/bad%20category")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPageHandler_CourseHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		course := entry("c1", map[string]any{
			"title":       "Hello SDKs",
			"slug":        "hello-sdks",
			"description": "<img src=x onerror=alert(1)> ![x](data:image/png;base64,AAAA)",
			"lessons": []any{
				entry("l1", map[string]any{"title": "First lesson", "slug": "first"}),
			},
		})
		gateway.On("GetCourse", mock.Anything, "hello-sdks").Return(course, nil).Once()

		w := get(setupRouter(t, gateway), "/courses/hello-sdks")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Hello SDKs")
		assert.NotContains(t, body, "onerror")
		assert.NotContains(t, body, "base64")
		assert.Contains(t, body, `href="/courses/hello-sdks/lessons/first"`)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.On("GetCourse", mock.Anything, "missing").Return(nil, contentDomain.ErrEntryNotFound).Once()

		w := get(setupRouter(t, gateway), "/courses/missing")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "404 Not Found")
	})
}

func TestPageHandler_LessonHandler(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	gateway.On("GetLessons", mock.Anything, "hello-sdks").
		Return(nil, contentDomain.ErrLessonsNotImplemented).
		Once()

	w := get(setupRouter(t, gateway), "/courses/hello-sdks/lessons/first")

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
