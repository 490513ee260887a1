package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"
	"golang.org/x/sync/errgroup"

	contentDomain "github.com/allisson/coursecatalog/internal/content/domain"
	contentUseCase "github.com/allisson/coursecatalog/internal/content/usecase"
	"github.com/allisson/coursecatalog/internal/contentful"
	"github.com/allisson/coursecatalog/internal/httputil"
	customValidation "github.com/allisson/coursecatalog/internal/validation"
	"github.com/allisson/coursecatalog/internal/web"
)

// PageHandler renders the catalogue pages from the content gateway.
type PageHandler struct {
	gateway contentUseCase.Gateway
	logger  *slog.Logger
}

// NewPageHandler creates a page handler.
func NewPageHandler(gateway contentUseCase.Gateway, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		gateway: gateway,
		logger:  logger,
	}
}

// IndexHandler renders the landing page.
// GET /
func (h *PageHandler) IndexHandler(c *gin.Context) {
	page, err := h.gateway.GetLandingPage(c.Request.Context())
	if err != nil {
		httputil.HandleErrorHTML(c, err, h.logger)
		return
	}

	data := web.ViewData(c, page.String("title"))
	data["Page"] = page
	c.HTML(http.StatusOK, "index.html", data)
}

// CoursesHandler renders every course with the category navigation.
// GET /courses
func (h *PageHandler) CoursesHandler(c *gin.Context) {
	var courses []*contentful.Entry
	var categories []*contentful.Entry

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		courses, err = h.gateway.GetCourses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.gateway.GetCategories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		httputil.HandleErrorHTML(c, err, h.logger)
		return
	}

	h.renderCourses(c, "All courses", "", courses, categories)
}

// CategoryHandler renders the courses of one category.
// GET /courses/categories/:category
func (h *PageHandler) CategoryHandler(c *gin.Context) {
	category := c.Param("category")
	if err := validation.Validate(category, validation.Required, customValidation.ResourceID); err != nil {
		httputil.HandleErrorHTML(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var courses []*contentful.Entry
	var categories []*contentful.Entry

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		courses, err = h.gateway.GetCoursesByCategory(ctx, category)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.gateway.GetCategories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		httputil.HandleErrorHTML(c, err, h.logger)
		return
	}

	title := category
	for _, entry := range categories {
		if entry.Sys.ID == category && entry.String("title") != "" {
			title = entry.String("title")
			break
		}
	}

	h.renderCourses(c, title, category, courses, categories)
}

// CourseHandler renders a single course.
// GET /courses/:slug
func (h *PageHandler) CourseHandler(c *gin.Context) {
	course, err := h.gateway.GetCourse(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.HandleErrorHTML(c, err, h.logger)
		return
	}

	data := web.ViewData(c, course.String("title"))
	data["Course"] = course
	c.HTML(http.StatusOK, "course.html", data)
}

// LessonHandler answers lesson pages, which are not available.
// GET /courses/:slug/lessons/:lesson
func (h *PageHandler) LessonHandler(c *gin.Context) {
	_, err := h.gateway.GetLessons(c.Request.Context(), c.Param("slug"))
	if err == nil {
		err = contentDomain.ErrLessonsNotImplemented
	}
	httputil.HandleErrorHTML(c, err, h.logger)
}

func (h *PageHandler) renderCourses(
	c *gin.Context,
	title, category string,
	courses, categories []*contentful.Entry,
) {
	data := web.ViewData(c, title)
	data["Courses"] = courses
	data["Categories"] = categories
	data["CurrentCategory"] = category
	c.HTML(http.StatusOK, "courses.html", data)
}
