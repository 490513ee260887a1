package usecase

import (
	"context"
	"time"

	"github.com/allisson/coursecatalog/internal/content/domain"
	"github.com/allisson/coursecatalog/internal/contentful"
	"github.com/allisson/coursecatalog/internal/metrics"
)

// gatewayWithMetrics decorates Gateway with metrics instrumentation.
type gatewayWithMetrics struct {
	next    Gateway
	metrics metrics.BusinessMetrics
}

// NewGatewayWithMetrics wraps a Gateway with metrics recording.
func NewGatewayWithMetrics(gateway Gateway, m metrics.BusinessMetrics) Gateway {
	return &gatewayWithMetrics{
		next:    gateway,
		metrics: m,
	}
}

func (g *gatewayWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, metrics.DomainContent, operation, status)
	g.metrics.RecordDuration(ctx, metrics.DomainContent, operation, time.Since(start), status)
}

// Initialize records metrics for gateway initialization.
func (g *gatewayWithMetrics) Initialize(cfg *domain.Config) error {
	start := time.Now()
	err := g.next.Initialize(cfg)
	g.record(context.Background(), "gateway_initialize", start, err)
	return err
}

// Space records metrics for space descriptor lookups.
func (g *gatewayWithMetrics) Space(ctx context.Context) (*contentful.Space, error) {
	start := time.Now()
	space, err := g.next.Space(ctx)
	g.record(ctx, "space_get", start, err)
	return space, err
}

// GetCourses records metrics for course listing.
func (g *gatewayWithMetrics) GetCourses(ctx context.Context) ([]*contentful.Entry, error) {
	start := time.Now()
	entries, err := g.next.GetCourses(ctx)
	g.record(ctx, "courses_list", start, err)
	return entries, err
}

// GetLandingPage records metrics for landing page lookups.
func (g *gatewayWithMetrics) GetLandingPage(ctx context.Context) (*contentful.Entry, error) {
	start := time.Now()
	entry, err := g.next.GetLandingPage(ctx)
	g.record(ctx, "landing_page_get", start, err)
	return entry, err
}

// GetCourse records metrics for course lookups.
func (g *gatewayWithMetrics) GetCourse(ctx context.Context, slug string) (*contentful.Entry, error) {
	start := time.Now()
	entry, err := g.next.GetCourse(ctx, slug)
	g.record(ctx, "course_get", start, err)
	return entry, err
}

// GetLessons records metrics for lesson lookups.
func (g *gatewayWithMetrics) GetLessons(ctx context.Context, courseID string) ([]*contentful.Entry, error) {
	start := time.Now()
	entries, err := g.next.GetLessons(ctx, courseID)
	g.record(ctx, "lessons_list", start, err)
	return entries, err
}

// GetCategories records metrics for category listing.
func (g *gatewayWithMetrics) GetCategories(ctx context.Context) ([]*contentful.Entry, error) {
	start := time.Now()
	entries, err := g.next.GetCategories(ctx)
	g.record(ctx, "categories_list", start, err)
	return entries, err
}

// GetCoursesByCategory records metrics for per-category course listing.
func (g *gatewayWithMetrics) GetCoursesByCategory(
	ctx context.Context,
	category string,
) ([]*contentful.Entry, error) {
	start := time.Now()
	entries, err := g.next.GetCoursesByCategory(ctx, category)
	g.record(ctx, "courses_by_category_list", start, err)
	return entries, err
}
