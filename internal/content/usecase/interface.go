// Package usecase implements the content access gateway: an explicitly owned
// pair of space connections (delivery and preview) and the typed read
// operations the pages are built from.
package usecase

import (
	"context"

	"github.com/allisson/coursecatalog/internal/content/domain"
	"github.com/allisson/coursecatalog/internal/contentful"
)

// EntryReader is the subset of the remote client used by the gateway.
type EntryReader interface {
	GetSpace(ctx context.Context) (*contentful.Space, error)
	GetEntries(ctx context.Context, q *contentful.Query) (*contentful.EntryCollection, error)
}

// ClientFactory builds a remote client for one space, token and host.
type ClientFactory func(cfg contentful.ClientConfig) (EntryReader, error)

// Gateway defines the content access operations.
type Gateway interface {
	// Initialize replaces both space connections. A nil cfg uses the
	// environment-sourced defaults. Not safe to call concurrently with itself.
	Initialize(cfg *domain.Config) error
	// Space returns the descriptor of the connected space.
	Space(ctx context.Context) (*contentful.Space, error)
	GetCourses(ctx context.Context) ([]*contentful.Entry, error)
	// GetLandingPage returns the landing page entry with links resolved.
	GetLandingPage(ctx context.Context) (*contentful.Entry, error)
	// GetCourse returns the course with the given slug with links resolved.
	GetCourse(ctx context.Context, slug string) (*contentful.Entry, error)
	GetLessons(ctx context.Context, courseID string) ([]*contentful.Entry, error)
	GetCategories(ctx context.Context) ([]*contentful.Entry, error)
	// GetCoursesByCategory returns the courses whose category link targets
	// the given content type id.
	GetCoursesByCategory(ctx context.Context, category string) ([]*contentful.Entry, error)
}
