// Package domain defines the content types, connection settings and errors of
// the course catalogue.
package domain

import (
	"github.com/allisson/coursecatalog/internal/errors"
)

// Content type ids of the remote space.
const (
	ContentTypeCourse      = "course"
	ContentTypeCategory    = "category"
	ContentTypeLandingPage = "landingPage"
)

// LinkDepth is the link resolution depth used for single-entry pages.
const LinkDepth = 10

// Content-specific error definitions.
var (
	// ErrEntryNotFound indicates no entry matched the requested slug.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "entry not found")

	// ErrNotInitialized indicates the gateway has no space connection yet.
	ErrNotInitialized = errors.Wrap(errors.ErrUnavailable, "content gateway not initialized")

	// ErrLessonsNotImplemented is returned by the lessons lookup.
	ErrLessonsNotImplemented = errors.Wrap(errors.ErrNotImplemented, "lessons lookup")
)

// Config holds the credentials of the space connection.
type Config struct {
	// Space is the space id.
	Space string
	// DeliveryToken authenticates against the delivery API.
	DeliveryToken string
	// PreviewToken authenticates against the preview API. When empty the
	// delivery token is used for both hosts.
	PreviewToken string
	// Environment is the space environment; empty means "master".
	Environment string
}

// PreviewTokenOrDefault returns the preview token, falling back to the delivery token.
func (c Config) PreviewTokenOrDefault() string {
	if c.PreviewToken != "" {
		return c.PreviewToken
	}
	return c.DeliveryToken
}
