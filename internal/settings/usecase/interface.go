// Package usecase validates submitted content API credentials by probing the
// delivery and preview endpoints and reports field-scoped errors.
package usecase

import (
	"context"

	"github.com/allisson/coursecatalog/internal/contentful"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
)

// CredentialProber fetches the space descriptor of space through api with
// token. Failures carry a *contentful.APIError when a response was received.
type CredentialProber interface {
	Probe(ctx context.Context, api contentful.API, space, token string) (*contentful.Space, error)
}

// SpaceReader resolves the space the application is currently connected to.
type SpaceReader interface {
	Space(ctx context.Context) (*contentful.Space, error)
}

// SettingsUseCase defines the settings page business logic.
type SettingsUseCase interface {
	// Validate checks presence of every field, probes the submitted
	// credentials and returns the aggregated outcome. It never fails:
	// every probe failure becomes a field error.
	Validate(ctx context.Context, input settingsDomain.SubmitInput) *settingsDomain.ValidationOutcome

	// ConnectedSpace returns the currently connected space, or nil when it
	// cannot be resolved.
	ConnectedSpace(ctx context.Context) *contentful.Space
}
