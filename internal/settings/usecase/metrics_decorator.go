package usecase

import (
	"context"
	"time"

	"github.com/allisson/coursecatalog/internal/contentful"
	"github.com/allisson/coursecatalog/internal/metrics"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
)

// settingsUseCaseWithMetrics decorates SettingsUseCase with metrics instrumentation.
type settingsUseCaseWithMetrics struct {
	next    SettingsUseCase
	metrics metrics.BusinessMetrics
}

// NewSettingsUseCaseWithMetrics wraps a SettingsUseCase with metrics recording.
func NewSettingsUseCaseWithMetrics(useCase SettingsUseCase, m metrics.BusinessMetrics) SettingsUseCase {
	return &settingsUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records the submission outcome as "success" or "invalid".
func (s *settingsUseCaseWithMetrics) Validate(
	ctx context.Context,
	input settingsDomain.SubmitInput,
) *settingsDomain.ValidationOutcome {
	start := time.Now()
	outcome := s.next.Validate(ctx, input)

	status := "success"
	if outcome.HasErrors {
		status = "invalid"
	}

	s.metrics.RecordOperation(ctx, metrics.DomainSettings, "settings_validate", status)
	s.metrics.RecordDuration(ctx, metrics.DomainSettings, "settings_validate", time.Since(start), status)

	return outcome
}

// ConnectedSpace records whether a connected space was found.
func (s *settingsUseCaseWithMetrics) ConnectedSpace(ctx context.Context) *contentful.Space {
	start := time.Now()
	space := s.next.ConnectedSpace(ctx)

	status := "success"
	if space == nil {
		status = "missing"
	}

	s.metrics.RecordOperation(ctx, metrics.DomainSettings, "connected_space_get", status)
	s.metrics.RecordDuration(ctx, metrics.DomainSettings, "connected_space_get", time.Since(start), status)

	return space
}

// proberWithMetrics decorates CredentialProber with metrics instrumentation.
type proberWithMetrics struct {
	next    CredentialProber
	metrics metrics.BusinessMetrics
}

// NewCredentialProberWithMetrics wraps a CredentialProber, recording each probe
// as "probe_delivery" or "probe_preview".
func NewCredentialProberWithMetrics(prober CredentialProber, m metrics.BusinessMetrics) CredentialProber {
	return &proberWithMetrics{
		next:    prober,
		metrics: m,
	}
}

// Probe records metrics for a credential probe.
func (p *proberWithMetrics) Probe(
	ctx context.Context,
	api contentful.API,
	space, token string,
) (*contentful.Space, error) {
	start := time.Now()
	result, err := p.next.Probe(ctx, api, space, token)

	operation := "probe_" + probeName(api)
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, metrics.DomainSettings, operation, status)
	p.metrics.RecordDuration(ctx, metrics.DomainSettings, operation, time.Since(start), status)

	return result, err
}

func probeName(api contentful.API) string {
	if api == contentful.APIPreview {
		return "preview"
	}
	return "delivery"
}
