package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/coursecatalog/internal/contentful"
	"github.com/allisson/coursecatalog/internal/metrics"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
	"github.com/allisson/coursecatalog/internal/settings/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectRecord(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "settings", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "settings", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestSettingsMetricsDecorator_Validate(t *testing.T) {
	ctx := context.Background()
	input := validInput()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := mocks.NewMockSettingsUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		outcome := settingsDomain.NewOutcome(settingsDomain.CredentialSet{Space: "space"}, nil)

		mockUseCase.On("Validate", ctx, input).Return(outcome).Once()
		expectRecord(mockMetrics, ctx, "settings_validate", "success")

		result := NewSettingsUseCaseWithMetrics(mockUseCase, mockMetrics).Validate(ctx, input)

		assert.Same(t, outcome, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Invalid_RecordsInvalidMetrics", func(t *testing.T) {
		mockUseCase := mocks.NewMockSettingsUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		errs := &settingsDomain.FieldErrors{}
		errs.Add(settingsDomain.FieldSpace, settingsDomain.MessageRequired)
		outcome := settingsDomain.NewOutcome(settingsDomain.CredentialSet{}, errs)

		mockUseCase.On("Validate", ctx, input).Return(outcome).Once()
		expectRecord(mockMetrics, ctx, "settings_validate", "invalid")

		result := NewSettingsUseCaseWithMetrics(mockUseCase, mockMetrics).Validate(ctx, input)

		assert.True(t, result.HasErrors)
		mockMetrics.AssertExpectations(t)
	})
}

func TestSettingsMetricsDecorator_ConnectedSpace(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUseCase := mocks.NewMockSettingsUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		space := &contentful.Space{Name: "Example"}

		mockUseCase.On("ConnectedSpace", ctx).Return(space).Once()
		expectRecord(mockMetrics, ctx, "connected_space_get", "success")

		assert.Same(t, space, NewSettingsUseCaseWithMetrics(mockUseCase, mockMetrics).ConnectedSpace(ctx))
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		mockUseCase := mocks.NewMockSettingsUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("ConnectedSpace", ctx).Return(nil).Once()
		expectRecord(mockMetrics, ctx, "connected_space_get", "missing")

		assert.Nil(t, NewSettingsUseCaseWithMetrics(mockUseCase, mockMetrics).ConnectedSpace(ctx))
		mockMetrics.AssertExpectations(t)
	})
}

func TestProberMetricsDecorator_Probe(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Delivery", func(t *testing.T) {
		mockProber := mocks.NewMockCredentialProber(t)
		mockMetrics := &mockBusinessMetrics{}
		space := &contentful.Space{Name: "Example"}

		mockProber.On("Probe", ctx, contentful.APIDelivery, "space", "token").Return(space, nil).Once()
		expectRecord(mockMetrics, ctx, "probe_delivery", "success")

		result, err := NewCredentialProberWithMetrics(mockProber, mockMetrics).
			Probe(ctx, contentful.APIDelivery, "space", "token")

		assert.NoError(t, err)
		assert.Same(t, space, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_Preview", func(t *testing.T) {
		mockProber := mocks.NewMockCredentialProber(t)
		mockMetrics := &mockBusinessMetrics{}
		expectedErr := errors.New("unauthorized")

		mockProber.On("Probe", ctx, contentful.APIPreview, "space", "token").Return(nil, expectedErr).Once()
		expectRecord(mockMetrics, ctx, "probe_preview", "error")

		result, err := NewCredentialProberWithMetrics(mockProber, mockMetrics).
			Probe(ctx, contentful.APIPreview, "space", "token")

		assert.Equal(t, expectedErr, err)
		assert.Nil(t, result)
		mockMetrics.AssertExpectations(t)
	})
}
