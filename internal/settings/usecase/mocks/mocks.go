// Package mocks provides mock implementations of the settings use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/coursecatalog/internal/contentful"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCredentialProber is a mock implementation of CredentialProber.
type MockCredentialProber struct {
	mock.Mock
}

// NewMockCredentialProber creates a MockCredentialProber whose expectations are asserted on cleanup.
func NewMockCredentialProber(t testingT) *MockCredentialProber {
	m := &MockCredentialProber{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Probe mocks the Probe method.
func (m *MockCredentialProber) Probe(
	ctx context.Context,
	api contentful.API,
	space, token string,
) (*contentful.Space, error) {
	args := m.Called(ctx, api, space, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.Space), args.Error(1)
}

// MockSpaceReader is a mock implementation of SpaceReader.
type MockSpaceReader struct {
	mock.Mock
}

// NewMockSpaceReader creates a MockSpaceReader whose expectations are asserted on cleanup.
func NewMockSpaceReader(t testingT) *MockSpaceReader {
	m := &MockSpaceReader{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Space mocks the Space method.
func (m *MockSpaceReader) Space(ctx context.Context) (*contentful.Space, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.Space), args.Error(1)
}

// MockSettingsUseCase is a mock implementation of SettingsUseCase.
type MockSettingsUseCase struct {
	mock.Mock
}

// NewMockSettingsUseCase creates a MockSettingsUseCase whose expectations are asserted on cleanup.
func NewMockSettingsUseCase(t testingT) *MockSettingsUseCase {
	m := &MockSettingsUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Validate mocks the Validate method.
func (m *MockSettingsUseCase) Validate(
	ctx context.Context,
	input settingsDomain.SubmitInput,
) *settingsDomain.ValidationOutcome {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*settingsDomain.ValidationOutcome)
}

// ConnectedSpace mocks the ConnectedSpace method.
func (m *MockSettingsUseCase) ConnectedSpace(ctx context.Context) *contentful.Space {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*contentful.Space)
}
