// Package mocks provides mock implementations of the content use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/coursecatalog/internal/content/domain"
	"github.com/allisson/coursecatalog/internal/contentful"
)

// MockEntryReader is a mock implementation of EntryReader.
type MockEntryReader struct {
	mock.Mock
}

// NewMockEntryReader creates a MockEntryReader whose expectations are asserted on cleanup.
func NewMockEntryReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEntryReader {
	m := &MockEntryReader{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetSpace mocks the GetSpace method.
func (m *MockEntryReader) GetSpace(ctx context.Context) (*contentful.Space, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.Space), args.Error(1)
}

// GetEntries mocks the GetEntries method.
func (m *MockEntryReader) GetEntries(
	ctx context.Context,
	q *contentful.Query,
) (*contentful.EntryCollection, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.EntryCollection), args.Error(1)
}

// MockGateway is a mock implementation of Gateway.
type MockGateway struct {
	mock.Mock
}

// NewMockGateway creates a MockGateway whose expectations are asserted on cleanup.
func NewMockGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGateway {
	m := &MockGateway{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Initialize mocks the Initialize method.
func (m *MockGateway) Initialize(cfg *domain.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

// Space mocks the Space method.
func (m *MockGateway) Space(ctx context.Context) (*contentful.Space, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.Space), args.Error(1)
}

// GetCourses mocks the GetCourses method.
func (m *MockGateway) GetCourses(ctx context.Context) ([]*contentful.Entry, error) {
	args := m.Called(ctx)
	return entries(args.Get(0)), args.Error(1)
}

// GetLandingPage mocks the GetLandingPage method.
func (m *MockGateway) GetLandingPage(ctx context.Context) (*contentful.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.Entry), args.Error(1)
}

// GetCourse mocks the GetCourse method.
func (m *MockGateway) GetCourse(ctx context.Context, slug string) (*contentful.Entry, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.Entry), args.Error(1)
}

// GetLessons mocks the GetLessons method.
func (m *MockGateway) GetLessons(ctx context.Context, courseID string) ([]*contentful.Entry, error) {
	args := m.Called(ctx, courseID)
	return entries(args.Get(0)), args.Error(1)
}

// GetCategories mocks the GetCategories method.
func (m *MockGateway) GetCategories(ctx context.Context) ([]*contentful.Entry, error) {
	args := m.Called(ctx)
	return entries(args.Get(0)), args.Error(1)
}

// GetCoursesByCategory mocks the GetCoursesByCategory method.
func (m *MockGateway) GetCoursesByCategory(ctx context.Context, category string) ([]*contentful.Entry, error) {
	args := m.Called(ctx, category)
	return entries(args.Get(0)), args.Error(1)
}

func entries(value any) []*contentful.Entry {
	if value == nil {
		return nil
	}
	return value.([]*contentful.Entry)
}
