package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/SkillSync/aiq/internal/store"
)

// MockStore implements store.Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateAssessment(ctx context.Context, a *store.Assessment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockStore) GetAssessment(ctx context.Context, id uuid.UUID) (*store.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Assessment), args.Error(1)
}

func (m *MockStore) ListAssessments(ctx context.Context, filter store.AssessmentFilter) ([]*store.Assessment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Assessment), args.Error(1)
}

func (m *MockStore) GetTypeStats(ctx context.Context) (*store.TypeStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.TypeStats), args.Error(1)
}

func (m *MockStore) Close() error { return nil }

// MockHermes implements hermes.Client for testing
type MockHermes struct {
	mock.Mock
}

func (m *MockHermes) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockHermes) Close() {}

// MockCache implements cache.AssessmentCache for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, id uuid.UUID) (*store.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Assessment), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, a *store.Assessment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
