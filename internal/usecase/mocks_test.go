package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository
type mockGitRepository struct {
	mock.Mock
}

func (m *mockGitRepository) FetchRemoteTags(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockGitRepository) ListLocalTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockGitRepository) ResolveCommit(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) DeleteLocalTag(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockGitRepository) CreateTag(ctx context.Context, name, commit string) error {
	args := m.Called(ctx, name, commit)
	return args.Error(0)
}

func (m *mockGitRepository) ForcePushTag(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// Mock for TagVerifier
type mockTagVerifier struct {
	mock.Mock
}

func (m *mockTagVerifier) WaitForTag(ctx context.Context, tag, commit string) error {
	args := m.Called(ctx, tag, commit)
	return args.Error(0)
}
