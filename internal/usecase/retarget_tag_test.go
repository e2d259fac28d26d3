package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/retagger/retag/internal/repository"
)

const (
	commitA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	commitB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newRetargetUseCase(gitRepo *mockGitRepository, verifier *mockTagVerifier) *RetargetTagUseCase {
	return &RetargetTagUseCase{
		GitRepo:  gitRepo,
		Verifier: verifier,
		Log:      zap.NewNop(),
	}
}

func TestRetargetTagUseCase_Execute(t *testing.T) {
	t.Run("Should delete, create and push before producing a record", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		verifier := new(mockTagVerifier)
		ctx := context.Background()
		gitRepo.On("ResolveCommit", ctx, "v1.2").Return(commitA, nil)
		gitRepo.On("DeleteLocalTag", ctx, "v1.2").Return(nil)
		gitRepo.On("CreateTag", ctx, "v1.2", commitB).Return(nil)
		gitRepo.On("ForcePushTag", ctx, "v1.2").Return(nil)
		verifier.On("WaitForTag", ctx, "v1.2", commitB).Return(nil)
		record, err := newRetargetUseCase(gitRepo, verifier).Execute(ctx, "v1.2", commitB)
		require.NoError(t, err)
		assert.Equal(t, "v1.2", record.TagName)
		assert.Equal(t, commitA, record.OldCommit)
		assert.Equal(t, commitB, record.NewCommit)
		gitRepo.AssertExpectations(t)
		verifier.AssertExpectations(t)
	})
	t.Run("Should still run the full sequence when the tag already points at the destination", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		verifier := new(mockTagVerifier)
		ctx := context.Background()
		gitRepo.On("ResolveCommit", ctx, "v1.2").Return(commitB, nil)
		gitRepo.On("DeleteLocalTag", ctx, "v1.2").Return(nil)
		gitRepo.On("CreateTag", ctx, "v1.2", commitB).Return(nil)
		gitRepo.On("ForcePushTag", ctx, "v1.2").Return(nil)
		verifier.On("WaitForTag", ctx, "v1.2", commitB).Return(nil)
		record, err := newRetargetUseCase(gitRepo, verifier).Execute(ctx, "v1.2", commitB)
		require.NoError(t, err)
		assert.Equal(t, record.OldCommit, record.NewCommit)
		gitRepo.AssertExpectations(t)
	})
	t.Run("Should fail before mutating when the tag cannot be resolved", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		verifier := new(mockTagVerifier)
		ctx := context.Background()
		gitRepo.On("ResolveCommit", ctx, "v9.9").
			Return("", repository.ErrRefResolution)
		_, err := newRetargetUseCase(gitRepo, verifier).Execute(ctx, "v9.9", commitB)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrRefResolution)
		gitRepo.AssertNotCalled(t, "DeleteLocalTag", ctx, "v9.9")
		gitRepo.AssertExpectations(t)
	})
	t.Run("Should treat a failed delete as fatal with no fallback", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		verifier := new(mockTagVerifier)
		ctx := context.Background()
		gitRepo.On("ResolveCommit", ctx, "v1.2").Return(commitA, nil)
		gitRepo.On("DeleteLocalTag", ctx, "v1.2").Return(repository.ErrTagMutation)
		_, err := newRetargetUseCase(gitRepo, verifier).Execute(ctx, "v1.2", commitB)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrTagMutation)
		gitRepo.AssertNotCalled(t, "CreateTag", ctx, "v1.2", commitB)
		gitRepo.AssertNotCalled(t, "ForcePushTag", ctx, "v1.2")
	})
	t.Run("Should not produce a record when the push is rejected", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		verifier := new(mockTagVerifier)
		ctx := context.Background()
		gitRepo.On("ResolveCommit", ctx, "v1.2").Return(commitA, nil)
		gitRepo.On("DeleteLocalTag", ctx, "v1.2").Return(nil)
		gitRepo.On("CreateTag", ctx, "v1.2", commitB).Return(nil)
		gitRepo.On("ForcePushTag", ctx, "v1.2").Return(repository.ErrPushRejected)
		record, err := newRetargetUseCase(gitRepo, verifier).Execute(ctx, "v1.2", commitB)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrPushRejected)
		assert.Empty(t, record.TagName)
		verifier.AssertNotCalled(t, "WaitForTag", ctx, "v1.2", commitB)
	})
	t.Run("Should surface a verification failure as a push failure", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		verifier := new(mockTagVerifier)
		ctx := context.Background()
		gitRepo.On("ResolveCommit", ctx, "v1.2").Return(commitA, nil)
		gitRepo.On("DeleteLocalTag", ctx, "v1.2").Return(nil)
		gitRepo.On("CreateTag", ctx, "v1.2", commitB).Return(nil)
		gitRepo.On("ForcePushTag", ctx, "v1.2").Return(nil)
		verifier.On("WaitForTag", ctx, "v1.2", commitB).
			Return(errors.New("remote never converged"))
		record, err := newRetargetUseCase(gitRepo, verifier).Execute(ctx, "v1.2", commitB)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "remote never converged")
		assert.Empty(t, record.TagName)
	})
}
