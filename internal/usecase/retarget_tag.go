package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/retagger/retag/internal/domain"
	"github.com/retagger/retag/internal/repository"
)

// RetargetTagUseCase moves a tag to a destination commit by deleting it,
// recreating it and force-pushing the ref. The three mutation steps are not
// transactional and no rollback is attempted; each step reports its own
// failure so the caller can tell exactly where the sequence stopped.
type RetargetTagUseCase struct {
	GitRepo  repository.GitRepository
	Verifier repository.TagVerifier
	Log      *zap.Logger
}

// Execute runs the retarget sequence and returns the before/after record.
// The record exists only once the push (and, when configured, the remote
// verification) has been acknowledged.
func (uc *RetargetTagUseCase) Execute(
	ctx context.Context,
	tagName, destination string,
) (domain.ChangeRecord, error) {
	log := uc.Log.With(
		zap.String("tag", tagName),
		zap.String("destination", domain.ShortHash(destination)),
	)
	// The pre-update commit has to be captured before anything mutates, both
	// for the change record and for any sync decision made by the caller.
	oldCommit, err := uc.GitRepo.ResolveCommit(ctx, tagName)
	if err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("resolve current commit of %q: %w", tagName, err)
	}
	log = log.With(zap.String("old", domain.ShortHash(oldCommit)))

	if err := uc.GitRepo.DeleteLocalTag(ctx, tagName); err != nil {
		log.Error("delete failed", zap.Error(err))
		return domain.ChangeRecord{}, fmt.Errorf("delete local tag %q: %w", tagName, err)
	}
	log.Info("local tag deleted")

	if err := uc.GitRepo.CreateTag(ctx, tagName, destination); err != nil {
		log.Error("create failed", zap.Error(err))
		return domain.ChangeRecord{}, fmt.Errorf("create tag %q at %s: %w", tagName, destination, err)
	}
	log.Info("local tag created")

	if err := uc.GitRepo.ForcePushTag(ctx, tagName); err != nil {
		log.Error("push failed", zap.Error(err))
		return domain.ChangeRecord{}, fmt.Errorf("force-push tag %q: %w", tagName, err)
	}
	log.Info("tag force-pushed")

	if err := uc.Verifier.WaitForTag(ctx, tagName, destination); err != nil {
		log.Error("remote verification failed", zap.Error(err))
		return domain.ChangeRecord{}, fmt.Errorf("verify remote tag %q: %w", tagName, err)
	}

	return domain.ChangeRecord{
		TagName:   tagName,
		OldCommit: oldCommit,
		NewCommit: destination,
	}, nil
}
