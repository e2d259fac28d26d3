package usecase

import (
	"context"
	"fmt"

	"github.com/retagger/retag/internal/repository"
)

// RootSyncUseCase decides whether the root tag currently points at the same
// commit as another tag. The check must run before that tag is retargeted,
// since the comparison is against its pre-update position.
type RootSyncUseCase struct {
	GitRepo repository.GitRepository
}

// Execute reports whether rootTag and tag resolve to the same commit.
func (uc *RootSyncUseCase) Execute(ctx context.Context, rootTag, tag string) (bool, error) {
	rootCommit, err := uc.GitRepo.ResolveCommit(ctx, rootTag)
	if err != nil {
		return false, fmt.Errorf("resolve root tag %q: %w", rootTag, err)
	}
	tagCommit, err := uc.GitRepo.ResolveCommit(ctx, tag)
	if err != nil {
		return false, fmt.Errorf("resolve tag %q: %w", tag, err)
	}
	return rootCommit == tagCommit, nil
}
