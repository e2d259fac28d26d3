package orchestrator

import (
	"context"
	"fmt"

	"github.com/retagger/retag/internal/domain"
)

// runBumpRoot points the root tag at the commit of a user-selected version
// tag. The root tag is the target itself, so no cascade applies here.
func (s *Session) runBumpRoot(ctx context.Context, tags []string) (domain.ChangeSet, error) {
	versionTags := domain.FilterVersionTags(tags)
	if len(versionTags) == 0 {
		return nil, fmt.Errorf("no version tags found to bump to")
	}

	selected, err := s.prompter.SelectTag("Which version should the root tag point at?", versionTags)
	if err != nil {
		return nil, err
	}

	rootTag, hasRoot := domain.FindRootTag(tags)
	if !hasRoot {
		return nil, fmt.Errorf("no root tag exists to bump")
	}

	destination, err := s.gitRepo.ResolveCommit(ctx, selected)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", selected, err)
	}

	message := fmt.Sprintf("Point %s at %s (%s)?", rootTag, selected, domain.ShortHash(destination))
	if domain.MajorMismatch(rootTag, selected) {
		message = fmt.Sprintf("%s and %s have different major versions. %s", rootTag, selected, message)
	}
	confirmed, err := s.prompter.Confirm(message)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}

	record, err := s.retarget(ctx, rootTag, destination)
	if err != nil {
		return nil, err
	}
	return domain.ChangeSet{record}, nil
}
