package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/retagger/retag/internal/domain"
)

// runUpdateTag moves a user-selected tag to HEAD. When the root tag tracked
// the selected tag's old position, the move is offered to the root tag as
// well — one level, one shot; no further tags are cascaded to.
func (s *Session) runUpdateTag(ctx context.Context, tags []string) (domain.ChangeSet, error) {
	rootTag, hasRoot := domain.FindRootTag(tags)
	candidates := domain.FilterNonRootTags(tags)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no tags available to update")
	}

	selected, err := s.prompter.SelectTag("Which tag should be updated?", candidates)
	if err != nil {
		return nil, err
	}

	head, err := s.gitRepo.ResolveCommit(ctx, "HEAD")
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	// The sync check compares against the selected tag's pre-update commit,
	// so it has to happen before the retarget mutates anything.
	inSync := false
	if hasRoot {
		inSync, err = s.rootInSync(ctx, rootTag, selected)
		if err != nil {
			return nil, err
		}
	}

	confirmed, err := s.prompter.Confirm(
		fmt.Sprintf("Move %s to %s?", selected, domain.ShortHash(head)))
	if err != nil {
		return nil, err
	}
	if !confirmed {
		s.log.Info("update declined", zap.String("tag", selected))
		return nil, nil
	}

	var changes domain.ChangeSet
	record, err := s.retarget(ctx, selected, head)
	if err != nil {
		return changes, err
	}
	changes = append(changes, record)

	if hasRoot && inSync {
		cascade, err := s.prompter.Confirm(
			fmt.Sprintf("%s was pointing at the same commit as %s. Move %s too?", rootTag, selected, rootTag))
		if err != nil {
			return changes, err
		}
		if cascade {
			rootRecord, err := s.retarget(ctx, rootTag, head)
			if err != nil {
				return changes, err
			}
			changes = append(changes, rootRecord)
		}
	}

	return changes, nil
}
