package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retagger/retag/internal/domain"
	"github.com/retagger/retag/internal/repository"
	"github.com/retagger/retag/internal/service"
	"github.com/retagger/retag/internal/usecase"
)

// Session drives one interactive run: it asks which workflow to perform,
// discovers the tag set, runs the chosen workflow and prints the summary of
// completed changes. All repository access goes through the injected gateway.
type Session struct {
	gitRepo  repository.GitRepository
	verifier repository.TagVerifier
	prompter service.Prompter
	log      *zap.Logger
	out      io.Writer
	lockPath string
}

// NewSession creates a session. Logs carry a per-run session id so staggered
// runs against the same repository can be told apart.
func NewSession(
	gitRepo repository.GitRepository,
	verifier repository.TagVerifier,
	prompter service.Prompter,
	log *zap.Logger,
	out io.Writer,
) *Session {
	return &Session{
		gitRepo:  gitRepo,
		verifier: verifier,
		prompter: prompter,
		log:      log.With(zap.String("session_id", uuid.New().String())),
		out:      out,
		lockPath: sessionLockPath,
	}
}

// Run executes one full session. It returns nil only when the chosen workflow
// fell off the end normally; every gateway failure and the user abandoning a
// prompt surface as errors for the caller to exit non-zero on.
func (s *Session) Run(ctx context.Context) error {
	lock, err := acquireSessionLock(s.lockPath)
	if err != nil {
		return err
	}
	defer releaseSessionLock(lock, s.log)

	action, err := s.prompter.SelectAction()
	if err != nil {
		return err
	}

	tags, err := s.discoverTags(ctx)
	if err != nil {
		return err
	}

	var changes domain.ChangeSet
	switch action {
	case service.ActionUpdateTag:
		changes, err = s.runUpdateTag(ctx, tags)
	case service.ActionBumpRoot:
		changes, err = s.runBumpRoot(ctx, tags)
	default:
		err = fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		// Completed retargets stay completed on the remote even though the
		// run is aborting; they are logged here but never summarized.
		for _, c := range changes {
			s.log.Debug("change completed before failure", zap.String("change", c.String()))
		}
		return err
	}

	if !changes.Empty() {
		fmt.Fprint(s.out, service.RenderSummary(changes))
	}
	return nil
}

// discoverTags fetches remote tags and lists the local tag set. Every run
// starts from a fresh query; nothing is carried over between invocations.
func (s *Session) discoverTags(ctx context.Context) ([]string, error) {
	if err := s.gitRepo.FetchRemoteTags(ctx); err != nil {
		return nil, fmt.Errorf("fetch remote tags: %w", err)
	}
	tags, err := s.gitRepo.ListLocalTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("no tags found in this repository")
	}
	s.log.Info("tags discovered", zap.Int("count", len(tags)))
	return tags, nil
}

// retarget runs the retarget engine for one tag.
func (s *Session) retarget(ctx context.Context, tag, destination string) (domain.ChangeRecord, error) {
	uc := &usecase.RetargetTagUseCase{
		GitRepo:  s.gitRepo,
		Verifier: s.verifier,
		Log:      s.log,
	}
	return uc.Execute(ctx, tag, destination)
}

// rootInSync reports whether the root tag tracks the given tag's current
// position.
func (s *Session) rootInSync(ctx context.Context, rootTag, tag string) (bool, error) {
	uc := &usecase.RootSyncUseCase{GitRepo: s.gitRepo}
	return uc.Execute(ctx, rootTag, tag)
}
