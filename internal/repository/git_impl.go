package repository

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// gitRepository is the go-git backed implementation of GitRepository.
type gitRepository struct {
	repo   *git.Repository
	remote string
	token  string
}

// NewGitRepository opens the repository in the current working directory.
// Failing to open it means the tool was started outside a checked-out
// repository, which is fatal for the whole run.
func NewGitRepository(remote, token string) (GitRepository, error) {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotARepository, err)
	}
	return &gitRepository{repo: repo, remote: remote, token: token}, nil
}

// FetchRemoteTags synchronizes local tag refs with the configured remote.
func (r *gitRepository) FetchRemoteTags(ctx context.Context) error {
	remote, err := r.repo.Remote(r.remote)
	if err != nil {
		return fmt.Errorf("%w: remote %q: %v", ErrTagDiscovery, r.remote, err)
	}
	err = remote.FetchContext(ctx, &git.FetchOptions{
		RefSpecs: []config.RefSpec{
			config.RefSpec("+refs/tags/*:refs/tags/*"),
		},
		Auth: r.getAuth(),
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("%w: fetch from %q: %v", ErrTagDiscovery, r.remote, err)
	}
	return nil
}

// ListLocalTags returns tag names in the order go-git iterates them.
func (r *gitRepository) ListLocalTags(_ context.Context) ([]string, error) {
	tagRefs, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTagDiscovery, err)
	}
	var tags []string
	if err := tagRefs.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: iterating tags: %v", ErrTagDiscovery, err)
	}
	return tags, nil
}

// ResolveCommit resolves a tag name or "HEAD" to the full commit hash.
func (r *gitRepository) ResolveCommit(_ context.Context, ref string) (string, error) {
	if ref == "HEAD" {
		head, err := r.repo.Head()
		if err != nil {
			return "", fmt.Errorf("%w: HEAD: %v", ErrRefResolution, err)
		}
		return head.Hash().String(), nil
	}
	tagRef, err := r.repo.Tag(ref)
	if err != nil {
		return "", fmt.Errorf("%w: tag %q: %v", ErrRefResolution, ref, err)
	}
	hash, err := r.resolveTagCommit(tagRef)
	if err != nil {
		return "", fmt.Errorf("%w: tag %q: %v", ErrRefResolution, ref, err)
	}
	return hash.String(), nil
}

// resolveTagCommit resolves a tag reference to its commit hash, handling both
// lightweight and annotated tags.
func (r *gitRepository) resolveTagCommit(tagRef *plumbing.Reference) (plumbing.Hash, error) {
	if commit, err := r.repo.CommitObject(tagRef.Hash()); err == nil {
		return commit.Hash, nil
	}
	if tagObj, err := r.repo.TagObject(tagRef.Hash()); err == nil {
		if commit, err := r.repo.CommitObject(tagObj.Target); err == nil {
			return commit.Hash, nil
		}
	}
	return plumbing.Hash{}, fmt.Errorf("no commit behind tag ref")
}

// DeleteLocalTag removes the local tag ref. A tag that only exists on the
// remote fails here; the caller treats that as fatal rather than falling back.
func (r *gitRepository) DeleteLocalTag(_ context.Context, name string) error {
	if err := r.repo.DeleteTag(name); err != nil {
		return fmt.Errorf("%w: delete %q: %v", ErrTagMutation, name, err)
	}
	return nil
}

// CreateTag creates a lightweight tag pointing at the given commit.
func (r *gitRepository) CreateTag(_ context.Context, name, commit string) error {
	if _, err := r.repo.CreateTag(name, plumbing.NewHash(commit), nil); err != nil {
		return fmt.Errorf("%w: create %q at %s: %v", ErrTagMutation, name, commit, err)
	}
	return nil
}

// ForcePushTag pushes refs/tags/<name> with force semantics so the remote ref
// is overwritten unconditionally.
func (r *gitRepository) ForcePushTag(ctx context.Context, name string) error {
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: r.remote,
		RefSpecs: []config.RefSpec{
			config.RefSpec(fmt.Sprintf("+refs/tags/%s:refs/tags/%s", name, name)),
		},
		Force: true,
		Auth:  r.getAuth(),
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("%w: push %q to %q: %v", ErrPushRejected, name, r.remote, err)
	}
	return nil
}

// getAuth returns token authentication when configured, nil otherwise so
// go-git falls back to the ambient credential helpers.
func (r *gitRepository) getAuth() *http.BasicAuth {
	if r.token == "" {
		return nil
	}
	return &http.BasicAuth{
		Username: "x-access-token",
		Password: r.token,
	}
}
