package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v74/github"
	"github.com/sethvargo/go-retry"
	"golang.org/x/oauth2"

	"github.com/retagger/retag/internal/domain"
)

const verifyPollInterval = 500 * time.Millisecond

// githubTagVerifier polls the GitHub Git refs API until a pushed tag is
// visible at the expected commit.
type githubTagVerifier struct {
	client  *github.Client
	owner   string
	repo    string
	timeout time.Duration
}

// NewGithubTagVerifier creates a TagVerifier backed by the GitHub API.
func NewGithubTagVerifier(token, owner, repo string, timeout time.Duration) TagVerifier {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubTagVerifier{
		client:  github.NewClient(tc),
		owner:   owner,
		repo:    repo,
		timeout: timeout,
	}
}

// WaitForTag polls until the remote ref reports the destination commit. The
// backoff only covers propagation lag; a ref that settles on a different
// commit still fails once the window closes.
func (v *githubTagVerifier) WaitForTag(ctx context.Context, tag, commit string) error {
	backoff := retry.WithMaxDuration(v.timeout, retry.NewExponential(verifyPollInterval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ref, _, err := v.client.Git.GetRef(ctx, v.owner, v.repo, "tags/"+tag)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("query ref tags/%s: %w", tag, err))
		}
		if got := ref.GetObject().GetSHA(); got != commit {
			return retry.RetryableError(
				fmt.Errorf("remote tags/%s at %s, want %s", tag, domain.ShortHash(got), domain.ShortHash(commit)))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: remote %s/%s did not confirm tag %q: %v", ErrPushRejected, v.owner, v.repo, tag, err)
	}
	return nil
}
