package repository

import "context"

// TagVerifier checks the remote's view of a tag after a force-push. An
// acknowledged push can still take a moment to show up on the hosting side,
// so implementations are allowed to poll.
type TagVerifier interface {
	// WaitForTag blocks until refs/tags/<tag> on the remote reports the
	// given commit, or fails once the poll window is exhausted.
	WaitForTag(ctx context.Context, tag, commit string) error
}
