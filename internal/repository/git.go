package repository

import "context"

// GitRepository is the gateway to the local repository and its remote. It is
// the only component with side effects on tag refs; everything above it is
// testable against a substitute implementation.
type GitRepository interface {
	// FetchRemoteTags synchronizes local tag refs with the remote.
	FetchRemoteTags(ctx context.Context) error
	// ListLocalTags returns tag names in repository iteration order.
	ListLocalTags(ctx context.Context) ([]string, error)
	// ResolveCommit resolves a tag name or "HEAD" to a full commit hash.
	ResolveCommit(ctx context.Context, ref string) (string, error)
	// DeleteLocalTag removes the local tag ref.
	DeleteLocalTag(ctx context.Context, name string) error
	// CreateTag creates a lightweight tag at the given commit.
	CreateTag(ctx context.Context, name, commit string) error
	// ForcePushTag pushes refs/tags/<name> to the remote, overwriting the
	// remote ref unconditionally.
	ForcePushTag(ctx context.Context, name string) error
}
