package repository

import "context"

// noopTagVerifier is used when no GitHub credentials are configured; the
// push acknowledgement from the git remote is then the only confirmation.
type noopTagVerifier struct{}

// NewNoopTagVerifier returns a TagVerifier that accepts every push.
func NewNoopTagVerifier() TagVerifier {
	return noopTagVerifier{}
}

func (noopTagVerifier) WaitForTag(_ context.Context, _, _ string) error {
	return nil
}
