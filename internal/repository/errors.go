package repository

import "errors"

// Gateway error taxonomy. Every fallible gateway operation wraps exactly one
// of these so callers can tell which step of a multi-step mutation failed.
var (
	ErrNotARepository = errors.New("not a git repository")
	ErrTagDiscovery   = errors.New("tag discovery failed")
	ErrRefResolution  = errors.New("reference could not be resolved")
	ErrTagMutation    = errors.New("tag mutation failed")
	ErrPushRejected   = errors.New("push rejected by remote")
)
