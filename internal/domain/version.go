package domain

import (
	"github.com/Masterminds/semver/v3"
)

// Version wraps semver.Version for additional methods.
type Version struct {
	*semver.Version
}

// NewVersion creates a new Version from a tag name. Bare majors like "v2"
// parse as "2.0.0".
func NewVersion(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, err
	}
	return &Version{v}, nil
}

// String returns the version string with v prefix.
func (v *Version) String() string {
	return "v" + v.Version.String()
}

// MajorMismatch reports whether two tag names parse as semantic versions with
// different major numbers. Tags that do not parse never mismatch; the check
// is informational only and must not block any workflow.
func MajorMismatch(a, b string) bool {
	va, err := NewVersion(a)
	if err != nil {
		return false
	}
	vb, err := NewVersion(b)
	if err != nil {
		return false
	}
	return va.Major() != vb.Major()
}
