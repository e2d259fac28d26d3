package domain

import "regexp"

var (
	// rootTagPattern matches bare major-version tags such as "v1" or "v12".
	rootTagPattern = regexp.MustCompile(`^v\d+$`)
	// versionTagPattern matches tags carrying at least major.minor, such as
	// "v1.2" or "v1.2.3".
	versionTagPattern = regexp.MustCompile(`^v\d+\.\d+`)
)

// ShortHashLen is the number of characters shown for a commit hash in
// prompts and summaries. The full hash stays the canonical value everywhere.
const ShortHashLen = 7

// FindRootTag returns the first tag, in the order supplied by the repository,
// whose name is a bare major version (e.g. "v2"). When several bare-major
// tags exist the first listed one wins; callers must not assume the highest
// version is chosen.
func FindRootTag(tags []string) (string, bool) {
	for _, t := range tags {
		if rootTagPattern.MatchString(t) {
			return t, true
		}
	}
	return "", false
}

// FilterVersionTags returns the tags that carry at least a major.minor
// version, preserving input order.
func FilterVersionTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if versionTagPattern.MatchString(t) {
			out = append(out, t)
		}
	}
	return out
}

// FilterNonRootTags returns every tag except the root tag. When no root tag
// exists the input is returned unchanged.
func FilterNonRootTags(tags []string) []string {
	root, ok := FindRootTag(tags)
	if !ok {
		return tags
	}
	out := make([]string, 0, len(tags)-1)
	for _, t := range tags {
		if t != root {
			out = append(out, t)
		}
	}
	return out
}

// ShortHash returns the shortened display form of a commit hash.
func ShortHash(commit string) string {
	if len(commit) <= ShortHashLen {
		return commit
	}
	return commit[:ShortHashLen]
}
