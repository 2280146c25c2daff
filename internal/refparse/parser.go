// Package refparse extracts pull request references from free-form chat
// text. Three matchers are tried in fixed priority order: full GitHub
// URL, short owner/repo#N reference, bare #N (which resolves only
// against a configured default repository).
package refparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sevigo/approvebot/internal/core"
)

var (
	urlRef   = regexp.MustCompile(`https://github\.com/([^/\s]+)/([^/\s]+)/pull/(\d+)`)
	shortRef = regexp.MustCompile(`([^/\s]+)/([^#\s]+)#(\d+)`)
	bareRef  = regexp.MustCompile(`#(\d+)`)
)

// Extract returns the first pull request reference found in text.
// defaultRepo is an optional "owner/repo" fallback for bare #N
// references; when it is empty, bare numbers do not resolve.
//
// A URL match always pre-empts a short reference on the same text, and
// a short reference always pre-empts a bare number. Matching is
// case-sensitive and owner/repo casing is preserved. Extract never
// fails: it reports ok=false when no matcher applies.
func Extract(text, defaultRepo string) (core.Ref, bool) {
	if m := urlRef.FindStringSubmatch(text); m != nil {
		return makeRef(m[1], m[2], m[3])
	}

	if m := shortRef.FindStringSubmatch(text); m != nil {
		return makeRef(m[1], m[2], m[3])
	}

	if m := bareRef.FindStringSubmatch(text); m != nil {
		owner, repo, ok := SplitRepo(defaultRepo)
		if !ok {
			return core.Ref{}, false
		}
		return makeRef(owner, repo, m[1])
	}

	return core.Ref{}, false
}

// SplitRepo splits an "owner/repo" string into its halves. It reports
// ok=false unless both halves are non-empty and exactly one slash is
// present.
func SplitRepo(fullName string) (owner, repo string, ok bool) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func makeRef(owner, repo, number string) (core.Ref, bool) {
	n, err := strconv.Atoi(number)
	if err != nil {
		// Unreachable for \d+ captures of sane length, but a ref is
		// never returned partially populated.
		return core.Ref{}, false
	}
	return core.Ref{Owner: owner, Repo: repo, Number: n}, true
}
