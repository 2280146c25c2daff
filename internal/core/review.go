// Package core defines the value types and port interfaces that form the
// backbone of the application. Everything here is request-scoped: a trigger
// produces these values, replies are sent, and the values are discarded.
package core

import "fmt"

// Ref identifies a pull request on the hosting service. It is a plain
// value type: two refs with the same fields are the same reference.
type Ref struct {
	Owner  string
	Repo   string
	Number int
}

// String renders the reference in the short owner/repo#N form.
func (r Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// HTMLURL returns the canonical web URL for the referenced pull request.
func (r Ref) HTMLURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", r.Owner, r.Repo, r.Number)
}

// Pull request lifecycle states as exposed in a Snapshot. GitHub reports
// merged PRs as "closed" with a separate merged flag; the gateway folds
// that into a single three-way state.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateMerged = "merged"
)

// Review states returned by the hosting service. Only the first two are
// summarized individually by the formatter.
const (
	ReviewApproved         = "APPROVED"
	ReviewChangesRequested = "CHANGES_REQUESTED"
)

// Review is a single recorded review decision on a pull request.
type Review struct {
	Reviewer string
	State    string
}

// Snapshot is a point-in-time read of a pull request's metadata and its
// review list. It is composed fresh per trigger and never mutated.
type Snapshot struct {
	Ref     Ref
	Title   string
	State   string
	Author  string
	HTMLURL string
	// Mergeable is tri-state: GitHub may not have computed it yet,
	// in which case it is nil.
	Mergeable *bool
	Draft     bool
	Reviews   []Review
}

// Outcome is the result of an approval submission. API failures and the
// already-approved guard both surface here as Approved=false with a
// human-readable message; they never propagate as errors.
type Outcome struct {
	Approved bool
	Message  string
	// URL points at the pull request so the success reply can carry
	// a link button.
	URL string
}
