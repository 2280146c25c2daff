package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/approvebot/internal/core"
)

type gateway struct {
	client Client
	logger *slog.Logger
}

// NewGateway creates the review-request gateway on top of a Client.
func NewGateway(client Client, logger *slog.Logger) core.Gateway {
	return &gateway{client: client, logger: logger}
}

// FetchSnapshot performs the two read calls (metadata, reviews) and
// composes a Snapshot. GitHub reports a merged PR as "closed"; the
// merged flag is folded into the snapshot state here.
func (g *gateway) FetchSnapshot(ctx context.Context, ref core.Ref) (*core.Snapshot, error) {
	pr, err := g.client.GetPullRequest(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("fetch pull request %s: %w", ref, err)
	}

	reviews, err := g.client.ListReviews(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews for %s: %w", ref, err)
	}

	state := pr.GetState()
	if pr.GetMerged() {
		state = core.StateMerged
	}

	snap := &core.Snapshot{
		Ref:       ref,
		Title:     pr.GetTitle(),
		State:     state,
		Author:    pr.GetUser().GetLogin(),
		HTMLURL:   pr.GetHTMLURL(),
		Mergeable: pr.Mergeable,
		Draft:     pr.GetDraft(),
	}
	for _, r := range reviews {
		snap.Reviews = append(snap.Reviews, core.Review{
			Reviewer: r.GetUser().GetLogin(),
			State:    r.GetState(),
		})
	}
	return snap, nil
}

// SubmitApproval submits an APPROVE review for ref under the configured
// identity. If that identity has already approved, it returns a failure
// outcome without making a write call.
//
// The check-then-write sequence is not atomic: two concurrent triggers
// for the same ref can both pass the guard and produce two approvals.
// Accepted, since trigger volume is human-paced.
func (g *gateway) SubmitApproval(ctx context.Context, ref core.Ref) core.Outcome {
	login, err := g.client.AuthenticatedLogin(ctx)
	if err != nil {
		return failure(ref, err)
	}

	reviews, err := g.client.ListReviews(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return failure(ref, err)
	}
	for _, r := range reviews {
		if r.GetUser().GetLogin() == login && r.GetState() == core.ReviewApproved {
			g.logger.Info("approval skipped, identity already approved", "ref", ref.String(), "login", login)
			return core.Outcome{
				Message: fmt.Sprintf("%s has already approved %s, nothing to do.", login, ref),
				URL:     ref.HTMLURL(),
			}
		}
	}

	if err := g.client.CreateApprovalReview(ctx, ref.Owner, ref.Repo, ref.Number); err != nil {
		return failure(ref, err)
	}

	g.logger.Info("approval submitted", "ref", ref.String(), "login", login)
	return core.Outcome{
		Approved: true,
		Message:  fmt.Sprintf("Approved pull request #%d as %s.", ref.Number, login),
		URL:      ref.HTMLURL(),
	}
}

// failure converts an API error into an Outcome carrying the raw error
// text. The message is surfaced to the user verbatim.
func failure(ref core.Ref, err error) core.Outcome {
	return core.Outcome{
		Message: fmt.Sprintf("Could not approve %s: %v", ref, err),
		URL:     ref.HTMLURL(),
	}
}
