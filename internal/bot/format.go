package bot

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/sevigo/approvebot/internal/core"
)

// FormatSnapshot renders a pull request snapshot as a Block Kit
// message: a summary section, a reviews section (only when reviews
// exist), and a link button to the pull request. Pure function.
func FormatSnapshot(snap *core.Snapshot) core.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*<%s|%s>*\n", snap.HTMLURL, snap.Title)
	fmt.Fprintf(&sb, "%s · by `%s` · %s", stateLabel(snap), snap.Author, mergeableLabel(snap.Mergeable))

	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, sb.String(), false, false),
			nil, nil,
		),
	}

	if reviewText := formatReviews(snap.Reviews); reviewText != "" {
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, reviewText, false, false),
				nil, nil,
			),
		)
	}

	openBtn := slack.NewButtonBlockElement("open_pull_request", snap.Ref.String(),
		slack.NewTextBlockObject(slack.PlainTextType, "View on GitHub", false, false))
	openBtn.URL = snap.HTMLURL
	blocks = append(blocks, slack.NewActionBlock("", openBtn))

	return core.Message{
		Text:   fmt.Sprintf("%s: %s", snap.Ref, snap.Title),
		Blocks: blocks,
	}
}

// FormatOutcome renders an approval outcome. Successes get a section
// plus a primary-styled link button; failures are a plain text line.
func FormatOutcome(outcome core.Outcome) core.Message {
	if !outcome.Approved {
		return core.Message{Text: "❌ " + outcome.Message}
	}

	viewBtn := slack.NewButtonBlockElement("view_pull_request", "",
		slack.NewTextBlockObject(slack.PlainTextType, "View pull request", false, false))
	viewBtn.URL = outcome.URL
	viewBtn.Style = slack.StylePrimary

	return core.Message{
		Text: "✅ " + outcome.Message,
		Blocks: []slack.Block{
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, "✅ "+outcome.Message, false, false),
				nil, nil,
			),
			slack.NewActionBlock("", viewBtn),
		},
	}
}

// formatReviews summarizes the review list, grouping reviewers under
// APPROVED and CHANGES_REQUESTED. Other review states are counted into
// neither group. Returns "" when there is nothing to summarize.
func formatReviews(reviews []core.Review) string {
	if len(reviews) == 0 {
		return ""
	}

	approved := reviewersByState(reviews, core.ReviewApproved)
	changes := reviewersByState(reviews, core.ReviewChangesRequested)

	var sb strings.Builder
	sb.WriteString("*Reviews*")
	if len(approved) > 0 {
		fmt.Fprintf(&sb, "\n✅ Approved (%d): %s", len(approved), strings.Join(approved, ", "))
	}
	if len(changes) > 0 {
		fmt.Fprintf(&sb, "\n🚫 Changes requested (%d): %s", len(changes), strings.Join(changes, ", "))
	}
	return sb.String()
}

// reviewersByState lists each reviewer with a review in the given state
// exactly once, in first-seen order.
func reviewersByState(reviews []core.Review, state string) []string {
	seen := make(map[string]struct{})
	var logins []string
	for _, r := range reviews {
		if r.State != state {
			continue
		}
		if _, ok := seen[r.Reviewer]; ok {
			continue
		}
		seen[r.Reviewer] = struct{}{}
		logins = append(logins, r.Reviewer)
	}
	return logins
}

func stateLabel(snap *core.Snapshot) string {
	var label string
	switch snap.State {
	case core.StateOpen:
		label = "🟢 Open"
	case core.StateMerged:
		label = "🟣 Merged"
	case core.StateClosed:
		label = "🔴 Closed"
	default:
		label = snap.State
	}
	if snap.Draft {
		label += " (Draft)"
	}
	return label
}

func mergeableLabel(mergeable *bool) string {
	switch {
	case mergeable == nil:
		return "mergeable: unknown"
	case *mergeable:
		return "mergeable: yes"
	default:
		return "mergeable: no"
	}
}
