package core

import (
	"context"

	"github.com/slack-go/slack"
)

// Message is a reply payload for the chat platform. Text doubles as the
// notification fallback when Blocks are present.
type Message struct {
	Text   string
	Blocks []slack.Block
}

// Gateway defines all interaction with the code-hosting service.
//
//go:generate mockgen -destination=../mocks/mock_ports.go -package=mocks . Gateway,Messenger
type Gateway interface {
	// FetchSnapshot reads the pull request's metadata and review list
	// and composes them into a Snapshot. Any transport or API failure
	// is returned as an error; callers treat it as "could not fetch
	// details", distinct from "no reference found".
	FetchSnapshot(ctx context.Context, ref Ref) (*Snapshot, error)

	// SubmitApproval submits an APPROVE review under the configured
	// identity, unless that identity has already approved. All
	// failures are folded into the Outcome; this call never errors.
	SubmitApproval(ctx context.Context, ref Ref) Outcome
}

// Messenger defines the outbound chat operations the dispatcher needs.
type Messenger interface {
	// Post sends a message into channel. A non-empty threadTS threads
	// the reply under that timestamp.
	Post(ctx context.Context, channel, threadTS string, msg Message) error

	// ThreadParent fetches the text of the message that started the
	// thread identified by threadTS.
	ThreadParent(ctx context.Context, channel, threadTS string) (string, error)
}

// MentionEvent is the internal view of an @-mention of the bot.
type MentionEvent struct {
	Text     string
	Channel  string
	ThreadTS string // thread root; empty when the mention is not a threaded reply
	TS       string // the mention's own timestamp
}

// CommandEvent is the internal view of a slash-command invocation. The
// platform-level acknowledgment has already happened by the time a
// CommandEvent reaches the dispatcher.
type CommandEvent struct {
	Text    string
	Channel string
}
