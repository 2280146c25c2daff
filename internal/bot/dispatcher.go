// Package bot implements the event dispatcher: the entry points behind
// every inbound trigger, orchestrating parser → gateway → formatter →
// reply. Each trigger is handled independently and statelessly.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"github.com/sevigo/approvebot/internal/config"
	"github.com/sevigo/approvebot/internal/core"
	"github.com/sevigo/approvebot/internal/refparse"
)

// approveKeyword matches the approval command as a whole word,
// case-insensitively.
var approveKeyword = regexp.MustCompile(`(?i)\bapprove\b`)

// Dispatcher routes mention and slash-command triggers through the
// reference parser, the hosting gateway and the formatter, replying at
// each step. It holds no state across triggers.
type Dispatcher struct {
	gateway     core.Gateway
	chat        core.Messenger
	defaultRepo string
	logger      *slog.Logger
}

// NewDispatcher creates a dispatcher with its collaborators passed in
// explicitly; nothing is read from globals.
func NewDispatcher(cfg *config.Config, gateway core.Gateway, chat core.Messenger, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		gateway:     gateway,
		chat:        chat,
		defaultRepo: cfg.DefaultRepo,
		logger:      logger,
	}
}

// HandleMention processes an @-mention of the bot. Replies are threaded
// under the mention's thread root, or under the mention itself when it
// starts a new thread.
func (d *Dispatcher) HandleMention(ctx context.Context, ev core.MentionEvent) {
	target := ev.ThreadTS
	if target == "" {
		target = ev.TS
	}
	defer d.recoverTrigger(ctx, ev.Channel, target)

	isReply := ev.ThreadTS != ""
	wantsApproval := approveKeyword.MatchString(ev.Text)

	var parentText string
	if isReply {
		text, err := d.chat.ThreadParent(ctx, ev.Channel, ev.ThreadTS)
		if err != nil {
			// Proceed with an empty parent rather than failing the
			// whole trigger.
			d.logger.Warn("could not read thread parent", "channel", ev.Channel, "thread", ev.ThreadTS, "error", err)
		} else {
			parentText = text
		}
	}

	ref, ok := d.resolveRef(parentText, ev.Text, isReply)
	if !ok {
		if isReply {
			d.notify(ctx, ev.Channel, target, core.Message{Text: refNotFoundText})
		} else {
			// A bare mention with no reference and no thread context
			// gets the usage help instead of a not-found complaint.
			d.notify(ctx, ev.Channel, target, core.Message{Text: helpText})
		}
		return
	}

	d.runReview(ctx, ev.Channel, target, ref, wantsApproval)
}

// HandleCommand processes a slash-command invocation. The platform ack
// has already been sent by the transport; a slash command always
// implies approval intent.
func (d *Dispatcher) HandleCommand(ctx context.Context, ev core.CommandEvent) {
	defer d.recoverTrigger(ctx, ev.Channel, "")

	if ev.Text == "" {
		d.notify(ctx, ev.Channel, "", core.Message{Text: usageText})
		return
	}

	ref, ok := refparse.Extract(ev.Text, d.defaultRepo)
	if !ok {
		d.notify(ctx, ev.Channel, "", core.Message{Text: invalidRefText})
		return
	}

	d.runReview(ctx, ev.Channel, "", ref, true)
}

// runReview is the shared tail of both triggers: fetch and show the
// snapshot, then optionally submit the approval and show the outcome.
func (d *Dispatcher) runReview(ctx context.Context, channel, target string, ref core.Ref, approve bool) {
	snap, err := d.gateway.FetchSnapshot(ctx, ref)
	if err != nil {
		d.logger.Error("snapshot fetch failed", "ref", ref.String(), "error", err)
		d.notify(ctx, channel, target, fetchFailedMessage(ref))
		return
	}

	if !d.notify(ctx, channel, target, FormatSnapshot(snap)) {
		return
	}

	if !approve {
		d.notify(ctx, channel, target, core.Message{Text: approvePromptText})
		return
	}

	if !d.notify(ctx, channel, target, processingMessage(ref)) {
		return
	}
	outcome := d.gateway.SubmitApproval(ctx, ref)
	d.notify(ctx, channel, target, FormatOutcome(outcome))
}

// resolveRef applies the parser to the relevant texts: for threaded
// replies the parent text is tried first with the mention text as
// fallback; otherwise only the mention text is considered.
func (d *Dispatcher) resolveRef(parentText, mentionText string, isReply bool) (core.Ref, bool) {
	if isReply {
		if ref, ok := refparse.Extract(parentText, d.defaultRepo); ok {
			return ref, true
		}
	}
	return refparse.Extract(mentionText, d.defaultRepo)
}

// notify is the reply-with-fallback helper used by every step that
// talks to the user: attempt the reply; when the channel is not
// accessible, log and report false so the caller stops trying to send
// anything further; on any other failure, log and carry on.
func (d *Dispatcher) notify(ctx context.Context, channel, target string, msg core.Message) bool {
	err := d.chat.Post(ctx, channel, target, msg)
	switch {
	case err == nil:
		return true
	case errors.Is(err, core.ErrChannelNotAccessible):
		d.logger.Error("channel not accessible, giving up on this trigger", "channel", channel, "error", err)
		return false
	default:
		d.logger.Error("reply failed", "channel", channel, "error", err)
		return true
	}
}

// recoverTrigger keeps a panicking handler from taking down the event
// runtime: it logs, then makes one best-effort attempt to tell the
// user.
func (d *Dispatcher) recoverTrigger(ctx context.Context, channel, target string) {
	if r := recover(); r != nil {
		d.logger.Error("trigger handler panicked", "channel", channel, "panic", r)
		d.notify(ctx, channel, target, core.Message{Text: internalErrorText})
	}
}
