// Package slack adapts the Slack Web API to the chat operations the
// dispatcher needs. Platform errors are classified into the core error
// kinds here, at the boundary, so callers never inspect Slack error
// strings themselves.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"

	"github.com/sevigo/approvebot/internal/core"
)

type messenger struct {
	api    *slack.Client
	logger *slog.Logger
}

// NewMessenger wraps a Slack API client as a core.Messenger.
func NewMessenger(api *slack.Client, logger *slog.Logger) core.Messenger {
	return &messenger{api: api, logger: logger}
}

// Post sends a message into channel, threaded under threadTS when it is
// non-empty.
func (m *messenger) Post(ctx context.Context, channel, threadTS string, msg core.Message) error {
	opts := []slack.MsgOption{slack.MsgOptionText(msg.Text, false)}
	if len(msg.Blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(msg.Blocks...))
	}
	if threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(threadTS))
	}

	_, _, err := m.api.PostMessageContext(ctx, channel, opts...)
	if err != nil {
		m.logger.Error("failed to post message", "channel", channel, "error", err)
		return classify(err)
	}
	return nil
}

// ThreadParent fetches the text of the message that started the thread.
// The lookup is bounded to a single message at the thread root.
func (m *messenger) ThreadParent(ctx context.Context, channel, threadTS string) (string, error) {
	resp, err := m.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channel,
		Latest:    threadTS,
		Limit:     1,
		Inclusive: true,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Messages) == 0 {
		return "", fmt.Errorf("thread root %s not found in channel %s", threadTS, channel)
	}
	return resp.Messages[0].Text, nil
}

// classify tags Slack API errors with the core error kinds. Channel
// access failures mean no reply can be delivered at all, so they get
// the distinguished kind the dispatcher short-circuits on.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case strings.Contains(err.Error(), "channel_not_found"),
		strings.Contains(err.Error(), "not_in_channel"),
		strings.Contains(err.Error(), "is_archived"):
		return fmt.Errorf("%w (invite the bot to the channel): %v", core.ErrChannelNotAccessible, err)
	default:
		return err
	}
}
