package server

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/sevigo/approvebot/internal/bot"
	"github.com/sevigo/approvebot/internal/core"
)

// SocketBridge consumes Slack events over Socket Mode and routes them
// to the dispatcher. Every envelope is acknowledged immediately; each
// trigger then runs on its own goroutine, so independent triggers may
// interleave freely.
type SocketBridge struct {
	client     *socketmode.Client
	dispatcher *bot.Dispatcher
	logger     *slog.Logger
}

// NewSocketBridge creates a Socket Mode bridge for the given Slack API
// client. The client must have been built with an app-level token.
func NewSocketBridge(api *slack.Client, dispatcher *bot.Dispatcher, logger *slog.Logger) *SocketBridge {
	return &SocketBridge{
		client:     socketmode.New(api),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run connects to Slack and processes events until ctx is cancelled.
func (b *SocketBridge) Run(ctx context.Context) error {
	go b.handleEvents(ctx)

	b.logger.Info("starting Socket Mode event bridge")
	return b.client.RunContext(ctx)
}

func (b *SocketBridge) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-b.client.Events:
			if !ok {
				return
			}
			b.handleEvent(ctx, evt)
		}
	}
}

func (b *SocketBridge) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnected:
		b.logger.Info("connected to Slack")

	case socketmode.EventTypeConnectionError:
		b.logger.Error("Slack connection error", "data", evt.Data)

	case socketmode.EventTypeEventsAPI:
		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		b.client.Ack(*evt.Request)

		if ev, ok := apiEvent.InnerEvent.Data.(*slackevents.AppMentionEvent); ok {
			mention := core.MentionEvent{
				Text:     ev.Text,
				Channel:  ev.Channel,
				ThreadTS: ev.ThreadTimeStamp,
				TS:       ev.TimeStamp,
			}
			go b.dispatcher.HandleMention(ctx, mention)
		}

	case socketmode.EventTypeSlashCommand:
		cmd, ok := evt.Data.(slack.SlashCommand)
		if !ok {
			return
		}
		// Acking the envelope is the immediate acknowledgment the
		// command contract requires; replies follow asynchronously.
		b.client.Ack(*evt.Request)

		go b.dispatcher.HandleCommand(ctx, core.CommandEvent{
			Text:    cmd.Text,
			Channel: cmd.ChannelID,
		})

	default:
		b.logger.Debug("ignoring socket event", "type", evt.Type)
	}
}
