// Package handler provides the HTTP handlers for the Slack Events API.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/sevigo/approvebot/internal/bot"
	"github.com/sevigo/approvebot/internal/config"
	"github.com/sevigo/approvebot/internal/core"
)

// SlackHandler processes incoming Slack event callbacks and slash
// commands over HTTP. Every request is verified against the signing
// secret before anything is parsed.
type SlackHandler struct {
	cfg        *config.Config
	dispatcher *bot.Dispatcher
	logger     *slog.Logger
}

// NewSlackHandler creates a Slack HTTP handler with the given
// configuration and dispatcher.
func NewSlackHandler(cfg *config.Config, dispatcher *bot.Dispatcher, logger *slog.Logger) *SlackHandler {
	return &SlackHandler{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleEvent processes an Events API callback. Mentions are dispatched
// on their own goroutine so the 200 acknowledgment goes out inside
// Slack's delivery window.
func (h *SlackHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.logger.Error("could not parse event payload", "error", err)
		http.Error(w, "Could not parse event", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			http.Error(w, "Could not parse challenge", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		if ev, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent); ok {
			mention := core.MentionEvent{
				Text:     ev.Text,
				Channel:  ev.Channel,
				ThreadTS: ev.ThreadTimeStamp,
				TS:       ev.TimeStamp,
			}
			go h.dispatcher.HandleMention(context.Background(), mention)
		} else {
			h.logger.Debug("ignoring unhandled callback event", "type", event.InnerEvent.Type)
		}
		w.WriteHeader(http.StatusOK)

	default:
		h.logger.Debug("ignoring unhandled event type", "type", event.Type)
		w.WriteHeader(http.StatusOK)
	}
}

// HandleCommand processes a slash-command invocation. The empty 200
// response is the immediate acknowledgment Slack's command contract
// requires; all user-visible replies are posted afterwards.
func (h *SlackHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	// SlashCommandParse consumes the form body, which was already read
	// for signature verification.
	r.Body = io.NopCloser(bytes.NewReader(body))

	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		h.logger.Error("could not parse slash command", "error", err)
		http.Error(w, "Could not parse command", http.StatusBadRequest)
		return
	}

	go h.dispatcher.HandleCommand(context.Background(), core.CommandEvent{
		Text:    cmd.Text,
		Channel: cmd.ChannelID,
	})
	w.WriteHeader(http.StatusOK)
}

// verifiedBody reads the request body and checks its signature against
// the signing secret. On failure it writes the HTTP error itself and
// reports ok=false.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read body", http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.cfg.SlackSigningSecret)
	if err != nil {
		h.logger.Error("could not build signature verifier", "error", err)
		http.Error(w, "Invalid signature headers", http.StatusBadRequest)
		return nil, false
	}
	if _, err := verifier.Write(body); err != nil {
		http.Error(w, "Verification failed", http.StatusInternalServerError)
		return nil, false
	}
	if err := verifier.Ensure(); err != nil {
		h.logger.Error("invalid request signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return nil, false
	}
	return body, true
}
