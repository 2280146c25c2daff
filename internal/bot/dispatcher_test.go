package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/approvebot/internal/config"
	"github.com/sevigo/approvebot/internal/core"
	"github.com/sevigo/approvebot/internal/mocks"
)

func newTestDispatcher(t *testing.T, defaultRepo string) (*Dispatcher, *mocks.MockGateway, *mocks.MockMessenger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	chat := mocks.NewMockMessenger(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := NewDispatcher(&config.Config{DefaultRepo: defaultRepo}, gateway, chat, logger)
	return d, gateway, chat
}

// recordPosts accepts every Post into channel/thread and records the
// message payloads in order.
func recordPosts(chat *mocks.MockMessenger, channel, thread string, posts *[]core.Message) {
	chat.EXPECT().Post(gomock.Any(), channel, thread, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, msg core.Message) error {
			*posts = append(*posts, msg)
			return nil
		}).AnyTimes()
}

func openSnapshot(ref core.Ref) *core.Snapshot {
	return &core.Snapshot{
		Ref:     ref,
		Title:   "Add frobnicator",
		State:   core.StateOpen,
		Author:  "alice",
		HTMLURL: ref.HTMLURL(),
	}
}

func TestHandleMention(t *testing.T) {
	ctx := context.Background()
	ref := core.Ref{Owner: "acme", Repo: "widgets", Number: 42}

	t.Run("Approval keyword runs the full sequence", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "111.0", &posts)

		gateway.EXPECT().FetchSnapshot(gomock.Any(), ref).Return(openSnapshot(ref), nil)
		gateway.EXPECT().SubmitApproval(gomock.Any(), ref).
			Return(core.Outcome{Approved: true, Message: "Approved pull request #42 as approver-bot.", URL: ref.HTMLURL()})

		d.HandleMention(ctx, core.MentionEvent{
			Text:    "<@UBOT> approve acme/widgets#42",
			Channel: "C1",
			TS:      "111.0",
		})

		require.Len(t, posts, 3)
		assert.Contains(t, posts[0].Text, "acme/widgets#42") // snapshot
		assert.Contains(t, posts[1].Text, "Submitting approval")
		assert.Contains(t, posts[2].Text, "Approved pull request #42")
	})

	t.Run("Without the keyword it stops at the prompt", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "111.0", &posts)

		gateway.EXPECT().FetchSnapshot(gomock.Any(), ref).Return(openSnapshot(ref), nil)
		// No SubmitApproval expectation: it must not be called.

		d.HandleMention(ctx, core.MentionEvent{
			Text:    "<@UBOT> acme/widgets#42",
			Channel: "C1",
			TS:      "111.0",
		})

		require.Len(t, posts, 2)
		assert.Contains(t, posts[1].Text, "approve")
	})

	t.Run("Threaded reply resolves the reference from the parent", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "")
		parentRef := core.Ref{Owner: "acme", Repo: "widgets", Number: 7}
		var posts []core.Message
		recordPosts(chat, "C1", "100.0", &posts)

		chat.EXPECT().ThreadParent(gomock.Any(), "C1", "100.0").
			Return("see https://github.com/acme/widgets/pull/7", nil)
		gateway.EXPECT().FetchSnapshot(gomock.Any(), parentRef).Return(openSnapshot(parentRef), nil)
		gateway.EXPECT().SubmitApproval(gomock.Any(), parentRef).
			Return(core.Outcome{Approved: true, Message: "Approved pull request #7 as approver-bot.", URL: parentRef.HTMLURL()})

		d.HandleMention(ctx, core.MentionEvent{
			Text:     "<@UBOT> approve",
			Channel:  "C1",
			ThreadTS: "100.0",
			TS:       "111.0",
		})

		require.Len(t, posts, 3)
	})

	t.Run("Parent lookup failure falls back to the mention text", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "100.0", &posts)

		chat.EXPECT().ThreadParent(gomock.Any(), "C1", "100.0").
			Return("", errors.New("channel_not_found"))
		gateway.EXPECT().FetchSnapshot(gomock.Any(), ref).Return(openSnapshot(ref), nil)

		d.HandleMention(ctx, core.MentionEvent{
			Text:     "<@UBOT> acme/widgets#42",
			Channel:  "C1",
			ThreadTS: "100.0",
			TS:       "111.0",
		})

		require.Len(t, posts, 2) // snapshot + approval prompt
	})

	t.Run("Bare mention with no reference gets the help message", func(t *testing.T) {
		d, _, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "111.0", &posts)

		d.HandleMention(ctx, core.MentionEvent{
			Text:    "<@UBOT> hello",
			Channel: "C1",
			TS:      "111.0",
		})

		require.Len(t, posts, 1)
		assert.Equal(t, helpText, posts[0].Text)
	})

	t.Run("Threaded reply with no reference gets the not-found guidance", func(t *testing.T) {
		d, _, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "100.0", &posts)

		chat.EXPECT().ThreadParent(gomock.Any(), "C1", "100.0").Return("no refs here", nil)

		d.HandleMention(ctx, core.MentionEvent{
			Text:     "<@UBOT> nothing here either",
			Channel:  "C1",
			ThreadTS: "100.0",
			TS:       "111.0",
		})

		require.Len(t, posts, 1)
		assert.Equal(t, refNotFoundText, posts[0].Text)
	})

	t.Run("Snapshot fetch failure gets the could-not-fetch reply", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "111.0", &posts)

		gateway.EXPECT().FetchSnapshot(gomock.Any(), ref).Return(nil, errors.New("boom"))

		d.HandleMention(ctx, core.MentionEvent{
			Text:    "<@UBOT> approve acme/widgets#42",
			Channel: "C1",
			TS:      "111.0",
		})

		require.Len(t, posts, 1)
		assert.Contains(t, posts[0].Text, "Couldn't fetch details")
	})

	t.Run("Inaccessible channel short-circuits the trigger", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "")

		gateway.EXPECT().FetchSnapshot(gomock.Any(), ref).Return(openSnapshot(ref), nil)
		chat.EXPECT().Post(gomock.Any(), "C1", "111.0", gomock.Any()).
			Return(fmt.Errorf("%w: channel_not_found", core.ErrChannelNotAccessible))
		// No further Post and no SubmitApproval despite the keyword.

		d.HandleMention(ctx, core.MentionEvent{
			Text:    "<@UBOT> approve acme/widgets#42",
			Channel: "C1",
			TS:      "111.0",
		})
	})

	t.Run("Bare number resolves against the default repo", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "acme/widgets")
		var posts []core.Message
		recordPosts(chat, "C1", "111.0", &posts)

		gateway.EXPECT().FetchSnapshot(gomock.Any(), ref).Return(openSnapshot(ref), nil)

		d.HandleMention(ctx, core.MentionEvent{
			Text:    "<@UBOT> what about #42?",
			Channel: "C1",
			TS:      "111.0",
		})

		require.Len(t, posts, 2)
	})
}

func TestHandleCommand(t *testing.T) {
	ctx := context.Background()
	ref := core.Ref{Owner: "acme", Repo: "widgets", Number: 42}

	t.Run("Blank text replies with usage and makes no gateway calls", func(t *testing.T) {
		d, _, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "", &posts)

		d.HandleCommand(ctx, core.CommandEvent{Text: "", Channel: "C1"})

		require.Len(t, posts, 1)
		assert.Equal(t, usageText, posts[0].Text)
	})

	t.Run("Unparsable text replies with the format guidance", func(t *testing.T) {
		d, _, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "", &posts)

		d.HandleCommand(ctx, core.CommandEvent{Text: "what is this", Channel: "C1"})

		require.Len(t, posts, 1)
		assert.Equal(t, invalidRefText, posts[0].Text)
	})

	t.Run("A valid reference always implies approval intent", func(t *testing.T) {
		d, gateway, chat := newTestDispatcher(t, "")
		var posts []core.Message
		recordPosts(chat, "C1", "", &posts)

		gateway.EXPECT().FetchSnapshot(gomock.Any(), ref).Return(openSnapshot(ref), nil)
		gateway.EXPECT().SubmitApproval(gomock.Any(), ref).
			Return(core.Outcome{Message: "approver-bot has already approved acme/widgets#42, nothing to do.", URL: ref.HTMLURL()})

		d.HandleCommand(ctx, core.CommandEvent{Text: "acme/widgets#42", Channel: "C1"})

		require.Len(t, posts, 3)
		assert.Contains(t, posts[2].Text, "already approved")
	})
}

func TestApproveKeyword(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"please approve this", true},
		{"APPROVE", true},
		{"Approve acme/widgets#1", true},
		{"approved yesterday", false},
		{"disapprove", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, approveKeyword.MatchString(tt.text), "text: %q", tt.text)
	}
}
