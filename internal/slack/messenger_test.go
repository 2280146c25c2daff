package slack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/approvebot/internal/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		wantInaccessible bool
	}{
		{name: "Channel not found", err: errors.New("channel_not_found"), wantInaccessible: true},
		{name: "Bot not in channel", err: errors.New("not_in_channel"), wantInaccessible: true},
		{name: "Archived channel", err: errors.New("is_archived"), wantInaccessible: true},
		{name: "Rate limited", err: errors.New("rate_limited"), wantInaccessible: false},
		{name: "Generic failure", err: errors.New("msg_too_long"), wantInaccessible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.Error(t, got)
			assert.Equal(t, tt.wantInaccessible, errors.Is(got, core.ErrChannelNotAccessible))
		})
	}

	t.Run("Nil stays nil", func(t *testing.T) {
		assert.NoError(t, classify(nil))
	})
}
