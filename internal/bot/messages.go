package bot

import (
	"fmt"

	"github.com/sevigo/approvebot/internal/core"
)

// Canned user-facing replies. Everything the bot says that is not a
// formatted snapshot or outcome lives here.

const helpText = "👋 I look up and approve pull requests.\n" +
	"Mention me with a reference in any of these formats:\n" +
	"• `https://github.com/owner/repo/pull/123`\n" +
	"• `owner/repo#123`\n" +
	"• `#123` (when a default repository is configured)\n" +
	"Add the word `approve` to submit an approval, or reply to a message that contains a reference."

const refNotFoundText = "I couldn't find a pull request reference. " +
	"Use `https://github.com/owner/repo/pull/123`, `owner/repo#123`, or `#123` with a default repository configured."

const usageText = "Usage: `/approve <pull request reference>` — e.g. `/approve owner/repo#123`."

const invalidRefText = "That doesn't look like a pull request reference. " +
	"Use `https://github.com/owner/repo/pull/123`, `owner/repo#123`, or `#123` with a default repository configured."

const approvePromptText = "Reply with `approve` in this thread and I'll submit an approval."

const internalErrorText = "⚠️ Something went wrong handling that — check the logs."

func fetchFailedMessage(ref core.Ref) core.Message {
	return core.Message{Text: fmt.Sprintf("Couldn't fetch details for %s. It may not exist, or the token may lack access.", ref)}
}

func processingMessage(ref core.Ref) core.Message {
	return core.Message{Text: fmt.Sprintf("⏳ Submitting approval for %s…", ref)}
}
