package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMention(t *testing.T) {
	assert.Equal(t,
		"<a href='tg://user?id=42'>Аня</a>",
		FormatMention(42, "Аня"))
}

// Names are user input and end up inside HTML markup
func TestFormatMentionEscapesHTML(t *testing.T) {
	mention := FormatMention(42, "<b>хакер</b>")
	assert.NotContains(t, mention, "<b>")
	assert.Contains(t, mention, "&lt;b&gt;")
}

func TestMainMenuKeyboard(t *testing.T) {
	kb := mainMenuKeyboard()

	require.Len(t, kb.InlineKeyboard, 2)
	require.Len(t, kb.InlineKeyboard[0], 1)
	require.Len(t, kb.InlineKeyboard[1], 2)

	require.NotNil(t, kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, CallbackNewOrder, *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, CallbackMyOrder, *kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, CallbackDone, *kb.InlineKeyboard[1][1].CallbackData)
}
