package localization_test

import (
	"testing"

	"cardslite/backend/internal/localization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalizerFallback checks the ru -> en -> key fallback chain on the
// real translation files shipped with the bot.
func TestLocalizerFallback(t *testing.T) {
	l, err := localization.NewLocalizer(".", "ru")
	require.NoError(t, err)

	assert.NotEqual(t, "welcome", l.Get("welcome"), "default language should resolve the key")
	assert.Equal(t, "Player 1", l.GetLang("de", "role_player1"), "unknown language falls back to en")
	assert.Equal(t, "no_such_key", l.Get("no_such_key"), "unknown key falls back to itself")
}

// TestLocalizerMissingDefault rejects a default language with no file.
func TestLocalizerMissingDefault(t *testing.T) {
	_, err := localization.NewLocalizer(".", "xx")
	require.Error(t, err)
}

// TestTranslationTablesMatch ensures ru and en carry the same key set, so a
// language switch can never drop a message.
func TestTranslationTablesMatch(t *testing.T) {
	l, err := localization.NewLocalizer(".", "ru")
	require.NoError(t, err)

	keys := []string{
		"welcome", "menu_choose_topic", "menu_join", "btn_next", "btn_exit",
		"room_created", "game_started", "question_prompt", "question_prompt_next",
		"chat_revealed", "history_header", "history_voice", "history_video_note",
		"answer_first", "ready_waiting", "partner_ready", "finish_message",
		"exit_game", "partner_left", "stop_left", "stop_partner_left",
		"add_topic_step1", "add_topic_step2", "topic_created", "unsupported_message",
	}
	for _, key := range keys {
		assert.NotEqual(t, key, l.GetLang("ru", key), "missing ru translation for %s", key)
		assert.NotEqual(t, key, l.GetLang("en", key), "missing en translation for %s", key)
	}
}
