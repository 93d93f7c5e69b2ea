package telegram

import (
	"testing"

	"cardslite/backend/internal/localization"
	"cardslite/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocalizer(t *testing.T) *localization.Localizer {
	t.Helper()
	l, err := localization.NewLocalizer("../localization", "en")
	require.NoError(t, err)
	return l
}

// TestFormatTranscript renders both seats' messages in order with role labels
// and placeholders for media entries.
func TestFormatTranscript(t *testing.T) {
	// Arrange
	l := testLocalizer(t)
	room := &models.Room{ID: "123456", Player1ID: 10, Player2ID: 20}
	entries := []models.ChatEntry{
		{AuthorID: 10, Kind: models.EntryKindText, Payload: "hello from one"},
		{AuthorID: 20, Kind: models.EntryKindVoice, Payload: "file-id"},
		{AuthorID: 20, Kind: models.EntryKindText, Payload: "and some text"},
	}

	// Act
	text := formatTranscript(l, entries, room)

	// Assert
	assert.Contains(t, text, l.Get("history_header"))
	assert.Contains(t, text, "Player 1")
	assert.Contains(t, text, "Player 2")
	assert.Contains(t, text, "hello from one")
	assert.Contains(t, text, l.Get("history_voice"))
	assert.Contains(t, text, "and some text")
	assert.NotContains(t, text, "file-id", "media file IDs must never leak into the transcript")
}

// TestFormatTranscriptEmpty falls back to the empty-history message.
func TestFormatTranscriptEmpty(t *testing.T) {
	l := testLocalizer(t)
	room := &models.Room{ID: "123456", Player1ID: 10, Player2ID: 20}

	text := formatTranscript(l, nil, room)

	assert.Equal(t, l.Get("history_empty"), text)
}

// TestFormatQuestion fills the 1-based position and total into the prompt.
func TestFormatQuestion(t *testing.T) {
	l := testLocalizer(t)

	text := formatQuestion(l, 2, 5, "What makes you laugh?")

	assert.Contains(t, text, "2/5")
	assert.Contains(t, text, "What makes you laugh?")
}

// TestFormatTopicList lists every topic with its ID.
func TestFormatTopicList(t *testing.T) {
	l := testLocalizer(t)
	topicList := []models.Topic{
		{ID: 1, Name: "First dates"},
		{ID: 7, Name: "Long distance"},
	}

	text := formatTopicList(l, topicList)

	assert.Contains(t, text, "1. First dates")
	assert.Contains(t, text, "7. Long distance")
	assert.Contains(t, text, l.Get("topics_header"))
}

// TestFormatTopicPreview truncates long question lists and reports the rest.
func TestFormatTopicPreview(t *testing.T) {
	l := testLocalizer(t)
	topic := &models.Topic{ID: 3, Name: "Marathon"}
	questions := []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7"}

	text := formatTopicPreview(l, topic, questions, 5)

	assert.Contains(t, text, "Marathon")
	assert.Contains(t, text, "5. q5")
	assert.NotContains(t, text, "6. q6")
	assert.Contains(t, text, "2 more")
}

// TestTopicSelectionKeyboard encodes the topic ID into the callback data.
func TestTopicSelectionKeyboard(t *testing.T) {
	topicList := []models.Topic{
		{ID: 4, Name: "Travel"},
		{ID: 9, Name: "Future plans"},
	}

	kb := topicSelectionKeyboard(topicList)

	require.Len(t, kb.InlineKeyboard, 2)
	require.Len(t, kb.InlineKeyboard[0], 1)
	assert.Equal(t, "Travel", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "select_topic_4", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "select_topic_9", *kb.InlineKeyboard[1][0].CallbackData)
}
