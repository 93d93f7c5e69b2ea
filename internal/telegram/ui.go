package telegram

import (
	"fmt"
	"strings"

	"cardslite/backend/internal/localization"
	"cardslite/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// localized formats a translated string with fmt verbs baked into the
// translation.
func localized(l *localization.Localizer, key string, args ...interface{}) string {
	return fmt.Sprintf(l.Get(key), args...)
}

// mainMenuKeyboard is the reply keyboard shown after /start.
func mainMenuKeyboard(l *localization.Localizer) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(l.Get("menu_choose_topic")),
			tgbotapi.NewKeyboardButton(l.Get("menu_join")),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// gameKeyboard is shown once the chat is revealed: advance or leave.
func gameKeyboard(l *localization.Localizer) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(l.Get("btn_next"))),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(l.Get("btn_exit"))),
	)
	kb.ResizeKeyboard = true
	return kb
}

func removeKeyboard() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.NewRemoveKeyboard(false)
}

// topicSelectionKeyboard builds one inline button per topic; the callback data
// carries the topic ID.
func topicSelectionKeyboard(topicList []models.Topic) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(topicList))
	for _, t := range topicList {
		data := fmt.Sprintf("select_topic_%d", t.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Name, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// formatQuestion renders the "question N/M" prompt sent to both participants.
func formatQuestion(l *localization.Localizer, position, total int, text string) string {
	return fmt.Sprintf(l.Get("question_prompt"), position, total, text)
}

// formatTranscript renders the revealed exchange for one question. Media
// entries get a placeholder line; the files themselves are replayed
// separately before the text history.
func formatTranscript(l *localization.Localizer, entries []models.ChatEntry, room *models.Room) string {
	if len(entries) == 0 {
		return l.Get("history_empty")
	}

	var b strings.Builder
	b.WriteString(l.Get("history_header"))
	b.WriteString("\n\n")
	for _, e := range entries {
		sender := l.Get("role_player2")
		if room.Role(e.AuthorID) == models.RolePlayer1 {
			sender = l.Get("role_player1")
		}
		switch e.Kind {
		case models.EntryKindVoice:
			fmt.Fprintf(&b, "👤 %s:\n%s\n\n", sender, l.Get("history_voice"))
		case models.EntryKindVideoNote:
			fmt.Fprintf(&b, "👤 %s:\n%s\n\n", sender, l.Get("history_video_note"))
		default:
			fmt.Fprintf(&b, "👤 %s:\n%s\n\n", sender, e.Payload)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatTopicList renders /topics output.
func formatTopicList(l *localization.Localizer, topicList []models.Topic) string {
	var b strings.Builder
	b.WriteString(l.Get("topics_header"))
	b.WriteString("\n\n")
	for _, t := range topicList {
		fmt.Fprintf(&b, "%d. %s\n", t.ID, t.Name)
	}
	b.WriteString("\n")
	b.WriteString(l.Get("topics_hint"))
	return b.String()
}

// formatTopicPreview renders the authoring confirmation with the first few
// questions.
func formatTopicPreview(l *localization.Localizer, topic *models.Topic, questions []string, limit int) string {
	preview := questions
	more := 0
	if len(questions) > limit {
		preview = questions[:limit]
		more = len(questions) - limit
	}
	var lines []string
	for i, q := range preview {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	text := fmt.Sprintf(l.Get("topic_created"), topic.Name, topic.ID, len(questions), strings.Join(lines, "\n"))
	if more > 0 {
		text += fmt.Sprintf(l.Get("topic_created_more"), more)
	}
	return text
}
