package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger wraps the Telegram send calls the game delivery needs.
// Fire-and-forget: a failed delivery is logged and dropped, the session state
// machine never depends on a send succeeding.
type Messenger struct {
	BotAPI *tgbotapi.BotAPI
}

// SendText delivers a text message, optionally with a reply markup.
func (m *Messenger) SendText(chatID int64, text string, markup interface{}) {
	if text == "" {
		log.Printf("WARN: Dropping empty message for chat %d", chatID)
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := m.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send message to chat %d: %v", chatID, err)
	}
}

// SendVoice replays a voice answer by its Telegram file ID.
func (m *Messenger) SendVoice(chatID int64, fileID string) {
	voice := tgbotapi.NewVoice(chatID, tgbotapi.FileID(fileID))
	if _, err := m.BotAPI.Send(voice); err != nil {
		log.Printf("ERROR: Failed to send voice to chat %d: %v", chatID, err)
	}
}

// SendVideoNote replays a video-note answer by its Telegram file ID.
func (m *Messenger) SendVideoNote(chatID int64, fileID string) {
	note := tgbotapi.NewVideoNote(chatID, 0, tgbotapi.FileID(fileID))
	if _, err := m.BotAPI.Send(note); err != nil {
		log.Printf("ERROR: Failed to send video note to chat %d: %v", chatID, err)
	}
}

// EditText rewrites an inline-keyboard message in place (topic selection).
func (m *Messenger) EditText(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := m.BotAPI.Send(edit); err != nil {
		log.Printf("ERROR: Failed to edit message %d in chat %d: %v", messageID, chatID, err)
	}
}
