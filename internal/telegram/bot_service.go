// Package telegram is the delivery layer: it receives Telegram updates, routes
// them into the game coordinator and translates the returned decisions into
// outbound messages. No session state lives here.
package telegram

import (
	"log"
	"strconv"
	"strings"

	"cardslite/backend/internal/config"
	"cardslite/backend/internal/game"
	"cardslite/backend/internal/localization"
	"cardslite/backend/internal/models"
	"cardslite/backend/internal/storage"
	"cardslite/backend/internal/topics"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotService receives Telegram updates and drives the game through the
// coordinator.
type BotService struct {
	BotAPI      *tgbotapi.BotAPI
	Messenger   *Messenger
	Coordinator *game.Coordinator
	Storage     *storage.Service
	Topics      *topics.Service
	Localizer   *localization.Localizer
	AdminID     int64
}

// NewBotService authorizes the bot and wires it to the coordinator and store.
func NewBotService(token string, adminID int64, coord *game.Coordinator, s *storage.Service, t *topics.Service, l *localization.Localizer) (*BotService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &BotService{
		BotAPI:      bot,
		Messenger:   &Messenger{BotAPI: bot},
		Coordinator: coord,
		Storage:     s,
		Topics:      t,
		Localizer:   l,
		AdminID:     adminID,
	}, nil
}

// Run is the main long-polling loop.
func (s *BotService) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = config.LongPollTimeout
	updates := s.BotAPI.GetUpdatesChan(u)

	for update := range updates {
		switch {
		case update.Message != nil:
			s.handleMessage(update.Message)
		case update.CallbackQuery != nil:
			s.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func (s *BotService) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch {
	case msg.Voice != nil:
		s.submitAnswer(chatID, userID, models.EntryKindVoice, msg.Voice.FileID)
		return
	case msg.VideoNote != nil:
		s.submitAnswer(chatID, userID, models.EntryKindVideoNote, msg.VideoNote.FileID)
		return
	}

	if msg.IsCommand() {
		s.handleCommand(msg)
		return
	}

	text := msg.Text
	if text == "" {
		s.Messenger.SendText(chatID, s.Localizer.Get("unsupported_message"), nil)
		return
	}

	// Half-finished dialogs (join by code, topic authoring) win over
	// everything else.
	pending, err := s.Storage.PendingActionFor(chatID)
	if err != nil {
		log.Printf("ERROR: Failed to read pending action for chat %d: %v", chatID, err)
	}
	if !pending.IsZero() {
		s.handlePendingAction(chatID, userID, text, pending)
		return
	}

	if s.handleMenuButton(chatID, userID, text) {
		return
	}
	if s.handleGameButton(chatID, userID, text) {
		return
	}

	// Anything else is an answer for the current question.
	s.submitAnswer(chatID, userID, models.EntryKindText, text)
}

func (s *BotService) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "start":
		s.Messenger.SendText(chatID, s.Localizer.Get("welcome"), mainMenuKeyboard(s.Localizer))
	case "topics":
		s.sendTopicList(chatID)
	case "create_room":
		args := strings.TrimSpace(msg.CommandArguments())
		if args == "" {
			s.Messenger.SendText(chatID, s.Localizer.Get("create_room_usage"), nil)
			return
		}
		topicID, err := strconv.ParseUint(args, 10, 32)
		if err != nil {
			s.Messenger.SendText(chatID, s.Localizer.Get("create_room_usage"), nil)
			return
		}
		s.createRoom(chatID, userID, uint(topicID))
	case "join_room":
		args := strings.TrimSpace(msg.CommandArguments())
		if args == "" {
			s.Messenger.SendText(chatID, s.Localizer.Get("enter_room_id"), removeKeyboard())
			s.setPending(chatID, models.PendingAction{Kind: models.PendingAwaitRoomID})
			return
		}
		s.joinRoom(chatID, userID, args)
	case "stop":
		s.stopGame(chatID, userID)
	case "add_topic":
		if userID != s.AdminID {
			s.Messenger.SendText(chatID, s.Localizer.Get("admin_only"), nil)
			return
		}
		s.Messenger.SendText(chatID, s.Localizer.Get("add_topic_step1"), nil)
		s.setPending(chatID, models.PendingAction{Kind: models.PendingAwaitTopic})
	}
}

// handleMenuButton matches the persistent reply-keyboard buttons.
func (s *BotService) handleMenuButton(chatID, userID int64, text string) bool {
	switch text {
	case s.Localizer.Get("menu_choose_topic"):
		topicList, err := s.Topics.List()
		if err != nil {
			log.Printf("ERROR: Failed to list topics: %v", err)
			return true
		}
		if len(topicList) == 0 {
			s.Messenger.SendText(chatID, s.Localizer.Get("topics_empty"), nil)
			return true
		}
		s.Messenger.SendText(chatID, s.Localizer.Get("choose_topic_prompt"), topicSelectionKeyboard(topicList))
		return true
	case s.Localizer.Get("menu_join"):
		s.Messenger.SendText(chatID, s.Localizer.Get("enter_room_id"), nil)
		s.setPending(chatID, models.PendingAction{Kind: models.PendingAwaitRoomID})
		return true
	}
	return false
}

// handleGameButton matches the in-game keyboard.
func (s *BotService) handleGameButton(chatID, userID int64, text string) bool {
	switch text {
	case s.Localizer.Get("btn_next"):
		s.requestNext(chatID, userID)
		return true
	case s.Localizer.Get("btn_exit"):
		s.exitGame(chatID, userID)
		return true
	}
	return false
}

// handlePendingAction continues a multi-step dialog.
func (s *BotService) handlePendingAction(chatID, userID int64, text string, pending models.PendingAction) {
	switch pending.Kind {
	case models.PendingAwaitRoomID:
		s.clearPending(chatID)
		s.joinRoom(chatID, userID, strings.TrimSpace(text))

	case models.PendingAwaitTopic:
		name := strings.TrimSpace(text)
		if name == "" {
			s.Messenger.SendText(chatID, s.Localizer.Get("topic_name_empty"), nil)
			return
		}
		s.setPending(chatID, models.PendingAction{Kind: models.PendingAwaitQuestion, TopicName: name})
		s.Messenger.SendText(chatID, localized(s.Localizer, "add_topic_step2", name), nil)

	case models.PendingAwaitQuestion:
		questions := topics.ParseQuestions(text)
		if len(questions) == 0 {
			s.Messenger.SendText(chatID, s.Localizer.Get("questions_unrecognized"), nil)
			return
		}
		topic, _, err := s.Topics.Create(pending.TopicName, text, nil)
		if err != nil {
			log.Printf("ERROR: Failed to create topic %q: %v", pending.TopicName, err)
			s.Messenger.SendText(chatID, s.Localizer.Get("questions_unrecognized"), nil)
			return
		}
		s.clearPending(chatID)
		s.Messenger.SendText(chatID, formatTopicPreview(s.Localizer, topic, questions, config.TopicPreviewQuestions), nil)

	default:
		s.clearPending(chatID)
	}
}

func (s *BotService) handleCallbackQuery(cq *tgbotapi.CallbackQuery) {
	// Acknowledge first so the client drops the loading state.
	if _, err := s.BotAPI.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Printf("WARN: Failed to answer callback query: %v", err)
	}
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID

	if strings.HasPrefix(cq.Data, "select_topic_") {
		raw := strings.TrimPrefix(cq.Data, "select_topic_")
		topicID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return
		}
		s.createRoomFromCallback(chatID, userID, cq.Message.MessageID, uint(topicID))
	}
}

func (s *BotService) sendTopicList(chatID int64) {
	topicList, err := s.Topics.List()
	if err != nil {
		log.Printf("ERROR: Failed to list topics: %v", err)
		return
	}
	if len(topicList) == 0 {
		s.Messenger.SendText(chatID, s.Localizer.Get("topics_empty"), nil)
		return
	}
	s.Messenger.SendText(chatID, formatTopicList(s.Localizer, topicList), nil)
}

func (s *BotService) setPending(chatID int64, action models.PendingAction) {
	if err := s.Storage.SetPendingAction(chatID, action); err != nil {
		log.Printf("ERROR: Failed to store pending action for chat %d: %v", chatID, err)
	}
}

func (s *BotService) clearPending(chatID int64) {
	if err := s.Storage.ClearPendingAction(chatID); err != nil {
		log.Printf("ERROR: Failed to clear pending action for chat %d: %v", chatID, err)
	}
}
