package telegram

import (
	"errors"
	"log"

	"cardslite/backend/internal/game"
	"cardslite/backend/internal/models"
)

// createRoom handles /create_room: the coordinator allocates the room, the
// bot hands the join code to the creator.
func (s *BotService) createRoom(chatID, userID int64, topicID uint) {
	topic, err := s.Storage.TopicByID(topicID)
	if err != nil {
		log.Printf("ERROR: Failed to look up topic %d: %v", topicID, err)
		return
	}
	if topic == nil {
		s.Messenger.SendText(chatID, s.Localizer.Get("topic_not_found"), nil)
		return
	}

	room, err := s.Coordinator.CreateSession(topicID, userID)
	if err != nil {
		s.reportCreateError(chatID, err)
		return
	}
	s.Messenger.SendText(chatID, localized(s.Localizer, "room_created", topic.Name, room.ID, room.ID), nil)
}

// createRoomFromCallback is the inline-keyboard variant: the confirmation
// replaces the topic list message instead of adding a new one.
func (s *BotService) createRoomFromCallback(chatID, userID int64, messageID int, topicID uint) {
	topic, err := s.Storage.TopicByID(topicID)
	if err != nil {
		log.Printf("ERROR: Failed to look up topic %d: %v", topicID, err)
		return
	}
	if topic == nil {
		s.Messenger.EditText(chatID, messageID, s.Localizer.Get("topic_not_found"))
		return
	}

	room, err := s.Coordinator.CreateSession(topicID, userID)
	if err != nil {
		var conflict *game.ConflictError
		if errors.As(err, &conflict) {
			s.Messenger.EditText(chatID, messageID, s.Localizer.Get("already_have_room"))
			return
		}
		log.Printf("ERROR: Failed to create room for %d: %v", userID, err)
		return
	}
	s.Messenger.EditText(chatID, messageID, localized(s.Localizer, "room_created", topic.Name, room.ID, room.ID))
}

func (s *BotService) reportCreateError(chatID int64, err error) {
	var validation *game.ValidationError
	var conflict *game.ConflictError
	switch {
	case errors.As(err, &validation):
		s.Messenger.SendText(chatID, s.Localizer.Get("topic_not_found"), nil)
	case errors.As(err, &conflict):
		s.Messenger.SendText(chatID, s.Localizer.Get("already_have_room"), nil)
	default:
		log.Printf("ERROR: Failed to create room: %v", err)
	}
}

// joinRoom seats the joiner; on success both participants get the game
// announcement and the first question.
func (s *BotService) joinRoom(chatID, userID int64, roomID string) {
	result, err := s.Coordinator.JoinSession(roomID, userID)
	if err != nil {
		var notFound *game.NotFoundError
		var conflict *game.ConflictError
		switch {
		case errors.As(err, &notFound):
			s.Messenger.SendText(chatID, s.Localizer.Get("join_not_found"), nil)
		case errors.As(err, &conflict):
			s.Messenger.SendText(chatID, s.Localizer.Get("join_conflict"), nil)
		default:
			log.Printf("ERROR: Failed to join room %s: %v", roomID, err)
		}
		return
	}

	room := result.Room
	started := localized(s.Localizer, "game_started", result.TopicName, result.TotalQuestions)
	s.Messenger.SendText(chatID, started, removeKeyboard())
	s.Messenger.SendText(room.Player1ID, started, nil)

	if result.FirstQuestion == "" {
		log.Printf("ERROR: Topic %d has no question at index 0", room.TopicID)
		return
	}
	prompt := formatQuestion(s.Localizer, 1, result.TotalQuestions, result.FirstQuestion)
	s.Messenger.SendText(chatID, prompt, nil)
	s.Messenger.SendText(room.Player1ID, prompt, nil)
}

// submitAnswer routes one contribution into the coordinator and delivers
// whatever the decision demands: a queue confirmation, a live relay, or the
// full reveal.
func (s *BotService) submitAnswer(chatID, userID int64, kind, payload string) {
	room, err := s.Coordinator.OpenRoomForParticipant(userID)
	if err != nil {
		log.Printf("ERROR: Failed to find open room for %d: %v", userID, err)
		return
	}
	if room == nil {
		// Not in a game: silently ignore, the participant may be chatting
		// with the bot outside any session.
		return
	}

	decision, err := s.Coordinator.SubmitAnswer(room.ID, userID, kind, payload)
	if err != nil {
		log.Printf("ERROR: Failed to submit answer for room %s: %v", room.ID, err)
		return
	}

	switch decision.Outcome {
	case game.SubmitNoRoom:
		return

	case game.SubmitDeliverLive:
		if decision.Other != 0 {
			s.relayEntry(decision.Other, decision.Entry)
		}
		s.publishEntryEvent(decision.Room, decision.Entry)

	case game.SubmitWaitingOnOther:
		s.Messenger.SendText(chatID, s.Localizer.Get("message_sent"), removeKeyboard())
		if decision.FirstForAuthor && decision.Other != 0 {
			s.Messenger.SendText(decision.Other, s.Localizer.Get("waiting_for_answer"), nil)
		}

	case game.SubmitRevealNow:
		s.Messenger.SendText(chatID, s.Localizer.Get("message_sent"), removeKeyboard())
		s.revealChat(decision)
	}
}

// relayEntry forwards a single post-reveal message to the partner unchanged.
func (s *BotService) relayEntry(to int64, entry *models.ChatEntry) {
	switch entry.Kind {
	case models.EntryKindVoice:
		s.Messenger.SendVoice(to, entry.Payload)
	case models.EntryKindVideoNote:
		s.Messenger.SendVideoNote(to, entry.Payload)
	default:
		s.Messenger.SendText(to, entry.Payload, nil)
	}
}

// revealChat delivers the full ordered transcript to both participants: media
// replayed first, then the role-tagged text history, then the "chat is open"
// instruction with the advance keyboard.
func (s *BotService) revealChat(decision *game.RevealDecision) {
	room := decision.Room
	recipients := []int64{room.Player1ID, room.Player2ID}

	for _, e := range decision.Transcript {
		if !e.IsMedia() {
			continue
		}
		for _, to := range recipients {
			switch e.Kind {
			case models.EntryKindVoice:
				s.Messenger.SendVoice(to, e.Payload)
			case models.EntryKindVideoNote:
				s.Messenger.SendVideoNote(to, e.Payload)
			}
		}
	}

	history := formatTranscript(s.Localizer, decision.Transcript, room)
	for _, to := range recipients {
		s.Messenger.SendText(to, history, nil)
		s.Messenger.SendText(to, s.Localizer.Get("chat_revealed"), gameKeyboard(s.Localizer))
	}

	s.Storage.PublishRoomEvent(models.RoomEvent{
		RoomID:        room.ID,
		Type:          models.EventRevealed,
		QuestionIndex: room.CurrentQuestionIndex,
	})
}

// requestNext handles the advance button.
func (s *BotService) requestNext(chatID, userID int64) {
	room, err := s.Coordinator.OpenRoomForParticipant(userID)
	if err != nil {
		log.Printf("ERROR: Failed to find open room for %d: %v", userID, err)
		return
	}
	if room == nil || room.Status != models.RoomStatusActive {
		return
	}

	decision, err := s.Coordinator.RequestAdvance(room.ID, userID)
	if err != nil {
		log.Printf("ERROR: Failed to request advance for room %s: %v", room.ID, err)
		return
	}

	switch decision.Outcome {
	case game.AdvanceNoRoom:
		return

	case game.AdvanceNotAnsweredYet:
		s.Messenger.SendText(chatID, s.Localizer.Get("answer_first"), nil)

	case game.AdvanceWaitingOnOther:
		s.Messenger.SendText(chatID, s.Localizer.Get("ready_waiting"), removeKeyboard())
		if decision.Other != 0 {
			s.Messenger.SendText(decision.Other, s.Localizer.Get("partner_ready"), nil)
		}

	case game.AdvanceNext:
		prompt := localized(s.Localizer, "question_prompt_next",
			decision.NextPosition, decision.TotalQuestions, decision.NextQuestion)
		s.Messenger.SendText(chatID, prompt, removeKeyboard())
		if decision.Other != 0 {
			s.Messenger.SendText(decision.Other, prompt, removeKeyboard())
		}
		s.Storage.PublishRoomEvent(models.RoomEvent{
			RoomID:        room.ID,
			Type:          models.EventAdvanced,
			QuestionIndex: decision.Room.CurrentQuestionIndex,
		})

	case game.AdvanceSessionComplete:
		finish := localized(s.Localizer, "finish_message", decision.TopicName)
		s.Messenger.SendText(chatID, finish, removeKeyboard())
		if decision.Other != 0 {
			s.Messenger.SendText(decision.Other, finish, removeKeyboard())
		}
		s.Storage.PublishRoomEvent(models.RoomEvent{
			RoomID: room.ID,
			Type:   models.EventFinished,
		})
	}
}

// exitGame is the hard exit: the room and its history are deleted and the
// partner notified.
func (s *BotService) exitGame(chatID, userID int64) {
	room, err := s.Coordinator.OpenRoomForParticipant(userID)
	if err != nil {
		log.Printf("ERROR: Failed to find open room for %d: %v", userID, err)
		return
	}
	if room == nil {
		return
	}

	other, err := s.Coordinator.ExitSession(room.ID, userID)
	if err != nil {
		log.Printf("ERROR: Failed to exit room %s: %v", room.ID, err)
		return
	}

	s.Messenger.SendText(chatID, s.Localizer.Get("exit_game"), removeKeyboard())
	if other != 0 {
		s.Messenger.SendText(other, s.Localizer.Get("partner_left"), removeKeyboard())
	}
	s.Storage.PublishRoomEvent(models.RoomEvent{RoomID: room.ID, Type: models.EventFinished})
}

// stopGame is the soft exit (/stop): the room is closed but kept so the
// partner can still read the history.
func (s *BotService) stopGame(chatID, userID int64) {
	room, err := s.Coordinator.OpenRoomForParticipant(userID)
	if err != nil {
		log.Printf("ERROR: Failed to find open room for %d: %v", userID, err)
		return
	}
	if room == nil {
		s.Messenger.SendText(chatID, s.Localizer.Get("not_in_active_game"), nil)
		return
	}

	other := room.Other(userID)
	if err := s.Coordinator.CloseSession(room.ID); err != nil {
		log.Printf("ERROR: Failed to close room %s: %v", room.ID, err)
		return
	}

	s.Messenger.SendText(chatID, s.Localizer.Get("stop_left"), removeKeyboard())
	if other != 0 {
		s.Messenger.SendText(other, s.Localizer.Get("stop_partner_left"), nil)
	}
	s.Storage.PublishRoomEvent(models.RoomEvent{RoomID: room.ID, Type: models.EventFinished})
}

// publishEntryEvent fans a delivered message out to the WebSocket observers.
func (s *BotService) publishEntryEvent(room *models.Room, entry *models.ChatEntry) {
	content := entry.Payload
	if entry.IsMedia() {
		// File IDs are meaningless outside Telegram, observers get a marker.
		content = ""
	}
	s.Storage.PublishRoomEvent(models.RoomEvent{
		RoomID:        room.ID,
		Type:          models.EventMessage,
		QuestionIndex: entry.QuestionIndex,
		Role:          room.Role(entry.AuthorID),
		Kind:          entry.Kind,
		Content:       content,
	})
}
