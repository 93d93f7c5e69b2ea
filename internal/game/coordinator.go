// Package game owns the paired-session state machine: room lifecycle, the
// answer/reveal protocol and turn advancement. It decides, it never delivers;
// every operation returns a decision value that the transport layer (Telegram
// bot, WebSocket observer) turns into outbound messages.
package game

import (
	"fmt"
	"math/rand/v2"

	"cardslite/backend/internal/models"
)

const (
	// roomIDAttempts bounds the collision retry when minting a join code.
	roomIDAttempts = 10
)

// Coordinator applies all transitions to Room records. Mutating operations on
// the same room are serialized through a per-room lock; operations on
// different rooms run concurrently.
type Coordinator struct {
	store     Store
	questions QuestionSource
	locks     *roomLocks
}

// NewCoordinator creates a Coordinator on top of a session store and a
// question source.
func NewCoordinator(store Store, questions QuestionSource) *Coordinator {
	return &Coordinator{
		store:     store,
		questions: questions,
		locks:     newRoomLocks(),
	}
}

// CreateSession allocates a fresh room with the creator in the first seat and
// status Waiting. The returned room's ID is the join code to share.
func (c *Coordinator) CreateSession(topicID uint, creator int64) (*models.Room, error) {
	topic, err := c.questions.TopicByID(topicID)
	if err != nil {
		return nil, fmt.Errorf("look up topic %d: %w", topicID, err)
	}
	if topic == nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("topic %d does not exist", topicID)}
	}

	open, err := c.store.OpenRoomForParticipant(creator)
	if err != nil {
		return nil, fmt.Errorf("check open room for %d: %w", creator, err)
	}
	if open != nil {
		return nil, &ConflictError{Reason: "participant already has an open room"}
	}

	for attempt := 0; attempt < roomIDAttempts; attempt++ {
		room := &models.Room{
			ID:        newRoomID(),
			TopicID:   topicID,
			Status:    models.RoomStatusWaiting,
			Player1ID: creator,
		}
		existing, err := c.store.LoadRoom(room.ID)
		if err != nil {
			return nil, fmt.Errorf("check join code %s: %w", room.ID, err)
		}
		if existing != nil {
			continue
		}
		if err := c.store.SaveRoom(room); err != nil {
			return nil, fmt.Errorf("save room %s: %w", room.ID, err)
		}
		return room, nil
	}
	return nil, fmt.Errorf("could not allocate a free join code after %d attempts", roomIDAttempts)
}

// JoinSession seats the joiner as the second participant and activates the
// room. This is the only Waiting -> Active path. The result carries the topic
// name, the first question and the total count so the caller can announce the
// game to both participants.
func (c *Coordinator) JoinSession(roomID string, joiner int64) (*JoinResult, error) {
	release := c.locks.acquire(roomID)
	defer release()

	room, err := c.store.LoadRoom(roomID)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, &NotFoundError{Kind: "room", ID: roomID}
	}
	if room.Status != models.RoomStatusWaiting || room.Player2ID != 0 {
		return nil, &ConflictError{Reason: "room is not open for joining"}
	}
	if room.Player1ID == joiner {
		return nil, &ConflictError{Reason: "cannot join your own room"}
	}

	open, err := c.store.OpenRoomForParticipant(joiner)
	if err != nil {
		return nil, fmt.Errorf("check open room for %d: %w", joiner, err)
	}
	if open != nil {
		return nil, &ConflictError{Reason: "participant already has an open room"}
	}

	room.Player2ID = joiner
	room.Status = models.RoomStatusActive
	if err := c.store.SaveRoom(room); err != nil {
		return nil, fmt.Errorf("save room %s: %w", roomID, err)
	}

	topic, err := c.questions.TopicByID(room.TopicID)
	if err != nil {
		return nil, fmt.Errorf("look up topic %d: %w", room.TopicID, err)
	}
	topicName := ""
	if topic != nil {
		topicName = topic.Name
	}
	first, err := c.questions.QuestionByIndex(room.TopicID, 0)
	if err != nil {
		return nil, fmt.Errorf("question 0 of topic %d: %w", room.TopicID, err)
	}
	total, err := c.questions.QuestionCount(room.TopicID)
	if err != nil {
		return nil, fmt.Errorf("count questions of topic %d: %w", room.TopicID, err)
	}

	return &JoinResult{
		Room:           room,
		TopicName:      topicName,
		FirstQuestion:  first,
		TotalQuestions: total,
	}, nil
}

// ExitSession hard-deletes the room and its chat entries and returns the
// partner's ID so the caller can notify them. Exiting a room that no longer
// exists is a no-op, not an error.
func (c *Coordinator) ExitSession(roomID string, requester int64) (int64, error) {
	release := c.locks.acquire(roomID)
	defer release()

	room, err := c.store.LoadRoom(roomID)
	if err != nil {
		return 0, fmt.Errorf("load room %s: %w", roomID, err)
	}
	if room == nil {
		return 0, nil
	}
	other := room.Other(requester)
	if err := c.store.DeleteRoom(roomID); err != nil {
		return 0, fmt.Errorf("delete room %s: %w", roomID, err)
	}
	return other, nil
}

// CloseSession soft-terminates the room: status goes to Finished, nothing is
// deleted, so the partner can still read the history. Closing a vanished room
// is a no-op.
func (c *Coordinator) CloseSession(roomID string) error {
	release := c.locks.acquire(roomID)
	defer release()

	room, err := c.store.LoadRoom(roomID)
	if err != nil {
		return fmt.Errorf("load room %s: %w", roomID, err)
	}
	if room == nil {
		return nil
	}
	room.Status = models.RoomStatusFinished
	if err := c.store.SaveRoom(room); err != nil {
		return fmt.Errorf("save room %s: %w", roomID, err)
	}
	return nil
}

// SubmitAnswer logs one contribution for the room's current question and
// decides what the caller should deliver: nothing yet (partner still silent),
// the full transcript (this submission unlocked the reveal), or this single
// message live (the chat is already open).
//
// Only the author's first submission per question counts toward the reveal
// gate; a participant sending ten messages before the partner sends one keeps
// the chat hidden, though all ten are logged and shown at reveal time.
func (c *Coordinator) SubmitAnswer(roomID string, authorID int64, kind, payload string) (*RevealDecision, error) {
	release := c.locks.acquire(roomID)
	defer release()

	room, err := c.store.LoadRoom(roomID)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", roomID, err)
	}
	if room == nil {
		return &RevealDecision{Outcome: SubmitNoRoom}, nil
	}

	entry := &models.ChatEntry{
		RoomID:        roomID,
		QuestionIndex: room.CurrentQuestionIndex,
		AuthorID:      authorID,
		Kind:          kind,
		Payload:       payload,
	}
	if err := c.store.AppendChatEntry(entry); err != nil {
		return nil, fmt.Errorf("append chat entry for room %s: %w", roomID, err)
	}
	room.SetAnswered(authorID, true)

	decision := &RevealDecision{
		Room:  room,
		Entry: entry,
		Other: room.Other(authorID),
	}

	if room.ChatRevealed {
		// Chat already open: persist the answered flag and relay live.
		if err := c.store.SaveRoom(room); err != nil {
			return nil, fmt.Errorf("save room %s: %w", roomID, err)
		}
		decision.Outcome = SubmitDeliverLive
		return decision, nil
	}

	if !room.FirstAnswered(authorID) {
		room.SetFirstAnswered(authorID, true)
		decision.FirstForAuthor = true
	}

	if room.BothFirstAnswered() {
		room.ChatRevealed = true
		if err := c.store.SaveRoom(room); err != nil {
			return nil, fmt.Errorf("save room %s: %w", roomID, err)
		}
		transcript, err := c.store.ListChatEntries(roomID, room.CurrentQuestionIndex)
		if err != nil {
			return nil, fmt.Errorf("list chat entries for room %s: %w", roomID, err)
		}
		decision.Outcome = SubmitRevealNow
		decision.Transcript = transcript
		return decision, nil
	}

	if err := c.store.SaveRoom(room); err != nil {
		return nil, fmt.Errorf("save room %s: %w", roomID, err)
	}
	decision.Outcome = SubmitWaitingOnOther
	return decision, nil
}

// RequestAdvance records the requester's wish to move past the current
// question. The index moves only when both participants asked for it, and
// asking is allowed only after contributing to an already revealed exchange.
func (c *Coordinator) RequestAdvance(roomID string, requester int64) (*AdvanceDecision, error) {
	release := c.locks.acquire(roomID)
	defer release()

	room, err := c.store.LoadRoom(roomID)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", roomID, err)
	}
	if room == nil || room.Status != models.RoomStatusActive {
		return &AdvanceDecision{Outcome: AdvanceNoRoom}, nil
	}

	decision := &AdvanceDecision{Room: room, Other: room.Other(requester)}

	// Readiness is meaningless before the requester has contributed and the
	// exchange is open.
	if !room.Answered(requester) || !room.ChatRevealed {
		decision.Outcome = AdvanceNotAnsweredYet
		return decision, nil
	}

	room.SetReady(requester, true)

	if !room.BothReady() {
		if err := c.store.SaveRoom(room); err != nil {
			return nil, fmt.Errorf("save room %s: %w", roomID, err)
		}
		decision.Outcome = AdvanceWaitingOnOther
		return decision, nil
	}

	nextIndex := room.CurrentQuestionIndex + 1
	next, err := c.questions.QuestionByIndex(room.TopicID, nextIndex)
	if err != nil {
		return nil, fmt.Errorf("question %d of topic %d: %w", nextIndex, room.TopicID, err)
	}

	if next == "" {
		// Topic exhausted: the session is complete and the room goes away.
		topic, err := c.questions.TopicByID(room.TopicID)
		if err != nil {
			return nil, fmt.Errorf("look up topic %d: %w", room.TopicID, err)
		}
		if topic != nil {
			decision.TopicName = topic.Name
		}
		if err := c.store.DeleteRoom(roomID); err != nil {
			return nil, fmt.Errorf("delete room %s: %w", roomID, err)
		}
		decision.Outcome = AdvanceSessionComplete
		return decision, nil
	}

	total, err := c.questions.QuestionCount(room.TopicID)
	if err != nil {
		return nil, fmt.Errorf("count questions of topic %d: %w", room.TopicID, err)
	}

	room.AdvanceToQuestion(nextIndex)
	if err := c.store.SaveRoom(room); err != nil {
		return nil, fmt.Errorf("save room %s: %w", roomID, err)
	}

	decision.Outcome = AdvanceNext
	decision.NextQuestion = next
	decision.NextPosition = nextIndex + 1
	decision.TotalQuestions = total
	return decision, nil
}

// OpenRoomForParticipant is the read helper the transport layer uses to route
// an inbound action to the participant's current room. Display-only, so it
// takes no lock.
func (c *Coordinator) OpenRoomForParticipant(participantID int64) (*models.Room, error) {
	return c.store.OpenRoomForParticipant(participantID)
}

// Transcript returns the ordered exchange for one question of a room, for
// callers that render history outside a submit decision.
func (c *Coordinator) Transcript(roomID string, questionIndex int) ([]models.ChatEntry, error) {
	return c.store.ListChatEntries(roomID, questionIndex)
}

// newRoomID mints a 6-digit numeric join code. Short enough to type into a
// chat, checked for collisions by the caller.
func newRoomID() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}
