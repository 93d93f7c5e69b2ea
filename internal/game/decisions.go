package game

import "cardslite/backend/internal/models"

// Outcomes of SubmitAnswer. The coordinator never delivers anything itself;
// the caller translates the decision into outbound messages.
const (
	// SubmitWaitingOnOther: the message is logged and hidden until the
	// partner contributes.
	SubmitWaitingOnOther = "waiting_on_other"
	// SubmitRevealNow: this submission unlocked the reveal; the caller shows
	// the full transcript to both participants.
	SubmitRevealNow = "reveal_now"
	// SubmitDeliverLive: the chat is already open; the caller relays this one
	// message to the partner unchanged.
	SubmitDeliverLive = "deliver_live"
	// SubmitNoRoom: the room vanished; the caller owns the silent-drop policy.
	SubmitNoRoom = "no_room"
)

// RevealDecision is what SubmitAnswer tells the delivery layer to do.
type RevealDecision struct {
	Outcome string
	Room    *models.Room
	// Entry is the submission that was just logged.
	Entry *models.ChatEntry
	// Other is the partner's ID, 0 if the room has only one occupant.
	Other int64
	// FirstForAuthor is true when this submission was the author's first for
	// the current question (it was counted toward the reveal gate).
	FirstForAuthor bool
	// Transcript is the full ordered exchange for the question; set only on
	// SubmitRevealNow.
	Transcript []models.ChatEntry
}

// Outcomes of RequestAdvance.
const (
	// AdvanceNoRoom: no open Active room for the requester; soft no-op.
	AdvanceNoRoom = "no_room"
	// AdvanceNotAnsweredYet: the requester has not contributed this round.
	AdvanceNotAnsweredYet = "not_answered_yet"
	// AdvanceWaitingOnOther: readiness recorded, partner not ready yet.
	AdvanceWaitingOnOther = "waiting_on_other"
	// AdvanceNext: both ready, index moved, next question attached.
	AdvanceNext = "advance"
	// AdvanceSessionComplete: both ready and the topic is exhausted; the room
	// was deleted.
	AdvanceSessionComplete = "session_complete"
)

// AdvanceDecision is what RequestAdvance tells the delivery layer to do.
type AdvanceDecision struct {
	Outcome string
	Room    *models.Room
	Other   int64

	// NextQuestion, NextPosition and TotalQuestions describe the question to
	// deliver on AdvanceNext. NextPosition is 1-based for display.
	NextQuestion   string
	NextPosition   int
	TotalQuestions int

	// TopicName is set on AdvanceSessionComplete for the completion message.
	TopicName string
}

// JoinResult carries enough context for the caller to deliver "game started +
// question 1" to both participants.
type JoinResult struct {
	Room           *models.Room
	TopicName      string
	FirstQuestion  string
	TotalQuestions int
}
