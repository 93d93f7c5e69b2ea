package models

import "time"

// Room statuses. A room is created as Waiting, becomes Active the moment the
// second participant joins, and Finished when a participant leaves it behind
// with /stop. Finished rooms are kept only so the partner can still read the
// history; hard exits delete the row instead.
const (
	RoomStatusWaiting  = "waiting"
	RoomStatusActive   = "active"
	RoomStatusFinished = "finished"
)

// Participant roles inside a room.
const (
	RolePlayer1 = "player1"
	RolePlayer2 = "player2"
	RoleNone    = ""
)

// Room represents one paired question-and-answer session between two
// participants, bound to a topic. The ID doubles as the join code that the
// creator shares out of band.
type Room struct {
	// ID is the shareable join code (6-digit numeric string).
	ID string `gorm:"primaryKey;size:32"`
	// TopicID references the immutable question sequence the pair plays.
	TopicID uint `gorm:"not null;index"`
	// Status is one of RoomStatusWaiting, RoomStatusActive, RoomStatusFinished.
	Status string `gorm:"size:32;not null;default:'waiting'"`
	// CurrentQuestionIndex is the zero-based pointer into the topic's questions.
	CurrentQuestionIndex int `gorm:"not null;default:0"`

	// Player1ID is the Telegram chat ID of the room creator.
	Player1ID int64 `gorm:"index:idx_rooms_player1"`
	// Player2ID is the second participant. Zero while the room is Waiting.
	Player2ID int64 `gorm:"index:idx_rooms_player2"`

	// Per-question coordination flags. All of them reset together when the
	// question index advances; a partial reset corrupts the protocol.
	Player1Answered      bool `gorm:"not null;default:false"`
	Player2Answered      bool `gorm:"not null;default:false"`
	Player1FirstAnswered bool `gorm:"not null;default:false"`
	Player2FirstAnswered bool `gorm:"not null;default:false"`
	Player1Ready         bool `gorm:"not null;default:false"`
	Player2Ready         bool `gorm:"not null;default:false"`

	// ChatRevealed is true once both participants contributed at least once
	// for the current question and the transcript was shown to both.
	ChatRevealed bool `gorm:"not null;default:false"`

	CreatedAt time.Time
}

// HasBothPlayers reports whether the second seat is taken.
func (r *Room) HasBothPlayers() bool {
	return r.Player1ID != 0 && r.Player2ID != 0
}

// Role returns which seat the participant occupies, or RoleNone if they are
// not part of this room.
func (r *Room) Role(participantID int64) string {
	switch participantID {
	case r.Player1ID:
		return RolePlayer1
	case r.Player2ID:
		if r.Player2ID == 0 {
			return RoleNone
		}
		return RolePlayer2
	}
	return RoleNone
}

// Other returns the partner's ID, or 0 when the participant is alone in the
// room or not a member at all.
func (r *Room) Other(participantID int64) int64 {
	switch r.Role(participantID) {
	case RolePlayer1:
		return r.Player2ID
	case RolePlayer2:
		return r.Player1ID
	}
	return 0
}

// Answered reports whether the participant submitted anything for the current
// question.
func (r *Room) Answered(participantID int64) bool {
	switch r.Role(participantID) {
	case RolePlayer1:
		return r.Player1Answered
	case RolePlayer2:
		return r.Player2Answered
	}
	return false
}

// SetAnswered flips the "has said anything this round" flag for the
// participant's seat.
func (r *Room) SetAnswered(participantID int64, v bool) {
	switch r.Role(participantID) {
	case RolePlayer1:
		r.Player1Answered = v
	case RolePlayer2:
		r.Player2Answered = v
	}
}

// FirstAnswered reports whether the participant's submission was already
// counted toward the reveal decision. Deliberately separate from Answered:
// a participant may queue many messages before the partner replies, but only
// the first one unlocks the reveal.
func (r *Room) FirstAnswered(participantID int64) bool {
	switch r.Role(participantID) {
	case RolePlayer1:
		return r.Player1FirstAnswered
	case RolePlayer2:
		return r.Player2FirstAnswered
	}
	return false
}

// SetFirstAnswered marks the participant's first contribution for the current
// question.
func (r *Room) SetFirstAnswered(participantID int64, v bool) {
	switch r.Role(participantID) {
	case RolePlayer1:
		r.Player1FirstAnswered = v
	case RolePlayer2:
		r.Player2FirstAnswered = v
	}
}

// Ready reports whether the participant asked to move past the current
// question.
func (r *Room) Ready(participantID int64) bool {
	switch r.Role(participantID) {
	case RolePlayer1:
		return r.Player1Ready
	case RolePlayer2:
		return r.Player2Ready
	}
	return false
}

// SetReady records the participant's request to advance.
func (r *Room) SetReady(participantID int64, v bool) {
	switch r.Role(participantID) {
	case RolePlayer1:
		r.Player1Ready = v
	case RolePlayer2:
		r.Player2Ready = v
	}
}

// BothFirstAnswered reports whether the reveal gate is unlocked for the
// current question.
func (r *Room) BothFirstAnswered() bool {
	return r.Player1FirstAnswered && r.Player2FirstAnswered
}

// BothReady reports whether both participants opted to advance.
func (r *Room) BothReady() bool {
	return r.Player1Ready && r.Player2Ready
}

// AdvanceToQuestion moves the question pointer and clears every per-question
// flag in one assignment, so a saved room can never carry a half-reset round.
func (r *Room) AdvanceToQuestion(index int) {
	r.CurrentQuestionIndex = index
	r.Player1Answered = false
	r.Player2Answered = false
	r.Player1FirstAnswered = false
	r.Player2FirstAnswered = false
	r.Player1Ready = false
	r.Player2Ready = false
	r.ChatRevealed = false
}

// IsOpen reports whether the room still occupies its participants (a
// participant cannot be in two open rooms at once).
func (r *Room) IsOpen() bool {
	return r.Status == RoomStatusWaiting || r.Status == RoomStatusActive
}
