package models_test

import (
	"testing"

	"cardslite/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// TestRoomRoles verifies seat resolution for members, strangers and the
// empty second seat.
func TestRoomRoles(t *testing.T) {
	room := &models.Room{ID: "123456", Player1ID: 10, Player2ID: 20}

	assert.Equal(t, models.RolePlayer1, room.Role(10))
	assert.Equal(t, models.RolePlayer2, room.Role(20))
	assert.Equal(t, models.RoleNone, room.Role(30))

	assert.Equal(t, int64(20), room.Other(10))
	assert.Equal(t, int64(10), room.Other(20))
	assert.Zero(t, room.Other(30))
}

// TestRoomRolesWaiting checks that an unoccupied second seat never resolves
// to a role, even for participant ID zero.
func TestRoomRolesWaiting(t *testing.T) {
	room := &models.Room{ID: "123456", Player1ID: 10}

	assert.Equal(t, models.RoleNone, room.Role(0))
	assert.Zero(t, room.Other(10))
	assert.False(t, room.HasBothPlayers())
}

// TestRoomFlags exercises the per-seat flag accessors.
func TestRoomFlags(t *testing.T) {
	room := &models.Room{ID: "123456", Player1ID: 10, Player2ID: 20}

	room.SetAnswered(10, true)
	room.SetFirstAnswered(10, true)
	assert.True(t, room.Answered(10))
	assert.False(t, room.Answered(20))
	assert.False(t, room.BothFirstAnswered())

	room.SetFirstAnswered(20, true)
	assert.True(t, room.BothFirstAnswered())

	room.SetReady(10, true)
	assert.False(t, room.BothReady())
	room.SetReady(20, true)
	assert.True(t, room.BothReady())

	// Flags for a non-member are silently ignored.
	room.SetAnswered(99, true)
	assert.False(t, room.Answered(99))
}

// TestAdvanceToQuestion clears every per-question flag together with the
// index move.
func TestAdvanceToQuestion(t *testing.T) {
	room := &models.Room{
		ID:                   "123456",
		Player1ID:            10,
		Player2ID:            20,
		Player1Answered:      true,
		Player2Answered:      true,
		Player1FirstAnswered: true,
		Player2FirstAnswered: true,
		Player1Ready:         true,
		Player2Ready:         true,
		ChatRevealed:         true,
	}

	room.AdvanceToQuestion(3)

	assert.Equal(t, 3, room.CurrentQuestionIndex)
	assert.False(t, room.Player1Answered)
	assert.False(t, room.Player2Answered)
	assert.False(t, room.Player1FirstAnswered)
	assert.False(t, room.Player2FirstAnswered)
	assert.False(t, room.Player1Ready)
	assert.False(t, room.Player2Ready)
	assert.False(t, room.ChatRevealed)
}

// TestRoomIsOpen ties openness to the waiting and active statuses only.
func TestRoomIsOpen(t *testing.T) {
	room := &models.Room{ID: "123456", Status: models.RoomStatusWaiting}
	assert.True(t, room.IsOpen())

	room.Status = models.RoomStatusActive
	assert.True(t, room.IsOpen())

	room.Status = models.RoomStatusFinished
	assert.False(t, room.IsOpen())
}
