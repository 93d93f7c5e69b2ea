package game

import "cardslite/backend/internal/models"

// Store is the durable session store the coordinator reads and writes. All
// methods must be atomic per key; serializing concurrent mutation of the same
// room is the coordinator's job (see the keyed lock in locks.go).
type Store interface {
	// LoadRoom returns nil, nil when the room does not exist.
	LoadRoom(roomID string) (*models.Room, error)
	SaveRoom(room *models.Room) error
	// DeleteRoom removes the room and all its chat entries. Deleting a room
	// that is already gone is not an error.
	DeleteRoom(roomID string) error

	// OpenRoomForParticipant returns the Waiting or Active room the
	// participant is part of, or nil, nil when they have none.
	OpenRoomForParticipant(participantID int64) (*models.Room, error)

	// AppendChatEntry inserts the entry and fills in its sequence number
	// (entry.ID). Sequence numbers are strictly increasing per store and are
	// the sole ordering key for transcripts.
	AppendChatEntry(entry *models.ChatEntry) error
	// ListChatEntries returns the entries for one question of one room,
	// ordered by sequence number.
	ListChatEntries(roomID string, questionIndex int) ([]models.ChatEntry, error)
}

// QuestionSource provides read-only access to topics and their question
// sequences.
type QuestionSource interface {
	// TopicByID returns nil, nil for an unknown topic.
	TopicByID(topicID uint) (*models.Topic, error)
	// QuestionByIndex returns "" and no error when the index is past the end
	// of the topic.
	QuestionByIndex(topicID uint, index int) (string, error)
	QuestionCount(topicID uint) (int, error)
}
