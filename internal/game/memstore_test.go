package game_test

import (
	"sync"

	"cardslite/backend/internal/models"
)

// memStore is an in-memory Store and QuestionSource for coordinator tests.
// It mimics the Postgres-backed service: LoadRoom copies the record out so
// mutations only land via SaveRoom, and AppendChatEntry hands out strictly
// increasing sequence numbers.
type memStore struct {
	mu      sync.Mutex
	rooms   map[string]models.Room
	entries []models.ChatEntry
	nextSeq uint
	topics  map[uint]memTopic
}

type memTopic struct {
	name      string
	questions []string
}

func newMemStore() *memStore {
	return &memStore{
		rooms:   make(map[string]models.Room),
		nextSeq: 1,
		topics:  make(map[uint]memTopic),
	}
}

func (m *memStore) addTopic(id uint, name string, questions ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics[id] = memTopic{name: name, questions: questions}
}

func (m *memStore) LoadRoom(roomID string) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[roomID]
	if !ok {
		return nil, nil
	}
	copied := room
	return &copied, nil
}

func (m *memStore) SaveRoom(room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[room.ID] = *room
	return nil
}

func (m *memStore) DeleteRoom(roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, roomID)
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.RoomID != roomID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *memStore) OpenRoomForParticipant(participantID int64) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, room := range m.rooms {
		if !room.IsOpen() {
			continue
		}
		if room.Player1ID == participantID || room.Player2ID == participantID {
			copied := room
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) AppendChatEntry(entry *models.ChatEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = m.nextSeq
	m.nextSeq++
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memStore) ListChatEntries(roomID string, questionIndex int) ([]models.ChatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ChatEntry
	for _, e := range m.entries {
		if e.RoomID == roomID && e.QuestionIndex == questionIndex {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) TopicByID(topicID uint) (*models.Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.topics[topicID]
	if !ok {
		return nil, nil
	}
	return &models.Topic{ID: topicID, Name: t.name}, nil
}

func (m *memStore) QuestionByIndex(topicID uint, index int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.topics[topicID]
	if !ok || index < 0 || index >= len(t.questions) {
		return "", nil
	}
	return t.questions[index], nil
}

func (m *memStore) QuestionCount(topicID uint) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.topics[topicID].questions), nil
}
