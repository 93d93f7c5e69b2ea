// Package storage implements the durable session store on PostgreSQL (GORM)
// and the hot state (pending dialogs, room event fan-out) on Redis.
package storage

import (
	"context"
	"errors"
	"log"

	"cardslite/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Service is the concrete store backing the game coordinator, the bot and the
// read API.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// LoadRoom fetches one room by its join code. Returns nil, nil when the room
// does not exist.
func (s *Service) LoadRoom(roomID string) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("id = ?", roomID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to load room %s: %v", roomID, err)
		return nil, err
	}
	return &room, nil
}

// SaveRoom persists the room record, creating or updating it.
func (s *Service) SaveRoom(room *models.Room) error {
	return s.DB.Save(room).Error
}

// DeleteRoom removes the room and every chat entry it owns. Both deletes run
// in one transaction so an exit can never leave orphaned history behind.
func (s *Service) DeleteRoom(roomID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.ChatEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", roomID).Delete(&models.Room{}).Error
	})
}

// OpenRoomForParticipant finds the Waiting or Active room the participant
// occupies, in either seat. Returns nil, nil when they have none.
func (s *Service) OpenRoomForParticipant(participantID int64) (*models.Room, error) {
	var room models.Room
	err := s.DB.
		Where("player1_id = ? OR player2_id = ?", participantID, participantID).
		Where("status IN ?", []string{models.RoomStatusWaiting, models.RoomStatusActive}).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to find open room for participant %d: %v", participantID, err)
		return nil, err
	}
	return &room, nil
}

// AppendChatEntry inserts the entry; the auto-increment primary key GORM
// fills in is the sequence number transcripts are ordered by.
func (s *Service) AppendChatEntry(entry *models.ChatEntry) error {
	if err := s.DB.Create(entry).Error; err != nil {
		log.Printf("ERROR: Failed to append chat entry for room %s: %v", entry.RoomID, err)
		return err
	}
	return nil
}

// ListChatEntries returns one question's exchange ordered by sequence number.
func (s *Service) ListChatEntries(roomID string, questionIndex int) ([]models.ChatEntry, error) {
	var entries []models.ChatEntry
	err := s.DB.
		Where("room_id = ? AND question_index = ?", roomID, questionIndex).
		Order("id asc").
		Find(&entries).Error
	if err != nil {
		log.Printf("ERROR: Failed to list chat entries for room %s: %v", roomID, err)
		return nil, err
	}
	return entries, nil
}
