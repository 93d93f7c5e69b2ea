package storage

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"cardslite/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	pendingKeyPrefix = "pending:"
	pendingTTL       = 24 * time.Hour

	roomChannelPrefix = "room:"
)

// SetPendingAction stores the participant's half-finished dialog state in
// Redis so it survives a process restart. Abandoned dialogs expire on their
// own.
func (s *Service) SetPendingAction(chatID int64, action models.PendingAction) error {
	key := pendingKey(chatID)
	data, err := json.Marshal(action)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, key, data, pendingTTL).Err()
}

// PendingActionFor returns the participant's dialog state, zero-valued when
// none is in progress.
func (s *Service) PendingActionFor(chatID int64) (models.PendingAction, error) {
	var action models.PendingAction
	data, err := s.Redis.Get(s.Ctx, pendingKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return action, nil
	}
	if err != nil {
		return action, err
	}
	if err := json.Unmarshal([]byte(data), &action); err != nil {
		log.Printf("ERROR: Corrupt pending action for chat %d: %v", chatID, err)
		return models.PendingAction{}, nil
	}
	return action, nil
}

// ClearPendingAction drops the participant's dialog state.
func (s *Service) ClearPendingAction(chatID int64) error {
	return s.Redis.Del(s.Ctx, pendingKey(chatID)).Err()
}

// PublishRoomEvent fans the event out on the room's Redis channel for the
// WebSocket observers. Fire-and-forget: a publish failure is logged, never
// retried.
func (s *Service) PublishRoomEvent(event models.RoomEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ERROR: Failed to marshal room event for %s: %v", event.RoomID, err)
		return
	}
	if err := s.Redis.Publish(s.Ctx, roomChannelPrefix+event.RoomID, data).Err(); err != nil {
		log.Printf("ERROR: Failed to publish room event for %s: %v", event.RoomID, err)
	}
}

// SubscribeRoom subscribes to one room's event channel. The caller owns the
// returned PubSub and must Close it.
func (s *Service) SubscribeRoom(roomID string) *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, roomChannelPrefix+roomID)
}

// pendingKey is keyed by the Telegram chat ID; one dialog per participant.
func pendingKey(chatID int64) string {
	return pendingKeyPrefix + strconv.FormatInt(chatID, 10)
}
