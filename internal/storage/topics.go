package storage

import (
	"errors"
	"log"

	"cardslite/backend/internal/models"

	"gorm.io/gorm"
)

// TopicByID returns the topic without its questions, or nil, nil when it does
// not exist.
func (s *Service) TopicByID(topicID uint) (*models.Topic, error) {
	var topic models.Topic
	err := s.DB.First(&topic, topicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to load topic %d: %v", topicID, err)
		return nil, err
	}
	return &topic, nil
}

// ListTopics returns all topics ordered by ID for display.
func (s *Service) ListTopics() ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.DB.Order("id").Find(&topics).Error; err != nil {
		log.Printf("ERROR: Failed to list topics: %v", err)
		return nil, err
	}
	return topics, nil
}

// QuestionByIndex returns the question text at the zero-based position, or ""
// when the index is past the end of the topic.
func (s *Service) QuestionByIndex(topicID uint, index int) (string, error) {
	var question models.Question
	err := s.DB.
		Where("topic_id = ? AND order_num = ?", topicID, index).
		First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to load question %d of topic %d: %v", index, topicID, err)
		return "", err
	}
	return question.Text, nil
}

// QuestionCount returns how many questions the topic holds.
func (s *Service) QuestionCount(topicID uint) (int, error) {
	var count int64
	err := s.DB.Model(&models.Question{}).Where("topic_id = ?", topicID).Count(&count).Error
	if err != nil {
		log.Printf("ERROR: Failed to count questions of topic %d: %v", topicID, err)
		return 0, err
	}
	return int(count), nil
}

// CreateTopic inserts the topic and its questions in one transaction, with
// OrderNum assigned from slice position.
func (s *Service) CreateTopic(topic *models.Topic, questions []string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(topic).Error; err != nil {
			return err
		}
		for i, text := range questions {
			q := models.Question{TopicID: topic.ID, Text: text, OrderNum: i}
			if err := tx.Create(&q).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
