// Package topics handles topic authoring: parsing a numbered question list
// out of free text and persisting the topic with its question sequence.
package topics

import (
	"errors"
	"regexp"
	"strings"

	"cardslite/backend/internal/models"
)

var (
	// ErrEmptyName rejects a topic with a blank name.
	ErrEmptyName = errors.New("topic name must not be empty")
	// ErrNoQuestions rejects authoring input with no parseable questions.
	ErrNoQuestions = errors.New("no questions recognized in input")
)

// TopicStore is the subset of the storage service the authoring flow needs.
type TopicStore interface {
	CreateTopic(topic *models.Topic, questions []string) error
	ListTopics() ([]models.Topic, error)
}

// Service owns the topic authoring flow.
type Service struct {
	Store TopicStore
}

// NewService creates a topic authoring service.
func NewService(store TopicStore) *Service {
	return &Service{Store: store}
}

// questionPattern captures "N. text" items: a number, a dot, then everything
// up to the next numbered line or the end of input.
var questionPattern = regexp.MustCompile(`(?s)\d+\.\s*(.+?)(?:\n\s*\d+\.|\z)`)

// ParseQuestions extracts question texts from a numbered list like
//
//	1. First question
//	2. Second question
//
// Numbers are dropped, blank items skipped. Returns nil when nothing parses.
func ParseQuestions(text string) []string {
	var questions []string
	rest := text
	for {
		loc := questionPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		q := strings.TrimSpace(rest[loc[2]:loc[3]])
		if q != "" {
			questions = append(questions, q)
		}
		// Resume at the start of the next numbered item, which the
		// non-capturing group consumed.
		next := loc[3]
		if next >= len(rest) {
			break
		}
		rest = rest[next:]
	}
	return questions
}

// Create validates and persists a new topic. The name must be non-empty and
// the text must contain at least one parseable question.
func (s *Service) Create(name, questionsText string, tags []string) (*models.Topic, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, ErrEmptyName
	}
	questions := ParseQuestions(questionsText)
	if len(questions) == 0 {
		return nil, 0, ErrNoQuestions
	}

	topic := &models.Topic{Name: name, Tags: tags}
	if err := s.Store.CreateTopic(topic, questions); err != nil {
		return nil, 0, err
	}
	return topic, len(questions), nil
}

// List returns all topics for display.
func (s *Service) List() ([]models.Topic, error) {
	return s.Store.ListTopics()
}
