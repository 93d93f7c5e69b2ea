package topics_test

import (
	"testing"

	"cardslite/backend/internal/models"
	"cardslite/backend/internal/topics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTopicStore records the topic and questions handed to CreateTopic.
type fakeTopicStore struct {
	created   *models.Topic
	questions []string
	topics    []models.Topic
}

func (f *fakeTopicStore) CreateTopic(topic *models.Topic, questions []string) error {
	topic.ID = 42
	f.created = topic
	f.questions = questions
	return nil
}

func (f *fakeTopicStore) ListTopics() ([]models.Topic, error) {
	return f.topics, nil
}

// TestParseQuestions covers the numbered-list formats topic authors actually
// send: clean lists, indented continuation lines, extra whitespace and noise
// before the first number.
func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple numbered list",
			text: "1. First question\n2. Second question\n3. Third question",
			want: []string{"First question", "Second question", "Third question"},
		},
		{
			name: "multiline question bodies",
			text: "1. What do you value most\nin a partner?\n2. Short one",
			want: []string{"What do you value most\nin a partner?", "Short one"},
		},
		{
			name: "irregular spacing",
			text: "1.   Padded question  \n\n  2. Indented number",
			want: []string{"Padded question", "Indented number"},
		},
		{
			name: "preamble before the first item is ignored",
			text: "Here are my questions:\n1. Real question",
			want: []string{"Real question"},
		},
		{
			name: "single item",
			text: "1. The only question",
			want: []string{"The only question"},
		},
		{
			name: "no numbered items",
			text: "just some prose without numbers",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := topics.ParseQuestions(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCreateTopic persists the parsed questions in order.
func TestCreateTopic(t *testing.T) {
	// Arrange
	store := &fakeTopicStore{}
	svc := topics.NewService(store)

	// Act
	topic, count, err := svc.Create("  Date night  ", "1. One\n2. Two", []string{"pairs"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Date night", topic.Name, "name should be trimmed")
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"One", "Two"}, store.questions)
	assert.Equal(t, uint(42), topic.ID)
}

// TestCreateTopicValidation rejects blank names and unparseable question text.
func TestCreateTopicValidation(t *testing.T) {
	store := &fakeTopicStore{}
	svc := topics.NewService(store)

	_, _, err := svc.Create("   ", "1. Fine question", nil)
	assert.ErrorIs(t, err, topics.ErrEmptyName)

	_, _, err = svc.Create("Name", "no numbers here", nil)
	assert.ErrorIs(t, err, topics.ErrNoQuestions)

	assert.Nil(t, store.created, "nothing should be persisted on validation failure")
}
