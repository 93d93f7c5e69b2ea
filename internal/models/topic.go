package models

import (
	"time"

	"github.com/lib/pq"
)

// Topic is an ordered, immutable sequence of questions that a pair plays
// through.
type Topic struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	// Tags are optional free-form labels used by the read API for filtering.
	Tags pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`

	Questions []Question `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// Question is one entry of a topic's sequence. OrderNum is the zero-based
// position the coordinator indexes by.
type Question struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TopicID  uint   `gorm:"not null;index:idx_questions_topic_order" json:"topic_id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	OrderNum int    `gorm:"not null;index:idx_questions_topic_order" json:"order_num"`
}
