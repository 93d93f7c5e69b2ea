package handler

import (
	"errors"
	"net/http"

	"cardslite/backend/internal/topics"

	"github.com/gin-gonic/gin"
)

// ListTopics returns every topic for display.
func (h *Handler) ListTopics(c *gin.Context) {
	topicList, err := h.Topics.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list topics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topicList})
}

type createTopicRequest struct {
	Name      string   `json:"name" binding:"required"`
	Questions string   `json:"questions" binding:"required"`
	Tags      []string `json:"tags"`
}

// CreateTopic is the admin authoring endpoint. The questions field uses the
// same numbered-list format the bot dialog accepts.
func (h *Handler) CreateTopic(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, count, err := h.Topics.Create(req.Name, req.Questions, req.Tags)
	if err != nil {
		if errors.Is(err, topics.ErrEmptyName) || errors.Is(err, topics.ErrNoQuestions) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topic"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": topic, "question_count": count})
}

// GetRoom returns a status snapshot of one room without exposing the
// participants' Telegram IDs.
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.Storage.LoadRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room"})
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":             room.ID,
		"topic_id":       room.TopicID,
		"status":         room.Status,
		"question_index": room.CurrentQuestionIndex,
		"chat_revealed":  room.ChatRevealed,
	})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
