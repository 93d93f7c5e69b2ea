package config

import "time"

const (
	// Bot
	LongPollTimeout = 60 // seconds, Telegram getUpdates long poll

	// Topics
	TopicPreviewQuestions = 5 // questions shown in the authoring confirmation

	// HTTP server
	HTTPReadTimeout  = 10 * time.Second
	HTTPWriteTimeout = 10 * time.Second

	// Admin tokens
	AdminTokenTTL    = 72 * time.Hour
	AdminTokenIssuer = "cardslite-service"
)
