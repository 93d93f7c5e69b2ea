// Package handler exposes the read-only HTTP surface: topic listing, room
// snapshots, the admin topic-authoring endpoint and the WebSocket room
// observer. Display reads take no per-room lock.
package handler

import (
	"cardslite/backend/internal/storage"
	"cardslite/backend/internal/topics"
)

// Handler carries the dependencies of the HTTP routes.
type Handler struct {
	Storage *storage.Service
	Topics  *topics.Service
	// JWTSecret verifies admin tokens on the authoring endpoint.
	JWTSecret []byte
}

func NewHandler(s *storage.Service, t *topics.Service, jwtSecret []byte) *Handler {
	return &Handler{Storage: s, Topics: t, JWTSecret: jwtSecret}
}
