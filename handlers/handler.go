package handlers

import (
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db  *bun.DB
	log *zap.Logger
}

// New creates a Handler with the given database connection and logger.
func New(db *bun.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}
