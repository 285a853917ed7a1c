package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryDefaultCapacity is how many recent calculations are kept.
const HistoryDefaultCapacity = 10

// HistoryEntry is a successfully evaluated expression and its formatted result.
type HistoryEntry struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expr"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Prepare fills in the identity fields a store needs before persisting.
func (e *HistoryEntry) Prepare(now time.Time) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now.UTC()
	}
}
