package models

import "time"

// Notification is a broadcast message visible to all viewers. The log is
// append-only and ordered newest first; entries are immutable once created.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
