// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Base holds the identity, audit timestamps and soft-delete flag shared by every entity.
type Base struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool // Soft-delete flag, rows are never removed
}

func newBase() Base {
	now := time.Now().UTC()

	return Base{
		CreatedAt: now,
		UpdatedAt: now,
	}
}
