// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Creation is a user-submitted request describing a theatrical piece.
// Records are immutable once stored and always belong to exactly one user.
type Creation struct {
	// ID is assigned by the storage layer and grows with insertion order.
	ID int64 `json:"id"`

	// Theme is the subject of the piece. An empty theme is accepted.
	Theme string `json:"theme"`

	// Era is the desired historical period. Nil when not provided.
	Era *string `json:"era,omitempty"`

	// Description is free-form text. Nil when not provided.
	Description *string `json:"description,omitempty"`

	// UserID references the owning [User].
	UserID int64 `json:"user_id"`

	// CreatedAt is set by the storage layer on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Creation model.
func (c Creation) TableName() string {
	return "creations"
}

// HistoryEntry is a [Creation] decorated with its 1-based position in the
// owner's history, as shown on the History page ("Creation N").
type HistoryEntry struct {
	Ordinal int `json:"ordinal"`
	Creation
}
