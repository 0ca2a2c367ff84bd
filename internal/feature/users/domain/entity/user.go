// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a person registered in the directory.
type User struct {
	// ID is the unique identifier for the user.
	// It is assigned by the persistence layer at creation time and never changes.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the user's display name. Minimum 3 characters.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Phone is the user's phone number. Optional, no format constraint.
	Phone *string `gorm:"size:32"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
