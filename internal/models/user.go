package models

import "time"

// User IDs are opaque strings (UUIDs issued at registration) so workout rows
// never depend on the identity provider's internal numbering.
type User struct {
	ID           string    `gorm:"primaryKey;size:255" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}
