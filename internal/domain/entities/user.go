package entities

import "time"

// User represents bot user.
type User struct {
	ID         int64 // Telegram user ID
	ChatID     int64
	IsActive   bool
	CreatedAt  time.Time
	LastSeenAt time.Time
}

func NewUser(id, chatID int64) *User {
	now := time.Now()
	return &User{
		ID:         id,
		ChatID:     chatID,
		IsActive:   true,
		CreatedAt:  now,
		LastSeenAt: now,
	}
}
