package models

import "time"

type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}
