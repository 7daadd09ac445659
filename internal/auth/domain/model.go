// Package domain contains core types for the auth service.
package domain

import "time"

// Session is a persisted login session. Only the token hash is stored;
// the raw token lives in the client cookie.
type Session struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	UserID           string     `gorm:"column:user_id;not null;index"`
	SessionTokenHash string     `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string     `gorm:"column:user_agent;type:text"`
	IPAddress        string     `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time  `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time `gorm:"column:revoked_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"`
	LastSeenAt       time.Time  `gorm:"column:last_seen_at;not null"`
}

func (Session) TableName() string { return "sessions" }
