package models

import "time"

// Session is the caller identity carried by a verified access token.
type Session struct {
	TokenID   string    `json:"token_id"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TTL is how long the token stays valid from now, never negative.
func (s *Session) TTL(now time.Time) time.Duration {
	if d := s.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}
