package services

import (
	"context"
	"errors"
	"time"

	"starwars_api/internal/models"
)

// TokenStore keeps revoked token ids. RedisRepository implements it.
type TokenStore interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	Blacklist(ctx context.Context, jti string, ttl time.Duration) error
}

type AuthService struct {
	tokens TokenStore
	now    func() time.Time
}

func NewAuthService(tokens TokenStore) *AuthService {
	return &AuthService{tokens: tokens, now: time.Now}
}

// Logout revokes the token behind session for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	if session == nil || session.TokenID == "" {
		return errors.New("token has no id and cannot be revoked")
	}
	return s.tokens.Blacklist(ctx, session.TokenID, session.TTL(s.now()))
}
