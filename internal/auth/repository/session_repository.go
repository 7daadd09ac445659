package repository

import (
	"context"
	"errors"
	"time"

	"github.com/zulem090/animal-style/internal/auth/domain"
	"gorm.io/gorm"
)

type sessionRepo struct{}

func ProvideSessionRepository() domain.SessionRepository {
	return &sessionRepo{}
}

func (r *sessionRepo) CreateSession(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).Where("session_token_hash = ?", tokenHash).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) UpdateLastSeen(ctx context.Context, db *gorm.DB, sessionID int64, lastSeen time.Time) error {
	return db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", sessionID).
		Update("last_seen_at", lastSeen).Error
}

func (r *sessionRepo) RevokeSession(ctx context.Context, db *gorm.DB, sessionID int64, revokedAt time.Time) error {
	return db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", sessionID).
		Update("revoked_at", revokedAt).Error
}
