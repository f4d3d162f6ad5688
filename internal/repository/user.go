package repository

import (
	"context"

	"food-donate/internal/domain"
)

// UserRepository defines persistence operations for users and their sessions.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateSession(ctx context.Context, session *domain.Session) error
	// FindBySessionID returns domain.ErrNotFound when the session is unknown or expired.
	FindBySessionID(ctx context.Context, sessionID string) (*domain.UserProfile, error)
}
