package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"food-donate/internal/domain"
	"food-donate/internal/repository"
)

// ErrStaleSession indicates the session token no longer maps to an active session.
var ErrStaleSession = errors.New("stale session")

// ProfileService resolves the profile behind a session token.
type ProfileService interface {
	GetBySession(ctx context.Context, sessionID string) (*domain.UserProfile, error)
}

type profileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) GetBySession(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrStaleSession
	}

	profile, err := s.users.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrStaleSession
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}
