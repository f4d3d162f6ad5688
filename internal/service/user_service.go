package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-donate/internal/domain"
	"food-donate/internal/repository"
)

const (
	// SessionIDLength is the length of an issued session token in hex characters.
	SessionIDLength = 64
	// DefaultSessionTTL applies when IssueSession is called with a non-positive ttl.
	DefaultSessionTTL = 7 * 24 * time.Hour
)

var (
	// ErrUserAlreadyExists is returned when creating a user whose username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when issuing a session for an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

// UserService provisions accounts and session tokens for operators.
type UserService interface {
	Create(ctx context.Context, username, displayName string) (*domain.User, error)
	IssueSession(ctx context.Context, username string, ttl time.Duration) (*domain.Session, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, username, displayName string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)

	if username == "" {
		return nil, errors.New("username is required")
	}
	if displayName == "" {
		displayName = username
	}

	user := &domain.User{
		Username:    username,
		DisplayName: displayName,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) IssueSession(ctx context.Context, username string, ttl time.Duration) (*domain.Session, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        id,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.users.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func generateSessionID() (string, error) {
	buf := make([]byte, SessionIDLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
