package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"food-donate/internal/domain"
	"food-donate/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	display_name TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

// expires_at is unix seconds so the active-session check is a plain integer comparison.
const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	expires_at INTEGER NOT NULL
);
`

const createSessionsIndex = `CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);`

type UserRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db, now: time.Now}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createSessionsTable); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createSessionsIndex); err != nil {
		return fmt.Errorf("create sessions index: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	user.CreatedAt = r.now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, display_name, created_at)
VALUES (?, ?, ?)`,
		user.Username,
		user.DisplayName,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("user %q: %w", user.Username, domain.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user last insert id: %w", err)
	}
	user.ID = id
	return id, nil
}

func isUniqueViolation(err error) bool {
	var sErr *msqlite.Error
	if !errors.As(err, &sErr) {
		return false
	}
	return sErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, display_name, created_at
FROM users
WHERE username = ?`,
		username,
	)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.DisplayName, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.now().UTC()
	}

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO sessions (id, user_id, created_at, expires_at)
VALUES (?, ?, ?, ?)`,
		session.ID,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt.Unix(),
	); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *UserRepository) FindBySessionID(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT u.display_name
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.id = ? AND s.expires_at > ?`,
		sessionID,
		r.now().Unix(),
	)

	profile := domain.UserProfile{SessionID: sessionID}
	if err := row.Scan(&profile.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &profile, nil
}
