package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"food-donate/internal/domain"
	"food-donate/internal/repository"
)

const createDonationsTable = `
CREATE TABLE IF NOT EXISTS donations (
	id TEXT PRIMARY KEY,
	food_type TEXT NOT NULL,
	quantity INTEGER NOT NULL CHECK (quantity > 0),
	created_at DATETIME NOT NULL
);
`

type DonationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createDonationsTable); err != nil {
		return fmt.Errorf("create donations table: %w", err)
	}
	return nil
}

// Insert assigns a fresh id and creation time to donation and stores it.
func (r *DonationRepository) Insert(ctx context.Context, donation *domain.DonationRequest) (domain.RecordID, error) {
	donation.ID = domain.RecordID(uuid.NewString())
	donation.CreatedAt = time.Now().UTC()

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO donations (id, food_type, quantity, created_at)
VALUES (?, ?, ?, ?)`,
		string(donation.ID),
		donation.FoodType,
		donation.Quantity,
		donation.CreatedAt,
	); err != nil {
		donation.ID = ""
		return "", fmt.Errorf("insert donation: %w", err)
	}
	return donation.ID, nil
}
