package repository

import (
	"context"

	"food-donate/internal/domain"
)

// DonationRepository persists submitted donations. Records are never updated.
type DonationRepository interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, donation *domain.DonationRequest) (domain.RecordID, error)
}
