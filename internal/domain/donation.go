package domain

import "time"

// RecordID identifies a stored donation.
type RecordID string

// DonationRequest is a single pledge of food submitted through the donation form.
// Records are append-only once stored.
type DonationRequest struct {
	ID        RecordID
	FoodType  string
	Quantity  int
	CreatedAt time.Time
}
