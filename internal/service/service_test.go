package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"food-donate/internal/domain"
)

type memoryDonations struct {
	stored []domain.DonationRequest
	err    error
}

func (m *memoryDonations) Init(context.Context) error { return nil }

func (m *memoryDonations) Insert(_ context.Context, d *domain.DonationRequest) (domain.RecordID, error) {
	if m.err != nil {
		return "", m.err
	}
	d.ID = domain.RecordID("id-" + d.FoodType)
	m.stored = append(m.stored, *d)
	return d.ID, nil
}

type memoryUsers struct {
	users    map[string]*domain.User
	sessions map[string]*domain.Session
	findErr  error
	nextID   int64
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{
		users:    make(map[string]*domain.User),
		sessions: make(map[string]*domain.Session),
	}
}

func (m *memoryUsers) Init(context.Context) error { return nil }

func (m *memoryUsers) Create(_ context.Context, user *domain.User) (int64, error) {
	if _, ok := m.users[user.Username]; ok {
		return 0, domain.ErrAlreadyExists
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = user
	return user.ID, nil
}

func (m *memoryUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *memoryUsers) CreateSession(_ context.Context, session *domain.Session) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *memoryUsers) FindBySessionID(_ context.Context, sessionID string) (*domain.UserProfile, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	session, ok := m.sessions[sessionID]
	if !ok || !session.ExpiresAt.After(time.Now()) {
		return nil, domain.ErrNotFound
	}
	for _, user := range m.users {
		if user.ID == session.UserID {
			return &domain.UserProfile{SessionID: sessionID, DisplayName: user.DisplayName}, nil
		}
	}
	return nil, domain.ErrNotFound
}

func TestDonationSubmitValid(t *testing.T) {
	repo := &memoryDonations{}
	svc := NewDonationService(repo)

	for i, tc := range []struct {
		foodType, quantity string
		wantType           string
		wantQty            int
	}{
		{"Canned Beans", "5", "Canned Beans", 5},
		{"  Apples ", "1", "Apples", 1},
		{"Rice", " 250 ", "Rice", 250},
		{"Soup", "+3", "Soup", 3},
	} {
		donation, err := svc.Submit(context.Background(), tc.foodType, tc.quantity)
		if err != nil {
			t.Fatalf("case %d: Submit: %v", i, err)
		}
		if donation.FoodType != tc.wantType || donation.Quantity != tc.wantQty {
			t.Fatalf("case %d: donation = %+v", i, donation)
		}
		if donation.ID == "" {
			t.Fatalf("case %d: missing record id", i)
		}
	}
	if len(repo.stored) != 4 {
		t.Fatalf("stored = %d, want 4", len(repo.stored))
	}
}

func TestDonationSubmitValidationErrors(t *testing.T) {
	cases := []struct {
		name               string
		foodType, quantity string
		wantFields         []string
		wantMessage        string
	}{
		{"negative quantity", "Beans", "-3", []string{FieldQuantity}, "at least 1"},
		{"zero quantity", "Beans", "0", []string{FieldQuantity}, "at least 1"},
		{"not a number", "Beans", "five", []string{FieldQuantity}, "whole number"},
		{"decimal", "Beans", "1.5", []string{FieldQuantity}, "whole number"},
		{"missing quantity", "Beans", "  ", []string{FieldQuantity}, "enter a quantity"},
		{"blank food type", "   ", "2", []string{FieldFoodType}, "type of food"},
		{"both", "", "x", []string{FieldFoodType, FieldQuantity}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memoryDonations{}
			svc := NewDonationService(repo)

			_, err := svc.Submit(context.Background(), tc.foodType, tc.quantity)
			vErr, ok := IsValidationError(err)
			if !ok {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if len(vErr.Fields) != len(tc.wantFields) {
				t.Fatalf("fields = %v, want %v", vErr.Fields, tc.wantFields)
			}
			for _, field := range tc.wantFields {
				msg, ok := vErr.Fields[field]
				if !ok {
					t.Fatalf("missing error for %s in %v", field, vErr.Fields)
				}
				if tc.wantMessage != "" && !strings.Contains(msg, tc.wantMessage) {
					t.Fatalf("%s message = %q, want it to mention %q", field, msg, tc.wantMessage)
				}
			}
			if len(repo.stored) != 0 {
				t.Fatalf("validation failure stored %d donations", len(repo.stored))
			}
		})
	}
}

// returnOnlyDonations follows the connector contract strictly: it reports the
// record id through its return value and leaves the argument untouched.
type returnOnlyDonations struct {
	id   domain.RecordID
	seen []domain.DonationRequest
}

func (r *returnOnlyDonations) Init(context.Context) error { return nil }

func (r *returnOnlyDonations) Insert(_ context.Context, d *domain.DonationRequest) (domain.RecordID, error) {
	r.seen = append(r.seen, *d)
	return r.id, nil
}

func TestDonationSubmitUsesReturnedRecordID(t *testing.T) {
	repo := &returnOnlyDonations{id: "rec-42"}
	svc := NewDonationService(repo)

	donation, err := svc.Submit(context.Background(), "Canned Beans", "5")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if donation.ID != "rec-42" {
		t.Fatalf("donation id = %q, want rec-42", donation.ID)
	}
	if len(repo.seen) != 1 || repo.seen[0].FoodType != "Canned Beans" || repo.seen[0].Quantity != 5 {
		t.Fatalf("inserted = %+v", repo.seen)
	}
}

func TestDonationSubmitStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewDonationService(&memoryDonations{err: storeErr})

	_, err := svc.Submit(context.Background(), "Bread", "2")
	if !errors.Is(err, storeErr) {
		t.Fatalf("error = %v, want wrapped store error", err)
	}
	if _, ok := IsValidationError(err); ok {
		t.Fatalf("store failure reported as validation error")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		FieldQuantity: "Quantity must be at least 1.",
		FieldFoodType: "Please enter the type of food.",
	}}
	want := "invalid donation: foodType: Please enter the type of food.; quantity: Quantity must be at least 1."
	if err.Error() != want {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestProfileGetBySession(t *testing.T) {
	users := newMemoryUsers()
	userSvc := NewUserService(users)
	ctx := context.Background()

	if _, err := userSvc.Create(ctx, "ada", "Ada Lovelace"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	session, err := userSvc.IssueSession(ctx, "ada", time.Hour)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	profiles := NewProfileService(users)
	profile, err := profiles.GetBySession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetBySession: %v", err)
	}
	if profile.DisplayName != "Ada Lovelace" {
		t.Fatalf("display name = %q", profile.DisplayName)
	}

	if _, err := profiles.GetBySession(ctx, "unknown"); !errors.Is(err, ErrStaleSession) {
		t.Fatalf("unknown session error = %v, want ErrStaleSession", err)
	}
	if _, err := profiles.GetBySession(ctx, ""); !errors.Is(err, ErrStaleSession) {
		t.Fatalf("blank session error = %v, want ErrStaleSession", err)
	}
}

func TestProfileStoreError(t *testing.T) {
	users := newMemoryUsers()
	users.findErr = errors.New("database is locked")

	_, err := NewProfileService(users).GetBySession(context.Background(), "tok")
	if err == nil || errors.Is(err, ErrStaleSession) {
		t.Fatalf("error = %v, want store error", err)
	}
}

func TestUserServiceCreate(t *testing.T) {
	users := newMemoryUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	user, err := svc.Create(ctx, " grace ", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Username != "grace" || user.DisplayName != "grace" {
		t.Fatalf("user = %+v", user)
	}

	if _, err := svc.Create(ctx, "grace", "Grace Hopper"); !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("duplicate error = %v", err)
	}
	if _, err := svc.Create(ctx, "  ", "Nobody"); err == nil {
		t.Fatalf("expected error for blank username")
	}
}

func TestUserServiceIssueSession(t *testing.T) {
	users := newMemoryUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	if _, err := svc.IssueSession(ctx, "ghost", time.Hour); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user error = %v", err)
	}

	if _, err := svc.Create(ctx, "ada", "Ada"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := time.Now()
	session, err := svc.IssueSession(ctx, "ada", 0)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	if len(session.ID) != SessionIDLength {
		t.Fatalf("session id length = %d", len(session.ID))
	}
	if session.ExpiresAt.Before(before.Add(DefaultSessionTTL - time.Minute)) {
		t.Fatalf("expires at %v, want default ttl", session.ExpiresAt)
	}

	other, err := svc.IssueSession(ctx, "ada", time.Hour)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	if other.ID == session.ID {
		t.Fatalf("session ids repeated")
	}
}
