package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"food-donate/internal/domain"
	"food-donate/internal/repository"
)

// Form field names, shared with the HTML form.
const (
	FieldFoodType = "foodType"
	FieldQuantity = "quantity"
)

// ValidationError reports per-field problems with a submitted donation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return "invalid donation: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err carries field-level validation failures.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// DonationService validates and records donation pledges.
type DonationService interface {
	Submit(ctx context.Context, foodType, quantity string) (*domain.DonationRequest, error)
}

type donationForm struct {
	FoodType string `form:"foodType" validate:"required"`
	Quantity int    `form:"quantity" validate:"gte=1"`
}

type donationService struct {
	donations repository.DonationRepository
	validate  *validator.Validate
}

func NewDonationService(donations repository.DonationRepository) DonationService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	return &donationService{
		donations: donations,
		validate:  v,
	}
}

// Submit validates the raw form values and inserts the donation once.
// A *ValidationError is returned without touching the repository.
func (s *donationService) Submit(ctx context.Context, foodType, quantity string) (*domain.DonationRequest, error) {
	form := donationForm{FoodType: strings.TrimSpace(foodType)}
	fields := make(map[string]string)

	quantity = strings.TrimSpace(quantity)
	switch n, err := strconv.Atoi(quantity); {
	case quantity == "":
		fields[FieldQuantity] = "Please enter a quantity."
	case err != nil:
		fields[FieldQuantity] = "Quantity must be a whole number."
	default:
		form.Quantity = n
	}

	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate donation: %w", err)
		}
		for _, fe := range verrs {
			// a parse failure above is more specific than the zero-value range check
			if _, seen := fields[fe.Field()]; seen {
				continue
			}
			fields[fe.Field()] = fieldMessage(fe)
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	donation := &domain.DonationRequest{
		FoodType: form.FoodType,
		Quantity: form.Quantity,
	}
	id, err := s.donations.Insert(ctx, donation)
	if err != nil {
		return nil, fmt.Errorf("store donation: %w", err)
	}
	donation.ID = id
	return donation, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() + "/" + fe.Tag() {
	case FieldFoodType + "/required":
		return "Please enter the type of food."
	case FieldQuantity + "/gte":
		return fmt.Sprintf("Quantity must be at least %s.", fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
