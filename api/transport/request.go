package transport

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fastygo/bookingservice/domain"
)

// BookingRequest is the JSON body accepted by the create and update endpoints.
// Pointers distinguish a missing field from its zero value.
type BookingRequest struct {
	ID                    string   `json:"id"`
	Description           *string  `json:"description" validate:"required"`
	Price                 *float64 `json:"price" validate:"required,gte=0"`
	Currency              *string  `json:"currency" validate:"required"`
	SubscriptionStartDate *int64   `json:"subscription_start_date" validate:"required"`
	Email                 *string  `json:"email" validate:"required"`
	Department            *string  `json:"department" validate:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// DecodeBooking parses and validates body into a domain booking.
// Every failure is classified as domain.ErrCodeInvalid.
func DecodeBooking(body []byte) (domain.Booking, error) {
	var req BookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if err := requestValidator().Struct(&req); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	code, err := domain.ParseCurrency(*req.Currency)
	if err != nil {
		return domain.Booking{}, err
	}

	return domain.Booking{
		ID:                    req.ID,
		Description:           *req.Description,
		Price:                 *req.Price,
		Currency:              code,
		SubscriptionStartDate: *req.SubscriptionStartDate,
		Email:                 *req.Email,
		Department:            *req.Department,
	}, nil
}
