package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// Currency is an ISO-4217 code. Equality is exact code match.
type Currency string

// ParseCurrency validates code against ISO-4217 and returns its canonical upper-case form.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidCurrency, code, err)
	}
	return Currency(unit.String()), nil
}

func (c Currency) String() string {
	return string(c)
}

// Booking is a subscription record tracked by the booking service.
type Booking struct {
	ID                    string   `json:"id"`
	Description           string   `json:"description"`
	Price                 float64  `json:"price"`
	Currency              Currency `json:"currency"`
	SubscriptionStartDate int64    `json:"subscription_start_date"`
	Email                 string   `json:"email"`
	Department            string   `json:"department"`
}

// HumanReadableBooking is a read-only view of a Booking with its start date rendered for people.
// It is built per request and never stored.
type HumanReadableBooking struct {
	Booking
	HumanReadableSubscriptionStartDate string `json:"human_readable_subscription_start_date"`
}

func NewHumanReadableBooking(b Booking, rendered string) HumanReadableBooking {
	return HumanReadableBooking{
		Booking:                            b,
		HumanReadableSubscriptionStartDate: rendered,
	}
}
