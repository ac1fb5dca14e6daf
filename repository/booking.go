package repository

import "github.com/fastygo/bookingservice/domain"

// BookingRepository is the authoritative keyed storage for bookings.
// Single-key operations are atomic; List is a weakly consistent snapshot.
type BookingRepository interface {
	// Upsert stores booking under its ID, assigning a new UUID when ID is empty.
	Upsert(booking domain.Booking) domain.Booking
	Get(id string) (domain.Booking, bool)
	List() []domain.Booking
	Count() int
}
