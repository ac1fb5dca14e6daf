package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fastygo/bookingservice/domain"
	"github.com/fastygo/bookingservice/repository"
)

type bookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

// NewBookingRepository creates a process-lifetime, in-memory BookingRepository.
func NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *bookingRepository) Upsert(booking domain.Booking) domain.Booking {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	r.mu.Lock()
	r.bookings[booking.ID] = booking
	r.mu.Unlock()

	return booking
}

func (r *bookingRepository) Get(id string) (domain.Booking, bool) {
	if id == "" {
		return domain.Booking{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	return booking, ok
}

func (r *bookingRepository) List() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		bookings = append(bookings, b)
	}
	return bookings
}

func (r *bookingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
