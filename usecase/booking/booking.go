package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/bookingservice/domain"
	appLogger "github.com/fastygo/bookingservice/pkg/logger"
	"github.com/fastygo/bookingservice/repository"
)

type UseCase struct {
	bookings repository.BookingRepository
	logger   *zap.Logger
}

func New(bookings repository.BookingRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		bookings: bookings,
		logger:   logger,
	}
}

// CreateBooking stores a new booking and returns it with its assigned ID.
// A booking whose ID is already taken yields domain.ErrBookingExists.
func (uc *UseCase) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	log := appLogger.WithRequestID(ctx, uc.logger)
	if _, found := uc.bookings.Get(booking.ID); found {
		log.Warn("booking already exists", zap.String("booking_id", booking.ID))
		return domain.Booking{}, domain.ErrBookingExists
	}

	saved := uc.bookings.Upsert(booking)
	log.Info("booking created",
		zap.String("booking_id", saved.ID),
		zap.String("department", saved.Department),
		zap.String("currency", saved.Currency.String()))
	return saved, nil
}

// UpdateBooking replaces the booking stored at id. The stored record always keeps id.
func (uc *UseCase) UpdateBooking(ctx context.Context, id string, booking domain.Booking) (domain.Booking, error) {
	log := appLogger.WithRequestID(ctx, uc.logger)
	if _, found := uc.bookings.Get(id); !found {
		log.Warn("update of unknown booking", zap.String("booking_id", id))
		return domain.Booking{}, domain.ErrBookingNotFound
	}

	booking.ID = id
	saved := uc.bookings.Upsert(booking)
	log.Info("booking updated", zap.String("booking_id", saved.ID))
	return saved, nil
}

func (uc *UseCase) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	booking, found := uc.bookings.Get(id)
	if !found {
		appLogger.WithRequestID(ctx, uc.logger).Debug("booking not found", zap.String("booking_id", id))
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return booking, nil
}
