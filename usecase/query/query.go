package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/bookingservice/domain"
	appLogger "github.com/fastygo/bookingservice/pkg/logger"
	"github.com/fastygo/bookingservice/repository"
)

// UseCase answers read-only questions by scanning the current repository state.
// Nothing is cached; results are in no particular order.
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

func (uc *UseCase) FindByDepartment(ctx context.Context, department string) []domain.Booking {
	result := uc.filter(func(b domain.Booking) bool {
		return b.Department == department
	})
	appLogger.WithRequestID(ctx, uc.logger).Debug("bookings by department",
		zap.String("department", department),
		zap.Int("count", len(result)))
	return result
}

func (uc *UseCase) FindByCurrency(ctx context.Context, code domain.Currency) []domain.Booking {
	result := uc.filter(func(b domain.Booking) bool {
		return b.Currency == code
	})
	appLogger.WithRequestID(ctx, uc.logger).Debug("bookings by currency",
		zap.String("currency", code.String()),
		zap.Int("count", len(result)))
	return result
}

// FindCurrenciesUsed returns the distinct currencies across all bookings.
func (uc *UseCase) FindCurrenciesUsed(ctx context.Context) map[domain.Currency]struct{} {
	used := make(map[domain.Currency]struct{})
	for _, b := range uc.bookings.List() {
		used[b.Currency] = struct{}{}
	}
	appLogger.WithRequestID(ctx, uc.logger).Debug("currencies in use", zap.Int("count", len(used)))
	return used
}

func (uc *UseCase) filter(match func(domain.Booking) bool) []domain.Booking {
	result := make([]domain.Booking, 0)
	for _, b := range uc.bookings.List() {
		if match(b) {
			result = append(result, b)
		}
	}
	return result
}
