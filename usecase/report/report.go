package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fastygo/bookingservice/domain"
	appLogger "github.com/fastygo/bookingservice/pkg/logger"
	"github.com/fastygo/bookingservice/usecase"
)

// Business dispatch tags. The tag doubles as the department filter.
const (
	TagSales    = "sales"
	TagInternal = "internal"
)

// DateLayout renders dates as day.month.year with a 24-hour clock, e.g. "25.08.1991, 14:54:05".
const DateLayout = "02.01.2006, 15:04:05"

// Queries is the read side the reports are computed from.
type Queries interface {
	FindByDepartment(ctx context.Context, department string) []domain.Booking
	FindByCurrency(ctx context.Context, code domain.Currency) []domain.Booking
}

type UseCase struct {
	queries    Queries
	location   *time.Location
	dispatcher *usecase.Dispatcher
	logger     *zap.Logger
}

// New builds the report use case. Dates are rendered in loc, or the process local zone when loc is nil.
func New(queries Queries, loc *time.Location, logger *zap.Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	uc := &UseCase{
		queries:    queries,
		location:   loc,
		dispatcher: usecase.NewDispatcher(),
		logger:     logger,
	}

	uc.dispatcher.Register(TagSales, func(ctx context.Context, tag string) (interface{}, error) {
		return uc.AverageByCurrencyForDepartment(ctx, tag), nil
	})
	uc.dispatcher.Register(TagInternal, func(ctx context.Context, tag string) (interface{}, error) {
		return uc.ToHumanReadable(ctx, tag), nil
	})

	return uc
}

// SumByCurrency adds up the prices of every booking in code. No match yields 0.
func (uc *UseCase) SumByCurrency(ctx context.Context, code domain.Currency) float64 {
	bookings := uc.queries.FindByCurrency(ctx, code)
	total := decimal.Zero
	for _, b := range bookings {
		total = total.Add(decimal.NewFromFloat(b.Price))
	}
	appLogger.WithRequestID(ctx, uc.logger).Debug("sum computed",
		zap.String("currency", code.String()),
		zap.Int("bookings", len(bookings)),
		zap.String("total", total.String()))
	return total.InexactFloat64()
}

type accumulator struct {
	total decimal.Decimal
	count int64
}

// AverageByCurrencyForDepartment returns the mean price per currency among the department's bookings.
func (uc *UseCase) AverageByCurrencyForDepartment(ctx context.Context, department string) map[domain.Currency]float64 {
	groups := make(map[domain.Currency]*accumulator)
	for _, b := range uc.queries.FindByDepartment(ctx, department) {
		acc, ok := groups[b.Currency]
		if !ok {
			acc = &accumulator{total: decimal.Zero}
			groups[b.Currency] = acc
		}
		acc.total = acc.total.Add(decimal.NewFromFloat(b.Price))
		acc.count++
	}

	averages := make(map[domain.Currency]float64, len(groups))
	for code, acc := range groups {
		averages[code] = acc.total.Div(decimal.NewFromInt(acc.count)).InexactFloat64()
	}
	appLogger.WithRequestID(ctx, uc.logger).Debug("averages computed",
		zap.String("department", department),
		zap.Int("currencies", len(averages)))
	return averages
}

func (uc *UseCase) ToHumanReadable(ctx context.Context, department string) []domain.HumanReadableBooking {
	bookings := uc.queries.FindByDepartment(ctx, department)
	result := make([]domain.HumanReadableBooking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, domain.NewHumanReadableBooking(b, uc.humanizeDate(b.SubscriptionStartDate)))
	}
	return result
}

// DoBusiness runs the transform selected by tag, filtering on tag as the department.
// Unknown tags yield domain.ErrUnsupportedOperation.
func (uc *UseCase) DoBusiness(ctx context.Context, tag string) (interface{}, error) {
	result, err := uc.dispatcher.Execute(ctx, tag)
	if err != nil {
		appLogger.WithRequestID(ctx, uc.logger).Warn("business dispatch rejected", zap.String("tag", tag), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (uc *UseCase) humanizeDate(epochMillis int64) string {
	return time.UnixMilli(epochMillis).In(uc.location).Format(DateLayout)
}
