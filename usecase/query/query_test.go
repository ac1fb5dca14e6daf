package query

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fastygo/bookingservice/domain"
	appLogger "github.com/fastygo/bookingservice/pkg/logger"
	"github.com/fastygo/bookingservice/repository/memory"
)

func seed(t *testing.T, bookings ...domain.Booking) *UseCase {
	t.Helper()
	repo := memory.NewBookingRepository()
	for _, b := range bookings {
		repo.Upsert(b)
	}
	return New(repo, nil)
}

var ctx = context.Background()

func booking(department string, code domain.Currency, price float64) domain.Booking {
	return domain.Booking{
		Description:           "description",
		Price:                 price,
		Currency:              code,
		SubscriptionStartDate: 683124845000,
		Email:                 "valid@email.ok",
		Department:            department,
	}
}

func TestFindByDepartment(t *testing.T) {
	uc := seed(t,
		booking("sales", "USD", 10),
		booking("sales", "EUR", 20),
		booking("Sales", "USD", 30),
		booking("internal", "USD", 40),
	)

	tests := []struct {
		department string
		want       int
	}{
		{"sales", 2},
		{"Sales", 1},
		{"internal", 1},
		{"sales ", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got := uc.FindByDepartment(ctx, tt.department)
		if len(got) != tt.want {
			t.Fatalf("FindByDepartment(%q) returned %d bookings, want %d", tt.department, len(got), tt.want)
		}
		for _, b := range got {
			if b.Department != tt.department {
				t.Fatalf("FindByDepartment(%q) returned booking of %q", tt.department, b.Department)
			}
		}
	}
}

func TestFindByCurrency(t *testing.T) {
	uc := seed(t,
		booking("sales", "USD", 10),
		booking("internal", "USD", 20),
		booking("sales", "EUR", 30),
	)

	if got := uc.FindByCurrency(ctx, "USD"); len(got) != 2 {
		t.Fatalf("expected 2 USD bookings, got %d", len(got))
	}
	if got := uc.FindByCurrency(ctx, "usd"); len(got) != 0 {
		t.Fatalf("currency match must be exact, got %d", len(got))
	}
	if got := uc.FindByCurrency(ctx, "JPY"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}

func TestFindCurrenciesUsed(t *testing.T) {
	uc := seed(t,
		booking("sales", "USD", 10),
		booking("internal", "USD", 20),
		booking("sales", "EUR", 30),
	)

	used := uc.FindCurrenciesUsed(ctx)
	if len(used) != 2 {
		t.Fatalf("expected 2 currencies, got %v", used)
	}
	for _, code := range []domain.Currency{"USD", "EUR"} {
		if _, ok := used[code]; !ok {
			t.Fatalf("missing currency %s in %v", code, used)
		}
	}
}

func TestEmptyStore(t *testing.T) {
	uc := seed(t)

	if got := uc.FindCurrenciesUsed(ctx); len(got) != 0 {
		t.Fatalf("expected no currencies, got %v", got)
	}
	if got := uc.FindByDepartment(ctx, "sales"); len(got) != 0 {
		t.Fatalf("expected no bookings, got %v", got)
	}
}

func TestReadsLogAtDebugWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	repo := memory.NewBookingRepository()
	repo.Upsert(booking("sales", "USD", 10))
	repo.Upsert(booking("internal", "EUR", 20))
	uc := New(repo, zap.New(core))

	reqCtx := appLogger.ContextWithRequestID(context.Background(), "req-7")
	uc.FindByDepartment(reqCtx, "sales")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != zap.DebugLevel {
		t.Fatalf("reads must log at debug, got %s", entry.Level)
	}
	fields := entry.ContextMap()
	if fields["request_id"] != "req-7" {
		t.Fatalf("expected request_id req-7, got %v", fields["request_id"])
	}
	if fields["department"] != "sales" || fields["count"] != int64(1) {
		t.Fatalf("unexpected fields %v", fields)
	}
}
