package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/fastygo/bookingservice/domain"
	"github.com/fastygo/bookingservice/repository/memory"
	"github.com/fastygo/bookingservice/usecase/query"
)

func TestRefresh(t *testing.T) {
	repo := memory.NewBookingRepository()
	repo.Upsert(domain.Booking{Currency: "USD", Department: "sales"})
	repo.Upsert(domain.Booking{Currency: "USD", Department: "internal"})
	repo.Upsert(domain.Booking{Currency: "EUR", Department: "sales"})

	m := New(repo, query.New(repo, nil), time.Minute, nil)
	if !m.GetStatus().LastCheck.IsZero() {
		t.Fatalf("status must be empty before the first refresh")
	}

	m.Refresh()
	status := m.GetStatus()
	if status.RecordCount != 3 || status.Currencies != 2 {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.LastCheck.Before(status.StartedAt) {
		t.Fatalf("last check %v precedes start %v", status.LastCheck, status.StartedAt)
	}
}

func TestStartStop(t *testing.T) {
	repo := memory.NewBookingRepository()
	m := New(repo, nil, time.Second, nil)

	m.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Stop(ctx)

	if m.GetStatus().LastCheck.IsZero() {
		t.Fatalf("Start must take an initial snapshot")
	}
}

func TestScheduleSpecKeepsSubSecondPrecision(t *testing.T) {
	tests := map[time.Duration]string{
		1500 * time.Millisecond: "@every 1.5s",
		10 * time.Second:        "@every 10s",
		2 * time.Minute:         "@every 2m0s",
	}
	for interval, want := range tests {
		if got := scheduleSpec(interval); got != want {
			t.Fatalf("scheduleSpec(%v) = %q, want %q", interval, got, want)
		}
	}
}

func TestNewAcceptsFractionalInterval(t *testing.T) {
	m := New(memory.NewBookingRepository(), nil, 1500*time.Millisecond, nil)
	if entries := m.cron.Entries(); len(entries) != 1 {
		t.Fatalf("expected one scheduled refresh, got %d", len(entries))
	}
}
