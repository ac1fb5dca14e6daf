package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShutdownRunsHooksInReverse(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	for _, name := range []string{"monitor", "http_server"} {
		name := name
		m.Register(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if len(order) != 2 || order[0] != "http_server" || order[1] != "monitor" {
		t.Fatalf("unexpected hook order %v", order)
	}
	if m.Context().Err() == nil {
		t.Fatalf("Shutdown must cancel the application context")
	}
}

func TestShutdownJoinsErrors(t *testing.T) {
	m := New(time.Second, nil)
	errA := errors.New("a")
	errB := errors.New("b")
	m.Register("a", func(context.Context) error { return errA })
	m.Register("ok", func(context.Context) error { return nil })
	m.Register("b", func(context.Context) error { return errB })

	err := m.Shutdown(context.Background())
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected both hook errors, got %v", err)
	}
}

func TestGoFailureCancelsContext(t *testing.T) {
	m := New(time.Second, nil)
	boom := errors.New("listen failed")

	m.Go("http_server", func() error { return boom })

	select {
	case <-m.Context().Done():
	case <-time.After(time.Second):
		t.Fatalf("context not cancelled after component failure")
	}
	if !errors.Is(m.Err(), boom) {
		t.Fatalf("expected component error, got %v", m.Err())
	}
}
