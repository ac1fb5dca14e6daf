package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fastygo/bookingservice/domain"
)

// QueryHandler runs a report for the given tag. The tag is passed exactly as the caller supplied it.
type QueryHandler func(ctx context.Context, tag string) (interface{}, error)

// Dispatcher routes a tag to a registered handler. Lookup is case-insensitive.
type Dispatcher struct {
	handlers map[string]QueryHandler
	mu       sync.RWMutex
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]QueryHandler)}
}

func (d *Dispatcher) Register(tag string, handler QueryHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[strings.ToLower(tag)] = handler
}

func (d *Dispatcher) Execute(ctx context.Context, tag string) (interface{}, error) {
	d.mu.RLock()
	handler, ok := d.handlers[strings.ToLower(tag)]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: no transform for %q", domain.ErrUnsupportedOperation, tag)
	}
	return handler(ctx, tag)
}
