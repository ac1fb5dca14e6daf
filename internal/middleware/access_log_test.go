package middleware

import (
	"testing"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fastygo/bookingservice/pkg/httpcontext"
)

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	handler := AccessLog(zap.New(core))(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusTeapot)
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/bookingservice/bookings/currencies")
	ctx.Request.Header.Set(httpcontext.HeaderRequestID, "req-7")
	handler(&ctx)

	entries := logs.FilterMessage("request served").All()
	if len(entries) != 1 {
		t.Fatalf("expected one access log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(fasthttp.StatusTeapot) {
		t.Fatalf("unexpected status field %v", fields["status"])
	}
	if fields["path"] != "/bookingservice/bookings/currencies" {
		t.Fatalf("unexpected path field %v", fields["path"])
	}
	if fields["request_id"] != "req-7" {
		t.Fatalf("unexpected request id %v", fields["request_id"])
	}
}
