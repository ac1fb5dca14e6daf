package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/bookingservice/api/transport"
	"github.com/fastygo/bookingservice/pkg/httpcontext"
	bookingUC "github.com/fastygo/bookingservice/usecase/booking"
	queryUC "github.com/fastygo/bookingservice/usecase/query"
)

type BookingHandler struct {
	baseHandler
	bookings *bookingUC.UseCase
	queries  *queryUC.UseCase
}

func NewBookingHandler(bookings *bookingUC.UseCase, queries *queryUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		bookings:    bookings,
		queries:     queries,
	}
}

// @Summary Create booking
// @Tags bookings
// @Router /bookingservice/bookings [post]
func (h *BookingHandler) CreateBooking(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	booking, err := transport.DecodeBooking(ctx.PostBody())
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}

	created, err := h.bookings.CreateBooking(stdCtx, booking)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created.ID)
}

// @Summary Replace booking
// @Tags bookings
// @Router /bookingservice/bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	booking, err := transport.DecodeBooking(ctx.PostBody())
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}

	updated, err := h.bookings.UpdateBooking(stdCtx, pathParam(ctx, "id"), booking)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, updated)
}

// @Summary Get booking
// @Tags bookings
// @Router /bookingservice/bookings/{id} [get]
func (h *BookingHandler) GetBooking(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	booking, err := h.bookings.GetBooking(stdCtx, pathParam(ctx, "id"))
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, booking)
}

// @Summary List bookings of a department
// @Tags bookings
// @Router /bookingservice/bookings/department/{department} [get]
func (h *BookingHandler) GetByDepartment(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	department := pathParam(ctx, "department")
	bookings := h.queries.FindByDepartment(stdCtx, department)
	if len(bookings) == 0 {
		h.respondNotFound(ctx, "no bookings for department "+department)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, bookings)
}
