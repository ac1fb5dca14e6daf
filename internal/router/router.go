package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/bookingservice/api/handler"
)

const basePath = "/bookingservice"

type Handlers struct {
	Booking *apiHandler.BookingHandler
	Report  *apiHandler.ReportHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	if middleware == nil {
		middleware = func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}

	r := router.New()

	r.GET("/health", handlers.Health.Check)

	api := r.Group(basePath)
	api.POST("/bookings", middleware(handlers.Booking.CreateBooking))
	api.PUT("/bookings/{id}", middleware(handlers.Booking.UpdateBooking))
	api.GET("/bookings/{id}", middleware(handlers.Booking.GetBooking))
	api.GET("/bookings/department/{department}", middleware(handlers.Booking.GetByDepartment))

	// Reports
	api.GET("/bookings/currencies", middleware(handlers.Report.GetCurrenciesUsed))
	api.GET("/bookings/dobusiness/{department}", middleware(handlers.Report.DoBusiness))
	api.GET("/sum/{currency}", middleware(handlers.Report.GetSumByCurrency))

	return r
}
