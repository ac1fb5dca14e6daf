package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/bookingservice/domain"
	"github.com/fastygo/bookingservice/pkg/httpcontext"
	queryUC "github.com/fastygo/bookingservice/usecase/query"
	reportUC "github.com/fastygo/bookingservice/usecase/report"
)

type ReportHandler struct {
	baseHandler
	queries *queryUC.UseCase
	reports *reportUC.UseCase
}

func NewReportHandler(queries *queryUC.UseCase, reports *reportUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		queries:     queries,
		reports:     reports,
	}
}

// @Summary Currencies in use
// @Tags reports
// @Router /bookingservice/bookings/currencies [get]
func (h *ReportHandler) GetCurrenciesUsed(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	used := h.queries.FindCurrenciesUsed(stdCtx)
	if len(used) == 0 {
		h.respondNotFound(ctx, "no currencies in use")
		return
	}

	codes := make([]domain.Currency, 0, len(used))
	for code := range used {
		codes = append(codes, code)
	}
	h.respondSuccess(ctx, http.StatusOK, codes)
}

// @Summary Sum of prices in a currency
// @Tags reports
// @Router /bookingservice/sum/{currency} [get]
func (h *ReportHandler) GetSumByCurrency(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	code := domain.Currency(pathParam(ctx, "currency"))
	h.respondSuccess(ctx, http.StatusOK, h.reports.SumByCurrency(stdCtx, code))
}

// @Summary Department-specific business report
// @Tags reports
// @Router /bookingservice/bookings/dobusiness/{department} [get]
func (h *ReportHandler) DoBusiness(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.reports.DoBusiness(stdCtx, pathParam(ctx, "department"))
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}
