package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/bookingservice/api/handler"
	"github.com/fastygo/bookingservice/internal/config"
	"github.com/fastygo/bookingservice/internal/infrastructure/monitor"
	"github.com/fastygo/bookingservice/internal/middleware"
	"github.com/fastygo/bookingservice/internal/router"
	"github.com/fastygo/bookingservice/internal/services/lifecycle"
	"github.com/fastygo/bookingservice/pkg/httpcontext"
	"github.com/fastygo/bookingservice/pkg/logger"
	"github.com/fastygo/bookingservice/repository/memory"
	bookingUC "github.com/fastygo/bookingservice/usecase/booking"
	queryUC "github.com/fastygo/bookingservice/usecase/query"
	reportUC "github.com/fastygo/bookingservice/usecase/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		AppName:  cfg.AppName,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen()

	bookingRepo := memory.NewBookingRepository()

	bookingUseCase := bookingUC.New(bookingRepo, zapLogger)
	queryUseCase := queryUC.New(bookingRepo, zapLogger)
	reportUseCase := reportUC.New(queryUseCase, cfg.Report.Location, zapLogger)

	mon := monitor.New(bookingRepo, queryUseCase, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Booking: apiHandler.NewBookingHandler(bookingUseCase, queryUseCase, ctxAdapter, zapLogger),
		Report:  apiHandler.NewReportHandler(queryUseCase, reportUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}
	r := router.New(handlers, middleware.AccessLog(zapLogger))

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	manager.Go("http_server", func() error {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("environment", cfg.Environment),
			zap.String("display_timezone", cfg.Report.Location.String()))
		return server.ListenAndServe(cfg.Address())
	})
	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	manager.Wait()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
	if err := manager.Err(); err != nil {
		zapLogger.Fatal("service stopped with error", zap.Error(err))
	}
}
