package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nimasrn/customer-billing/internal/config"
	"github.com/nimasrn/customer-billing/internal/handlers"
	"github.com/nimasrn/customer-billing/internal/repository"
	"github.com/nimasrn/customer-billing/internal/services"
	"github.com/nimasrn/customer-billing/internal/validate"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"github.com/nimasrn/customer-billing/pkg/prom"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	cfg := config.Get()
	logger.SetLevel(cfg.LogLevel)
	logger.Info("starting api", "version", version, "commit", commit, "date", date, "env", cfg.AppEnv)

	if cfg.AppDebugMetricsAddr != "" {
		host, _ := os.Hostname()
		if err := prom.Create(host, cfg.AppEnv, cfg.PromNamespace); err != nil {
			logger.Error("failed creating metrics", "error", err)
			return
		}
		go prom.ListenAndServer(cfg.AppDebugMetricsAddr, cfg.AppDebugMetricsURI)
	}

	db, err := pg.CreateReadWrite(cfg.ReadPostgres(), cfg.WritePostgres(), cfg.AppDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	// transport
	s := xhttp.NewServer(cfg.HTTPServer())
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.MetricsMiddleware(prom.ObserveRequest))
	s.Use(xhttp.TimeoutMiddleware(cfg.HttpRequestTimeout))
	s.Use(xhttp.CompressMiddleware(6))

	// repositories
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	phoneRepo := repository.NewTelephoneNumberRepository(db)

	// services
	v := validate.New(validate.Strategy(cfg.ValidationStrategy))
	limits := services.PageLimits{DefaultSize: cfg.PageSizeDefault, MaxSize: cfg.PageSizeMax}
	customerService := services.NewCustomerService(customerRepo, invoiceRepo, v, limits)
	invoiceService := services.NewInvoiceService(invoiceRepo, customerRepo, v)
	phoneService := services.NewTelephoneNumberService(phoneRepo, customerRepo, v)
	healthService := services.NewHealthService(db)

	// handlers
	handlers.RegisterCustomerRoutes(s.Router, handlers.NewCustomerHandler(customerService))
	handlers.RegisterInvoiceRoutes(s.Router, handlers.NewInvoiceHandler(invoiceService))
	handlers.RegisterTelephoneNumberRoutes(s.Router, handlers.NewTelephoneNumberHandler(phoneService))
	handlers.RegisterHealthRoutes(s.Router, handlers.NewHealthHandler(healthService))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx, cfg.HttpListenAddr); err != nil {
		logger.Error("error in running http-server", "error", err)
		return
	}
	logger.Info("api stopped")
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.HasPrefix(v, "--env=") {
			path := strings.TrimPrefix(v, "--env=")
			if _, err := os.Stat(path); err != nil {
				logger.Error("failed to open the passed env file", "error", err)
				return ""
			}
			return path
		}
	}
	return ""
}
