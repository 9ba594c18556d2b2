package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nimasrn/customer-billing/internal/config"
	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/internal/repository"
	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"github.com/nimasrn/customer-billing/pkg/worker"
	"github.com/shopspring/decimal"
)

// main.go --env=.env [--dir=./migrations] [--seed=20]
func main() {
	err := config.Load(getEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Get()
	logger.SetLevel(cfg.LogLevel)

	dir := getArg("--dir=", cfg.MigrationsDir)
	if err = pg.Migrate(cfg.WritePostgres(), dir); err != nil {
		logger.Error("migration: error running migrations", "error", err)
		os.Exit(1)
	}

	n, err := strconv.Atoi(getArg("--seed=", "0"))
	if err != nil || n <= 0 {
		return
	}
	if err = seed(cfg.WritePostgres(), n); err != nil {
		logger.Error("seed: failed", "error", err)
		os.Exit(1)
	}
}

// seed creates n demo customers, each with one invoice and one mobile number.
// Customers that already exist are skipped, so seeding can be re-run.
func seed(cfg pg.Config, n int) error {
	gdb, err := pg.Create(cfg, false)
	if err != nil {
		return err
	}
	repo := repository.NewCustomerRepository(pg.Wrap(gdb))

	workers := cfg.MaxOpenConns
	if workers < 1 || workers > 8 {
		workers = 8
	}
	w := worker.NewWorkerManager(n, workers, func(ctx context.Context, _ int, i int) error {
		return seedCustomer(ctx, repo, i)
	})
	w.Start(context.Background())
	for i := 1; i <= n; i++ {
		if err := w.Enqueue(i); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("seed: done", "customers", n)
	return nil
}

func seedCustomer(ctx context.Context, repo *repository.CustomerRepository, i int) error {
	email := fmt.Sprintf("customer%03d@example.com", i)
	exists, err := repo.EmailExists(ctx, email, nil)
	if err != nil || exists {
		return err
	}
	_, err = repo.Create(ctx, &model.Customer{
		Name:  fmt.Sprintf("Customer %03d", i),
		Email: email,
		Invoices: []*model.Invoice{{
			InvoiceNumber: fmt.Sprintf("INV-SEED-%03d", i),
			InvoiceDate:   model.NewDate(2024, 1, 1),
			Amount:        decimal.NewFromInt(int64(i * 10)),
		}},
		PhoneNumbers: []*model.TelephoneNumber{{
			Type:   model.PhoneTypeMobile,
			Number: fmt.Sprintf("07700%06d", i),
		}},
	})
	return err
}

func getEnvPath() string {
	path := getArg("--env=", "")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		logger.Warn("env file not found, using process environment", "path", path)
		return ""
	}
	return path
}

func getArg(prefix, def string) string {
	for _, v := range os.Args[1:] {
		if strings.HasPrefix(v, prefix) {
			return strings.TrimPrefix(v, prefix)
		}
	}
	return def
}
