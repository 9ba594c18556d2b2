package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testDB struct {
	*pg.DB
	rawDB *gorm.DB
}

// setupTestDB opens a private in-memory sqlite database. One connection keeps
// every query on the same database.
func setupTestDB(t *testing.T) *testDB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), pg.GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(&CustomerEntity{}, &InvoiceEntity{}, &TelephoneNumberEntity{})
	require.NoError(t, err)

	return &testDB{
		DB:    pg.Wrap(db),
		rawDB: db,
	}
}

func newCustomer(name, email string) *model.Customer {
	return &model.Customer{Name: name, Email: email, Shape: model.ShapeWithRelations}
}

func newInvoice(number string, amount string) *model.Invoice {
	return &model.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   model.NewDate(2024, time.January, 15),
		Amount:        decimal.RequireFromString(amount),
	}
}

func seedCustomers(t *testing.T, repo *CustomerRepository, n int) []*model.Customer {
	ctx := context.Background()
	out := make([]*model.Customer, 0, n)
	for i := 1; i <= n; i++ {
		c, err := repo.Create(ctx, newCustomer(fmt.Sprintf("Customer %02d", i), fmt.Sprintf("customer%02d@example.com", i)))
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}
