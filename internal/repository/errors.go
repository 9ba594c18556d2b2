package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nimasrn/customer-billing/internal/model"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound        = model.NewNotFoundError("Customer not found.")
	ErrInvoiceNotFound         = model.NewNotFoundError("Invoice not found.")
	ErrTelephoneNumberNotFound = model.NewNotFoundError("Telephone number not found.")

	// ErrUniqueViolation marks a write the store refused because of a unique index.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrForeignKeyViolation marks a write whose parent row is gone.
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrInvalidPage         = errors.New("page and page size must be greater than zero")
)

// persistenceError wraps a store failure; it never hides the cause.
func persistenceError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		err = fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		err = fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}
	return model.NewPersistenceError(pkgerrors.WithStack(err), op)
}

// likeContains builds a case-insensitive substring pattern for `LIKE ? ESCAPE '\'`.
func likeContains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}
