package services

import (
	"errors"
	"fmt"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/internal/repository"
	"github.com/nimasrn/customer-billing/internal/validate"
	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/nimasrn/customer-billing/pkg/prom"
)

// metric label values
const (
	entityCustomer        = "customer"
	entityInvoice         = "invoice"
	entityTelephoneNumber = "telephone_number"
)

func validationFailed(entity string, errs validate.Errors) error {
	prom.AddValidationFailure(entity)
	return model.NewValidationError(errs)
}

func conflict(entity, msg string) error {
	prom.AddConflict(entity)
	logger.Debug("[services] conflict", "entity", entity, "message", msg)
	return model.NewConflictError("%s", msg)
}

// storeConflict turns a unique-index rejection that slipped past the
// pre-check into the conflict the pre-check would have reported.
func storeConflict(err error, entity, msg string) error {
	if errors.Is(err, repository.ErrUniqueViolation) {
		return conflict(entity, msg)
	}
	return err
}

// storeMissingCustomer reports a child write rejected because its customer
// was deleted after the existence check.
func storeMissingCustomer(err error, customerID int64) error {
	if errors.Is(err, repository.ErrForeignKeyViolation) {
		return customerMissing(customerID)
	}
	return err
}

func customerMissing(id int64) error {
	return model.NewNotFoundError("Customer with id %d not found.", id)
}

func emailTaken(email string) string {
	return fmt.Sprintf("A customer with email '%s' already exists.", email)
}

func invoiceNumberTaken(number string) string {
	return fmt.Sprintf("An invoice with number '%s' already exists.", number)
}
