package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	*pg.DB
}

func NewCustomerRepository(db *pg.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

// Create inserts the customer and any attached invoices and telephone
// numbers as one unit. Children get the new customer's id.
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(c)
	invoices := toInvoiceEntities(c.Invoices)
	phones := toTelephoneNumberEntities(c.PhoneNumbers)

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
			return err
		}

		for _, inv := range invoices {
			inv.CustomerID = entity.ID
		}
		if len(invoices) > 0 {
			if err := r.Write(ctx).Create(&invoices).Error; err != nil {
				return err
			}
		}

		for _, p := range phones {
			p.CustomerID = entity.ID
		}
		if len(phones) > 0 {
			if err := r.Write(ctx).Create(&phones).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, persistenceError(err, "create customer")
	}

	entity.Invoices = invoices
	entity.PhoneNumbers = phones
	return toCustomerModel(entity, model.ShapeWithRelations), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64, shape model.LoadShape) (*model.Customer, error) {
	var entity CustomerEntity
	err := withShape(r.Read(ctx), shape).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, persistenceError(err, "get customer")
	}
	return toCustomerModel(&entity, shape), nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string, shape model.LoadShape) (*model.Customer, error) {
	var entity CustomerEntity
	err := withShape(r.Read(ctx), shape).Where("email = ?", email).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, persistenceError(err, "get customer by email")
	}
	return toCustomerModel(&entity, shape), nil
}

func (r *CustomerRepository) GetAll(ctx context.Context, shape model.LoadShape) ([]*model.Customer, error) {
	var entities []*CustomerEntity
	if err := withShape(r.Read(ctx), shape).Order("id ASC").Find(&entities).Error; err != nil {
		return nil, persistenceError(err, "list customers")
	}
	return toCustomerModels(entities, shape), nil
}

// GetPaged returns one page ordered by id and the total number of customers.
// page is 1-based.
func (r *CustomerRepository) GetPaged(ctx context.Context, page, pageSize int, shape model.LoadShape) ([]*model.Customer, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, ErrInvalidPage
	}

	var total int64
	if err := r.Read(ctx).Model(&CustomerEntity{}).Count(&total).Error; err != nil {
		return nil, 0, persistenceError(err, "count customers")
	}

	var entities []*CustomerEntity
	err := withShape(r.Read(ctx), shape).
		Order("id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&entities).Error
	if err != nil {
		return nil, 0, persistenceError(err, "page customers")
	}

	return toCustomerModels(entities, shape), total, nil
}

// Search matches name and email as case-insensitive substrings and filters
// on the invoice total computed in the same query. Absent criteria are ignored.
func (r *CustomerRepository) Search(ctx context.Context, s model.CustomerSearch, shape model.LoadShape) ([]*model.Customer, error) {
	q := withShape(r.Read(ctx), shape).Model(&CustomerEntity{})

	if s.Name != nil && *s.Name != "" {
		q = q.Where(`LOWER(customers.name) LIKE ? ESCAPE '\'`, likeContains(*s.Name))
	}
	if s.Email != nil && *s.Email != "" {
		q = q.Where(`LOWER(customers.email) LIKE ? ESCAPE '\'`, likeContains(*s.Email))
	}
	if s.MinBalance != nil {
		q = q.Where(`COALESCE((SELECT SUM(invoices.amount) FROM invoices WHERE invoices.customer_id = customers.id), 0) >= CAST(? AS NUMERIC)`,
			s.MinBalance.String())
	}

	var entities []*CustomerEntity
	if err := q.Order("customers.id ASC").Find(&entities).Error; err != nil {
		return nil, persistenceError(err, "search customers")
	}
	return toCustomerModels(entities, shape), nil
}

// Update rewrites name and email. Child collections are left alone.
func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	res := r.Write(ctx).
		Model(&CustomerEntity{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":  c.Name,
			"email": c.Email,
		})
	if res.Error != nil {
		return nil, persistenceError(res.Error, "update customer")
	}
	if res.RowsAffected == 0 {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// Delete removes the customer with its invoices and telephone numbers. It
// reports false when no customer had that id.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).Where("customer_id = ?", id).Delete(&InvoiceEntity{}).Error; err != nil {
			return err
		}
		if err := r.Write(ctx).Where("customer_id = ?", id).Delete(&TelephoneNumberEntity{}).Error; err != nil {
			return err
		}
		res := r.Write(ctx).Where("id = ?", id).Delete(&CustomerEntity{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, persistenceError(err, "delete customer")
	}
	return deleted, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.Read(ctx).Model(&CustomerEntity{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, persistenceError(err, "check customer")
	}
	return count > 0, nil
}

// EmailExists reports whether another customer already uses email. The
// customer named by excludeID is not counted, so an update can keep its own.
func (r *CustomerRepository) EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error) {
	q := r.Read(ctx).Model(&CustomerEntity{}).Where("email = ?", email)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, persistenceError(err, "check customer email")
	}
	return count > 0, nil
}

func withShape(q *gorm.DB, shape model.LoadShape) *gorm.DB {
	if shape != model.ShapeWithRelations {
		return q
	}
	byID := func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}
	return q.Preload("Invoices", byID).Preload("PhoneNumbers", byID)
}
