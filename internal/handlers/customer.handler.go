package handlers

import (
	"context"
	"strconv"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/internal/validate"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
	"github.com/shopspring/decimal"
)

type CustomerService interface {
	Create(ctx context.Context, req model.CustomerCreateRequest) (*model.CustomerResponse, error)
	Get(ctx context.Context, id int64) (*model.CustomerResponse, error)
	List(ctx context.Context) ([]model.CustomerResponse, error)
	Page(ctx context.Context, page int, pageSize *int) (*model.CustomerPage, error)
	Search(ctx context.Context, criteria model.CustomerSearch) ([]model.CustomerResponse, error)
	Update(ctx context.Context, id int64, req model.CustomerUpdateRequest) (*model.CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerHandler struct {
	svc CustomerService
}

func RegisterCustomerRoutes(e Routes, h *CustomerHandler) {
	e.POST("/customers", h.CreateCustomer)
	e.GET("/customers", h.ListCustomers)
	e.GET("/customers/{id}", h.GetCustomer)
	e.PUT("/customers/{id}", h.UpdateCustomer)
	e.DELETE("/customers/{id}", h.DeleteCustomer)
}

func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{
		svc: customerService,
	}
}

func (h *CustomerHandler) CreateCustomer(ctx *xhttp.RequestCtx) {
	var req model.CustomerCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeServiceError(ctx, err)
		return
	}
	c, err := h.svc.Create(ctx, req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, c)
}

// ListCustomers serves three reads on one path: a page when page or pageSize
// is given, a search when name, email or minBalance is given, else everything.
func (h *CustomerHandler) ListCustomers(ctx *xhttp.RequestCtx) {
	switch {
	case hasQuery(ctx, "page", "pageSize"):
		h.pageCustomers(ctx)
	case hasQuery(ctx, "name", "email", "minBalance"):
		h.searchCustomers(ctx)
	default:
		items, err := h.svc.List(ctx)
		if err != nil {
			writeServiceError(ctx, err)
			return
		}
		writeJSON(ctx, xhttp.StatusOK, items)
	}
}

func (h *CustomerHandler) pageCustomers(ctx *xhttp.RequestCtx) {
	errs := validate.Errors{}
	page := intQuery(ctx, "page", 1, errs)
	var pageSize *int
	if v := query(ctx, "pageSize"); v != "" {
		n := intQuery(ctx, "pageSize", 0, errs)
		pageSize = &n
	}
	if !errs.Empty() {
		writeServiceError(ctx, model.NewValidationError(errs))
		return
	}

	p, err := h.svc.Page(ctx, page, pageSize)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, p)
}

func (h *CustomerHandler) searchCustomers(ctx *xhttp.RequestCtx) {
	var criteria model.CustomerSearch
	if v := query(ctx, "name"); v != "" {
		criteria.Name = &v
	}
	if v := query(ctx, "email"); v != "" {
		criteria.Email = &v
	}
	if v := query(ctx, "minBalance"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			writeServiceError(ctx, model.NewValidationError(validate.Errors{"minBalance": {"must be a decimal number"}}))
			return
		}
		criteria.MinBalance = &d
	}

	items, err := h.svc.Search(ctx, criteria)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, items)
}

func (h *CustomerHandler) GetCustomer(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	c, err := h.svc.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, c)
}

func (h *CustomerHandler) UpdateCustomer(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	var req model.CustomerUpdateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeServiceError(ctx, err)
		return
	}
	c, err := h.svc.Update(ctx, id, req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, c)
}

func (h *CustomerHandler) DeleteCustomer(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "Customer " + strconv.FormatInt(id, 10) + " deleted."})
}

func intQuery(ctx *xhttp.RequestCtx, key string, def int, errs validate.Errors) int {
	v := query(ctx, key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		errs.Add(key, "must be an integer")
		return def
	}
	return n
}
