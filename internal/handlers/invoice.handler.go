package handlers

import (
	"context"
	"strconv"

	"github.com/nimasrn/customer-billing/internal/model"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
)

type InvoiceService interface {
	Create(ctx context.Context, req model.InvoiceCreateRequest) (*model.InvoiceResponse, error)
	Get(ctx context.Context, id int64) (*model.InvoiceResponse, error)
	List(ctx context.Context) ([]model.InvoiceResponse, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.InvoiceResponse, error)
	Update(ctx context.Context, id int64, req model.InvoiceDetailsRequest) (*model.InvoiceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type InvoiceHandler struct {
	svc InvoiceService
}

func RegisterInvoiceRoutes(e Routes, h *InvoiceHandler) {
	e.POST("/invoices", h.CreateInvoice)
	e.GET("/invoices", h.ListInvoices)
	e.GET("/invoices/{id}", h.GetInvoice)
	e.PUT("/invoices/{id}", h.UpdateInvoice)
	e.DELETE("/invoices/{id}", h.DeleteInvoice)
	e.GET("/customers/{id}/invoices", h.ListCustomerInvoices)
}

func NewInvoiceHandler(invoiceService InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		svc: invoiceService,
	}
}

func (h *InvoiceHandler) CreateInvoice(ctx *xhttp.RequestCtx) {
	var req model.InvoiceCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeServiceError(ctx, err)
		return
	}
	inv, err := h.svc.Create(ctx, req)
	if err != nil {
		writeCreateError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, inv)
}

func (h *InvoiceHandler) ListInvoices(ctx *xhttp.RequestCtx) {
	items, err := h.svc.List(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, items)
}

func (h *InvoiceHandler) ListCustomerInvoices(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	items, err := h.svc.ListByCustomer(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, items)
}

func (h *InvoiceHandler) GetInvoice(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	inv, err := h.svc.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, inv)
}

func (h *InvoiceHandler) UpdateInvoice(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	var req model.InvoiceDetailsRequest
	if err := readJSON(ctx, &req); err != nil {
		writeServiceError(ctx, err)
		return
	}
	inv, err := h.svc.Update(ctx, id, req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, inv)
}

func (h *InvoiceHandler) DeleteInvoice(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "Invoice " + strconv.FormatInt(id, 10) + " deleted."})
}
