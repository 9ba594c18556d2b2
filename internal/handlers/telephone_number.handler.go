package handlers

import (
	"context"
	"strconv"

	"github.com/nimasrn/customer-billing/internal/model"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
)

type TelephoneNumberService interface {
	Create(ctx context.Context, req model.TelephoneNumberCreateRequest) (*model.TelephoneNumberResponse, error)
	Get(ctx context.Context, id int64) (*model.TelephoneNumberResponse, error)
	List(ctx context.Context) ([]model.TelephoneNumberResponse, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.TelephoneNumberResponse, error)
	Update(ctx context.Context, id int64, req model.TelephoneNumberDetailsRequest) (*model.TelephoneNumberResponse, error)
	Delete(ctx context.Context, id int64) error
}

type TelephoneNumberHandler struct {
	svc TelephoneNumberService
}

func RegisterTelephoneNumberRoutes(e Routes, h *TelephoneNumberHandler) {
	e.POST("/telephone-numbers", h.CreateTelephoneNumber)
	e.GET("/telephone-numbers", h.ListTelephoneNumbers)
	e.GET("/telephone-numbers/{id}", h.GetTelephoneNumber)
	e.PUT("/telephone-numbers/{id}", h.UpdateTelephoneNumber)
	e.DELETE("/telephone-numbers/{id}", h.DeleteTelephoneNumber)
	e.GET("/customers/{id}/telephone-numbers", h.ListCustomerTelephoneNumbers)
}

func NewTelephoneNumberHandler(svc TelephoneNumberService) *TelephoneNumberHandler {
	return &TelephoneNumberHandler{
		svc: svc,
	}
}

func (h *TelephoneNumberHandler) CreateTelephoneNumber(ctx *xhttp.RequestCtx) {
	var req model.TelephoneNumberCreateRequest
	if err := readJSON(ctx, &req); err != nil {
		writeServiceError(ctx, err)
		return
	}
	p, err := h.svc.Create(ctx, req)
	if err != nil {
		writeCreateError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, p)
}

func (h *TelephoneNumberHandler) ListTelephoneNumbers(ctx *xhttp.RequestCtx) {
	items, err := h.svc.List(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, items)
}

func (h *TelephoneNumberHandler) ListCustomerTelephoneNumbers(ctx *xhttp.RequestCtx) {
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

func (h *TelephoneNumberHandler) GetTelephoneNumber(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	p, err := h.svc.Get(ctx, id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, p)
}

func (h *TelephoneNumberHandler) UpdateTelephoneNumber(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	var req model.TelephoneNumberDetailsRequest
	if err := readJSON(ctx, &req); err != nil {
		writeServiceError(ctx, err)
		return
	}
	p, err := h.svc.Update(ctx, id, req)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, p)
}

func (h *TelephoneNumberHandler) DeleteTelephoneNumber(ctx *xhttp.RequestCtx) {
	id, err := pathID(ctx)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, messageResponse{Message: "Telephone number " + strconv.FormatInt(id, 10) + " deleted."})
}
