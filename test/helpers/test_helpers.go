package helpers

import (
	"encoding/json"
	"testing"

	"github.com/nimasrn/customer-billing/internal/handlers"
	"github.com/nimasrn/customer-billing/internal/repository"
	"github.com/nimasrn/customer-billing/internal/services"
	"github.com/nimasrn/customer-billing/internal/validate"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"github.com/nimasrn/customer-billing/pkg/prom"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory sqlite database with the billing
// schema and foreign keys enforced.
func SetupTestDB(t *testing.T) *pg.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), pg.GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&repository.CustomerEntity{},
		&repository.InvoiceEntity{},
		&repository.TelephoneNumberEntity{},
	)
	require.NoError(t, err)

	return pg.Wrap(db)
}

// TestServer runs requests through the same router and middleware chain as
// the api binary, without a listener.
type TestServer struct {
	handler fasthttp.RequestHandler
}

func NewTestServer(t *testing.T, db *pg.DB, strategy validate.Strategy) *TestServer {
	t.Helper()
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	phoneRepo := repository.NewTelephoneNumberRepository(db)

	v := validate.New(strategy)
	customerService := services.NewCustomerService(customerRepo, invoiceRepo, v, services.DefaultPageLimits)
	invoiceService := services.NewInvoiceService(invoiceRepo, customerRepo, v)
	phoneService := services.NewTelephoneNumberService(phoneRepo, customerRepo, v)

	s := xhttp.CreateServer()
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.MetricsMiddleware(prom.ObserveRequest))

	handlers.RegisterCustomerRoutes(s.Router, handlers.NewCustomerHandler(customerService))
	handlers.RegisterInvoiceRoutes(s.Router, handlers.NewInvoiceHandler(invoiceService))
	handlers.RegisterTelephoneNumberRoutes(s.Router, handlers.NewTelephoneNumberHandler(phoneService))
	handlers.RegisterHealthRoutes(s.Router, handlers.NewHealthHandler(services.NewHealthService(db)))
	require.NoError(t, s.DoRouting())

	return &TestServer{handler: s.Server.Handler}
}

// Do sends one request and returns the status code and the response body.
// The context is initialised the way the server does it, so ctx.Logger and
// the remote address are usable by handlers and middleware.
func (s *TestServer) Do(method, uri string, body []byte) (int, []byte) {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}
	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	s.handler(&ctx)
	return ctx.Response.StatusCode(), append([]byte(nil), ctx.Response.Body()...)
}

// DoJSON is Do with v marshalled as the request body.
func (s *TestServer) DoJSON(t *testing.T, method, uri string, v any) (int, []byte) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return s.Do(method, uri, b)
}

func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func Ptr[T any](v T) *T {
	return &v
}
