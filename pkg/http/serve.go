package xhttp

import (
	"context"
	"errors"
	"net"
	"reflect"
	"runtime"
	"time"

	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/valyala/fasthttp"
)

type Server = fasthttp.Server

// ServerOption is the part of the listener the binaries configure.
// Zero fields fall back to DefaultServerOption.
type ServerOption struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// ReadBufferSize also caps the request header size.
	ReadBufferSize     int
	WriteBufferSize    int
	MaxRequestBodySize int
	Concurrency        int
}

var DefaultServerOption = ServerOption{
	ReadTimeout:        2500 * time.Millisecond,
	WriteTimeout:       2500 * time.Millisecond,
	IdleTimeout:        10 * time.Second, // idle keep-alives are the first to exhaust open files
	ShutdownTimeout:    10 * time.Second,
	ReadBufferSize:     4 * 1024,
	WriteBufferSize:    4 * 1024,
	MaxRequestBodySize: 4 * 1024 * 1024,
	Concurrency:        30_000,
}

func (o ServerOption) withDefaults() ServerOption {
	d := DefaultServerOption
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = d.ReadTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = d.WriteTimeout
	}
	if o.IdleTimeout <= 0 {
		o.IdleTimeout = d.IdleTimeout
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = d.ShutdownTimeout
	}
	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = d.ReadBufferSize
	}
	if o.WriteBufferSize <= 0 {
		o.WriteBufferSize = d.WriteBufferSize
	}
	if o.MaxRequestBodySize <= 0 {
		o.MaxRequestBodySize = d.MaxRequestBodySize
	}
	if o.Concurrency <= 0 {
		o.Concurrency = d.Concurrency
	}
	return o
}

type Engine struct {
	*Router
	*Server
	option ServerOption
	middle []MiddlewareFunc
}

func newServer(o ServerOption) *fasthttp.Server {
	return &fasthttp.Server{
		Handler:                      NotFoundHandler,
		ErrorHandler:                 readErrorHandler,
		Concurrency:                  o.Concurrency,
		ReadBufferSize:               o.ReadBufferSize,
		WriteBufferSize:              o.WriteBufferSize,
		ReadTimeout:                  o.ReadTimeout,
		WriteTimeout:                 o.WriteTimeout,
		IdleTimeout:                  o.IdleTimeout,
		MaxRequestBodySize:           o.MaxRequestBodySize,
		TCPKeepalive:                 true,
		DisablePreParseMultipartForm: true,
		NoDefaultServerHeader:        true,
		NoDefaultDate:                true,
		NoDefaultContentType:         true,
		CloseOnShutdown:              true,
		Logger:                       logger.GetLogger(),
	}
}

// readErrorHandler answers requests fasthttp could not parse.
func readErrorHandler(ctx *RequestCtx, err error) {
	status := StatusBadRequest
	if errors.Is(err, fasthttp.ErrBodyTooLarge) {
		status = StatusRequestEntityTooLarge
	}
	logger.Warn("[xhttp] unreadable request", "error", err, "status", status)
	WriteError(ctx, status, "The request could not be read.")
}

// NewServer builds an engine with the default router and o's limits.
func NewServer(o ServerOption) *Engine {
	o = o.withDefaults()
	return &Engine{
		Server: newServer(o),
		Router: CreateDefaultRouter(),
		option: o,
	}
}

func CreateServer() *Engine {
	return NewServer(DefaultServerOption)
}

// DoRouting installs the router behind the middleware chain. The first
// middleware passed to Use is the outermost. Calling it again rebuilds the
// chain from scratch.
func (e *Engine) DoRouting() error {
	for method, route := range e.Router.List() {
		for _, r := range route {
			e.Server.Logger.Printf("[xhttp] method: %s, path: %s", method, r)
		}
	}

	h := RequestHandler(e.Router.Handler)
	for i := len(e.middle) - 1; i >= 0; i-- {
		h = e.middle[i](h)
	}
	for i, m := range e.middle {
		e.Server.Logger.Printf("[xhttp] middleware %d registered - %s", i+1, runtime.FuncForPC(reflect.ValueOf(m).Pointer()).Name())
	}
	e.Server.Handler = h
	return nil
}

// Use appends middleware to the chain run for every request.
//
//	s.Use(xhttp.RequestIDMiddleware)
//	s.Use(xhttp.RecoverMiddleware)
func (e *Engine) Use(middleware MiddlewareFunc) {
	e.middle = append(e.middle, middleware)
}

func (e *Engine) ListenAndServe(addr string) error {
	if err := e.DoRouting(); err != nil {
		return err
	}
	e.Server.Logger.Printf("[xhttp] server is listening on %s", addr)
	return e.Server.ListenAndServe(addr)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (e *Engine) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return e.RunListener(ctx, ln)
}

// RunListener is Run on an already open listener. A serve error is returned
// as is; a done ctx yields the shutdown result.
func (e *Engine) RunListener(ctx context.Context, ln net.Listener) error {
	if err := e.DoRouting(); err != nil {
		return err
	}
	e.Server.Logger.Printf("[xhttp] server is listening on %s", ln.Addr())

	served := make(chan error, 1)
	go func() { served <- e.Server.Serve(ln) }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), e.option.ShutdownTimeout)
	defer cancel()
	err := e.Shutdown(shutdownCtx)
	// Serve may not have registered ln yet
	_ = ln.Close()
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.Server.Logger.Printf("[xhttp] server is shutting down, closing all connections..")
	if err := e.Server.ShutdownWithContext(ctx); err != nil {
		logger.Error("[xhttp] error while shutting down", "error", err)
		return err
	}
	return nil
}
