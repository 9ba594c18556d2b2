package xhttp

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/valyala/fasthttp"
)

const slowThreshold = 500 * time.Millisecond

var skipPaths = []string{"/health", "/metrics"}

type MiddlewareFunc func(next RequestHandler) RequestHandler
type RequestCtx = fasthttp.RequestCtx
type RequestHandler = fasthttp.RequestHandler

func TimeoutMiddleware(timeout time.Duration) MiddlewareFunc {
	return func(next RequestHandler) RequestHandler {
		return fasthttp.TimeoutWithCodeHandler(next, timeout, StatusText(StatusRequestTimeout), StatusRequestTimeout)
	}
}

func CompressMiddleware(level int) MiddlewareFunc {
	return func(next RequestHandler) RequestHandler {
		return fasthttp.CompressHandlerBrotliLevel(next, level, level)
	}
}

func RecoverMiddleware(next RequestHandler) RequestHandler {
	return func(ctx *RequestCtx) {
		defer func() {
			if err := recover(); err != nil {
				WriteError(ctx, StatusInternalServerError, MsgUnexpected)
				logger.Error("[xhttp] panic recovered", "error", err, "path", string(ctx.Path()), "request_id", RequestID(ctx))
			}
		}()
		next(ctx)
	}
}

const HeaderRequestID = "X-Request-Id"

// UserValueRequestID is the ctx user value holding the request id.
const UserValueRequestID = "request_id"

// RequestIDMiddleware keeps an incoming X-Request-Id or mints one, and echoes
// it on the response.
func RequestIDMiddleware(next RequestHandler) RequestHandler {
	return func(ctx *RequestCtx) {
		rid := requestID(ctx)
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.SetUserValue(UserValueRequestID, rid)
		ctx.Response.Header.Set(HeaderRequestID, rid)
		next(ctx)
	}
}

// MetricsMiddleware reports every request that is not on a skip path.
func MetricsMiddleware(observe func(method string, status int, elapsed time.Duration)) MiddlewareFunc {
	return func(next RequestHandler) RequestHandler {
		return func(ctx *RequestCtx) {
			if shouldSkip(string(ctx.Path())) {
				next(ctx)
				return
			}
			start := time.Now()
			next(ctx)
			observe(string(ctx.Method()), ctx.Response.StatusCode(), time.Since(start))
		}
	}
}

func RequestLoggerMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		if shouldSkip(path) {
			next(ctx)
			return
		}

		start := time.Now()
		next(ctx)

		latency := time.Since(start)
		status := ctx.Response.StatusCode()
		fields := []any{
			"status", status,
			"method", string(ctx.Method()),
			"path", path,
			"latency", latency.String(),
			"bytes_in", len(ctx.PostBody()),
			"bytes_out", len(ctx.Response.Body()),
			"ip", ctx.RemoteIP().String(),
			"ua", string(ctx.Request.Header.UserAgent()),
			"request_id", RequestID(ctx),
		}

		lg := logger.GetLogger()

		switch {
		case status >= 500:
			lg.Error("http_request", fields...)
		case status >= 400 || latency > slowThreshold:
			lg.Warn("http_request", fields...)
		default:
			lg.Info("http_request", fields...)
		}
	}
}

func shouldSkip(p string) bool {
	for _, sp := range skipPaths {
		if strings.HasPrefix(p, sp) {
			return true
		}
	}
	return false
}

// RequestID returns the id assigned by RequestIDMiddleware, falling back to
// the request header.
func RequestID(ctx *RequestCtx) string {
	if v, ok := ctx.UserValue(UserValueRequestID).(string); ok {
		return v
	}
	return requestID(ctx)
}

func requestID(ctx *fasthttp.RequestCtx) string {
	if v := ctx.Request.Header.Peek(HeaderRequestID); len(v) > 0 {
		return string(v)
	}
	return ""
}
