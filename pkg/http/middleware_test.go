package xhttp

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(func(ctx *RequestCtx) {
		seen = RequestID(ctx)
	})

	t.Run("mints an id", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		h(ctx)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, string(ctx.Response.Header.Peek(HeaderRequestID)))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.Set(HeaderRequestID, "abc-123")
		h(ctx)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", string(ctx.Response.Header.Peek(HeaderRequestID)))
	})
}

func TestMetricsMiddleware(t *testing.T) {
	var (
		method string
		status int
		calls  int
	)
	observe := func(m string, s int, _ time.Duration) {
		method, status = m, s
		calls++
	}
	h := MetricsMiddleware(observe)(func(ctx *RequestCtx) {
		ctx.SetStatusCode(StatusCreated)
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod("POST")
	ctx.Request.SetRequestURI("/customers")
	h(ctx)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "POST", method)
	assert.Equal(t, StatusCreated, status)

	ctx = &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/health")
	h(ctx)
	assert.Equal(t, 1, calls, "health checks are not measured")
}

func TestRecoverMiddleware(t *testing.T) {
	h := RequestIDMiddleware(RecoverMiddleware(func(ctx *RequestCtx) {
		ctx.SetBodyString("partial")
		panic("boom")
	}))

	ctx := &fasthttp.RequestCtx{}
	assert.NotPanics(t, func() { h(ctx) })
	assert.Equal(t, StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"An unexpected error occurred."}`, string(ctx.Response.Body()))
	assert.NotEmpty(t, ctx.Response.Header.Peek(HeaderRequestID))
}

func TestDefaultRouter_Fallbacks(t *testing.T) {
	r := CreateDefaultRouter()
	r.GET("/customers", func(ctx *RequestCtx) { ctx.SetStatusCode(StatusOK) })

	t.Run("unknown path", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.SetRequestURI("/nowhere")
		r.Handler(ctx)

		assert.Equal(t, StatusNotFound, ctx.Response.StatusCode())
		assert.Equal(t, "application/json; charset=utf-8", string(ctx.Response.Header.ContentType()))
		assert.JSONEq(t, `{"error":"Resource not found."}`, string(ctx.Response.Body()))
	})

	t.Run("wrong method", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod("DELETE")
		ctx.Request.SetRequestURI("/customers")
		r.Handler(ctx)

		assert.Equal(t, StatusMethodNotAllowed, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"error":"Method not allowed."}`, string(ctx.Response.Body()))
	})
}
