package xhttp

import (
	"encoding/json"

	"github.com/fasthttp/router"
)

type Router = router.Router

// NewRouter returns a new Router
func NewRouter() *Router {
	return router.New()
}

// CreateDefaultRouter returns a router whose unmatched paths and methods
// answer with the same JSON error body as the handlers.
func CreateDefaultRouter() *Router {
	r := NewRouter()
	r.RedirectFixedPath = true
	r.RedirectTrailingSlash = true
	r.SaveMatchedRoutePath = true
	r.NotFound = NotFoundHandler
	r.MethodNotAllowed = MethodNotAllowedHandler
	r.HandleOPTIONS = false
	r.HandleMethodNotAllowed = true
	return r
}

const (
	MsgNotFound         = "Resource not found."
	MsgMethodNotAllowed = "Method not allowed."
	MsgUnexpected       = "An unexpected error occurred."
)

func NotFoundHandler(ctx *RequestCtx) {
	WriteError(ctx, StatusNotFound, MsgNotFound)
}

func MethodNotAllowedHandler(ctx *RequestCtx) {
	WriteError(ctx, StatusMethodNotAllowed, MsgMethodNotAllowed)
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteError replaces the response body with {"error": msg}. Headers
// already set, such as the request id, are kept.
func WriteError(ctx *RequestCtx, status int, msg string) {
	b, _ := json.Marshal(errorBody{Error: msg})
	ctx.Response.ResetBody()
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}
