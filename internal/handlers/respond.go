package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/nimasrn/customer-billing/internal/model"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/valyala/fasthttp"
)

const msgUnexpected = xhttp.MsgUnexpected

// Routes is satisfied by both *router.Router and *router.Group.
type Routes interface {
	GET(path string, handler fasthttp.RequestHandler)
	POST(path string, handler fasthttp.RequestHandler)
	PUT(path string, handler fasthttp.RequestHandler)
	DELETE(path string, handler fasthttp.RequestHandler)
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

// readJSON decodes the body into dst. Property names match case-insensitively.
// An empty body, a JSON null and broken JSON are all malformed requests.
func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := bytes.TrimSpace(ctx.PostBody())
	if len(body) == 0 {
		return model.NewMalformedRequestError("Request body is required.", nil)
	}
	if bytes.Equal(body, []byte("null")) {
		return model.NewMalformedRequestError("Request body must be a JSON object.", nil)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return model.NewMalformedRequestError("Invalid JSON: "+err.Error(), err)
	}
	return nil
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("[handlers] encode response", "error", err, "request_id", xhttp.RequestID(ctx))
		status = xhttp.StatusInternalServerError
		b = []byte(`{"error":"` + msgUnexpected + `"}`)
	}
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, errorResponse{Error: msg})
}

// writeServiceError translates an error kind into its HTTP response.
func writeServiceError(ctx *xhttp.RequestCtx, err error) {
	var me *model.Error
	if !errors.As(err, &me) {
		me = model.NewPersistenceError(err, "unclassified failure")
	}

	switch {
	case errors.Is(me, model.ErrValidation):
		writeJSON(ctx, xhttp.StatusBadRequest, validationResponse{Errors: me.Fields})
	case errors.Is(me, model.ErrMalformedRequest):
		writeError(ctx, xhttp.StatusBadRequest, me.Message)
	case errors.Is(me, model.ErrNotFound):
		writeError(ctx, xhttp.StatusNotFound, me.Message)
	case errors.Is(me, model.ErrConflict):
		writeError(ctx, xhttp.StatusConflict, me.Message)
	default:
		logger.Error("[handlers] request failed",
			"error", err,
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"request_id", xhttp.RequestID(ctx),
		)
		writeError(ctx, xhttp.StatusInternalServerError, msgUnexpected)
	}
}

// writeCreateError is writeServiceError for dependent creates, where a
// missing referenced customer is the caller's mistake rather than a 404.
func writeCreateError(ctx *xhttp.RequestCtx, err error) {
	var me *model.Error
	if errors.As(err, &me) && errors.Is(me, model.ErrNotFound) {
		writeError(ctx, xhttp.StatusBadRequest, me.Message)
		return
	}
	writeServiceError(ctx, err)
}

// pathID reads the {id} route parameter.
func pathID(ctx *xhttp.RequestCtx) (int64, error) {
	raw := ctx.UserValue("id")
	s, _ := raw.(string)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewMalformedRequestError("Invalid id '"+s+"'.", err)
	}
	return id, nil
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

func hasQuery(ctx *xhttp.RequestCtx, keys ...string) bool {
	for _, k := range keys {
		if ctx.QueryArgs().Has(k) {
			return true
		}
	}
	return false
}
