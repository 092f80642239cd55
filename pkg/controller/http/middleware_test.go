package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/blockrelay/pkg/controller/http"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	var inner *slog.Logger
	handler := middleware.RequestID(controller.LoggingMiddleware(ctx)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inner = ctxlog.From(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}),
	))

	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusTeapot)
	gt.V(t, inner).NotNil()

	out := buf.String()
	gt.S(t, out).Contains(`"msg":"HTTP request"`)
	gt.S(t, out).Contains(`"path":"/add"`)
	gt.S(t, out).Contains(`"status":418`)
	gt.S(t, out).Contains(`"request_id"`)
}
