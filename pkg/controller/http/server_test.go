package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/blockrelay/pkg/controller/http"
	"github.com/secmon-lab/blockrelay/pkg/domain/interfaces"
	"github.com/secmon-lab/blockrelay/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/blockrelay/pkg/domain/model"
	"github.com/secmon-lab/blockrelay/pkg/domain/types"
	"github.com/secmon-lab/blockrelay/pkg/usecase"
)

// fakeBlocklist records requests and answers with a fixed observation or error
type fakeBlocklist struct {
	obs   model.PageObservation
	err   error
	calls []model.ActionRequest
}

func (f *fakeBlocklist) Execute(ctx context.Context, req model.ActionRequest) (*model.ActionOutcome, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	at := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	return model.NewActionOutcome("0192f0c4-0000-7000-8000-000000000000", req, f.obs, "/login", at), nil
}

func doRequest(t *testing.T, server *controller.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
	return resp
}

func TestServer_Root(t *testing.T) {
	server := controller.NewServer(context.Background(), ":0", &fakeBlocklist{})

	t.Run("root returns ok", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/", "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Body.String(), "ok")
		gt.S(t, w.Header().Get("Content-Type")).Contains("text/plain")
	})

	t.Run("health returns service status", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/health", "")
		gt.Equal(t, w.Code, http.StatusOK)
		resp := decodeBody(t, w)
		gt.Equal(t, resp["status"], "healthy")
		gt.Equal(t, resp["service"], "blockrelay")
	})

	t.Run("GET on action route is not allowed", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/add", "")
		gt.Equal(t, w.Code, http.StatusMethodNotAllowed)
	})
}

func TestServer_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc := &fakeBlocklist{obs: model.PageObservation{
			FinalURL:     "https://panel.example/blocklist?action=add&guid=ABC-123&context=cheating",
			SuccessCount: 1,
		}}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/add", `{"guid":" ABC-123 ","reason":"cheating"}`)
		gt.Equal(t, w.Code, http.StatusOK)

		resp := decodeBody(t, w)
		gt.Equal(t, resp["ok"], true)
		gt.Equal(t, resp["action"], "add")
		gt.Equal(t, resp["guid"], "ABC-123")
		gt.Equal(t, resp["reason"], "cheating")
		gt.Equal(t, resp["successIndicatorFound"], true)
		gt.Equal(t, resp["errorIndicatorFound"], false)
		gt.Equal(t, resp["timestamp"], "2026-10-18T09:30:00.000Z")

		gt.Equal(t, len(uc.calls), 1)
		gt.Equal(t, uc.calls[0].SubjectID, types.SubjectID("ABC-123"))
	})

	t.Run("business failure is still 200", func(t *testing.T) {
		uc := &fakeBlocklist{obs: model.PageObservation{FinalURL: "https://panel.example/login"}}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/add", `{"guid":"ABC-123","reason":"cheating"}`)
		gt.Equal(t, w.Code, http.StatusOK)
		resp := decodeBody(t, w)
		gt.Equal(t, resp["ok"], false)
	})

	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"missing reason", `{"guid":"ABC-123"}`, "Missing reason"},
		{"blank reason", `{"guid":"ABC-123","reason":"   "}`, "Missing reason"},
		{"missing guid", `{"reason":"cheating"}`, "Missing guid"},
		{"empty body", ``, "Missing guid"},
		{"null guid", `{"guid":null,"reason":"cheating"}`, "Missing guid"},
		{"false guid", `{"guid":false,"reason":"cheating"}`, "Missing guid"},
		{"invalid json", `{"guid":`, "invalid JSON body"},
		{"object guid", `{"guid":{"id":1},"reason":"cheating"}`, "invalid JSON body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeBlocklist{}
			server := controller.NewServer(ctx, ":0", uc)

			w := doRequest(t, server, http.MethodPost, "/add", tc.body)
			gt.Equal(t, w.Code, http.StatusBadRequest)

			resp := decodeBody(t, w)
			gt.Equal(t, resp["ok"], false)
			gt.Equal(t, resp["error"], any(tc.message))
			gt.Equal(t, len(uc.calls), 0)
		})
	}

	t.Run("numeric guid is relayed as text", func(t *testing.T) {
		uc := &fakeBlocklist{}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/add", `{"guid":76561198000000000,"reason":"cheating"}`)
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, len(uc.calls), 1)
		gt.Equal(t, uc.calls[0].SubjectID, types.SubjectID("76561198000000000"))
	})

	t.Run("internal failure", func(t *testing.T) {
		uc := &fakeBlocklist{err: errors.New("browser unreachable")}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/add", `{"guid":"ABC-123","reason":"cheating"}`)
		gt.Equal(t, w.Code, http.StatusInternalServerError)

		resp := decodeBody(t, w)
		gt.Equal(t, resp["ok"], false)
		gt.Equal(t, resp["action"], "add")
		gt.Equal(t, resp["guid"], "ABC-123")
		gt.Equal(t, resp["error"], "browser unreachable")
	})

	t.Run("internal failure reports the underlying message", func(t *testing.T) {
		cause := errors.New("connect ECONNREFUSED 10.0.0.1:3000")
		uc := &fakeBlocklist{err: goerr.Wrap(
			goerr.Wrap(cause, "failed to connect to remote browser"),
			"blocklist action failed",
			goerr.V("guid", "ABC-123"),
		)}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/add", `{"guid":"ABC-123","reason":"cheating"}`)
		gt.Equal(t, w.Code, http.StatusInternalServerError)

		resp := decodeBody(t, w)
		gt.Equal(t, resp["error"], "connect ECONNREFUSED 10.0.0.1:3000")
	})
}

func TestServer_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success ignores reason", func(t *testing.T) {
		uc := &fakeBlocklist{obs: model.PageObservation{
			FinalURL:     "https://panel.example/blocklist?action=remove&guid=ABC-123",
			SuccessCount: 1,
		}}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/remove", `{"guid":"ABC-123","reason":"ignored"}`)
		gt.Equal(t, w.Code, http.StatusOK)

		resp := decodeBody(t, w)
		gt.Equal(t, resp["ok"], true)
		gt.Equal(t, resp["action"], "remove")
		gt.Nil(t, resp["reason"])
		gt.Equal(t, uc.calls[0].Reason, "")
	})

	t.Run("missing guid", func(t *testing.T) {
		uc := &fakeBlocklist{}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/remove", `{}`)
		gt.Equal(t, w.Code, http.StatusBadRequest)
		resp := decodeBody(t, w)
		gt.Equal(t, resp["error"], "Missing guid")
		gt.Equal(t, len(uc.calls), 0)
	})

	t.Run("internal failure", func(t *testing.T) {
		uc := &fakeBlocklist{err: errors.New("navigation timeout")}
		server := controller.NewServer(ctx, ":0", uc)

		w := doRequest(t, server, http.MethodPost, "/remove", `{"guid":"ABC-123"}`)
		gt.Equal(t, w.Code, http.StatusInternalServerError)
		resp := decodeBody(t, w)
		gt.Equal(t, resp["action"], "remove")
		gt.Equal(t, resp["guid"], "ABC-123")
	})
}

func TestServer_NoConnectionOnValidationError(t *testing.T) {
	ctx := context.Background()
	connector := &mocks.BrowserConnectorMock{
		ConnectFunc: func(ctx context.Context) (interfaces.Browser, error) {
			return nil, errors.New("must not be called")
		},
	}
	config, err := usecase.NewBlocklistConfig("https://panel.example", "admin", "secret")
	gt.NoError(t, err).Required()
	server := controller.NewServer(ctx, ":0", usecase.NewBlocklist(connector, config))

	w := doRequest(t, server, http.MethodPost, "/add", `{"guid":"ABC-123"}`)
	gt.Equal(t, w.Code, http.StatusBadRequest)
	gt.Equal(t, len(connector.ConnectCalls()), 0)

	w = doRequest(t, server, http.MethodPost, "/remove", `{"guid":""}`)
	gt.Equal(t, w.Code, http.StatusBadRequest)
	gt.Equal(t, len(connector.ConnectCalls()), 0)

	w = doRequest(t, server, http.MethodPost, "/remove", `{"guid":"ABC-123"}`)
	gt.Equal(t, w.Code, http.StatusInternalServerError)
	gt.Equal(t, len(connector.ConnectCalls()), 1)
}
