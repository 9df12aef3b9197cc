package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/auth"
	"crowdfund/internal/domain"
	"crowdfund/internal/middleware"
)

type testEnv struct {
	app   *App
	store *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	app := NewApp(store.Users(), store.Campaigns(), store.Contributions(), auth.NewTokens("test-secret", time.Hour), zerolog.Nop())
	return &testEnv{app: app, store: store}
}

func (e *testEnv) user(t *testing.T, username string, role domain.UserRole) domain.User {
	t.Helper()
	u := &domain.User{Username: username, Email: username + "@example.com", PasswordHash: "x", Role: role}
	if err := e.store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return *u
}

func (e *testEnv) campaign(t *testing.T, owner domain.User, company string, goal int64) domain.Campaign {
	t.Helper()
	c := &domain.Campaign{OwnerID: owner.ID, CreatorName: owner.Username, Company: company, Goal: goal}
	if err := e.store.Campaigns().Create(context.Background(), c); err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	return *c
}

func (e *testEnv) contribute(t *testing.T, company string, amount int64) {
	t.Helper()
	c := &domain.Contribution{InvestorName: "inv", Company: company, Amount: amount}
	if err := e.store.Contributions().Create(context.Background(), c); err != nil {
		t.Fatalf("create contribution: %v", err)
	}
}

func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func asUser(req *http.Request, u domain.User) *http.Request {
	ctx := middleware.ContextWithPrincipal(req.Context(), middleware.Principal{UserID: u.ID, Username: u.Username, Role: u.Role})
	return req.WithContext(ctx)
}

func withParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return v
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorBody](t, rec).Error.Code
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorBody](t, rec).Error.Message
}
