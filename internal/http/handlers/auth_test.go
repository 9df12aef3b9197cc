package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crowdfund/internal/domain"
)

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.app.Signup(rec, newRequest(http.MethodPost, "/v1/auth/signup",
		`{"username":"asha","email":"Asha@Example.com","password":"correct-horse","role":"creator"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d body=%s", rec.Code, rec.Body.String())
	}
	profile := decodeBody[userProfileDTO](t, rec)
	if profile.ID == "" || profile.Email != "asha@example.com" || profile.Role != "creator" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	rec = httptest.NewRecorder()
	env.app.Login(rec, newRequest(http.MethodPost, "/v1/auth/login", `{"username":"asha","password":"wrong-password"}`))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.app.Login(rec, newRequest(http.MethodPost, "/v1/auth/login", `{"username":"nobody","password":"whatever1"}`))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.app.Login(rec, newRequest(http.MethodPost, "/v1/auth/login", `{"username":"asha","password":"correct-horse"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d body=%s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[loginResponse](t, rec)
	claims, err := env.app.Tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Subject != profile.ID || claims.Role != domain.UserRoleCreator {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestSignupConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.user(t, "taken", domain.UserRoleInvestor)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"username", `{"username":"taken","email":"new@example.com","password":"password1","role":"investor"}`, "Username already exists"},
		{"email", `{"username":"fresh","email":"taken@example.com","password":"password1","role":"investor"}`, "Email already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.app.Signup(rec, newRequest(http.MethodPost, "/v1/auth/signup", tt.body))
			if rec.Code != http.StatusConflict {
				t.Fatalf("status = %d, want 409", rec.Code)
			}
			body := decodeBody[struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}](t, rec)
			if body.Error.Message != tt.message {
				t.Fatalf("message = %q, want %q", body.Error.Message, tt.message)
			}
		})
	}
}

func TestSignupValidation(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"username":"asha","email":"nope","password":"password1","role":"creator"}`},
		{"short password", `{"username":"asha","email":"a@example.com","password":"short","role":"creator"}`},
		{"unknown role", `{"username":"asha","email":"a@example.com","password":"password1","role":"admin"}`},
		{"missing username", `{"email":"a@example.com","password":"password1","role":"creator"}`},
		{"unknown field", `{"username":"asha","email":"a@example.com","password":"password1","role":"creator","admin":true}`},
		{"not json", `username=asha`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.app.Signup(rec, newRequest(http.MethodPost, "/v1/auth/signup", tt.body))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body=%s)", rec.Code, rec.Body.String())
			}
			if code := errorCode(t, rec); code != "bad_request" {
				t.Fatalf("code = %q", code)
			}
		})
	}
}

func TestMeRequiresPrincipal(t *testing.T) {
	env := newTestEnv(t)
	rec := httptest.NewRecorder()
	env.app.Me(rec, newRequest(http.MethodGet, "/v1/me", ""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "missing user context" {
		t.Fatalf("message = %q", msg)
	}

	u := env.user(t, "ravi", domain.UserRoleInvestor)
	rec = httptest.NewRecorder()
	env.app.Me(rec, asUser(newRequest(http.MethodGet, "/v1/me", ""), u))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeBody[userProfileDTO](t, rec); got.Username != "ravi" {
		t.Fatalf("username = %q", got.Username)
	}
}
