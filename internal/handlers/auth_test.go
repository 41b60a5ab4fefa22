package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinelog/internal/models"
	"cinelog/internal/service"
)

var errSQLite = errors.New("database is locked (5) (SQLITE_BUSY)")

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	auth := &mockAuth{
		registerUser: &models.User{ID: "u1", Email: "alice@example.com", Username: "alice"},
		loginToken:   "tok123",
		loginProfile: &models.UserProfile{User: models.User{ID: "u1", Username: "alice"}},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// register success
	body := bytes.NewBufferString(`{"email":"alice@example.com","username":"alice","password":"secret"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastRegister.Email != "alice@example.com" || auth.lastRegister.Password != "secret" {
		t.Fatalf("unexpected register params: %+v", auth.lastRegister)
	}

	// register with malformed email → 400, service never called
	auth.lastRegister = service.RegisterParams{}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/user", bytes.NewBufferString(`{"email":"not-an-email","username":"x","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}
	if auth.lastRegister.Email != "" {
		t.Fatalf("service called despite invalid body")
	}

	// login by email
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewBufferString(`{"email":"alice@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}

	// login by username only
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewBufferString(`{"username":"alice","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("username login status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastLogin != "alice" {
		t.Fatalf("expected login by username, got %q", auth.lastLogin)
	}

	// neither email nor username → 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewBufferString(`{"password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a login, got %d", w.Code)
	}
}

func TestAuthHandlers_LoginErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"storage failure is sanitized", errSQLite, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{loginErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewBufferString(`{"email":"a@b.c","password":"p"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusInternalServerError {
				var out struct {
					Error string `json:"error"`
				}
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out.Error != errInternal {
					t.Fatalf("raw storage error leaked: %q", out.Error)
				}
			}
		})
	}
}

func TestAuthHandlers_ForgotAndResetPassword(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	// the response never reveals whether the address is registered
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/forgot-password", bytes.NewBufferString(`{"email":"ghost@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("forgot-password status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastForgot != "ghost@example.com" {
		t.Fatalf("ForgotPassword got %q", auth.lastForgot)
	}

	// reset success
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/user/reset-password", bytes.NewBufferString(`{"token":"tkn","password":"newpass"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reset-password status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastResetTok != "tkn" || auth.lastResetPass != "newpass" {
		t.Fatalf("unexpected reset params: %q/%q", auth.lastResetTok, auth.lastResetPass)
	}

	// used token → 400
	auth.resetErr = service.ErrTokenUsed
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/user/reset-password", bytes.NewBufferString(`{"token":"tkn","password":"newpass"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for used token, got %d", w.Code)
	}
}
