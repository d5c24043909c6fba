package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/videobase/backend/internal/middleware"
	"github.com/videobase/backend/internal/models"
	"github.com/videobase/backend/internal/repositories"
	"github.com/videobase/backend/internal/tokens"
)

func newTestTokens(t *testing.T) *tokens.Issuer {
	t.Helper()
	issuer, err := tokens.NewIssuer([]byte("test-secret"), time.Hour, time.Minute)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	return issuer
}

func seedUser(t *testing.T, store *repositories.InMemoryUserRepository, name, email, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	err = store.Create(context.Background(), models.User{
		ID:           "user-1",
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestAuthHandlerSignUp(t *testing.T) {
	store := repositories.NewInMemoryUserRepository()
	issuer := newTestTokens(t)
	handler := AuthHandler{Users: store, Tokens: issuer}

	body, err := json.Marshal(signUpRequest{Name: "A", Email: "a@x.com", Password: "p"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SignUp(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d got %d", http.StatusCreated, rec.Code)
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.AccessToken == "" {
		t.Fatal("expected an access token to be issued")
	}
	if resp.User.Name != "A" || resp.User.Email != "a@x.com" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	if _, err := issuer.VerifySession(resp.AccessToken); err != nil {
		t.Fatalf("issued token must be a usable session token: %v", err)
	}

	stored, err := store.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("expected user to be stored: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p")) != nil {
		t.Fatal("stored password is not hashed")
	}
}

func TestAuthHandlerSignUpMissingFields(t *testing.T) {
	handler := AuthHandler{Users: repositories.NewInMemoryUserRepository(), Tokens: newTestTokens(t)}

	for _, payload := range []signUpRequest{
		{Email: "a@x.com", Password: "p"},
		{Name: "A", Password: "p"},
		{Name: "A", Email: "a@x.com"},
	} {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.SignUp(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d for %+v got %d", http.StatusBadRequest, payload, rec.Code)
		}
	}
}

func TestAuthHandlerSignUpDuplicateEmail(t *testing.T) {
	store := repositories.NewInMemoryUserRepository()
	handler := AuthHandler{Users: store, Tokens: newTestTokens(t)}
	seedUser(t, store, "A", "a@x.com", "p")

	body, err := json.Marshal(signUpRequest{Name: "B", Email: "a@x.com", Password: "other"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SignUp(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d got %d", http.StatusBadRequest, rec.Code)
	}

	stored, err := store.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("original user must survive: %v", err)
	}
	if stored.Name != "A" {
		t.Fatalf("duplicate signup must not overwrite the account, got %+v", stored)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	store := repositories.NewInMemoryUserRepository()
	issuer := newTestTokens(t)
	handler := AuthHandler{Users: store, Tokens: issuer}
	seedUser(t, store, "Login", "login@x.com", "password123")

	body, err := json.Marshal(loginRequest{Email: "login@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := issuer.VerifySession(resp.AccessToken); err != nil {
		t.Fatalf("issued token must be a usable session token: %v", err)
	}
}

func TestAuthHandlerLoginGenericFailure(t *testing.T) {
	store := repositories.NewInMemoryUserRepository()
	handler := AuthHandler{Users: store, Tokens: newTestTokens(t)}
	seedUser(t, store, "Login", "login@x.com", "password123")

	// Unknown email and wrong password must be indistinguishable.
	var responses []string
	for _, payload := range []loginRequest{
		{Email: "nobody@x.com", Password: "password123"},
		{Email: "login@x.com", Password: "wrong"},
	} {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status %d for %+v got %d", http.StatusUnauthorized, payload, rec.Code)
		}
		responses = append(responses, rec.Body.String())
	}

	if responses[0] != responses[1] {
		t.Fatalf("login failures must not leak which field was wrong: %q vs %q", responses[0], responses[1])
	}
}

func TestAuthHandlerMe(t *testing.T) {
	store := repositories.NewInMemoryUserRepository()
	handler := AuthHandler{Users: store, Tokens: newTestTokens(t)}
	seedUser(t, store, "A", "a@x.com", "p")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.WithSubject(req.Context(), "a@x.com"))
	rec := httptest.NewRecorder()

	handler.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp userPayload
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "A" || resp.Email != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandlerMeDeletedUser(t *testing.T) {
	store := repositories.NewInMemoryUserRepository()
	handler := AuthHandler{Users: store, Tokens: newTestTokens(t)}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.WithSubject(req.Context(), "gone@x.com"))
	rec := httptest.NewRecorder()

	handler.Me(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d got %d", http.StatusNotFound, rec.Code)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	handler := AuthHandler{Users: repositories.NewInMemoryUserRepository(), Tokens: newTestTokens(t)}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}
}
