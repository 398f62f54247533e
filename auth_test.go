package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword() error: %v", err)
	}

	if hash == "secret" {
		t.Error("expected hash to differ from plaintext")
	}

	second, _ := hashPassword("secret")
	if hash == second {
		t.Error("expected a fresh salt per call")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := hashPassword("secret")
	if err != nil {
		t.Fatalf("hashPassword() error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "secret", true},
		{"wrong password", "wrong", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkPassword(hash, tt.password)
			if got != tt.want {
				t.Errorf("checkPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	token1, err := generateToken()
	if err != nil {
		t.Fatalf("generateToken() error: %v", err)
	}

	if len(token1) != 64 { // 32 bytes = 64 hex chars
		t.Errorf("expected token length 64, got %d", len(token1))
	}

	token2, _ := generateToken()
	if token1 == token2 {
		t.Error("expected unique tokens")
	}
}

func TestCreateAndGetSession(t *testing.T) {
	db := setupTestDB(t)

	token, err := createSession(db, 1)
	if err != nil {
		t.Fatalf("createSession() error: %v", err)
	}

	session, err := getSession(db, token)
	if err != nil {
		t.Fatalf("getSession() error: %v", err)
	}
	if session == nil {
		t.Fatal("expected session, got nil")
	}
	if session.UserID != 1 {
		t.Errorf("expected UserID 1, got %d", session.UserID)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	db := setupTestDB(t)

	session, err := getSession(db, "nonexistent")
	if err != nil {
		t.Fatalf("getSession() error: %v", err)
	}
	if session != nil {
		t.Error("expected nil session for nonexistent token")
	}
}

func TestGetSession_Expired(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Exec(`
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES (?, ?, ?)`, "stale", 1, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("inserting expired session: %v", err)
	}

	session, err := getSession(db, "stale")
	if err != nil {
		t.Fatalf("getSession() error: %v", err)
	}
	if session != nil {
		t.Error("expected expired session to be ignored")
	}
}

func TestDeleteSession(t *testing.T) {
	db := setupTestDB(t)

	token, _ := createSession(db, 1)
	if err := deleteSession(db, token); err != nil {
		t.Fatalf("deleteSession() error: %v", err)
	}

	session, _ := getSession(db, token)
	if session != nil {
		t.Error("expected session to be deleted")
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := setupTestDB(t)

	db.Exec(`INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)`,
		"stale", 1, time.Now().Add(-time.Hour))
	fresh, _ := createSession(db, 2)

	if err := cleanupExpiredSessions(db); err != nil {
		t.Fatalf("cleanupExpiredSessions() error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM sessions WHERE token = ?", "stale").Scan(&count)
	if count != 0 {
		t.Error("expected expired session to be removed")
	}

	session, _ := getSession(db, fresh)
	if session == nil {
		t.Error("expected live session to survive cleanup")
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		user       *User
		wantStatus int
		wantCalled bool
	}{
		{"anonymous visitor", nil, http.StatusForbidden, false},
		{"authenticated non-admin", &User{ID: 2, Name: "Eve"}, http.StatusForbidden, false},
		{"the admin", &User{ID: 1, Name: "Ada"}, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/new-post", nil)
			if tt.user != nil {
				req = asUser(req, tt.user)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if called != tt.wantCalled {
				t.Errorf("expected handler called = %v, got %v", tt.wantCalled, called)
			}
		})
	}
}

func TestWithUser_ValidSession(t *testing.T) {
	blog := setupTestBlog(t)

	id, _ := createUser(blog.db, "ada@example.com", "hash", "Ada")
	token, _ := createSession(blog.db, int(id))

	var seen *User
	handler := blog.withUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = currentUser(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil {
		t.Fatal("expected request-scoped user")
	}
	if seen.Email != "ada@example.com" {
		t.Errorf("expected email 'ada@example.com', got %q", seen.Email)
	}
}

func TestWithUser_NoSession(t *testing.T) {
	blog := setupTestBlog(t)

	var seen *User
	handler := blog.withUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = currentUser(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != nil {
		t.Errorf("expected nil user without a session, got %+v", seen)
	}
}

func TestFlash(t *testing.T) {
	w := httptest.NewRecorder()
	setFlash(w, "hello, flash!")

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected flash cookie to be set")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	w2 := httptest.NewRecorder()

	message := popFlash(w2, req)
	if message != "hello, flash!" {
		t.Errorf("expected 'hello, flash!', got %q", message)
	}

	// popFlash clears the cookie.
	for _, c := range w2.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge != -1 {
			t.Error("expected flash cookie to be cleared")
		}
	}
}
