package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adammwaniki/SendIT/internal/domain"
	"github.com/adammwaniki/SendIT/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB opens a per-test in-memory sqlite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.Recipient{},
		&domain.UserAddress{},
		&domain.RecipientAddress{},
		&domain.BillingAddress{},
		&domain.Parcel{},
	))
	return db
}

// newTestServer mounts the real router over an in-memory database and an
// in-memory session store
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	mgr := session.NewManager(session.NewMemoryStore(), testSecret, false)
	return NewRouter(db, mgr), db
}

// performRequest runs one request through the router with optional cookies
func performRequest(r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookie pulls the session cookie out of a response, failing the test
// if it is absent
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", session.CookieName)
	return nil
}

// signupUser registers an account through the API and returns its session
// cookie and the created user id
func signupUser(t *testing.T, r http.Handler, email string) (*http.Cookie, uint) {
	t.Helper()
	body := `{"first_name":"Ada","last_name":"Lovelace","email":"` + email + `","password":"secret1"}`
	w := performRequest(r, http.MethodPost, "/signup", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return sessionCookie(t, w), created.ID
}
