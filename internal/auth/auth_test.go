package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", Required())
	admin.GET("/skills", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	admin.GET("/api/skills", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestVerify(t *testing.T) {
	gate, err := NewGate("admin@example.com", "s3cret", false)
	if err != nil {
		t.Fatalf("new gate failed: %v", err)
	}
	if err := gate.Verify("admin@example.com", "s3cret"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
	for _, pair := range [][2]string{
		{"admin@example.com", "wrong"},
		{"Admin@example.com", "s3cret"},
		{"", ""},
	} {
		if err := gate.Verify(pair[0], pair[1]); err != ErrInvalidCredentials {
			t.Fatalf("expected %v to be rejected, got %v", pair, err)
		}
	}
}

func TestGrantSetsCookieAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate, err := NewGate("admin@example.com", "s3cret", true)
	if err != nil {
		t.Fatalf("new gate failed: %v", err)
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	gate.Grant(c)

	header := rec.Header().Get("Set-Cookie")
	for _, want := range []string{"auth-token=authenticated", "Max-Age=604800", "HttpOnly", "Secure", "SameSite=Lax", "Path=/"} {
		if !strings.Contains(header, want) {
			t.Fatalf("expected %q in cookie %q", want, header)
		}
	}
}

func TestRequiredRedirectsWithoutCookie(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/skills", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequiredRejectsWrongValue(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/skills", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "authenticated-ish"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect for wrong marker, got %d", rec.Code)
	}
}

func TestRequiredRedirectsAPIWithoutCookie(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/skills", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequiredAllowsMarker(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/skills", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: CookieValue})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
