package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName holds the admin marker.
	CookieName = "auth-token"
	// CookieValue is the literal marker. Only one operator exists, so the
	// cookie is a shared secret flag rather than a session id.
	CookieValue = "authenticated"
	// CookieMaxAge is how long a login lasts.
	CookieMaxAge = 7 * 24 * time.Hour

	LoginPath = "/login"
	AdminPath = "/admin"
)

// ErrInvalidCredentials is returned for any mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Gate checks the single admin credential pair and manages the cookie.
type Gate struct {
	email  string
	hash   []byte
	secure bool
}

// NewGate hashes password once so the plain value is not kept around.
// secure marks the cookie Secure, which production sets.
func NewGate(email, password string, secure bool) (*Gate, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errors.New("admin credentials are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{email: strings.TrimSpace(email), hash: hash, secure: secure}, nil
}

// Verify compares the submitted pair with the configured one.
func (g *Gate) Verify(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(g.email)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(g.hash, []byte(password)) == nil
	if !emailOK || !passwordOK {
		return ErrInvalidCredentials
	}
	return nil
}

// Grant sets the admin cookie.
func (g *Gate) Grant(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    CookieValue,
		Path:     "/",
		MaxAge:   int(CookieMaxAge / time.Second),
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Revoke expires the admin cookie.
func (g *Gate) Revoke(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticated reports whether the request carries the exact marker.
func Authenticated(c *gin.Context) bool {
	value, err := c.Cookie(CookieName)
	return err == nil && value == CookieValue
}

// Required gates the admin tree, JSON API included: without the marker
// every request is redirected to the login form.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Authenticated(c) {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}
