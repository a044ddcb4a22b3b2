package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notekeeper/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("sekret"), bcrypt.MinCost)
	require.NoError(t, err)
	return New(config.Auth{
		Secret:       "signing-key",
		Username:     "admin",
		PasswordHash: string(hash),
		TokenTTL:     time.Hour,
	})
}

func protectedApp(a *Authenticator) *fiber.App {
	app := fiber.New()
	app.Get("/private", a.Middleware(), func(c *fiber.Ctx) error {
		return c.SendString(Username(c))
	})
	return app
}

func TestLogin(t *testing.T) {
	a := newAuthenticator(t)

	token, err := a.Login("admin", "sekret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return []byte("signing-key"), nil })
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Login("someone", "sekret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	noUser := New(config.Auth{Secret: "x", TokenTTL: time.Hour})
	_, err = noUser.Login("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMiddleware(t *testing.T) {
	a := newAuthenticator(t)
	app := protectedApp(a)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := a.Login("admin", "sekret")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	a := newAuthenticator(t)
	a.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := a.Login("admin", "sekret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := protectedApp(a).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
