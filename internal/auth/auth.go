// Package auth issues and checks the bearer tokens that guard note writes.
package auth

import (
	"errors"
	"time"

	"notekeeper/internal/config"
	"notekeeper/internal/utils"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Authenticator struct {
	secret       []byte
	username     string
	passwordHash string
	ttl          time.Duration
	now          func() time.Time
}

func New(cfg config.Auth) *Authenticator {
	return &Authenticator{
		secret:       []byte(cfg.Secret),
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		ttl:          cfg.TokenTTL,
		now:          time.Now,
	}
}

// Login checks the credentials against the configured user and returns a
// signed token.
func (a *Authenticator) Login(username, password string) (string, error) {
	if a.username == "" || username != a.username || !utils.CheckPasswordHash(password, a.passwordHash) {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": username,
		"iat": a.now().Unix(),
		"exp": a.now().Add(a.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Middleware rejects requests without a valid bearer token.
func (a *Authenticator) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: a.secret},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token missing or invalid"})
		},
	})
}

// Username returns the subject of the token validated by Middleware.
func Username(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	sub, _ := token.Claims.GetSubject()
	return sub
}
