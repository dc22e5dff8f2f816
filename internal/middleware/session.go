package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/essencia/internal/config"
	"github.com/example/essencia/internal/session"
	"github.com/example/essencia/internal/utils"
)

const sessionContextKey = "currentSession"

// SessionTokenHeader carries the signed session token on responses for
// fresh sessions and may carry it on requests as an alternative to the
// Authorization header.
const SessionTokenHeader = "X-Session-Token"

// SessionMiddleware resolves the caller's guest session from a signed
// token, creating a new session (and issuing its token) when the request
// carries none or the token no longer resolves.
func SessionMiddleware(cfg *config.Config, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess, ok := resolve(c, cfg, store); ok {
			c.Locals(sessionContextKey, sess)
			return c.Next()
		}

		sess := store.Create()
		token, err := utils.GenerateSessionToken(cfg.SessionSecret, sess.ID, cfg.SessionTTL)
		if err != nil {
			return err
		}
		c.Set(SessionTokenHeader, token)
		c.Locals(sessionContextKey, sess)
		return c.Next()
	}
}

func resolve(c *fiber.Ctx, cfg *config.Config, store *session.Store) (*session.Session, bool) {
	tokenString := c.Get(SessionTokenHeader)
	if tokenString == "" {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, false
		}
		tokenString = parts[1]
	}

	id, err := utils.ParseSessionToken(cfg.SessionSecret, tokenString)
	if err != nil {
		return nil, false
	}
	return store.Get(id)
}

// GetCurrentSession returns the session resolved for this request.
func GetCurrentSession(c *fiber.Ctx) (*session.Session, bool) {
	sess, ok := c.Locals(sessionContextKey).(*session.Session)
	return sess, ok
}
