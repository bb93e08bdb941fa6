package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieStorage keeps the session in origin-scoped browser cookies, so the
// values survive reloads and new tabs.
type CookieStorage struct {
	ctx *fiber.Ctx
}

func NewCookieStorage(ctx *fiber.Ctx) *CookieStorage {
	return &CookieStorage{ctx: ctx}
}

func (s *CookieStorage) Get(key string) string {
	return s.ctx.Cookies(key)
}

func (s *CookieStorage) Set(key, value string) {
	s.ctx.Cookie(&fiber.Cookie{
		Name:    key,
		Value:   value,
		Path:    "/",
		Expires: time.Now().AddDate(1, 0, 0),
		// Not HTTPOnly: the values are display state, not credentials.
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *CookieStorage) Delete(key string) {
	s.ctx.Cookie(&fiber.Cookie{
		Name:    key,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
}
