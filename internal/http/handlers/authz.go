package handlers

import (
	"catalogo/internal/config"
	applog "catalogo/internal/log"
	"catalogo/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireSeller enforces a logged-in seller; otherwise redirect to login.
func RequireSeller(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentSeller(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("seller", u)
		return c.Next()
	}
}

// RequireAdmin gates the admin pages on the configured allow-list. The list
// is injected at startup, never hard-coded here.
func RequireAdmin(auth *services.AuthService, cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentSeller(sid)
		if err != nil || u == nil || !cfg.IsAdmin(u.Email) {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("seller", u)
		return c.Next()
	}
}
