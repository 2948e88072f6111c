package handlers

import (
	applog "catalogo/internal/log"
	"catalogo/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Admin *services.AdminService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	ov, err := h.Admin.Overview()
	if err != nil {
		applog.Error(c, "admin.overview.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the overview"})
	}
	return render(c, "admin_dashboard", fiber.Map{"Rows": ov.Rows, "Stats": ov.Stats})
}
