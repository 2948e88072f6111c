package handlers

import (
	"errors"

	"catalogo/internal/config"
	"catalogo/internal/domain"
	applog "catalogo/internal/log"
	"catalogo/internal/metrics"
	"catalogo/internal/repos"
	"catalogo/internal/services"
	"catalogo/internal/validate"
	"catalogo/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
	Sellers *repos.SellerRepo
	Cfg     config.Config
}

// productView pairs a product with its ready-built deep link for templates.
type productView struct {
	domain.Product
	WhatsAppURL string
}

// Home renders the landing page with the most recent catalogs.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	recent, err := h.Sellers.ListRecent(8)
	if err != nil {
		applog.Error(c, "home.recent.fail", err, nil)
		recent = nil
	}
	return render(c, "home", fiber.Map{"Recent": recent})
}

// Show renders the public catalog page for /:username.
func (h *CatalogHandler) Show(c *fiber.Ctx) error {
	raw := c.Params("username")
	cat, err := h.Catalog.Resolve(raw)
	if errors.Is(err, services.ErrNotFound) {
		metrics.CatalogMissesTotal.Inc()
		return c.Status(fiber.StatusNotFound).Render("catalog_notfound", fiber.Map{
			"Username": validate.Username(raw),
		})
	}
	if err != nil {
		applog.Error(c, "catalog.resolve.fail", err, map[string]any{"username": raw})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not load this catalog. Please try again.",
		})
	}

	catalogURL := h.Cfg.BaseURL + "/" + cat.Seller.Username
	views := make([]productView, 0, len(cat.Products))
	for _, p := range cat.Products {
		msg := whatsapp.ProductMessage(p.Name, p.Price, p.Description, cat.Seller.DisplayName(), catalogURL)
		views = append(views, productView{
			Product:     p,
			WhatsAppURL: whatsapp.Link(h.Cfg.CountryCode, cat.Seller.Phone, msg),
		})
	}

	metrics.CatalogViewsTotal.Inc()
	return render(c, "catalog", fiber.Map{
		"Owner":      &cat.Seller,
		"Products":   views,
		"CatalogURL": catalogURL,
		"HasPhone":   cat.Seller.Phone != "",
	})
}

// ProductDetail renders /:username/product/:id.
func (h *CatalogHandler) ProductDetail(c *fiber.Ctx) error {
	raw := c.Params("username")
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	cat, err := h.Catalog.Resolve(raw)
	if errors.Is(err, services.ErrNotFound) {
		metrics.CatalogMissesTotal.Inc()
		return c.Status(fiber.StatusNotFound).Render("catalog_notfound", fiber.Map{
			"Username": validate.Username(raw),
		})
	}
	if err != nil {
		applog.Error(c, "catalog.resolve.fail", err, map[string]any{"username": raw})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not load this catalog. Please try again.",
		})
	}

	var found *domain.Product
	for i := range cat.Products {
		if cat.Products[i].ID == id {
			found = &cat.Products[i]
			break
		}
	}
	if found == nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	msg := whatsapp.DetailMessage(cat.Seller.DisplayName(), found.Name)
	return render(c, "product", fiber.Map{
		"Owner":       &cat.Seller,
		"P":           found,
		"WhatsAppURL": whatsapp.Link(h.Cfg.CountryCode, cat.Seller.Phone, msg),
	})
}
