package handlers

import (
	"errors"

	"catalogo/internal/config"
	"catalogo/internal/domain"
	applog "catalogo/internal/log"
	"catalogo/internal/media"
	"catalogo/internal/metrics"
	"catalogo/internal/repos"
	"catalogo/internal/services"
	"catalogo/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Products *services.ProductService
	Sellers  *repos.SellerRepo
	Cfg      config.Config
}

func currentSeller(c *fiber.Ctx) *domain.Seller {
	u, _ := c.Locals("seller").(*domain.Seller)
	return u
}

// View renders the seller's own product list with aggregates.
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	u := currentSeller(c)
	if u == nil {
		return c.Redirect("/login")
	}
	products, err := h.Products.ListBySeller(u)
	if err != nil {
		applog.Error(c, "dashboard.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your products"})
	}
	return render(c, "dashboard", fiber.Map{
		"Products":   products,
		"Count":      len(products),
		"TotalValue": services.TotalValue(products),
		"WithImage":  services.CountWithImage(products),
		"CatalogURL": h.Cfg.BaseURL + "/" + u.Username,
	})
}

// Create handles the new-product form (multipart, optional image).
func (h *DashboardHandler) Create(c *fiber.Ctx) error {
	u := currentSeller(c)
	if u == nil {
		return c.Redirect("/login")
	}

	in, err := h.formInput(c)
	if err != nil {
		return h.formFailed(c, err)
	}

	p, err := h.Products.Create(c.Context(), u, in)
	if err != nil {
		return h.formFailed(c, err)
	}

	metrics.ProductsCreatedTotal.Inc()
	applog.Audit(c, "product.create", map[string]any{"product": p.ID})
	return c.Redirect("/dashboard")
}

// Update handles the edit form for one product.
func (h *DashboardHandler) Update(c *fiber.Ctx) error {
	u := currentSeller(c)
	if u == nil {
		return c.Redirect("/login")
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid product id")
	}

	in, err := h.formInput(c)
	if err != nil {
		return h.formFailed(c, err)
	}

	if _, err := h.Products.Update(c.Context(), u, id, in); err != nil {
		return h.formFailed(c, err)
	}

	metrics.ProductsUpdatedTotal.Inc()
	applog.Audit(c, "product.update", map[string]any{"product": id})
	return c.Redirect("/dashboard")
}

func (h *DashboardHandler) Delete(c *fiber.Ctx) error {
	u := currentSeller(c)
	if u == nil {
		return c.Redirect("/login")
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid product id")
	}

	if err := h.Products.Delete(c.Context(), u, id); err != nil {
		return h.formFailed(c, err)
	}

	metrics.ProductsDeletedTotal.Inc()
	applog.Audit(c, "product.delete", map[string]any{"product": id})
	return c.Redirect("/dashboard")
}

// UpdateProfile changes the seller's display name and WhatsApp phone. The
// username stays fixed after registration.
func (h *DashboardHandler) UpdateProfile(c *fiber.Ctx) error {
	u := currentSeller(c)
	if u == nil {
		return c.Redirect("/login")
	}

	name, ok := validate.DisplayName(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Name is too long")
	}
	rawPhone := c.FormValue("phone")
	phone := validate.Phone(rawPhone)
	if rawPhone != "" && len(phone) < 10 {
		return c.Status(fiber.StatusBadRequest).SendString("Phone must have at least 10 digits (area code + number)")
	}

	if err := h.Sellers.UpdateProfile(u.ID, name, phone); err != nil {
		applog.Error(c, "profile.update.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not save your profile. Please try again.")
	}
	applog.Audit(c, "profile.update", map[string]any{"seller": u.Username})
	return c.Redirect("/dashboard")
}

// formInput reads the product form fields plus the optional image upload,
// encoding the image to a data URL.
func (h *DashboardHandler) formInput(c *fiber.Ctx) (services.ProductInput, error) {
	in := services.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Services:    c.FormValue("services"),
	}

	fh, err := c.FormFile("image")
	if err != nil {
		// no file attached is fine
		return in, nil
	}
	f, err := fh.Open()
	if err != nil {
		return in, err
	}
	defer f.Close()
	dataURL, err := media.EncodeDataURL(f)
	if err != nil {
		return in, err
	}
	in.ImageData = dataURL
	return in, nil
}

func (h *DashboardHandler) formFailed(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		applog.Security(c, "product.form.invalid", map[string]any{"field": ve.Field})
		return c.Status(fiber.StatusBadRequest).SendString(ve.Message)
	case errors.Is(err, media.ErrTooLarge), errors.Is(err, media.ErrNotImage):
		applog.Security(c, "product.image.reject", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Product not found"})
	case errors.Is(err, services.ErrForbidden):
		applog.Security(c, "access.denied.product", nil)
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Product not found"})
	default:
		applog.Error(c, "product.form.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not save the product. Please try again.")
	}
}
