package handlers

import (
	"errors"
	"time"

	applog "catalogo/internal/log"
	"catalogo/internal/metrics"
	"catalogo/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind HTTPS
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")

	u, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	metrics.LoginsTotal.Inc()
	applog.Audit(c, "auth.login.success", map[string]any{"seller": u.Username})
	return c.Redirect("/dashboard")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{
		"Err": "", "Username": "", "Name": "", "Email": "", "Phone": "",
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	in := services.RegisterInput{
		Username: c.FormValue("username"),
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Password: c.FormValue("password"),
	}

	u, err := h.Auth.Register(in)
	if err != nil {
		return h.registerFailed(c, in, err)
	}

	// Log the new seller straight in
	if err := h.Auth.Sellers.BindSession(sid, u.ID); err != nil {
		applog.Error(c, "auth.register.bind", err, nil)
	}
	metrics.RegistrationsTotal.Inc()
	applog.Audit(c, "auth.register.success", map[string]any{"seller": u.Username})
	return c.Redirect("/dashboard")
}

// registerFailed maps the error taxonomy to a re-rendered form: validation
// and conflict errors get field-level messages, everything else the generic
// failure line.
func (h *AuthHandler) registerFailed(c *fiber.Ctx, in services.RegisterInput, err error) error {
	data := fiber.Map{
		"Username": in.Username, "Name": in.Name, "Email": in.Email, "Phone": in.Phone,
		"CSRFToken": c.Cookies("csrf_"),
	}

	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		metrics.RegistrationFailuresTotal.WithLabelValues("validation").Inc()
		applog.Security(c, "auth.register.invalid", map[string]any{"field": ve.Field})
		data["Err"] = ve.Message
		return c.Status(fiber.StatusBadRequest).Render("register", data)
	case errors.Is(err, services.ErrUsernameTaken):
		metrics.RegistrationFailuresTotal.WithLabelValues("username_taken").Inc()
		applog.Security(c, "auth.register.conflict", map[string]any{"field": "username"})
		data["Err"] = "This username is already in use"
		return c.Status(fiber.StatusConflict).Render("register", data)
	case errors.Is(err, services.ErrEmailTaken):
		metrics.RegistrationFailuresTotal.WithLabelValues("email_taken").Inc()
		applog.Security(c, "auth.register.conflict", map[string]any{"field": "email"})
		data["Err"] = "This email is already in use"
		return c.Status(fiber.StatusConflict).Render("register", data)
	default:
		metrics.RegistrationFailuresTotal.WithLabelValues("service").Inc()
		applog.Error(c, "auth.register.fail", err, nil)
		data["Err"] = "Could not complete your registration. Please try again."
		return c.Status(fiber.StatusInternalServerError).Render("register", data)
	}
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
