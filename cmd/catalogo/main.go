package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalogo/internal/broker"
	"catalogo/internal/config"
	"catalogo/internal/http/handlers"
	applog "catalogo/internal/log"
	"catalogo/internal/repos"
	"catalogo/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			applog.Init(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	sellerRepo := repos.NewSellerRepo(db)
	authSvc := &services.AuthService{Sellers: sellerRepo, Creds: services.BcryptCredentials{}}

	// Optional catalog change events
	var notifier services.CatalogNotifier
	var producer *broker.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		notifier = broker.NewEventPublisher(producer)
		log.Printf("[broker] publishing catalog events to %s", cfg.Kafka.Topic)
	}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(cfg.Env == "development")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Body guard: the product form may carry an image of up to 2 MiB
	app.Server().MaxRequestBodySize = 4 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach seller to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentSeller(sid); err == nil && u != nil {
				c.Locals("seller", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return string(c.Request().URI().Path()) == "/metrics"
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc, notifier)

	// Landing & ops
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth (login and registration throttled)
	authLimiter := func(max int, window time.Duration, action string) fiber.Handler {
		return limiter.New(limiter.Config{
			Max:        max,
			Expiration: window,
			LimitReached: func(c *fiber.Ctx) error {
				applog.Security(c, action, nil)
				return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
			},
		})
	}
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", authLimiter(5, 10*time.Minute, "rate.login.hit"), deps.AuthHandler.Login)
	app.Get("/register", deps.AuthHandler.RegisterForm)
	app.Post("/register", authLimiter(10, 10*time.Minute, "rate.register.hit"), deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Seller dashboard
	dash := app.Group("/dashboard", handlers.RequireSeller(authSvc))
	dash.Get("/", deps.DashboardHandler.View)
	dash.Post("/products", deps.DashboardHandler.Create)
	dash.Post("/products/:id", deps.DashboardHandler.Update)
	dash.Post("/products/:id/delete", deps.DashboardHandler.Delete)
	dash.Post("/profile", deps.DashboardHandler.UpdateProfile)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc, cfg))
	admin.Get("/", deps.AdminHandler.Dashboard)

	// Public catalogs, addressed by username. Registered after every fixed
	// route so those take precedence.
	app.Get("/:username", deps.CatalogHandler.Show)
	app.Get("/:username/product/:id", deps.CatalogHandler.ProductDetail)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down...")
		_ = app.Shutdown()
		if producer != nil {
			_ = producer.Close()
		}
	}()

	log.Fatal(app.Listen(":" + cfg.Port))
}
