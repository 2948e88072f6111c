package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"catalogo/internal/config"
	"catalogo/internal/domain"
	"catalogo/internal/http/handlers"
	"catalogo/internal/repos"
	"catalogo/internal/services"
)

func newDashboardApp(t *testing.T) (*fiber.App, *repos.SellerRepo, *repos.ProductRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{BaseURL: "http://localhost:8080", CountryCode: "55"}
	sellerRepo := repos.NewSellerRepo(db)
	prodRepo := repos.NewProductRepo(db)
	authSvc := &services.AuthService{Sellers: sellerRepo, Creds: &services.BcryptCredentials{}}
	dashH := &handlers.DashboardHandler{
		Products: &services.ProductService{Products: prodRepo},
		Sellers:  sellerRepo,
		Cfg:      cfg,
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	dash := app.Group("/dashboard", handlers.RequireSeller(authSvc))
	dash.Get("/", dashH.View)
	dash.Post("/products", dashH.Create)
	dash.Post("/products/:id", dashH.Update)
	dash.Post("/products/:id/delete", dashH.Delete)
	dash.Post("/profile", dashH.UpdateProfile)
	return app, sellerRepo, prodRepo
}

func dashPost(t *testing.T, app *fiber.App, sid, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestDashboardRequiresLogin(t *testing.T) {
	app, _, _ := newDashboardApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect to login, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected /login, got %q", loc)
	}
}

func TestDashboardListsOwnProducts(t *testing.T) {
	app, sellerRepo, _ := newDashboardApp(t)
	if err := sellerRepo.BindSession("sid-demo", "s-demo"); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/dashboard/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-demo"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"Caneca personalizada", "Camiseta estampada", "Kit de adesivos"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("product %q missing from dashboard", want)
		}
	}
}

func TestProductCreateUpdateDelete(t *testing.T) {
	app, sellerRepo, prodRepo := newDashboardApp(t)
	if err := sellerRepo.BindSession("sid-demo", "s-demo"); err != nil {
		t.Fatal(err)
	}

	// Create with a comma-separated price
	resp := dashPost(t, app, "sid-demo", "/dashboard/products",
		"name=Chaveiro&price=9,90&description=Chaveiro+de+acrilico")
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected redirect on create, got %d: %s", resp.StatusCode, body)
	}

	list, err := prodRepo.ListBySeller("s-demo")
	if err != nil {
		t.Fatal(err)
	}
	var created *domain.Product
	for i := range list {
		if list[i].Name == "Chaveiro" {
			created = &list[i]
		}
	}
	if created == nil {
		t.Fatal("created product not stored")
	}
	if created.Price != "9.90" {
		t.Fatalf("price not normalized: %q", created.Price)
	}

	// Update
	resp = dashPost(t, app, "sid-demo", "/dashboard/products/"+created.ID,
		"name=Chaveiro+grande&price=12.50")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on update, got %d", resp.StatusCode)
	}
	got, err := prodRepo.Get(created.ID)
	if err != nil || got == nil {
		t.Fatalf("updated product missing: %v", err)
	}
	if got.Name != "Chaveiro grande" || got.Price != "12.50" {
		t.Fatalf("update not applied: %+v", got)
	}

	// Delete
	resp = dashPost(t, app, "sid-demo", "/dashboard/products/"+created.ID+"/delete", "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on delete, got %d", resp.StatusCode)
	}
	got, err = prodRepo.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("product still present after delete")
	}
}

func TestProductCreateRejectsInvalidForm(t *testing.T) {
	app, sellerRepo, _ := newDashboardApp(t)
	if err := sellerRepo.BindSession("sid-demo", "s-demo"); err != nil {
		t.Fatal(err)
	}

	resp := dashPost(t, app, "sid-demo", "/dashboard/products", "name=Chaveiro&price=gratis")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad price, got %d", resp.StatusCode)
	}

	resp = dashPost(t, app, "sid-demo", "/dashboard/products", "name=&price=9.90")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", resp.StatusCode)
	}
}

func TestProfileUpdate(t *testing.T) {
	app, sellerRepo, _ := newDashboardApp(t)
	if err := sellerRepo.BindSession("sid-demo", "s-demo"); err != nil {
		t.Fatal(err)
	}

	resp := dashPost(t, app, "sid-demo", "/dashboard/profile",
		"name=Loja+Demo+Atualizada&phone=%2811%29+97777-6666")
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected redirect on profile update, got %d: %s", resp.StatusCode, body)
	}

	u, err := sellerRepo.ByID("s-demo")
	if err != nil {
		t.Fatal(err)
	}
	if u.Name != "Loja Demo Atualizada" {
		t.Fatalf("name not updated: %q", u.Name)
	}
	if u.Phone != "11977776666" {
		t.Fatalf("phone not normalized on update: %q", u.Phone)
	}
	// Username never changes through the profile form
	if u.Username != "loja_demo" {
		t.Fatalf("username must be immutable, got %q", u.Username)
	}

	// Short phone rejected
	resp = dashPost(t, app, "sid-demo", "/dashboard/profile", "name=Loja&phone=999")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for short phone, got %d", resp.StatusCode)
	}
}

func TestProductOwnershipEnforced(t *testing.T) {
	app, sellerRepo, prodRepo := newDashboardApp(t)

	// A second seller with their own session
	if err := sellerRepo.Create(&domain.Seller{
		ID: "s-other", Username: "outra", Email: "outra@example.com", Hash: "x",
	}); err != nil {
		t.Fatal(err)
	}
	if err := sellerRepo.BindSession("sid-other", "s-other"); err != nil {
		t.Fatal(err)
	}

	// Try to edit and delete the demo seller's product
	resp := dashPost(t, app, "sid-other", "/dashboard/products/p-caneca", "name=Hijacked&price=1")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 editing another seller's product, got %d", resp.StatusCode)
	}
	resp = dashPost(t, app, "sid-other", "/dashboard/products/p-caneca/delete", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 deleting another seller's product, got %d", resp.StatusCode)
	}

	got, err := prodRepo.Get("p-caneca")
	if err != nil || got == nil {
		t.Fatalf("product should survive: %v", err)
	}
	if got.Name != "Caneca personalizada" {
		t.Fatalf("product was modified: %+v", got)
	}
}
