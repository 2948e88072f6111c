package handlers

import (
	"catalogo/internal/config"
	"catalogo/internal/repos"
	"catalogo/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler      *AuthHandler
	CatalogHandler   *CatalogHandler
	DashboardHandler *DashboardHandler
	AdminHandler     *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService, notifier services.CatalogNotifier) *Deps {
	sellerRepo := repos.NewSellerRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(sellerRepo, prodRepo)
	productSvc := &services.ProductService{Products: prodRepo, Notifier: notifier}
	adminSvc := &services.AdminService{Sellers: sellerRepo, Products: prodRepo}

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: auth},
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc, Sellers: sellerRepo, Cfg: cfg},
		DashboardHandler: &DashboardHandler{Products: productSvc, Sellers: sellerRepo, Cfg: cfg},
		AdminHandler:     &AdminHandler{Admin: adminSvc},
	}
}
