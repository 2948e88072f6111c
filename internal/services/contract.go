package services

import (
	"context"

	"catalogo/internal/domain"
)

// Store contracts consumed by the services. The sqlx repos are the production
// implementations; tests substitute mocks to observe call behavior.

type SellerStore interface {
	ByUsername(username string) (*domain.Seller, error)
	UsernameExists(username string) (bool, error)
	ByEmail(email string) (*domain.Seller, error)
	Create(s *domain.Seller) error
	BindSession(sid, sellerID string) error
	SessionSeller(sid string) (*domain.Seller, error)
	UnbindSession(sid string) error
}

type ProductStore interface {
	ListBySeller(sellerID string) ([]domain.Product, error)
	Get(id string) (*domain.Product, error)
	Create(p *domain.Product) error
	Update(p *domain.Product) error
	Delete(id string) error
}

// CredentialService owns account secrets. BcryptCredentials is the production
// implementation.
type CredentialService interface {
	CreateCredential(secret string) (string, error)
	VerifyCredential(hash, secret string) error
}

// CatalogNotifier receives best-effort change notifications after product
// writes. Optional: a nil notifier disables publishing, and catalog reads
// never depend on it.
type CatalogNotifier interface {
	ProductCreated(ctx context.Context, username, sellerID, productID string) error
	ProductUpdated(ctx context.Context, username, sellerID, productID string) error
	ProductDeleted(ctx context.Context, username, sellerID, productID string) error
}
