package services

import (
	"fmt"

	"catalogo/internal/domain"
	"catalogo/internal/validate"
)

type CatalogService struct {
	Sellers  SellerStore
	Products ProductStore
}

func NewCatalogService(sellers SellerStore, products ProductStore) *CatalogService {
	return &CatalogService{Sellers: sellers, Products: products}
}

// Resolve assembles the public catalog for a raw identifier: normalize, one
// seller read, then one owner-scoped product read. A miss on the seller read
// returns ErrNotFound without querying products. The result is recomputed on
// every call; nothing is cached.
func (s *CatalogService) Resolve(rawUsername string) (*domain.Catalog, error) {
	username := validate.Username(rawUsername)

	seller, err := s.Sellers.ByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("load seller %q: %w", username, err)
	}
	if seller == nil {
		return nil, ErrNotFound
	}

	products, err := s.Products.ListBySeller(seller.ID)
	if err != nil {
		return nil, fmt.Errorf("load products for %q: %w", username, err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	return &domain.Catalog{Seller: *seller, Products: products}, nil
}
