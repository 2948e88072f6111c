package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo/internal/domain"
	"catalogo/internal/services"
)

func TestResolveUnknownUsername(t *testing.T) {
	sellers := newFakeSellerStore()
	products := newFakeProductStore()
	svc := services.NewCatalogService(sellers, products)

	_, err := svc.Resolve("nobody")

	require.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, 1, sellers.byUserCalls)
	assert.Zero(t, products.listCalls, "a seller miss must not query products")
}

func TestResolveNormalizesLookup(t *testing.T) {
	sellers := newFakeSellerStore(&domain.Seller{ID: "s1", Username: "maria"})
	svc := services.NewCatalogService(sellers, newFakeProductStore())

	cat, err := svc.Resolve("  MARIA! ")
	require.NoError(t, err)
	assert.Equal(t, "maria", cat.Seller.Username)
}

func TestResolveEmptyCatalog(t *testing.T) {
	sellers := newFakeSellerStore(&domain.Seller{ID: "s1", Username: "maria"})
	svc := services.NewCatalogService(sellers, newFakeProductStore())

	cat, err := svc.Resolve("maria")
	require.NoError(t, err)
	require.NotNil(t, cat.Products)
	assert.Empty(t, cat.Products)
}

func TestResolveScopedToOwner(t *testing.T) {
	sellers := newFakeSellerStore(
		&domain.Seller{ID: "s1", Username: "maria"},
		&domain.Seller{ID: "s2", Username: "joao"},
	)
	products := newFakeProductStore(
		&domain.Product{ID: "p1", SellerID: "s1", Name: "Caneca", Price: "39.90"},
		&domain.Product{ID: "p2", SellerID: "s2", Name: "Camiseta", Price: "59.90"},
	)
	svc := services.NewCatalogService(sellers, products)

	cat, err := svc.Resolve("maria")
	require.NoError(t, err)
	require.Len(t, cat.Products, 1)
	assert.Equal(t, "p1", cat.Products[0].ID)
}
