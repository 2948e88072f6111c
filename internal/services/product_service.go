package services

import (
	"context"
	"fmt"
	"strconv"

	"catalogo/internal/domain"
	applog "catalogo/internal/log"
	"catalogo/internal/validate"

	"github.com/google/uuid"
)

const (
	maxDescriptionLen = 2000
	maxServicesLen    = 500
)

type ProductService struct {
	Products ProductStore
	Notifier CatalogNotifier // nil disables change events
}

type ProductInput struct {
	Name        string
	Description string
	Price       string
	Services    string
	ImageData   string // already-encoded data URL, or empty
}

func (s *ProductService) Create(ctx context.Context, owner *domain.Seller, in ProductInput) (*domain.Product, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return nil, validationErr("name", "Enter the product name (up to 80 characters)")
	}
	price, ok := validate.Price(in.Price)
	if !ok {
		return nil, validationErr("price", "Enter a valid price")
	}

	p := &domain.Product{
		ID:          uuid.NewString(),
		SellerID:    owner.ID,
		Name:        name,
		Description: validate.Text(in.Description, maxDescriptionLen),
		Price:       price,
		Services:    validate.Text(in.Services, maxServicesLen),
		ImageData:   in.ImageData,
	}
	if err := s.Products.Create(p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.notify(ctx, owner, p.ID, "created")
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, owner *domain.Seller, id string, in ProductInput) (*domain.Product, error) {
	p, err := s.ownedProduct(owner, id)
	if err != nil {
		return nil, err
	}

	name, ok := validate.Name(in.Name)
	if !ok {
		return nil, validationErr("name", "Enter the product name (up to 80 characters)")
	}
	price, ok := validate.Price(in.Price)
	if !ok {
		return nil, validationErr("price", "Enter a valid price")
	}

	p.Name = name
	p.Price = price
	p.Description = validate.Text(in.Description, maxDescriptionLen)
	p.Services = validate.Text(in.Services, maxServicesLen)
	p.ImageData = in.ImageData // empty keeps the stored image
	if err := s.Products.Update(p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.notify(ctx, owner, p.ID, "updated")
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, owner *domain.Seller, id string) error {
	p, err := s.ownedProduct(owner, id)
	if err != nil {
		return err
	}
	if err := s.Products.Delete(p.ID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.notify(ctx, owner, p.ID, "deleted")
	return nil
}

func (s *ProductService) ListBySeller(owner *domain.Seller) ([]domain.Product, error) {
	out, err := s.Products.ListBySeller(owner.ID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out, nil
}

// ownedProduct loads a product and enforces that the given seller owns it.
func (s *ProductService) ownedProduct(owner *domain.Seller, id string) (*domain.Product, error) {
	p, err := s.Products.Get(id)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if p.SellerID != owner.ID {
		return nil, ErrForbidden
	}
	return p, nil
}

// notify publishes a change event, best effort. Failures are logged and never
// surface to the seller: the catalog itself always reads from the store.
func (s *ProductService) notify(ctx context.Context, owner *domain.Seller, productID, kind string) {
	if s.Notifier == nil {
		return
	}
	var err error
	switch kind {
	case "created":
		err = s.Notifier.ProductCreated(ctx, owner.Username, owner.ID, productID)
	case "updated":
		err = s.Notifier.ProductUpdated(ctx, owner.Username, owner.ID, productID)
	case "deleted":
		err = s.Notifier.ProductDeleted(ctx, owner.Username, owner.ID, productID)
	}
	if err != nil {
		applog.Error(nil, "catalog.notify.fail", err, map[string]any{"product": productID, "kind": kind})
	}
}

// TotalValue sums the parsed prices of a product list. Unparseable price text
// counts as zero.
func TotalValue(products []domain.Product) float64 {
	var sum float64
	for _, p := range products {
		if v, err := strconv.ParseFloat(p.Price, 64); err == nil {
			sum += v
		}
	}
	return sum
}

// CountWithImage reports how many products carry an image payload.
func CountWithImage(products []domain.Product) int {
	n := 0
	for _, p := range products {
		if p.ImageData != "" {
			n++
		}
	}
	return n
}
