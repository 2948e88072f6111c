package repos

import (
	"database/sql"
	"errors"

	"catalogo/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, seller_id, name, description, price, services, image_data,
    created_at, COALESCE(updated_at,'') AS updated_at`

// ListBySeller returns the seller's products, newest first.
func (r *ProductRepo) ListBySeller(sellerID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE seller_id = ?
	  ORDER BY datetime(created_at) DESC
	`, sellerID)
	return out, err
}

// Get returns (nil, nil) when no product has the key.
func (r *ProductRepo) Get(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, seller_id, name, description, price, services, image_data)
	  VALUES(?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.SellerID, p.Name, p.Description, p.Price, p.Services, p.ImageData)
	return err
}

// Update rewrites the editable fields. An empty imageData keeps the stored
// image, matching the original edit flow.
func (r *ProductRepo) Update(p *domain.Product) error {
	if p.ImageData == "" {
		_, err := r.db.Exec(`
		  UPDATE products SET name=?, description=?, price=?, services=?, updated_at=CURRENT_TIMESTAMP
		  WHERE id=?`,
			p.Name, p.Description, p.Price, p.Services, p.ID)
		return err
	}
	_, err := r.db.Exec(`
	  UPDATE products SET name=?, description=?, price=?, services=?, image_data=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?`,
		p.Name, p.Description, p.Price, p.Services, p.ImageData, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}

// CountsBySeller groups product counts by owner for the admin overview.
func (r *ProductRepo) CountsBySeller() (map[string]int, error) {
	rows := []struct {
		SellerID string `db:"seller_id"`
		N        int    `db:"n"`
	}{}
	if err := r.db.Select(&rows, `SELECT seller_id, COUNT(*) AS n FROM products GROUP BY seller_id`); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.SellerID] = row.N
	}
	return out, nil
}
