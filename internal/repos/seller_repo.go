package repos

import (
	"database/sql"
	"errors"

	"catalogo/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SellerRepo struct{ DB *sqlx.DB }

func NewSellerRepo(db *sqlx.DB) *SellerRepo { return &SellerRepo{DB: db} }

const sellerCols = `id,username,name,email,phone,password_hash,created_at,COALESCE(updated_at,'') AS updated_at`

// ByUsername looks up a seller by normalized identifier. Usernames are stored
// lower-case, so plain equality is a case-insensitive match for callers that
// normalize first. Returns (nil, nil) on no match.
func (r *SellerRepo) ByUsername(username string) (*domain.Seller, error) {
	var s domain.Seller
	err := r.DB.Get(&s, `SELECT `+sellerCols+` FROM sellers WHERE username=?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UsernameExists is the registration pre-check: one read, equality filter.
func (r *SellerRepo) UsernameExists(username string) (bool, error) {
	var n int
	if err := r.DB.Get(&n, `SELECT COUNT(*) FROM sellers WHERE username=?`, username); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SellerRepo) ByEmail(email string) (*domain.Seller, error) {
	var s domain.Seller
	err := r.DB.Get(&s, `SELECT `+sellerCols+` FROM sellers WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SellerRepo) ByID(id string) (*domain.Seller, error) {
	var s domain.Seller
	err := r.DB.Get(&s, `SELECT `+sellerCols+` FROM sellers WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SellerRepo) Create(s *domain.Seller) error {
	_, err := r.DB.Exec(`
		INSERT INTO sellers(id,username,name,email,phone,password_hash)
		VALUES(?,?,?,?,?,?)`,
		s.ID, s.Username, s.Name, s.Email, s.Phone, s.Hash)
	return err
}

// UpdateProfile changes the mutable profile fields. The username is immutable
// after registration and deliberately absent here.
func (r *SellerRepo) UpdateProfile(id, name, phone string) error {
	_, err := r.DB.Exec(`
		UPDATE sellers SET name=?, phone=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		name, phone, id)
	return err
}

// ListAll returns every seller, newest first. Admin overview only.
func (r *SellerRepo) ListAll() ([]domain.Seller, error) {
	var out []domain.Seller
	err := r.DB.Select(&out, `SELECT `+sellerCols+` FROM sellers ORDER BY datetime(created_at) DESC`)
	return out, err
}

// ListRecent returns the newest sellers for the landing page.
func (r *SellerRepo) ListRecent(limit int) ([]domain.Seller, error) {
	if limit <= 0 {
		limit = 8
	}
	var out []domain.Seller
	err := r.DB.Select(&out, `SELECT `+sellerCols+` FROM sellers ORDER BY datetime(created_at) DESC LIMIT ?`, limit)
	return out, err
}

// ---------- Sessions ----------

func (r *SellerRepo) BindSession(sid, sellerID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,seller_id,last_seen)
	                      VALUES(?,?,CURRENT_TIMESTAMP)
	                      ON CONFLICT(id) DO UPDATE SET seller_id=excluded.seller_id,last_seen=CURRENT_TIMESTAMP`,
		sid, sellerID)
	return err
}

func (r *SellerRepo) SessionSeller(sid string) (*domain.Seller, error) {
	var s domain.Seller
	err := r.DB.Get(&s, `
	  SELECT u.id,u.username,u.name,u.email,u.phone,u.password_hash,u.created_at,COALESCE(u.updated_at,'') AS updated_at
	  FROM sessions se
	  JOIN sellers u ON u.id=se.seller_id
	  WHERE se.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SellerRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET seller_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
