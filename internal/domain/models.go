package domain

type Seller struct {
	ID        string `db:"id"`
	Username  string `db:"username"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"` // digits only after normalization
	Hash      string `db:"password_hash"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

// DisplayName is what public pages and WhatsApp messages call the seller.
func (s *Seller) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return "@" + s.Username
}

type Product struct {
	ID          string `db:"id"`
	SellerID    string `db:"seller_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       string `db:"price"` // decimal-as-text, as entered
	Services    string `db:"services"`
	ImageData   string `db:"image_data"` // data: URL or empty
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

// Catalog is the public view of a seller and their products, assembled on
// demand and never stored.
type Catalog struct {
	Seller   Seller
	Products []Product
}
