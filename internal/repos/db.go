package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a demo catalog if the DB is empty (idempotent; safe every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Sellers
-- Username uniqueness is an application-level pre-check at registration, not
-- a store constraint: two interleaved registrations can both pass the check.
-- Kept as-is; a UNIQUE index here would change observable behavior.
CREATE TABLE IF NOT EXISTS sellers(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL UNIQUE,
  phone TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_sellers_username ON sellers(username);
CREATE UNIQUE INDEX IF NOT EXISTS idx_sellers_email_nocase ON sellers(LOWER(email));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  seller_id TEXT NOT NULL REFERENCES sellers(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL,
  services TEXT NOT NULL DEFAULT '',
  image_data TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_seller     ON products(seller_id);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Sessions
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  seller_id TEXT NULL REFERENCES sellers(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_seller ON sessions(seller_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty inserts one demo seller with a small catalog so a fresh
// install has something to look at.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM sellers`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo seller and products")

	hash, _ := bcrypt.GenerateFromPassword([]byte("mudar123"), 12)

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO sellers(id,username,name,email,phone,password_hash) VALUES
	  ('s-demo','loja_demo','Loja Demo','demo@catalogo.test','11999998888',?)`, string(hash))

	tx.MustExec(`INSERT INTO products(id,seller_id,name,description,price,services) VALUES
	  ('p-caneca','s-demo','Caneca personalizada','Caneca de cerâmica 325ml com estampa própria','39.90',''),
	  ('p-camiseta','s-demo','Camiseta estampada','Malha 100% algodão, tamanhos P ao GG','59.90','Estampa sob medida'),
	  ('p-adesivo','s-demo','Kit de adesivos','Cartela com 12 adesivos em vinil','14.90','')`)

	return tx.Commit()
}
