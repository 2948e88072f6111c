package services_test

import (
	"errors"

	"catalogo/internal/domain"
)

// Counting fakes for the store and credential contracts, so tests can assert
// which external calls a flow makes.

type fakeSellerStore struct {
	sellers map[string]*domain.Seller // by username

	existsCalls  int
	createCalls  int
	byUserCalls  int
	sessionCalls int

	existsErr error
	createErr error

	created []*domain.Seller
}

func newFakeSellerStore(sellers ...*domain.Seller) *fakeSellerStore {
	m := make(map[string]*domain.Seller, len(sellers))
	for _, s := range sellers {
		m[s.Username] = s
	}
	return &fakeSellerStore{sellers: m}
}

func (f *fakeSellerStore) ByUsername(username string) (*domain.Seller, error) {
	f.byUserCalls++
	return f.sellers[username], nil
}

func (f *fakeSellerStore) UsernameExists(username string) (bool, error) {
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.sellers[username]
	return ok, nil
}

func (f *fakeSellerStore) ByEmail(email string) (*domain.Seller, error) {
	for _, s := range f.sellers {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, errors.New("no rows")
}

func (f *fakeSellerStore) Create(s *domain.Seller) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.sellers[s.Username] = s
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSellerStore) BindSession(sid, sellerID string) error { f.sessionCalls++; return nil }
func (f *fakeSellerStore) SessionSeller(sid string) (*domain.Seller, error) {
	return nil, errors.New("no rows")
}
func (f *fakeSellerStore) UnbindSession(sid string) error { return nil }

type fakeCreds struct {
	createCalls int
}

func (f *fakeCreds) CreateCredential(secret string) (string, error) {
	f.createCalls++
	return "hash:" + secret, nil
}

func (f *fakeCreds) VerifyCredential(hash, secret string) error {
	if hash == "hash:"+secret {
		return nil
	}
	return errors.New("mismatch")
}

type fakeProductStore struct {
	products map[string]*domain.Product

	listCalls   int
	getCalls    int
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeProductStore(products ...*domain.Product) *fakeProductStore {
	m := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductStore{products: m}
}

func (f *fakeProductStore) ListBySeller(sellerID string) ([]domain.Product, error) {
	f.listCalls++
	var out []domain.Product
	for _, p := range f.products {
		if p.SellerID == sellerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// Get returns a copy, like a row scan would.
func (f *fakeProductStore) Get(id string) (*domain.Product, error) {
	f.getCalls++
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) Create(p *domain.Product) error {
	f.createCalls++
	f.products[p.ID] = p
	return nil
}

// Update mirrors the repo contract: an empty ImageData keeps the stored image.
func (f *fakeProductStore) Update(p *domain.Product) error {
	f.updateCalls++
	cp := *p
	if cp.ImageData == "" {
		if prev, ok := f.products[cp.ID]; ok {
			cp.ImageData = prev.ImageData
		}
	}
	f.products[cp.ID] = &cp
	return nil
}

func (f *fakeProductStore) Delete(id string) error {
	f.deleteCalls++
	delete(f.products, id)
	return nil
}
