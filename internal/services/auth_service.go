package services

import (
	"fmt"
	"strings"

	"catalogo/internal/domain"
	"catalogo/internal/validate"

	"github.com/google/uuid"
)

type AuthService struct {
	Sellers SellerStore
	Creds   CredentialService
}

type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register runs the local checks in a fixed order, short-circuiting on the
// first failure, before touching the store; then the username pre-check, the
// credential, and finally the profile row. The check/create sequence is not
// transactional, so two interleaved registrations with the same username can
// both succeed.
func (s *AuthService) Register(in RegisterInput) (*domain.Seller, error) {
	if strings.TrimSpace(in.Username) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Password) == "" {
		return nil, validationErr("form", "Fill in username, email and password")
	}

	phone := validate.Phone(in.Phone)
	if strings.TrimSpace(in.Phone) != "" && len(phone) < 10 {
		return nil, validationErr("phone", "Phone must have at least 10 digits (area code + number)")
	}

	username := validate.Username(in.Username)
	if len(username) < 3 {
		return nil, validationErr("username", "Username must have at least 3 characters")
	}
	if !validate.UsernameValid(username) {
		return nil, validationErr("username", "Username may only contain letters, numbers and underscore")
	}

	if !validate.Password(in.Password) {
		return nil, validationErr("password", "Password must have at least 6 characters")
	}

	name, ok := validate.DisplayName(in.Name)
	if !ok {
		return nil, validationErr("name", "Name is too long")
	}

	exists, err := s.Sellers.UsernameExists(username)
	if err != nil {
		return nil, fmt.Errorf("check username availability: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	email, ok := validate.Email(in.Email)
	if !ok {
		return nil, validationErr("email", "Enter a valid email address")
	}
	hash, err := s.Creds.CreateCredential(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create credential: %w", err)
	}

	seller := &domain.Seller{
		ID:       uuid.NewString(),
		Username: username,
		Name:     name,
		Email:    email,
		Phone:    phone,
		Hash:     hash,
	}
	if err := s.Sellers.Create(seller); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create seller: %w", err)
	}
	return seller, nil
}

func (s *AuthService) Login(sid, email, password string) (*domain.Seller, error) {
	u, err := s.Sellers.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if s.Creds.VerifyCredential(u.Hash, password) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Sellers.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Sellers.UnbindSession(sid)
}

func (s *AuthService) CurrentSeller(sid string) (*domain.Seller, error) {
	return s.Sellers.SessionSeller(sid)
}
