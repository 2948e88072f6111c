package services

import "golang.org/x/crypto/bcrypt"

// BcryptCredentials implements CredentialService with bcrypt hashes stored on
// the seller row.
type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) cost() int {
	if b.Cost == 0 {
		return 12
	}
	return b.Cost
}

func (b BcryptCredentials) CreateCredential(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), b.cost())
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b BcryptCredentials) VerifyCredential(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
