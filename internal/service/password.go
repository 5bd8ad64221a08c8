package service

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// PasswordHasher wraps the one-way hash used for credentials. The hash
// is salted per call, so equal passwords produce distinct digests.
type PasswordHasher struct{}

func (PasswordHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
