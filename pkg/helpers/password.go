package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash at the default cost. The salt lives
// inside the hash, so two calls with the same input produce distinct values.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
