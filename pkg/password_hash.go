package pkg

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 14

// HashPassword produces a bcrypt hash suitable for storing in the
// admin credentials env var.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
