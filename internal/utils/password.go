package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost: как в исходном приложении (bcrypt, 10 раундов).
const DefaultBcryptCost = 10

func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash сравнивает пароль с хешем за постоянное время (bcrypt).
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
