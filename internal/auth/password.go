package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost balances brute-force resistance against login latency.
const DefaultBcryptCost = 10

// HashPassword hashes a plaintext password with the configured cost.
// bcrypt generates a fresh random salt per call, so equal inputs yield
// distinct digests.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored digest.
// A malformed digest verifies false rather than surfacing an error, so
// callers cannot distinguish it from a wrong password.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
