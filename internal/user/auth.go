package user

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Scheme selects how new passwords are hashed.
type Scheme string

const (
	// SchemeLegacy is the additive rotation transform carried over from
	// the original tool: output[i] = input[i] + (i*7)%26. It is NOT a
	// cryptographic hash and is trivially invertible; it exists only so
	// snapshots written by the original keep verifying.
	SchemeLegacy Scheme = "legacy"
	// SchemeBcrypt is the vetted replacement. Hashes produced under it
	// are not compatible with legacy-era snapshots.
	SchemeBcrypt Scheme = "bcrypt"
)

func (s Scheme) Valid() bool {
	return s == SchemeLegacy || s == SchemeBcrypt
}

// HashLegacy applies the legacy per-position offset to each byte.
// Deterministic: the same input always yields the same output.
func HashLegacy(password string) string {
	out := []byte(password)
	for i := range out {
		out[i] += byte((i * 7) % 26)
	}
	return string(out)
}

func hashBcrypt(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// Hash derives a stored credential under the given scheme.
func Hash(password string, scheme Scheme) (string, error) {
	if scheme == SchemeBcrypt {
		return hashBcrypt(password)
	}
	return HashLegacy(password), nil
}

// Verify recomputes the candidate against the stored hash. Bcrypt
// hashes carry the "$2" version prefix; anything else is treated as a
// legacy hash, so mixed stores verify correctly.
func Verify(hashed, password string) bool {
	if strings.HasPrefix(hashed, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
	}
	return hashed == HashLegacy(password)
}
