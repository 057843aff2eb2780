package repository

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// PHC-style scrypt strings: $scrypt$ln=15,r=8,p=1$<salt>$<key>. The
// parameters live in the hash so they can be raised later without
// invalidating stored credentials.
const (
	scryptLogN  = 15
	scryptR     = 8
	scryptP     = 1
	saltLength  = 16
	keyLength   = 32
	hashVariant = "scrypt"
)

// HashPassword derives a salted scrypt hash with a freshly generated random
// salt. Only the resulting string is ever persisted.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %v", err)
	}

	key, err := scrypt.Key([]byte(password), salt, 1<<scryptLogN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %v", err)
	}

	enc := base64.RawStdEncoding
	return fmt.Sprintf("$%s$ln=%d,r=%d,p=%d$%s$%s",
		hashVariant, scryptLogN, scryptR, scryptP,
		enc.EncodeToString(salt), enc.EncodeToString(key)), nil
}

// VerifyPassword re-derives the key with the parameters stored in the hash
// and compares in constant time. Any parse or derivation problem is reported
// the same way as a mismatch.
func VerifyPassword(hash, password string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != hashVariant {
		return false
	}

	var logN, r, p int
	if _, err := fmt.Sscanf(parts[2], "ln=%d,r=%d,p=%d", &logN, &r, &p); err != nil {
		return false
	}
	if logN <= 0 || logN > 31 || r <= 0 || p <= 0 {
		return false
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[3])
	if err != nil {
		return false
	}
	want, err := enc.DecodeString(parts[4])
	if err != nil {
		return false
	}

	got, err := scrypt.Key([]byte(password), salt, 1<<logN, r, p, len(want))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}
