package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken hashes an opaque token for storage at rest; raw token
// values never touch the database.
func HashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return base64.URLEncoding.EncodeToString(hasher.Sum(nil))
}
