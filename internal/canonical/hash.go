package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for algorithm migration.
const (
	DomainModule    = "jscompat/module/v1"
	DomainSource    = "jscompat/source/v1"
	DomainConfig    = "jscompat/config/v1"
	DomainTransform = "jscompat/transform/v1"
	DomainToolchain = "jscompat/toolchain/v1"
)

// Hash computes SHA256(domain + 0x00 + data) as lowercase hex.
// The null separator keeps domain and data from running together.
func Hash(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// HashValue canonically marshals v and hashes it under domain.
func HashValue(domain string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", domain, err)
	}
	return Hash(domain, data), nil
}
