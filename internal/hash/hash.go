package hash

import (
	"fmt"
	"strings"
)

// Type is a supported hash algorithm for remote lookups
type Type string

const (
	NT     Type = "nt"
	LM     Type = "lm"
	MD5    Type = "md5"
	SHA1   Type = "sha1"
	SHA256 Type = "sha256"
)

// ParseType reads a hash type from a user-supplied token
func ParseType(token string) (Type, error) {
	hashType := Type(strings.ToLower(strings.TrimSpace(token)))
	switch hashType {
	case NT, LM, MD5, SHA1, SHA256:
		return hashType, nil
	}
	return "", fmt.Errorf("unsupported hash type %q (supported: nt, lm, md5, sha1, sha256)", token)
}

// HexLength is the exact number of hexadecimal characters in a hash of this type
func (hashType Type) HexLength() int {
	switch hashType {
	case SHA1:
		return 40
	case SHA256:
		return 64
	}
	return 32
}

// Record is one extracted hash, stored normalized to lowercase
type Record struct {
	Value string
	Type  Type
}

// NewRecord constructs a record with a normalized value
func NewRecord(value string, hashType Type) Record {
	return Record{
		Value: Normalize(value),
		Type:  hashType,
	}
}

// Normalize maps a hash value to its canonical lowercase form
func Normalize(value string) string {
	return strings.ToLower(value)
}

// IsHexChar reports whether a byte is a hexadecimal digit in either case
func IsHexChar(character byte) bool {
	return (character >= '0' && character <= '9') ||
		(character >= 'a' && character <= 'f') ||
		(character >= 'A' && character <= 'F')
}

// Valid reports whether a token has the exact length and charset of a hash of this type
func Valid(token string, hashType Type) bool {
	if len(token) != hashType.HexLength() {
		return false
	}
	for i := 0; i < len(token); i++ {
		if !IsHexChar(token[i]) {
			return false
		}
	}
	return true
}
