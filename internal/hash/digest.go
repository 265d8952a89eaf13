package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf16"

	"golang.org/x/crypto/md4"
)

// DigestPassword computes the hash a candidate password would have under the given type.
// Used for local custom-password checks only, the lookup pipeline never hashes locally.
func DigestPassword(password string, hashType Type) (string, error) {
	switch hashType {
	case NT:
		digest := md4.New()
		digest.Write(encodeUTF16LE(password))
		return hex.EncodeToString(digest.Sum(nil)), nil
	case MD5:
		sum := md5.Sum([]byte(password))
		return hex.EncodeToString(sum[:]), nil
	case SHA1:
		sum := sha1.Sum([]byte(password))
		return hex.EncodeToString(sum[:]), nil
	case SHA256:
		sum := sha256.Sum256([]byte(password))
		return hex.EncodeToString(sum[:]), nil
	case LM:
		return "", errors.New("lm digests are not supported for local password checks")
	}
	return "", fmt.Errorf("unsupported hash type %q", hashType)
}

// NT hashes are MD4 over the UTF-16LE encoding of the password
func encodeUTF16LE(password string) []byte {
	codeUnits := utf16.Encode([]rune(password))
	encoded := make([]byte, len(codeUnits)*2)
	for index, unit := range codeUnits {
		binary.LittleEndian.PutUint16(encoded[index*2:], unit)
	}
	return encoded
}
