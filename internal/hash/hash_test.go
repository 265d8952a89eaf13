package hash

import (
	"testing"
)

func TestParseType(t *testing.T) {
	for _, token := range []string{"nt", "NT", "lm", "md5", "sha1", "SHA256", " sha1 "} {
		if _, err := ParseType(token); err != nil {
			t.Errorf("[hash/ParseType] rejected valid type %q: %s", token, err)
		}
	}
	for _, token := range []string{"", "ntlm", "sha512", "md4"} {
		if _, err := ParseType(token); err == nil {
			t.Errorf("[hash/ParseType] accepted invalid type %q", token)
		}
	}
}

func TestHexLength(t *testing.T) {
	lengths := map[Type]int{
		NT:     32,
		LM:     32,
		MD5:    32,
		SHA1:   40,
		SHA256: 64,
	}
	for hashType, expected := range lengths {
		if hashType.HexLength() != expected {
			t.Errorf("[hash/HexLength] got %d for %s, expected %d", hashType.HexLength(), hashType, expected)
		}
	}
}

func TestNewRecordNormalizes(t *testing.T) {
	record := NewRecord("8846F7EAEE8FB117AD06BDD830B7586C", NT)
	if record.Value != "8846f7eaee8fb117ad06bdd830b7586c" {
		t.Errorf("[hash/NewRecord] got %s, expected lowercase value", record.Value)
	}
}

func TestValid(t *testing.T) {
	if !Valid("8846f7eaee8fb117ad06bdd830b7586c", NT) {
		t.Errorf("[hash/Valid] rejected a valid nt hash")
	}
	if Valid("8846f7eaee8fb117ad06bdd830b7586c", SHA1) {
		t.Errorf("[hash/Valid] accepted a 32-character token as sha1")
	}
	if Valid("8846x7eaee8fb117ad06bdd830b7586c", NT) {
		t.Errorf("[hash/Valid] accepted a token with a non-hex character")
	}
}

func TestDigestPassword(t *testing.T) {
	digests := map[Type]string{
		NT:     "8846f7eaee8fb117ad06bdd830b7586c",
		MD5:    "5f4dcc3b5aa765d61d8327deb882cf99",
		SHA1:   "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8",
		SHA256: "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
	}
	for hashType, expected := range digests {
		digest, err := DigestPassword("password", hashType)
		if err != nil {
			t.Errorf("[hash/DigestPassword] unexpected error for %s: %s", hashType, err)
			continue
		}
		if digest != expected {
			t.Errorf("[hash/DigestPassword] got %s for %s, expected %s", digest, hashType, expected)
		}
	}
}

func TestDigestPasswordLMUnsupported(t *testing.T) {
	if _, err := DigestPassword("password", LM); err == nil {
		t.Errorf("[hash/DigestPassword] expected an error for lm digests")
	}
}
