package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/argon2"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	encoded, err := HashPassword("s3cureP4ssword!")
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Errorf("expected an argon2id encoded hash but got: %s", encoded)
	}
	if !ValidatePassword("s3cureP4ssword!", encoded) {
		t.Error("expected the original password to validate")
	}
	if ValidatePassword("wrong-password", encoded) {
		t.Error("expected a different password to fail validation")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPasswordEmbedsCostSettings(t *testing.T) {
	encoded, err := HashPassword("anything")
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	expectedSettings := fmt.Sprintf("$m=%d,t=%d,p=%d$", argonMemoryKib, argonPasses, argonThreads)
	if !strings.Contains(encoded, expectedSettings) {
		t.Errorf("expected hash to embed settings[%s] but got: %s", expectedSettings, encoded)
	}
}

// Hashes generated under older cost settings must keep validating since
// stored credentials are never rehashed in bulk.
func TestValidatePasswordHonoursEmbeddedCostSettings(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key := argon2.IDKey([]byte("legacy-password"), salt, 3, 64*1024, 4, 32)
	encoded := fmt.Sprintf("$argon2id$v=19$m=65536,t=3,p=4$%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	if !ValidatePassword("legacy-password", encoded) {
		t.Error("expected a hash with older cost settings to validate")
	}
	if ValidatePassword("other-password", encoded) {
		t.Error("expected a different password to fail validation")
	}
}

func TestValidatePasswordRejectsMalformedHashes(t *testing.T) {
	malformed := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=3,p=4$not-base64!$aGFzaA",
		"$argon2id$v=19$missing-parts",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdHNhbHQ$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=4$c2FsdHNhbHQ$aGFzaA",
	}
	for _, encoded := range malformed {
		if ValidatePassword("anything", encoded) {
			t.Errorf("expected hash[%s] to fail validation", encoded)
		}
	}
}
