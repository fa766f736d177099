package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id cost settings for administrator credentials, sized for a
// login endpoint that is hit a handful of times per day per shelter.
// Every hash embeds the settings it was generated with, so these can
// be raised later without invalidating stored credentials.
const (
	argonMemoryKib uint32 = 19 * 1024
	argonPasses    uint32 = 2
	argonThreads   uint8  = 1
	argonKeyLen    uint32 = 32
	argonSaltLen          = 16
	argonVersion          = argon2.Version
)

type argonSettings struct {
	MemoryKib uint32
	Passes    uint32
	Threads   uint8
}

// HashPassword derives an argon2id hash of the password under a fresh
// random salt and returns it in PHC string format.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate a salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, argonPasses, argonMemoryKib, argonThreads, argonKeyLen)
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argonVersion, argonMemoryKib, argonPasses, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// ValidatePassword reports whether the password matches the encoded
// hash. Any hash that fails to decode is treated as a mismatch.
func ValidatePassword(password, encoded string) bool {
	settings, salt, expected, err := decodePasswordHash(encoded)
	if err != nil {
		return false
	}
	computed := argon2.IDKey([]byte(password), salt, settings.Passes, settings.MemoryKib, settings.Threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1
}

func decodePasswordHash(encoded string) (argonSettings, []byte, []byte, error) {
	var settings argonSettings

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return settings, nil, nil, fmt.Errorf("failed to split hash into its sections")
	}
	if parts[1] != "argon2id" {
		return settings, nil, nil, fmt.Errorf("failed to recognise variant[%s]", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return settings, nil, nil, fmt.Errorf("failed to parse version: %w", err)
	}
	if version != argonVersion {
		return settings, nil, nil, fmt.Errorf("failed to match version[%d]", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &settings.MemoryKib, &settings.Passes, &settings.Threads); err != nil {
		return settings, nil, nil, fmt.Errorf("failed to parse cost settings: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return settings, nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return settings, nil, nil, fmt.Errorf("failed to decode key: %w", err)
	}
	return settings, salt, key, nil
}
