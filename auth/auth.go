// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/danielhkuo/quickly-vote/identity"
)

var ErrInvalidCallerKey = errors.New("invalid caller key")

// GenerateCallerKey creates the HMAC-based key proving ownership of addr
// This is deterministic and verifiable
func GenerateCallerKey(addr identity.Address, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write(addr[:])
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateCallerKey checks if the provided key was issued for addr
func ValidateCallerKey(addr identity.Address, key, salt string) error {
	expected := GenerateCallerKey(addr, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidCallerKey
	}
	return nil
}
