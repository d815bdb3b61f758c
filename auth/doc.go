// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth proves that an HTTP caller owns the address it claims.

# Caller Keys

Caller keys use HMAC-SHA256 over the 20 address bytes:

	key := auth.GenerateCallerKey(addr, salt)
	err := auth.ValidateCallerKey(addr, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same address and salt always produce the same key, so keys are never
stored. The operator issues keys out of band (see the -issue-key flag) and
clients send them in the X-Caller-Key header next to X-Caller-Address.

Rotating CALLER_KEY_SALT invalidates every issued key.
*/
package auth
