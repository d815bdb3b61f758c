// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"encoding/hex"
	"errors"
	"strings"
)

// AddressLength is the number of bytes in an Address
const AddressLength = 20

var ErrInvalidAddress = errors.New("invalid address")

// Address is an opaque, fixed-width caller identity
type Address [AddressLength]byte

// ParseAddress decodes a hex address. The 0x prefix is optional and
// the comparison is case-insensitive.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != AddressLength*2 {
		return a, ErrInvalidAddress
	}
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return a, ErrInvalidAddress
	}
	return a, nil
}

// MustParseAddress is ParseAddress for constants and tests
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic("identity: " + err.Error() + ": " + s)
	}
	return a
}

// String returns the lowercase 0x-prefixed hex form
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
