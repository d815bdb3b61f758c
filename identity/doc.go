// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity defines the caller identity used by every voting operation.

# Addresses

An Address is a 20-byte opaque handle. Its text form is lowercase hex with
a 0x prefix:

	addr, err := identity.ParseAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	fmt.Println(addr) // 0x5b38da6a701c568545dcfcb03fcb875f56beddc4

Parsing accepts either case and an optional prefix. Address implements
encoding.TextMarshaler, so it round-trips through JSON as a string and can
be used directly as a map key.
*/
package identity
