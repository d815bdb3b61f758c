// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"lowercase with prefix", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4", false},
		{"mixed case", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", "0x5b38da6a701c568545dcfcb03fcb875f56beddc4", false},
		{"no prefix", "ab8483f64d9c6d1ecf9b849ae677dd3315835cb2", "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2", false},
		{"surrounding space", "  0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2 ", "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2", false},
		{"empty", "", "", true},
		{"too short", "0x1234", "", true},
		{"too long", "0x5b38da6a701c568545dcfcb03fcb875f56beddc400", "", true},
		{"not hex", "0xzz38da6a701c568545dcfcb03fcb875f56beddc4", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAddress) {
					t.Fatalf("ParseAddress(%q) error = %v, want ErrInvalidAddress", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAddress(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAddress(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := MustParseAddress("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2")

	data, err := json.Marshal(map[string]Address{"voter": addr})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"voter":"0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded map[string]Address
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["voter"] != addr {
		t.Errorf("decoded %s, want %s", decoded["voter"], addr)
	}

	var bad Address
	if err := json.Unmarshal([]byte(`"0x12"`), &bad); err == nil {
		t.Error("expected error decoding short address")
	}
}

func TestAddressIsZero(t *testing.T) {
	var zero Address
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if MustParseAddress("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2").IsZero() {
		t.Error("non-zero address reported IsZero")
	}
}
