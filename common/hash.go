// Copyright 2020 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

// Package common holds the small set of shared value types the verification
// core needs: a fixed-size digest type and its hex/JSON codec.
package common

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashLength is the expected length of a Hash, in bytes.
const HashLength = 32

// Hash represents a 32-byte MMR/header digest.
type Hash [HashLength]byte

// BytesToHash sets the last HashLength bytes of b as Hash, left-padding or
// truncating from the left as needed.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// Bytes returns the raw byte slice backing h.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the 0x-prefixed hex encoding of h.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool { return h == Hash{} }

// MarshalJSON implements json.Marshaler, encoding h as a 0x-prefixed hex
// string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

// UnmarshalJSON implements json.Unmarshaler. It requires a 0x-prefixed string
// of exactly 2*HashLength hex digits.
func (h *Hash) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return fmt.Errorf("json: cannot unmarshal hex string into Go value of type common.Hash: %w", err)
	}
	if len(s) < 2 || s[0:2] != "0x" {
		return fmt.Errorf("json: cannot unmarshal hex string without 0x prefix into Go value of type common.Hash")
	}
	s = s[2:]
	if len(s)%2 != 0 {
		return fmt.Errorf("json: cannot unmarshal hex string of odd length into Go value of type common.Hash")
	}
	if len(s) != 2*HashLength {
		return fmt.Errorf("hex string has length %d, want %d for common.Hash", len(s), 2*HashLength)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("json: invalid hex string for common.Hash: %w", err)
	}
	copy(h[:], decoded)
	return nil
}
