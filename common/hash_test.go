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

package common

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestBytesToHash(t *testing.T) {
	b := []byte{1, 2, 3}
	h := BytesToHash(b)
	if !bytes.Equal(h[HashLength-3:], b) {
		t.Errorf("expected %x, got %x", b, h[HashLength-3:])
	}
}

func TestHashJSONRoundTrip(t *testing.T) {
	h := BytesToHash([]byte{0xde, 0xad, 0xbe, 0xef})
	out, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	var back Hash
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back != h {
		t.Errorf("round trip mismatch: have %x want %x", back, h)
	}
}

func TestHashJSONValidation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{`"deadbeef"`, true},                // missing 0x prefix
		{`"0xde"`, true},                    // too short
		{`"0x` + string(make([]byte, 64)) + `"`, true}, // not hex digits
		{`"0x` + hex64() + `"`, false},
	}
	for _, tc := range tests {
		var h Hash
		err := json.Unmarshal([]byte(tc.input), &h)
		if (err != nil) != tc.wantErr {
			t.Errorf("input %q: wantErr=%v, got err=%v", tc.input, tc.wantErr, err)
		}
	}
}

func hex64() string {
	b := make([]byte, 32)
	out := make([]byte, 64)
	for i := range b {
		out[2*i] = '0'
		out[2*i+1] = '0'
	}
	return string(out)
}
