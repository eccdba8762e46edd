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

package mmr

import (
	"crypto/sha256"
	"testing"
)

func merge(left, right []byte) []byte {
	h := sha256.New()
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

func leafDigest(i int) []byte {
	h := sha256.Sum256([]byte{byte(i)})
	return h[:]
}

func TestLeafIndexToPosSequence(t *testing.T) {
	// Known first few MMR positions for leaves 0..6 (CKB/grin layout):
	// 0, 1, 3, 4, 7, 8, 10
	want := []uint64{0, 1, 3, 4, 7, 8, 10}
	for i, w := range want {
		if got := LeafIndexToPos(uint64(i)); got != w {
			t.Errorf("leaf %d: got pos %d, want %d", i, got, w)
		}
	}
}

func TestSingleLeafMMR(t *testing.T) {
	p := Proof{MMRSize: 1}
	leaf := Leaf{Pos: 0, Digest: leafDigest(0)}
	ok, err := p.Verify(leaf.Digest, []Leaf{leaf}, merge)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("single leaf MMR should verify trivially against itself")
	}
}

func TestTwoLeafMMR(t *testing.T) {
	d0, d1 := leafDigest(0), leafDigest(1)
	root := merge(d0, d1)

	p := Proof{MMRSize: LeafIndexToMMRSize(1), Items: [][]byte{d1}}
	ok, err := p.Verify(root, []Leaf{{Pos: 0, Digest: d0}}, merge)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected leaf 0 to verify against the two-leaf root")
	}

	p2 := Proof{MMRSize: LeafIndexToMMRSize(1), Items: [][]byte{d0}}
	ok2, err := p2.Verify(root, []Leaf{{Pos: 1, Digest: d1}}, merge)
	if err != nil {
		t.Fatal(err)
	}
	if !ok2 {
		t.Error("expected leaf 1 to verify against the two-leaf root")
	}
}

func TestTwoLeafMMRRejectsWrongRoot(t *testing.T) {
	d0, d1 := leafDigest(0), leafDigest(1)
	badRoot := merge(d1, d0)

	p := Proof{MMRSize: LeafIndexToMMRSize(1), Items: [][]byte{d1}}
	ok, err := p.Verify(badRoot, []Leaf{{Pos: 0, Digest: d0}}, merge)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("swapped merge order must not verify")
	}
}
