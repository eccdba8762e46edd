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

// Package mmr implements the position arithmetic and proof verification of a
// Merkle Mountain Range: an append-only, peak-bagged authenticated structure
// addressed by position rather than leaf index.
package mmr

import "math/bits"

// LeafIndexToMMRSize returns the size (position count) of the smallest MMR
// that contains index+1 leaves.
func LeafIndexToMMRSize(index uint64) uint64 {
	leavesCount := index + 1
	return 2*leavesCount - uint64(bits.OnesCount64(leavesCount))
}

// LeafIndexToPos maps a 0-based leaf index to its position within the MMR.
func LeafIndexToPos(index uint64) uint64 {
	return LeafIndexToMMRSize(index) - uint64(trailingOnes(index)+1)
}

func trailingOnes(x uint64) uint64 {
	return uint64(bits.TrailingZeros64(^x))
}

func allOnes(x uint64) bool {
	return x != 0 && uint64(bits.OnesCount64(x)) == uint64(bitLength(x))
}

func bitLength(x uint64) int {
	return 64 - bits.LeadingZeros64(x)
}

func jumpLeft(pos uint64) uint64 {
	msb := uint64(1) << uint(bitLength(pos)-1)
	return pos - (msb - 1)
}

// posHeightInTree returns the height (0 for leaves) of the node at pos.
func posHeightInTree(pos uint64) uint64 {
	pos++
	for !allOnes(pos) {
		pos = jumpLeft(pos)
	}
	return uint64(bitLength(pos) - 1)
}

func siblingOffset(height uint64) uint64 {
	return (2 << height) - 1
}

func parentOffset(height uint64) uint64 {
	return 2 << height
}

func peakPosByHeight(height uint64) uint64 {
	return (uint64(1) << (height + 1)) - 2
}

func leftPeakHeightPos(mmrSize uint64) (uint64, uint64) {
	height := uint64(1)
	var prevPos uint64
	pos := peakPosByHeight(height)
	for pos < mmrSize {
		height++
		prevPos = pos
		pos = peakPosByHeight(height)
	}
	return height - 1, prevPos
}

func getRightPeak(height, pos, mmrSize uint64) (uint64, uint64, bool) {
	pos += siblingOffset(height)
	for pos > mmrSize-1 {
		if height == 0 {
			return 0, 0, false
		}
		height--
		pos -= parentOffset(height)
	}
	return height, pos, true
}

// peaks returns the positions of every peak in an MMR of the given size, in
// ascending order.
func peaks(mmrSize uint64) []uint64 {
	if mmrSize == 0 {
		return nil
	}
	var out []uint64
	height, pos := leftPeakHeightPos(mmrSize)
	out = append(out, pos)
	for height > 0 {
		h, p, ok := getRightPeak(height, pos, mmrSize)
		if !ok {
			break
		}
		height, pos = h, p
		out = append(out, pos)
	}
	return out
}
