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

package difficulty

import "github.com/holiman/uint256"

// CompactTarget is the 32-bit floating-point-like encoding of a per-block
// difficulty threshold: an 8-bit exponent and 24-bit mantissa.
type CompactTarget uint32

// CompactToTarget decodes a CompactTarget into its full-width target value.
// The second return value reports whether the encoding overflows the range
// representable without loss, mirroring the behavior consensus code must
// account for when deriving a difficulty from it.
func CompactToTarget(compact CompactTarget) (*uint256.Int, bool) {
	exponent := uint32(compact) >> 24
	mantissa := new(uint256.Int).SetUint64(uint64(uint32(compact) & 0x00ffffff))

	var target *uint256.Int
	if exponent <= 3 {
		mantissa = new(uint256.Int).Rsh(mantissa, uint(8*(3-exponent)))
		target = mantissa
	} else {
		target = new(uint256.Int).Lsh(mantissa, uint(8*(exponent-3)))
	}

	overflow := !mantissa.IsZero() &&
		(exponent > 32 || (mantissa.Cmp(uint256.NewInt(0xff)) > 0 && exponent > 31))
	return target, overflow
}

// CompactToDifficulty converts a compact target into the per-block
// difficulty it represents: the maximum U256 value divided by the target. An
// overflowing encoding yields zero difficulty, matching ckb's
// compact_to_difficulty.
func CompactToDifficulty(compact CompactTarget) *uint256.Int {
	target, overflow := CompactToTarget(compact)
	if overflow || target.IsZero() {
		return new(uint256.Int)
	}
	return new(uint256.Int).Div(maxU256, target)
}
