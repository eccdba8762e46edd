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

// Package difficulty implements the fixed-256-bit epoch-difficulty arithmetic
// the verification core is built on: compact-target decoding, the TAU bound,
// and the algebraic total-difficulty range check.
package difficulty

import (
	"errors"

	"github.com/holiman/uint256"
)

var maxU256 = new(uint256.Int).Not(uint256.NewInt(0))

// ErrInvalidCompactTarget is returned when two endpoints of the same epoch
// report different compact targets.
var ErrInvalidCompactTarget = errors.New("difficulty: endpoints in the same epoch report different compact targets")

// ErrTotalDifficultyNotMonotonic is returned when a later tip reports a
// total difficulty lower than an earlier one.
var ErrTotalDifficultyNotMonotonic = errors.New("difficulty: total difficulty did not increase across the span")

// ErrTauExponentNotFound is returned when no tau exponent within the span's
// epoch count explains the observed difficulty trend.
var ErrTauExponentNotFound = errors.New("difficulty: no tau exponent explains the observed trend within the span")

// ErrInvalidTotalDifficulty is returned when the observed total-difficulty
// delta falls outside the algebraic bound implied by the endpoints.
var ErrInvalidTotalDifficulty = errors.New("difficulty: total difficulty delta outside the allowed bound")

// ErrInvalidEpoch is returned by NewEpochNumberWithFraction when index is not
// strictly inside [0, length).
var ErrInvalidEpoch = errors.New("difficulty: epoch index must satisfy 0 <= index < length")

// saturatingMul multiplies a by b, clamping to the maximum U256 value on
// overflow instead of wrapping.
func saturatingMul(a, b *uint256.Int) *uint256.Int {
	res, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return new(uint256.Int).Set(maxU256)
	}
	return res
}

// SaturatingAdd adds a and b, clamping to the maximum U256 value on overflow
// instead of wrapping. Used wherever a post-block total difficulty is
// derived from a chain root's pre-block total plus a single block's
// difficulty.
func SaturatingAdd(a, b *uint256.Int) *uint256.Int {
	res, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return new(uint256.Int).Set(maxU256)
	}
	return res
}

// divTrunc performs truncating integer division; dividing by zero yields
// zero, matching uint256's convention.
func divTrunc(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Div(a, b)
}

// checkedAdd adds a and b; the second return value is false if the result
// overflowed 256 bits.
func checkedAdd(a, b *uint256.Int) (*uint256.Int, bool) {
	res, overflow := new(uint256.Int).AddOverflow(a, b)
	return res, !overflow
}
