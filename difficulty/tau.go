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

// VerifyTAU checks the epoch-difficulty change between two endpoints against
// the TAU bound. The returned bool is true when TAU is violated (the caller
// must re-sample), not when verification failed outright; a non-nil error
// means the inputs themselves are inconsistent (see ErrInvalidCompactTarget).
func VerifyTAU(tau uint64, startEpoch, endEpoch EpochNumberWithFraction, startTarget, endTarget CompactTarget) (bool, error) {
	if startEpoch.Number == endEpoch.Number {
		if startTarget != endTarget {
			return false, ErrInvalidCompactTarget
		}
		return false, nil
	}

	startED := new(uint256.Int).Mul(CompactToDifficulty(startTarget), uint256.NewInt(startEpoch.Length))
	endED := new(uint256.Int).Mul(CompactToDifficulty(endTarget), uint256.NewInt(endEpoch.Length))

	trend := NewEpochDifficultyTrend(startED, endED)
	violated := !trend.CheckTau(tau, endEpoch.Number-startEpoch.Number)
	return violated, nil
}
