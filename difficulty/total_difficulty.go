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

// VerifyTotalDifficulty checks that endTD - startTD is algebraically
// consistent with the compact targets observed at both endpoints, under
// variable-difficulty MMR rules bounded by tau.
func VerifyTotalDifficulty(
	tau uint64,
	startEpoch, endEpoch EpochNumberWithFraction,
	startTarget, endTarget CompactTarget,
	startTD, endTD *uint256.Int,
) error {
	if startTD.Cmp(endTD) > 0 {
		return ErrTotalDifficultyNotMonotonic
	}
	delta := new(uint256.Int).Sub(endTD, startTD)

	dbs := CompactToDifficulty(startTarget)
	dbe := CompactToDifficulty(endTarget)

	if startEpoch.Number == endEpoch.Number {
		want := new(uint256.Int).Mul(dbs, uint256.NewInt(endEpoch.Index-startEpoch.Index))
		if delta.Cmp(want) != 0 {
			return ErrInvalidTotalDifficulty
		}
		return nil
	}

	n := endEpoch.Number - startEpoch.Number
	unaligned := new(uint256.Int).Add(
		new(uint256.Int).Mul(dbs, uint256.NewInt(startEpoch.Length-startEpoch.Index-1)),
		new(uint256.Int).Mul(dbe, uint256.NewInt(endEpoch.Index+1)),
	)

	startED := new(uint256.Int).Mul(dbs, uint256.NewInt(startEpoch.Length))
	endED := new(uint256.Int).Mul(dbe, uint256.NewInt(endEpoch.Length))
	trend := NewEpochDifficultyTrend(startED, endED)

	k, ok := trend.CalculateTauExponent(tau, n)
	if !ok {
		return ErrTauExponentNotFound
	}

	if n == 1 {
		if delta.Cmp(unaligned) != 0 {
			return ErrInvalidTotalDifficulty
		}
		return nil
	}

	minDetails := trend.SplitEpochs(EstimatedLimitMin, n, k)
	minDetails.RemoveLastEpoch()
	maxDetails := trend.SplitEpochs(EstimatedLimitMax, n, k)
	maxDetails.RemoveLastEpoch()

	alignedMin := CalculateTotalDifficultyLimit(startED, tau, minDetails)
	alignedMax := CalculateTotalDifficultyLimit(startED, tau, maxDetails)

	lower := new(uint256.Int).Add(unaligned, alignedMin)
	upper := new(uint256.Int).Add(unaligned, alignedMax)

	if delta.Cmp(lower) < 0 || delta.Cmp(upper) > 0 {
		return ErrInvalidTotalDifficulty
	}
	return nil
}
