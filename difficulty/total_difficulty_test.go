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

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestVerifyTotalDifficultySameEpoch(t *testing.T) {
	start, _ := NewEpochNumberWithFraction(5, 2, 100)
	end, _ := NewEpochNumberWithFraction(5, 7, 100)
	target := CompactTarget(0x03010000)
	db := CompactToDifficulty(target)

	startTD := uint256.NewInt(1000)
	delta := new(uint256.Int).Mul(db, uint256.NewInt(5))
	endTD := new(uint256.Int).Add(startTD, delta)

	if err := VerifyTotalDifficulty(2, start, end, target, target, startTD, endTD); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	offByOne := new(uint256.Int).AddUint64(endTD, 1)
	if err := VerifyTotalDifficulty(2, start, end, target, target, startTD, offByOne); err != ErrInvalidTotalDifficulty {
		t.Errorf("expected ErrInvalidTotalDifficulty, got %v", err)
	}
}

func TestVerifyTotalDifficultyCrossEpochSingleSwitch(t *testing.T) {
	startEpoch, _ := NewEpochNumberWithFraction(5, 97, 100)
	endEpoch, _ := NewEpochNumberWithFraction(6, 2, 100)
	startTarget := CompactTarget(0x03010000)
	endTarget := CompactTarget(0x03010000)

	dbs := CompactToDifficulty(startTarget)
	dbe := CompactToDifficulty(endTarget)
	unaligned := new(uint256.Int).Add(
		new(uint256.Int).Mul(dbs, uint256.NewInt(100-97-1)),
		new(uint256.Int).Mul(dbe, uint256.NewInt(2+1)),
	)

	startTD := uint256.NewInt(1000)
	endTD := new(uint256.Int).Add(startTD, unaligned)

	if err := VerifyTotalDifficulty(2, startEpoch, endEpoch, startTarget, endTarget, startTD, endTD); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	offByOne := new(uint256.Int).AddUint64(endTD, 1)
	if err := VerifyTotalDifficulty(2, startEpoch, endEpoch, startTarget, endTarget, startTD, offByOne); err != ErrInvalidTotalDifficulty {
		t.Errorf("expected ErrInvalidTotalDifficulty, got %v", err)
	}
}

func TestVerifyTotalDifficultyNotMonotonic(t *testing.T) {
	start, _ := NewEpochNumberWithFraction(5, 2, 100)
	end, _ := NewEpochNumberWithFraction(5, 7, 100)
	target := CompactTarget(0x03010000)

	err := VerifyTotalDifficulty(2, start, end, target, target, uint256.NewInt(1000), uint256.NewInt(999))
	if err != ErrTotalDifficultyNotMonotonic {
		t.Errorf("expected ErrTotalDifficultyNotMonotonic, got %v", err)
	}
}
