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

package light

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/core-coin/flyclient-verifier/difficulty"
)

func makeSample(number uint64, preTotal uint64, target difficulty.CompactTarget) SampledHeader {
	return SampledHeader{
		Header: VerifiableHeader{HeaderView: HeaderView{Number: number, CompactTarget: target}},
		ChainRoot: ChainRoot{
			EndNumber:       number,
			TotalDifficulty: uint256.NewInt(preTotal),
		},
	}
}

func TestCheckIfResponseIsMatchedHappyPath(t *testing.T) {
	target := difficulty.CompactTarget(0x03010000)
	d := difficulty.CompactToDifficulty(target)

	lastN := []SampledHeader{makeSample(100, 1000, target)}
	sample := makeSample(50, 500, target)

	checkpoint := new(uint256.Int).Add(uint256.NewInt(500), new(uint256.Int).Div(d, uint256.NewInt(2)))

	req := GetBlockSamples{
		StartNumber:        51,
		DifficultyBoundary: uint256.NewInt(0),
		Difficulties:       []*uint256.Int{checkpoint},
	}

	status := CheckIfResponseIsMatched(req, []SampledHeader{sample}, lastN, 0)
	if !status.OK() {
		t.Fatalf("expected Ok, got %v", status)
	}
}

func TestCheckIfResponseIsMatchedOneSampleCoversTwoCheckpoints(t *testing.T) {
	target := difficulty.CompactTarget(0x03010000)
	d := difficulty.CompactToDifficulty(target)

	lastN := []SampledHeader{makeSample(100, 1000, target)}
	sample := makeSample(50, 500, target)

	// Both checkpoints fall inside this single sample's [L, R] range; both
	// must be consumed, not just the first.
	c1 := new(uint256.Int).Add(uint256.NewInt(500), new(uint256.Int).Div(d, uint256.NewInt(4)))
	c2 := new(uint256.Int).Add(uint256.NewInt(500), new(uint256.Int).Div(d, uint256.NewInt(2)))

	req := GetBlockSamples{
		StartNumber:        51,
		DifficultyBoundary: uint256.NewInt(0),
		Difficulties:       []*uint256.Int{c1, c2},
	}

	status := CheckIfResponseIsMatched(req, []SampledHeader{sample}, lastN, 0)
	if !status.OK() {
		t.Fatalf("expected Ok, got %v", status)
	}
}

func TestCheckIfResponseIsMatchedUnwitnessedCheckpoint(t *testing.T) {
	target := difficulty.CompactTarget(0x03010000)
	d := difficulty.CompactToDifficulty(target)

	lastN := []SampledHeader{makeSample(100, 1000, target)}
	sample := makeSample(50, 500, target)

	// checkpoint far beyond the sample's [L, R] range.
	r := new(uint256.Int).Add(uint256.NewInt(500), d)
	checkpoint := new(uint256.Int).Add(r, uint256.NewInt(1000000))

	req := GetBlockSamples{
		StartNumber:        51,
		DifficultyBoundary: uint256.NewInt(0),
		Difficulties:       []*uint256.Int{checkpoint},
	}

	status := CheckIfResponseIsMatched(req, []SampledHeader{sample}, lastN, 0)
	if status.Code != InvalidTotalDifficultyForSamples {
		t.Fatalf("expected InvalidTotalDifficultyForSamples, got %v", status)
	}
}

func TestCheckIfResponseIsMatchedBoundaryCeiling(t *testing.T) {
	target := difficulty.CompactTarget(0x03010000)

	lastN := make([]SampledHeader, LastNBlocks+1)
	for i := range lastN {
		lastN[i] = makeSample(uint64(i), 0, target)
	}

	req := GetBlockSamples{
		StartNumber:        uint64(len(lastN)),
		DifficultyBoundary: new(uint256.Int).Not(uint256.NewInt(0)), // max, so T < boundary always
	}

	status := CheckIfResponseIsMatched(req, nil, lastN, 0)
	if status.Code != InvalidChainRootForSamples {
		t.Fatalf("expected InvalidChainRootForSamples, got %v", status)
	}
}
