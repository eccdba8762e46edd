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
	"fmt"

	"github.com/holiman/uint256"

	"github.com/core-coin/flyclient-verifier/difficulty"
)

// CheckIfResponseIsMatched walks the pre-committed difficulty checkpoints in
// req against the server-supplied samples, deciding whether each checkpoint
// is witnessed by exactly one sample whose pre-block cumulative total
// difficulty straddles it.
//
// While the first last-N header's post-block total difficulty is still short
// of req.DifficultyBoundary, checkpoints at or above that post-block total
// are silently dropped rather than rejected: the
// server may still be syncing and the caller learns fresh samples are
// needed only through the TAU re-sampling path, not a distinct signal here.
func CheckIfResponseIsMatched(req GetBlockSamples, sampled, lastN []SampledHeader, mmrActivatedEpoch uint64) Status {
	if len(lastN) == 0 {
		return NewStatus(InvalidChainRootForSamples, "last-n headers must not be empty")
	}
	first := lastN[0]
	if !first.Header.IsValid(mmrActivatedEpoch, nil) {
		return NewStatus(InvalidChainRootForSamples, fmt.Sprintf("chain root invalid for first last-n header #%d", first.Header.Number))
	}

	postTotal := difficulty.SaturatingAdd(first.ChainRoot.TotalDifficulty, difficulty.CompactToDifficulty(first.Header.CompactTarget))

	remaining := make([]*uint256.Int, len(req.Difficulties))
	copy(remaining, req.Difficulties)

	if postTotal.Cmp(req.DifficultyBoundary) < 0 {
		for len(remaining) > 0 && remaining[len(remaining)-1].Cmp(postTotal) >= 0 {
			remaining = remaining[:len(remaining)-1]
		}
		if len(lastN) > LastNBlocks {
			return NewStatus(InvalidChainRootForSamples, "last-n window exceeds ceiling while below the difficulty boundary")
		}
	}

	for _, sample := range sampled {
		if !sample.Header.IsValid(mmrActivatedEpoch, nil) {
			return NewStatus(InvalidChainRootForSamples, fmt.Sprintf("chain root invalid for sampled header #%d", sample.Header.Number))
		}
		l := sample.ChainRoot.TotalDifficulty
		r := difficulty.SaturatingAdd(l, difficulty.CompactToDifficulty(sample.Header.CompactTarget))

		// Consume every checkpoint in [l, r], not just the first: a sample
		// can straddle more than one pre-committed checkpoint.
		matched := false
		for len(remaining) > 0 {
			c := remaining[0]
			if c.Cmp(l) < 0 {
				remaining = remaining[1:]
				continue
			}
			if c.Cmp(r) > 0 {
				break
			}
			remaining = remaining[1:]
			matched = true
		}
		if !matched {
			return NewStatus(InvalidTotalDifficultyForSamples, fmt.Sprintf("sampled header #%d did not cover an expected checkpoint", sample.Header.Number))
		}
	}

	return OkStatus
}
