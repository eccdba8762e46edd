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

	"golang.org/x/crypto/sha3"

	"github.com/core-coin/flyclient-verifier/internal/mmr"
)

func mmrMerge(left, right []byte) []byte {
	h := sha3.New256()
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

// VerifyMMRProof checks that every header's digest belongs to root's MMR at
// the position its block number implies, and that the root matches the
// extra-hash embedded in lastHeader.
func VerifyMMRProof(mmrActivatedEpoch uint64, lastHeader VerifiableHeader, root ChainRoot, rawProof [][]byte, headers []HeaderView) Status {
	proof := mmr.Proof{
		MMRSize: mmr.LeafIndexToMMRSize(root.EndNumber),
		Items:   rawProof,
	}

	leaves := make([]mmr.Leaf, 0, len(headers))
	for _, h := range headers {
		leaves = append(leaves, mmr.Leaf{
			Pos:    mmr.LeafIndexToPos(h.Number),
			Digest: h.Digest().Bytes(),
		})
	}

	// root.Digest is the MMR node value: the thing actually merged up the
	// tree to a peak, same 32-byte width as every header digest and every
	// merge step. root.TotalDifficulty/EndNumber are metadata carried
	// alongside it, not themselves proven against the tree.
	ok, err := proof.Verify(root.Digest.Bytes(), leaves, mmrMerge)
	if err != nil {
		return NewStatus(FailedToVerifyTheProof, fmt.Sprintf("failed to verify the proof since %v", err))
	}
	if !ok {
		return NewStatus(FailedToVerifyTheProof, "failed to verify the mmr proof since the result is false")
	}

	// The header's embedded extra-hash commits to the full root (metadata
	// and digest together), not just root.Digest in isolation.
	expectedRoot := root.CalcMMRHash()
	if !lastHeader.IsValid(mmrActivatedEpoch, &expectedRoot) {
		return NewStatus(FailedToVerifyTheProof, fmt.Sprintf(
			"failed to verify extra hash for block-%d (%s)", lastHeader.Number, lastHeader.Hash.Hex(),
		))
	}
	return OkStatus
}
