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
	"bytes"
	"errors"
)

// ErrCorruptedProof is returned when a proof does not carry enough items to
// climb from a leaf to its peak, or a leaf's claimed position does not
// belong to the MMR of the stated size.
var ErrCorruptedProof = errors.New("mmr: corrupted proof")

// MergeFunc combines a left and right child digest into their parent digest.
type MergeFunc func(left, right []byte) []byte

// Leaf is a single (position, digest) inclusion claim.
type Leaf struct {
	Pos    uint64
	Digest []byte
}

// Proof is a batch inclusion proof: the sibling digests needed to climb from
// every claimed leaf up to the bagged root of an MMR of size MMRSize.
type Proof struct {
	MMRSize uint64
	Items   [][]byte
}

// CalculateRoot recomputes the MMR root implied by leaves and the proof's
// sibling items.
func (p Proof) CalculateRoot(leaves []Leaf, merge MergeFunc) ([]byte, error) {
	if len(leaves) == 0 {
		return nil, ErrCorruptedProof
	}
	sorted := make([]Leaf, len(leaves))
	copy(sorted, leaves)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Pos > sorted[j].Pos; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	if p.MMRSize == 1 && len(sorted) == 1 && sorted[0].Pos == 0 {
		return sorted[0].Digest, nil
	}

	peakPositions := peaks(p.MMRSize)
	proofItems := p.Items

	var peakHashes [][]byte
	for _, peakPos := range peakPositions {
		var group []Leaf
		for len(sorted) > 0 && sorted[0].Pos <= peakPos {
			group = append(group, sorted[0])
			sorted = sorted[1:]
		}

		var root []byte
		var err error
		switch {
		case len(group) == 1 && group[0].Pos == peakPos:
			root = group[0].Digest
		case len(group) == 0:
			if len(proofItems) == 0 {
				return nil, ErrCorruptedProof
			}
			root, proofItems = proofItems[0], proofItems[1:]
		default:
			root, proofItems, err = calculatePeakRoot(group, peakPos, proofItems, merge)
			if err != nil {
				return nil, err
			}
		}
		peakHashes = append(peakHashes, root)
	}
	if len(sorted) > 0 {
		return nil, ErrCorruptedProof
	}

	peakHashes = append(peakHashes, proofItems...)

	return baggingPeakHashes(peakHashes, merge)
}

// Verify reports whether the proof resolves leaves to the given root.
func (p Proof) Verify(root []byte, leaves []Leaf, merge MergeFunc) (bool, error) {
	calculated, err := p.CalculateRoot(leaves, merge)
	if err != nil {
		return false, err
	}
	return bytes.Equal(calculated, root), nil
}

type queueEntry struct {
	pos    uint64
	digest []byte
	height uint64
}

func calculatePeakRoot(group []Leaf, peakPos uint64, proofItems [][]byte, merge MergeFunc) ([]byte, [][]byte, error) {
	queue := make([]queueEntry, 0, len(group))
	for _, l := range group {
		queue = append(queue, queueEntry{pos: l.Pos, digest: l.Digest, height: 0})
	}

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if entry.pos == peakPos {
			if len(queue) == 0 {
				return entry.digest, proofItems, nil
			}
			return nil, nil, ErrCorruptedProof
		}

		nextHeight := posHeightInTree(entry.pos + 1)
		var sibPos, parentPos uint64
		isRightChild := nextHeight > entry.height
		off := siblingOffset(entry.height)
		if isRightChild {
			sibPos = entry.pos - off
			parentPos = entry.pos + 1
		} else {
			sibPos = entry.pos + off
			parentPos = entry.pos + parentOffset(entry.height)
		}

		var sibDigest []byte
		if len(queue) > 0 && queue[0].pos == sibPos {
			sibDigest = queue[0].digest
			queue = queue[1:]
		} else {
			if len(proofItems) == 0 {
				return nil, nil, ErrCorruptedProof
			}
			sibDigest, proofItems = proofItems[0], proofItems[1:]
		}

		var parentDigest []byte
		if isRightChild {
			parentDigest = merge(sibDigest, entry.digest)
		} else {
			parentDigest = merge(entry.digest, sibDigest)
		}

		if parentPos < peakPos {
			queue = append(queue, queueEntry{pos: parentPos, digest: parentDigest, height: entry.height + 1})
		} else {
			return parentDigest, proofItems, nil
		}
	}
	return nil, nil, ErrCorruptedProof
}

func baggingPeakHashes(peakHashes [][]byte, merge MergeFunc) ([]byte, error) {
	if len(peakHashes) == 0 {
		return nil, ErrCorruptedProof
	}
	for len(peakHashes) > 1 {
		n := len(peakHashes)
		right := peakHashes[n-1]
		left := peakHashes[n-2]
		peakHashes = peakHashes[:n-2]
		peakHashes = append(peakHashes, merge(right, left))
	}
	return peakHashes[0], nil
}
