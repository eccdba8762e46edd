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
	"encoding/binary"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/core-coin/flyclient-verifier/common"
	"github.com/core-coin/flyclient-verifier/difficulty"
)

// HeaderView is the decoded view of a chain header the core needs: enough
// to place it within its epoch, chain it to its parent, and derive an MMR
// leaf digest from it.
type HeaderView struct {
	Number        uint64
	Hash          common.Hash
	ParentHash    common.Hash
	Epoch         difficulty.EpochNumberWithFraction
	CompactTarget difficulty.CompactTarget
}

// Digest returns the MMR leaf digest for this header.
func (h HeaderView) Digest() common.Hash {
	d := sha3.New256()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], h.Number)
	d.Write(buf[:])
	d.Write(h.Hash.Bytes())
	d.Write(h.ParentHash.Bytes())
	binary.BigEndian.PutUint64(buf[:], h.Epoch.Number)
	d.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], h.Epoch.Index)
	d.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], h.Epoch.Length)
	d.Write(buf[:])
	binary.BigEndian.PutUint32(buf[:4], uint32(h.CompactTarget))
	d.Write(buf[:4])
	var out common.Hash
	copy(out[:], d.Sum(nil))
	return out
}

// VerifiableHeader is a HeaderView plus an optional MMR root embedded in the
// header itself (e.g. an extra-hash field activated after a consensus
// upgrade).
type VerifiableHeader struct {
	HeaderView
	ExtraHash    common.Hash
	HasExtraHash bool
}

// IsValid reports whether this header post-dates MMR activation and, when
// expectedRoot is supplied, that the header's embedded root matches it.
func (v VerifiableHeader) IsValid(mmrActivatedEpoch uint64, expectedRoot *common.Hash) bool {
	if v.Epoch.Number < mmrActivatedEpoch {
		return false
	}
	if expectedRoot != nil {
		if !v.HasExtraHash || v.ExtraHash != *expectedRoot {
			return false
		}
	}
	return true
}

// ChainRoot is the MMR commitment a server attaches to a sampled header: a
// variable-difficulty MMR node carrying both the cumulative difficulty
// asserted strictly before that header and the node's own digest component
// (the value actually merged up the tree to a peak). EndNumber/
// TotalDifficulty are the metadata the sampling and total-difficulty
// checks operate on directly; Digest is the MMR-proof-compatible value.
type ChainRoot struct {
	EndNumber       uint64
	TotalDifficulty *uint256.Int
	Digest          common.Hash
}

// Bytes returns ChainRoot's canonical encoding, combining the difficulty
// metadata with the node digest. This is what a header's embedded
// extra-hash field commits to (via CalcMMRHash), not what is fed directly
// into the MMR inclusion proof — that is Digest alone, see VerifyMMRProof.
func (c ChainRoot) Bytes() []byte {
	buf := make([]byte, 8+32+32)
	binary.BigEndian.PutUint64(buf[:8], c.EndNumber)
	td := c.TotalDifficulty
	if td == nil {
		td = new(uint256.Int)
	}
	tdBytes := td.Bytes32()
	copy(buf[8:40], tdBytes[:])
	copy(buf[40:], c.Digest.Bytes())
	return buf
}

// CalcMMRHash hashes ChainRoot's canonical encoding, binding the difficulty
// metadata to the node digest into a single value a header's embedded
// extra-hash field can commit to.
func (c ChainRoot) CalcMMRHash() common.Hash {
	sum := sha3.Sum256(c.Bytes())
	return common.Hash(sum)
}

// GetBlockSamples is the prior request held in peer state: the sampling
// challenge the server must answer.
type GetBlockSamples struct {
	StartNumber        uint64
	DifficultyBoundary *uint256.Int
	// Difficulties holds the pre-committed random sampling checkpoints in
	// ascending order.
	Difficulties []*uint256.Int
}

// SampledHeader pairs a header with the ChainRoot asserting the chain state
// immediately before it.
type SampledHeader struct {
	Header    VerifiableHeader
	ChainRoot ChainRoot
}

// SendBlockSamples is the decoded inbound response to a GetBlockSamples
// challenge.
type SendBlockSamples struct {
	Root               ChainRoot
	Proof              [][]byte
	ReorgLastNHeaders  []VerifiableHeader
	SampledHeaders     []SampledHeader
	LastNHeaders       []SampledHeader
}

// LastState is the claimed chain head a ProveRequest is built against.
type LastState struct {
	TipHeader       VerifiableHeader
	TotalDifficulty *uint256.Int
}

// ProveRequest is the outstanding sampling challenge held per peer.
// SkipCheckTAU is flipped on once, after the first TAU-failure re-sample.
type ProveRequest struct {
	LastState    LastState
	Request      GetBlockSamples
	SkipCheckTAU bool
}

// ProveState is the committed outcome of a fully verified SendBlockSamples
// response for a peer.
type ProveState struct {
	Request           ProveRequest
	ReorgLastNHeaders []VerifiableHeader
	LastNHeaders      []SampledHeader
}
