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
	"github.com/holiman/uint256"

	"github.com/core-coin/flyclient-verifier/difficulty"
	"github.com/core-coin/flyclient-verifier/internal/xlog"
)

// Peers is the narrow per-peer collaborator contract the pipeline needs:
// reading the outstanding challenge and installing its replacement on the
// TAU re-sampling path. Implementations must serialize calls per peer; see
// PeerStore.
type Peers interface {
	GetProveRequest(peer string) (ProveRequest, bool)
	GetProveState(peer string) (ProveState, bool)
	SubmitProveRequest(peer string, req ProveRequest)
}

// Protocol collects the verification core's external collaborators that
// this package deliberately does not implement: PoW checking, challenge
// construction, the MMR activation epoch, and state commitment.
type Protocol interface {
	CheckPoWForHeaders(headers []HeaderView) Status
	BuildProveRequestContent(last LastState, newTip VerifiableHeader, totalDifficulty *uint256.Int) (GetBlockSamples, bool)
	MMRActivatedEpoch() uint64
	CommitProveState(peer string, state ProveState)
}

// NetworkContext is the fire-and-forget reply sink used on the TAU
// re-sampling path.
type NetworkContext interface {
	Reply(peer string, req ProveRequest)
}

// Process coordinates the SendBlockSamples verification pipeline for one
// peer. It is single-threaded per invocation and has no suspension points;
// Execute runs each check in sequence and returns the first failing Status,
// or OkStatus once every check has passed. On success it either sends a
// re-sample request (after a TAU violation, when BuildProveRequestContent
// yields one; otherwise nothing is sent) or commits a ProveState.
type Process struct {
	Peers    Peers
	Protocol Protocol
	NC       NetworkContext
}

// Execute runs the full pipeline for an inbound SendBlockSamples message.
func (p *Process) Execute(peer string, msg SendBlockSamples) Status {
	req, ok := p.Peers.GetProveRequest(peer)
	if !ok {
		return NewStatus(PeerIsNotOnProcess, "")
	}

	if status := CheckIfResponseIsMatched(req.Request, msg.SampledHeaders, msg.LastNHeaders, p.Protocol.MMRActivatedEpoch()); !status.OK() {
		return status
	}

	reorgViews := headerViewsOf(msg.ReorgLastNHeaders)
	sampledViews := headerViewsOfSamples(msg.SampledHeaders)
	lastNViews := headerViewsOfSamples(msg.LastNHeaders)

	all := make([]HeaderView, 0, len(reorgViews)+len(sampledViews)+len(lastNViews))
	all = append(all, reorgViews...)
	all = append(all, sampledViews...)
	all = append(all, lastNViews...)

	if status := p.Protocol.CheckPoWForHeaders(all); !status.OK() {
		return status
	}

	failedToVerifyTAU := false
	if !req.SkipCheckTAU && len(sampledViews) > 0 && len(lastNViews) > 0 {
		first := sampledViews[0]
		last := lastNViews[len(lastNViews)-1]
		violated, err := difficulty.VerifyTAU(TAU, first.Epoch, last.Epoch, first.CompactTarget, last.CompactTarget)
		if err != nil {
			return NewStatus(InvalidCompactTarget, err.Error())
		}
		failedToVerifyTAU = violated
		if violated {
			xlog.Trace("tau bound violated, will request fresh samples", "peer", peer)
		}
	}

	if len(msg.ReorgLastNHeaders) > 0 {
		if reorgViews[len(reorgViews)-1].Number+1 != req.Request.StartNumber {
			return NewStatus(InvalidReorgHeaders, "")
		}
	}

	if status := CheckContinuousHeaders(reorgViews); !status.OK() {
		return status
	}
	if status := CheckContinuousHeaders(lastNViews); !status.OK() {
		return status
	}

	// The tip this whole exchange is trying to prove was fixed when the
	// challenge was built, not recomputed from this response: both the
	// MMR-proof anchor and the total-difficulty comparison below use
	// req.LastState exactly as it was when BuildProveRequestContent
	// produced this round's GetBlockSamples.
	lastHeader := req.LastState.TipHeader
	lastTotalDifficulty := req.LastState.TotalDifficulty

	if status := VerifyMMRProof(p.Protocol.MMRActivatedEpoch(), lastHeader, msg.Root, msg.Proof, all); !status.OK() {
		return status
	}

	if len(msg.SampledHeaders) > 0 {
		if prevState, ok := p.Peers.GetProveState(peer); ok {
			prevLast := prevState.Request.LastState.TipHeader
			prevTD := prevState.Request.LastState.TotalDifficulty
			if err := difficulty.VerifyTotalDifficulty(
				TAU,
				prevLast.Epoch, lastHeader.Epoch,
				prevLast.CompactTarget, lastHeader.CompactTarget,
				prevTD, lastTotalDifficulty,
			); err != nil {
				return NewStatus(InvalidTotalDifficulty, err.Error())
			}
		}
	}

	if failedToVerifyTAU {
		newSamples, ok := p.Protocol.BuildProveRequestContent(req.LastState, lastHeader, lastTotalDifficulty)
		if ok {
			fresh := ProveRequest{LastState: LastState{TipHeader: lastHeader, TotalDifficulty: lastTotalDifficulty}, Request: newSamples, SkipCheckTAU: true}
			p.Peers.SubmitProveRequest(peer, fresh)
			p.NC.Reply(peer, fresh)
		}
		return OkStatus
	}

	state := ProveState{
		Request:           req,
		ReorgLastNHeaders: msg.ReorgLastNHeaders,
		LastNHeaders:      msg.LastNHeaders,
	}
	p.Protocol.CommitProveState(peer, state)
	return OkStatus
}

func headerViewsOf(headers []VerifiableHeader) []HeaderView {
	out := make([]HeaderView, len(headers))
	for i, h := range headers {
		out[i] = h.HeaderView
	}
	return out
}

func headerViewsOfSamples(samples []SampledHeader) []HeaderView {
	out := make([]HeaderView, len(samples))
	for i, s := range samples {
		out[i] = s.Header.HeaderView
	}
	return out
}
