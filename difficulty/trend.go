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

// TrendKind classifies how an epoch's difficulty moved between two points.
type TrendKind int

const (
	TrendUnchanged TrendKind = iota
	TrendIncreased
	TrendDecreased
)

// EpochDifficultyTrend classifies the movement between a start and end
// epoch difficulty and provides the bounded-iteration operations (tau
// checking, tau exponent search, epoch-count partitioning) that operate on
// that classification.
type EpochDifficultyTrend struct {
	Kind  TrendKind
	Start *uint256.Int
	End   *uint256.Int
}

// NewEpochDifficultyTrend classifies the movement from startED to endED.
func NewEpochDifficultyTrend(startED, endED *uint256.Int) EpochDifficultyTrend {
	switch startED.Cmp(endED) {
	case 0:
		return EpochDifficultyTrend{Kind: TrendUnchanged, Start: startED, End: endED}
	case -1:
		return EpochDifficultyTrend{Kind: TrendIncreased, Start: startED, End: endED}
	default:
		return EpochDifficultyTrend{Kind: TrendDecreased, Start: startED, End: endED}
	}
}

// CheckTau reports whether End lies within a TAU-bounded multiplicative
// distance of Start over epochsSwitchCount epoch transitions. The bound is
// defined by iterated saturating multiplication (Increased) or iterated
// truncating division (Decreased), not by a closed-form power: for a
// Decreased trend the two are not equivalent, since each epoch truncates
// independently.
func (t EpochDifficultyTrend) CheckTau(tau, epochsSwitchCount uint64) bool {
	tauU := uint256.NewInt(tau)
	switch t.Kind {
	case TrendUnchanged:
		return true
	case TrendIncreased:
		endMax := new(uint256.Int).Set(t.Start)
		for i := uint64(0); i < epochsSwitchCount; i++ {
			endMax = saturatingMul(endMax, tauU)
		}
		return t.End.Cmp(endMax) <= 0
	default:
		endMin := new(uint256.Int).Set(t.Start)
		for i := uint64(0); i < epochsSwitchCount; i++ {
			endMin = divTrunc(endMin, tauU)
		}
		return t.End.Cmp(endMin) >= 0
	}
}

// CalculateTauExponent finds the smallest k < limit such that one more
// multiplicative step by tau would have crossed End, starting from Start.
// The second return value is false if no such k exists within limit.
func (t EpochDifficultyTrend) CalculateTauExponent(tau, limit uint64) (uint64, bool) {
	tauU := uint256.NewInt(tau)
	switch t.Kind {
	case TrendUnchanged:
		return 0, true
	case TrendIncreased:
		tmp := new(uint256.Int).Set(t.Start)
		for k := uint64(0); k < limit; k++ {
			tmp = saturatingMul(tmp, tauU)
			if tmp.Cmp(t.End) >= 0 {
				return k, true
			}
		}
		return 0, false
	default:
		tmp := new(uint256.Int).Set(t.Start)
		for k := uint64(0); k < limit; k++ {
			tmp = divTrunc(tmp, tauU)
			if tmp.Cmp(t.End) <= 0 {
				return k, true
			}
		}
		return 0, false
	}
}

// EstimatedLimit selects whether SplitEpochs partitions epochs to minimize
// or maximize the resulting total-difficulty estimate.
type EstimatedLimit int

const (
	EstimatedLimitMin EstimatedLimit = iota
	EstimatedLimitMax
)

// TrendDirection is the direction assigned to one partitioned group of
// epochs.
type TrendDirection int

const (
	DirectionIncreased TrendDirection = iota
	DirectionDecreased
)

// EpochCountGroupByTrend is one contiguous run of epochs sharing a trend
// direction, used while partitioning a span for a total-difficulty estimate.
type EpochCountGroupByTrend struct {
	Direction TrendDirection
	Count     uint64
}

// Subtract1 decrements the group's count by one; it is a no-op at zero.
func (g *EpochCountGroupByTrend) Subtract1() {
	if g.Count > 0 {
		g.Count--
	}
}

// TrendDetails is the two-group partition SplitEpochs produces: Start is
// applied first, End second.
type TrendDetails struct {
	Start EpochCountGroupByTrend
	End   EpochCountGroupByTrend
}

// TotalEpochsCount returns the number of epochs covered by both groups.
func (d TrendDetails) TotalEpochsCount() uint64 {
	return d.Start.Count + d.End.Count
}

// RemoveLastEpoch drops the contribution of the final epoch in the
// partition, subtracting from the End group, or from Start if End is empty.
func (d *TrendDetails) RemoveLastEpoch() {
	if d.End.Count == 0 {
		d.Start.Subtract1()
		return
	}
	d.End.Subtract1()
}

func ceilDiv2(x uint64) uint64 {
	return (x + 1) / 2
}

// SplitEpochs partitions n epochs, k of which are known to be consistent
// with a single tau step, into two monotonically-trending runs so that the
// accumulated total-difficulty estimate is minimized or maximized according
// to limit.
func (t EpochDifficultyTrend) SplitEpochs(limit EstimatedLimit, n, k uint64) TrendDetails {
	switch t.Kind {
	case TrendUnchanged:
		c := ceilDiv2(n)
		if limit == EstimatedLimitMin {
			return TrendDetails{
				Start: EpochCountGroupByTrend{DirectionDecreased, c},
				End:   EpochCountGroupByTrend{DirectionIncreased, n - c},
			}
		}
		return TrendDetails{
			Start: EpochCountGroupByTrend{DirectionIncreased, c},
			End:   EpochCountGroupByTrend{DirectionDecreased, n - c},
		}
	case TrendIncreased:
		if limit == EstimatedLimitMin {
			c := ceilDiv2(n - k)
			return TrendDetails{
				Start: EpochCountGroupByTrend{DirectionDecreased, c},
				End:   EpochCountGroupByTrend{DirectionIncreased, n - c},
			}
		}
		c := ceilDiv2(n-k) + k
		return TrendDetails{
			Start: EpochCountGroupByTrend{DirectionIncreased, c},
			End:   EpochCountGroupByTrend{DirectionDecreased, n - c},
		}
	default: // TrendDecreased
		if limit == EstimatedLimitMin {
			c := ceilDiv2(n-k) + k
			return TrendDetails{
				Start: EpochCountGroupByTrend{DirectionDecreased, c},
				End:   EpochCountGroupByTrend{DirectionIncreased, n - c},
			}
		}
		c := ceilDiv2(n - k)
		return TrendDetails{
			Start: EpochCountGroupByTrend{DirectionIncreased, c},
			End:   EpochCountGroupByTrend{DirectionDecreased, n - c},
		}
	}
}

// CalculateTotalDifficultyLimit accumulates the sum of per-epoch
// difficulties implied by walking details' groups in order, starting from
// startED. Overflow on the checked addition is a fatal invariant violation:
// it can only happen if an earlier check failed to reject malicious input,
// so this panics rather than returning an error.
func CalculateTotalDifficultyLimit(startED *uint256.Int, tau uint64, details TrendDetails) *uint256.Int {
	curr := new(uint256.Int).Set(startED)
	total := new(uint256.Int)
	tauU := uint256.NewInt(tau)

	for _, group := range [2]EpochCountGroupByTrend{details.Start, details.End} {
		for i := uint64(0); i < group.Count; i++ {
			if group.Direction == DirectionIncreased {
				curr = saturatingMul(curr, tauU)
			} else {
				curr = divTrunc(curr, tauU)
			}
			var ok bool
			total, ok = checkedAdd(total, curr)
			if !ok {
				panic("difficulty: checked addition overflowed u256 while accumulating total difficulty limit")
			}
		}
	}
	return total
}
