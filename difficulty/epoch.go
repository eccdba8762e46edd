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

// EpochNumberWithFraction locates a block within its epoch: number is the
// epoch ordinal, length is the epoch's block count, and index is the block's
// 0-based position inside it.
type EpochNumberWithFraction struct {
	Number uint64
	Index  uint64
	Length uint64
}

// NewEpochNumberWithFraction validates and constructs an
// EpochNumberWithFraction; index must be strictly inside [0, length).
func NewEpochNumberWithFraction(number, index, length uint64) (EpochNumberWithFraction, error) {
	if length == 0 || index >= length {
		return EpochNumberWithFraction{}, ErrInvalidEpoch
	}
	return EpochNumberWithFraction{Number: number, Index: index, Length: length}, nil
}
