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

// Package light implements the SendBlockSamples verification pipeline of a
// FlyClient-style light-client protocol: the sampling-distribution matcher,
// the TAU and total-difficulty checks, the MMR proof verifier, and the
// coordinator that sequences them per inbound message.
package light

// TAU is the consensus-level maximum multiplicative change in epoch
// difficulty allowed between adjacent epochs.
const TAU = 2

// LastNBlocks is the protocol ceiling on the contiguous last-N header
// window served whole rather than sampled. The value 60 is a placeholder
// chosen for this module, not taken from a consensus source.
const LastNBlocks = 60
