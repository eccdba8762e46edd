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

import "fmt"

// StatusCode is the closed set of failure modes the verification core
// surfaces. Other subsystems own their own codes; these never overlap them.
type StatusCode int

const (
	// StatusOK is the zero value: no error.
	StatusOK StatusCode = iota
	PeerIsNotOnProcess
	InvalidChainRootForSamples
	InvalidTotalDifficultyForSamples
	InvalidReorgHeaders
	InvalidParentHash
	InvalidCompactTarget
	FailedToVerifyTheProof
	InvalidTotalDifficulty
)

func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "Ok"
	case PeerIsNotOnProcess:
		return "PeerIsNotOnProcess"
	case InvalidChainRootForSamples:
		return "InvalidChainRootForSamples"
	case InvalidTotalDifficultyForSamples:
		return "InvalidTotalDifficultyForSamples"
	case InvalidReorgHeaders:
		return "InvalidReorgHeaders"
	case InvalidParentHash:
		return "InvalidParentHash"
	case InvalidCompactTarget:
		return "InvalidCompactTarget"
	case FailedToVerifyTheProof:
		return "FailedToVerifyTheProof"
	case InvalidTotalDifficulty:
		return "InvalidTotalDifficulty"
	default:
		return fmt.Sprintf("StatusCode(%d)", int(c))
	}
}

// Status is the tagged result of a verification step: either Ok, or an
// error code carrying diagnostic context.
type Status struct {
	Code    StatusCode
	Context string
}

// OK reports whether s represents success.
func (s Status) OK() bool { return s.Code == StatusOK }

// Error implements the error interface so a Status can be returned and
// checked anywhere ordinary Go errors are.
func (s Status) Error() string {
	if s.Context == "" {
		return s.Code.String()
	}
	return fmt.Sprintf("%s: %s", s.Code, s.Context)
}

// OkStatus is the canonical success value.
var OkStatus = Status{Code: StatusOK}

// NewStatus builds a failing Status with diagnostic context.
func NewStatus(code StatusCode, context string) Status {
	return Status{Code: code, Context: context}
}
