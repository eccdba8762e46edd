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

// CheckContinuousHeaders verifies that each header's hash is its successor's
// parent hash. The first break found is reported with the offending block
// number in Context.
func CheckContinuousHeaders(headers []HeaderView) Status {
	for i := 0; i+1 < len(headers); i++ {
		if headers[i].Hash != headers[i+1].ParentHash {
			return NewStatus(InvalidParentHash, fmt.Sprintf(
				"failed to verify parent hash for block#%d, hash: %s expect %s but got %s",
				headers[i+1].Number, headers[i+1].Hash.Hex(), headers[i+1].ParentHash.Hex(), headers[i].Hash.Hex(),
			))
		}
	}
	return OkStatus
}
