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
	"errors"
	"sync"
)

// ErrUnknownPeer is returned by PeerStore lookups for a peer with no
// tracked state.
var ErrUnknownPeer = errors.New("light: unknown peer")

// peerState is the mutable per-peer record: the outstanding sampling
// challenge (if any) and the last fully committed outcome.
type peerState struct {
	mu           sync.Mutex
	proveRequest *ProveRequest
	proveState   *ProveState
}

// PeerStore is the shared peer-state table. Access to a single peer's state
// is serialized by that peer's own lock; different peers proceed fully in
// parallel.
type PeerStore struct {
	mu    sync.RWMutex
	peers map[string]*peerState
}

// NewPeerStore returns an empty PeerStore.
func NewPeerStore() *PeerStore {
	return &PeerStore{peers: make(map[string]*peerState)}
}

func (s *PeerStore) stateFor(peer string) *peerState {
	s.mu.RLock()
	st, ok := s.peers[peer]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.peers[peer]; ok {
		return st
	}
	st = &peerState{}
	s.peers[peer] = st
	return st
}

// GetProveRequest returns the peer's outstanding ProveRequest, if any.
func (s *PeerStore) GetProveRequest(peer string) (ProveRequest, bool) {
	st := s.stateFor(peer)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.proveRequest == nil {
		return ProveRequest{}, false
	}
	return *st.proveRequest, true
}

// GetProveState returns the peer's last committed ProveState, if any.
func (s *PeerStore) GetProveState(peer string) (ProveState, bool) {
	st := s.stateFor(peer)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.proveState == nil {
		return ProveState{}, false
	}
	return *st.proveState, true
}

// SubmitProveRequest atomically replaces the peer's outstanding
// ProveRequest; it is never mutated in place.
func (s *PeerStore) SubmitProveRequest(peer string, req ProveRequest) {
	st := s.stateFor(peer)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.proveRequest = &req
}

// CommitProveState atomically installs a newly verified ProveState and
// clears the outstanding request it answered.
func (s *PeerStore) CommitProveState(peer string, state ProveState) {
	st := s.stateFor(peer)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.proveState = &state
	st.proveRequest = nil
}

// RemovePeer drops all tracked state for peer, e.g. on disconnect.
func (s *PeerStore) RemovePeer(peer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.peers, peer)
}
