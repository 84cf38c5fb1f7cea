// Copyright 2019 Michael J. Fromberger. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package registry implements the process-wide "okay" fence that gates
// mutating store operations while a background flusher's health is
// observed. It has nothing to do with DNS or service registries; the name
// follows the system this package models.
package registry

import "sync/atomic"

const (
	bitOkay  uint32 = 1 << 0
	bitPoison uint32 = 1 << 1

	healthyMask = bitOkay
)

// Oracle is the interface action handlers and the connection layer consume.
// It exists so handlers depend on a narrow, injectable contract rather than
// the concrete atomic flag, per spec.md §9.
type Oracle interface {
	// StateOkay reports whether mutating operations may proceed.
	StateOkay() bool
}

// Registry holds the single process-wide okay/poison flag. The zero value
// is poisoned (not okay); call MarkOkay to admit writes.
type Registry struct {
	state atomic.Uint32
}

// New returns a Registry that starts out healthy.
func New() *Registry {
	r := &Registry{}
	r.MarkOkay()
	return r
}

// StateOkay reports whether the flag indicates mutations are safe to admit.
// The load is relaxed: Go's plain atomic loads carry no memory-ordering
// guarantee beyond the load itself, which is exactly the semantics spec.md
// §4.3 asks for ("reads are relaxed" — there is no separate relaxed mode to
// request in Go, unlike Rust's Ordering::Relaxed).
func (r *Registry) StateOkay() bool {
	return r.state.Load()&healthyMask == healthyMask
}

// MarkOkay sets the registry healthy, clearing any poison bit.
func (r *Registry) MarkOkay() {
	r.state.Store(bitOkay)
}

// Poison marks the registry unhealthy. Mutating handlers observing this
// state must return a server-error response without touching the store.
func (r *Registry) Poison() {
	r.state.Store(bitPoison)
}

var _ Oracle = (*Registry)(nil)
