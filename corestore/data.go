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

package corestore

import "github.com/cespare/xxhash/v2"

// Data is an immutable byte buffer used as both a key and a value payload
// throughout the store. It is a thin wrapper, not a literal reference count
// the way the original store's Data type was: once the last slice pointing
// into its backing array is unreachable, Go's collector reclaims it, so a
// manual refcount would only duplicate work the runtime already does (see
// SPEC_FULL.md §9).
type Data struct {
	b []byte
}

// NewData copies src into a new Data value. The caller's slice may be
// reused or mutated after this call returns.
func NewData(src []byte) Data {
	return Data{b: append([]byte(nil), src...)}
}

// Bytes returns the buffer's contents. Callers must not mutate the result.
func (d Data) Bytes() []byte { return d.b }

// Len reports the length of the buffer in bytes.
func (d Data) Len() int { return len(d.b) }

// Checksum returns a fast, non-cryptographic digest of the buffer's
// contents, useful for logging and cache-style comparisons.
func (d Data) Checksum() uint64 { return xxhash.Sum64(d.b) }
