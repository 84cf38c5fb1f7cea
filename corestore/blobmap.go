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

import (
	"bytes"
	"sync"

	"github.com/creachadair/mds/stree"
)

// blobOrder is the branching factor passed to stree.New, matching the
// teacher's own memstore (blob/memstore.NewKV uses the same constant).
const blobOrder = 300

type blobEntry struct {
	key, val Data
}

func compareBlobEntries(a, b blobEntry) int {
	return bytes.Compare(a.key.Bytes(), b.key.Bytes())
}

// BlobMap is a KVEBlob table's container: a blob-keyed map of blob values,
// safe for concurrent use. It is grounded directly on the teacher's
// blob/memstore.KV, which guards a github.com/creachadair/mds/stree.Tree
// with a single mutex; here the entry type carries Data instead of strings,
// since values need not be valid UTF-8.
type BlobMap struct {
	mu sync.Mutex
	m  *stree.Tree[blobEntry]
}

// NewBlobMap constructs an empty BlobMap.
func NewBlobMap() *BlobMap {
	return &BlobMap{m: stree.New(blobOrder, compareBlobEntries)}
}

// Get returns the value for key, if present.
func (b *BlobMap) Get(key []byte) (Data, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.m.Get(blobEntry{key: Data{b: key}})
	if !ok {
		return Data{}, false
	}
	return e.val, true
}

// Insert adds key/val, reporting ErrAlreadyExists if key is already present.
func (b *BlobMap) Insert(key, val []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	ent := blobEntry{key: NewData(key), val: NewData(val)}
	if !b.m.Add(ent) {
		return ErrAlreadyExists
	}
	return nil
}

// Update replaces the value for an existing key, reporting false if key is
// not present (the caller maps that to the "nil" response group).
func (b *BlobMap) Update(key, val []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	probe := blobEntry{key: Data{b: key}}
	if _, ok := b.m.Get(probe); !ok {
		return false
	}
	b.m.Replace(blobEntry{key: NewData(key), val: NewData(val)})
	return true
}

// Delete removes key, reporting whether it was present.
func (b *BlobMap) Delete(key []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.m.Remove(blobEntry{key: Data{b: key}})
}

// Exists reports whether key is present.
func (b *BlobMap) Exists(key []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.m.Get(blobEntry{key: Data{b: key}})
	return ok
}

// Len reports the number of keys currently stored.
func (b *BlobMap) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.m.Len()
}
