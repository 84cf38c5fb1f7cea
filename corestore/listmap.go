// Copyright 2021 Sayan Nandan. Adapted for this implementation.
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

import "sync"

// lockedList is a mutex-guarded ordered sequence of Data, the container
// value behind one key of a ListMap. The lock is taken for the duration of
// one handler call only, per spec.md §5, and is never held across a socket
// read or write.
type lockedList struct {
	mu    sync.RWMutex
	items []Data
}

// ListMap is a KVEList table's container: a blob-keyed map of ordered
// sequences of blob values. Its outer map is guarded by a single mutex,
// grounded on the teacher's storage/monitor.M (a mutex-guarded map of
// lazily-constructed named sub-objects); its per-key RWMutex generalizes
// the teacher's blob/memstore.KV from a flat value to an ordered sequence,
// the same generalization the original source's kvengine/listmap.rs makes
// from KVEBlob's map to a RwLock<Vec<Data>> per key.
type ListMap struct {
	mu sync.Mutex
	m  map[string]*lockedList
}

// NewListMap constructs an empty ListMap.
func NewListMap() *ListMap {
	return &ListMap{m: make(map[string]*lockedList)}
}

// get returns the lockedList for name without creating it.
func (lm *ListMap) get(name []byte) (*lockedList, bool) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l, ok := lm.m[string(name)]
	return l, ok
}

// AddList creates a new, empty list container named name, reporting
// ErrAlreadyExists if one is already present. This is the "add_list"
// operation from spec.md §3's Lifecycle paragraph (LSET in this
// implementation's action surface).
func (lm *ListMap) AddList(name []byte) error {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	key := string(name)
	if _, ok := lm.m[key]; ok {
		return ErrAlreadyExists
	}
	lm.m[key] = &lockedList{}
	return nil
}

// Count reports the number of list containers held in lm.
func (lm *ListMap) Count() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.m)
}

// Len returns a length snapshot for the named list: after looking the list
// up under the outer map's mutex, it reads the length under the per-list
// shared lock only, per spec.md invariant 3, never the exclusive lock.
func (lm *ListMap) Len(name []byte) (int, bool) {
	l, ok := lm.get(name)
	if !ok {
		return 0, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items), true
}

// Snapshot returns a copy of the named list's current contents.
func (lm *ListMap) Snapshot(name []byte) ([]Data, bool) {
	l, ok := lm.get(name)
	if !ok {
		return nil, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Data, len(l.items))
	copy(out, l.items)
	return out, true
}

// Clear truncates the named list to length 0, reporting whether it exists.
func (lm *ListMap) Clear(name []byte) bool {
	l, ok := lm.get(name)
	if !ok {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = l.items[:0]
	return true
}

// Push appends values, in order, to the named list under one exclusive
// lock, so the whole batch is atomic with respect to concurrent readers
// (spec.md §4.4's PUSH ordering guarantee). It reports whether the list
// exists.
func (lm *ListMap) Push(name []byte, values ...Data) bool {
	l, ok := lm.get(name)
	if !ok {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, values...)
	return true
}

// Insert places val at idx, shifting the suffix right. It reports
// (listFound, inBounds); the mutation only happens when both are true.
func (lm *ListMap) Insert(name []byte, idx int, val Data) (listFound, inBounds bool) {
	l, ok := lm.get(name)
	if !ok {
		return false, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx >= len(l.items) {
		return true, false
	}
	l.items = append(l.items, Data{})
	copy(l.items[idx+1:], l.items[idx:])
	l.items[idx] = val
	return true, true
}

// Remove deletes the item at idx, shifting the suffix left. It reports
// (listFound, inBounds); the mutation only happens when both are true.
func (lm *ListMap) Remove(name []byte, idx int) (listFound, inBounds bool) {
	l, ok := lm.get(name)
	if !ok {
		return false, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx >= len(l.items) {
		return true, false
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return true, true
}

// Pop removes and returns the last item, or the item at idx when idx != nil.
// It reports (listFound, inBounds, value); the item is only removed when
// both booleans are true.
func (lm *ListMap) Pop(name []byte, idx *int) (listFound, inBounds bool, val Data) {
	l, ok := lm.get(name)
	if !ok {
		return false, false, Data{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx == nil {
		n := len(l.items)
		if n == 0 {
			return true, false, Data{}
		}
		val = l.items[n-1]
		l.items = l.items[:n-1]
		return true, true, val
	}
	if *idx >= len(l.items) {
		return true, false, Data{}
	}
	val = l.items[*idx]
	l.items = append(l.items[:*idx], l.items[*idx+1:]...)
	return true, true, val
}
