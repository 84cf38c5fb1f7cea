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

import "sync"

// Keyspace is a mutex-guarded map of Tables by ObjectID, the middle tier
// of the keyspace/table/container hierarchy. Grounded on the teacher's
// storage/monitor.M, a generic mutex-guarded map of lazily-constructed
// named sub-objects; Keyspace is its domain-specific instantiation.
type Keyspace struct {
	mu     sync.Mutex
	tables map[ObjectID]*Table
}

// NewKeyspace constructs an empty Keyspace.
func NewKeyspace() *Keyspace {
	return &Keyspace{tables: make(map[ObjectID]*Table)}
}

// CreateTable adds a new table named id with the given model code,
// reporting ErrAlreadyExists if one is already present.
func (ks *Keyspace) CreateTable(id ObjectID, model ModelCode) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if _, ok := ks.tables[id]; ok {
		return ErrAlreadyExists
	}
	ks.tables[id] = NewTable(model)
	return nil
}

// GetTable returns the table named id, if present.
func (ks *Keyspace) GetTable(id ObjectID) (*Table, bool) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	t, ok := ks.tables[id]
	return t, ok
}

// DropTable removes the table named id, reporting ErrContainerNotFound if
// it does not exist. Per spec.md §3, dropping a table never inspects its
// contents — a non-empty table may be dropped freely.
func (ks *Keyspace) DropTable(id ObjectID) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if _, ok := ks.tables[id]; !ok {
		return ErrContainerNotFound
	}
	delete(ks.tables, id)
	return nil
}

// Len reports the number of tables in the keyspace.
func (ks *Keyspace) Len() int {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	return len(ks.tables)
}

// Empty reports whether the keyspace holds no tables, the precondition for
// a non-forced DropKeyspace (spec.md §3's lifecycle invariant).
func (ks *Keyspace) Empty() bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	return len(ks.tables) == 0
}
