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

// Package corestore implements the in-memory keyspace/table/container
// hierarchy: the top-level Registry of Keyspaces, each holding Tables of
// either blob or list shape.
package corestore

import "sync"

// DefaultKeyspace is the name of the keyspace created automatically when a
// Registry is constructed, mirroring the original source's "default"
// keyspace.
const DefaultKeyspace ObjectID = "default"

// Registry is the top-level, mutex-guarded map of Keyspaces by ObjectID.
// Grounded on the same storage/monitor.M pattern as Keyspace, one level up
// the hierarchy.
type Registry struct {
	mu        sync.Mutex
	keyspaces map[ObjectID]*Keyspace
}

// NewRegistry constructs a Registry pre-populated with DefaultKeyspace.
func NewRegistry() *Registry {
	r := &Registry{keyspaces: make(map[ObjectID]*Keyspace)}
	r.keyspaces[DefaultKeyspace] = NewKeyspace()
	return r
}

// CreateKeyspace adds a new, empty keyspace named id, reporting
// ErrAlreadyExists if one is already present.
func (r *Registry) CreateKeyspace(id ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.keyspaces[id]; ok {
		return ErrAlreadyExists
	}
	r.keyspaces[id] = NewKeyspace()
	return nil
}

// GetKeyspace returns the keyspace named id, if present.
func (r *Registry) GetKeyspace(id ObjectID) (*Keyspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ks, ok := r.keyspaces[id]
	return ks, ok
}

// DropKeyspace removes the keyspace named id. Unless force is set, it
// reports ErrNotEmpty if the keyspace still holds tables (spec.md §3's
// lifecycle invariant); force bypasses that check, mirroring the
// original's "drop space force" DDL form.
func (r *Registry) DropKeyspace(id ObjectID, force bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ks, ok := r.keyspaces[id]
	if !ok {
		return ErrContainerNotFound
	}
	if !force && !ks.Empty() {
		return ErrNotEmpty
	}
	delete(r.keyspaces, id)
	return nil
}

// Corestore is the per-connection façade over a Registry: it tracks the
// connection's currently selected keyspace and table (set by the USE
// action) alongside the shared Registry, the way the original source's
// connection context carries a "current entity" cursor distinct from the
// global table of keyspaces.
type Corestore struct {
	Registry *Registry

	curKeyspace ObjectID
	curTable    ObjectID
	hasTable    bool
}

// NewCorestore constructs a Corestore bound to reg, with DefaultKeyspace
// selected and no table selected.
func NewCorestore(reg *Registry) *Corestore {
	return &Corestore{Registry: reg, curKeyspace: DefaultKeyspace}
}

// UseKeyspace selects ks as the current keyspace and clears any selected
// table, reporting ErrContainerNotFound if ks does not exist.
func (c *Corestore) UseKeyspace(ks ObjectID) error {
	if _, ok := c.Registry.GetKeyspace(ks); !ok {
		return ErrContainerNotFound
	}
	c.curKeyspace = ks
	c.hasTable = false
	return nil
}

// UseTable selects tbl within the current keyspace, reporting
// ErrContainerNotFound if either the keyspace or the table is missing.
func (c *Corestore) UseTable(tbl ObjectID) error {
	ks, ok := c.Registry.GetKeyspace(c.curKeyspace)
	if !ok {
		return ErrContainerNotFound
	}
	if _, ok := ks.GetTable(tbl); !ok {
		return ErrContainerNotFound
	}
	c.curTable = tbl
	c.hasTable = true
	return nil
}

// CurrentKeyspace returns the name of the selected keyspace.
func (c *Corestore) CurrentKeyspace() ObjectID { return c.curKeyspace }

// CurrentTable returns the Table bound by the most recent successful
// UseTable call, reporting ErrDefaultContainerUnset if no table has been
// selected, or ErrContainerNotFound if the keyspace or table has since
// been dropped out from under the selection.
func (c *Corestore) CurrentTable() (*Table, error) {
	if !c.hasTable {
		return nil, ErrDefaultContainerUnset
	}
	ks, ok := c.Registry.GetKeyspace(c.curKeyspace)
	if !ok {
		return nil, ErrContainerNotFound
	}
	t, ok := ks.GetTable(c.curTable)
	if !ok {
		return nil, ErrContainerNotFound
	}
	return t, nil
}

// CreateTable creates a table named id with the given model code in the
// current keyspace.
func (c *Corestore) CreateTable(id ObjectID, model ModelCode) error {
	ks, ok := c.Registry.GetKeyspace(c.curKeyspace)
	if !ok {
		return ErrContainerNotFound
	}
	return ks.CreateTable(id, model)
}

// DropTable removes the table named id from the current keyspace. If id
// is the currently selected table, the selection is cleared.
func (c *Corestore) DropTable(id ObjectID) error {
	ks, ok := c.Registry.GetKeyspace(c.curKeyspace)
	if !ok {
		return ErrContainerNotFound
	}
	if err := ks.DropTable(id); err != nil {
		return err
	}
	if c.hasTable && c.curTable == id {
		c.hasTable = false
	}
	return nil
}
