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

// Table is one named container within a Keyspace: a ModelCode naming its
// shape, plus exactly one of a BlobMap or a ListMap, chosen by
// ModelCode.IsList(). This mirrors the original source's DataModel enum,
// generalized in Go as a struct with two optional fields rather than a
// sum type, the same pattern the teacher uses for its own encoded/plain
// split in blob/encoded.go.
type Table struct {
	Model ModelCode

	blobs *BlobMap
	lists *ListMap
}

// NewTable constructs an empty Table for the given model code, panicking
// if model is not one of the eight defined codes; callers validate model
// codes at the parser boundary before reaching here.
func NewTable(model ModelCode) *Table {
	if !model.Valid() {
		panic("corestore: invalid model code")
	}
	t := &Table{Model: model}
	if model.IsList() {
		t.lists = NewListMap()
	} else {
		t.blobs = NewBlobMap()
	}
	return t
}

// Blobs returns the table's BlobMap and true, or (nil, false) if this
// table is a KVEList table.
func (t *Table) Blobs() (*BlobMap, bool) {
	if t.Model.IsList() {
		return nil, false
	}
	return t.blobs, true
}

// Lists returns the table's ListMap and true, or (nil, false) if this
// table is a KVEBlob table.
func (t *Table) Lists() (*ListMap, bool) {
	if !t.Model.IsList() {
		return nil, false
	}
	return t.lists, true
}

// KeyEncoder returns the validator for this table's key kind.
func (t *Table) KeyEncoder() Encoder { return encoderFor(t.Model.KeyKind()) }

// ValEncoder returns the validator for this table's value kind.
func (t *Table) ValEncoder() Encoder { return encoderFor(t.Model.ValKind()) }

// Len reports the number of entries in the table, regardless of shape.
func (t *Table) Len() int {
	if t.Model.IsList() {
		return t.lists.Count()
	}
	return t.blobs.Len()
}
