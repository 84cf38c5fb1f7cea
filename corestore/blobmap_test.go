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

import "testing"

func TestBlobMapInsertGetDelete(t *testing.T) {
	m := NewBlobMap()
	if err := m.Insert([]byte("k1"), []byte("v1")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := m.Insert([]byte("k1"), []byte("v2")); !IsAlreadyExists(err) {
		t.Fatalf("Insert duplicate: got %v, want ErrAlreadyExists", err)
	}
	v, ok := m.Get([]byte("k1"))
	if !ok || string(v.Bytes()) != "v1" {
		t.Fatalf("Get: got (%q, %v), want (v1, true)", v.Bytes(), ok)
	}
	if !m.Delete([]byte("k1")) {
		t.Fatal("Delete: expected true")
	}
	if m.Delete([]byte("k1")) {
		t.Fatal("Delete of absent key: expected false")
	}
	if _, ok := m.Get([]byte("k1")); ok {
		t.Fatal("Get after delete: expected absent")
	}
}

func TestBlobMapUpdate(t *testing.T) {
	m := NewBlobMap()
	if m.Update([]byte("missing"), []byte("x")) {
		t.Fatal("Update of absent key: expected false")
	}
	m.Insert([]byte("k"), []byte("v1"))
	if !m.Update([]byte("k"), []byte("v2")) {
		t.Fatal("Update: expected true")
	}
	v, _ := m.Get([]byte("k"))
	if string(v.Bytes()) != "v2" {
		t.Fatalf("Get after update: got %q, want v2", v.Bytes())
	}
}

func TestBlobMapExistsAndLen(t *testing.T) {
	m := NewBlobMap()
	if m.Exists([]byte("a")) {
		t.Fatal("Exists on empty map: expected false")
	}
	m.Insert([]byte("a"), []byte("1"))
	m.Insert([]byte("b"), []byte("2"))
	if !m.Exists([]byte("a")) {
		t.Fatal("Exists: expected true")
	}
	if m.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", m.Len())
	}
}
