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

package actions

import (
	"bytes"
	"testing"

	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/protocol"
	"github.com/ohsayan/skyhashd/registry"
)

func newBlobTestContext(t *testing.T, model corestore.ModelCode) (*Context, *bytes.Buffer) {
	t.Helper()
	reg := corestore.NewRegistry()
	cs := corestore.NewCorestore(reg)
	tblID, err := corestore.ParseObjectID("tbl")
	if err != nil {
		t.Fatalf("ParseObjectID: %v", err)
	}
	if err := cs.CreateTable(tblID, model); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if err := cs.UseTable(tblID); err != nil {
		t.Fatalf("UseTable: %v", err)
	}
	var buf bytes.Buffer
	return &Context{Store: cs, Oracle: registry.New(), W: &buf}, &buf
}

func TestKVSetGetUpdateDel(t *testing.T) {
	ctx, buf := newBlobTestContext(t, corestore.ModelBlobBinBin)

	buf.Reset()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("SET"), []byte("k"), []byte("v1")}})
	if !bytes.Equal(buf.Bytes(), protocol.Okay) {
		t.Fatalf("SET: got %q, want okay", buf.Bytes())
	}

	buf.Reset()
	err := Dispatch(ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("SET"), []byte("k"), []byte("v2")}})
	ae, ok := err.(*ActionError)
	if !ok || !bytes.Equal(ae.Response, protocol.Overwrite) {
		t.Fatalf("SET duplicate: got %v, want overwrite-error", err)
	}

	buf.Reset()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("GET"), []byte("k")}})
	want := []byte("?2\nv1")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("GET: got %q, want %q", buf.Bytes(), want)
	}

	buf.Reset()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("UPDATE"), []byte("k"), []byte("v2")}})
	if !bytes.Equal(buf.Bytes(), protocol.Okay) {
		t.Fatalf("UPDATE: got %q, want okay", buf.Bytes())
	}

	buf.Reset()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("GET"), []byte("k")}})
	want = []byte("?2\nv2")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("GET after update: got %q, want %q", buf.Bytes(), want)
	}

	buf.Reset()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("DEL"), []byte("k"), []byte("ghost")}})
	want = []byte("+1\n1")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("DEL: got %q, want %q", buf.Bytes(), want)
	}
}

func TestKVGetMissing(t *testing.T) {
	ctx, buf := newBlobTestContext(t, corestore.ModelBlobBinBin)
	buf.Reset()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("GET"), []byte("ghost")}})
	if !bytes.Equal(buf.Bytes(), protocol.Nil) {
		t.Fatalf("GET missing: got %q, want nil", buf.Bytes())
	}
}

func TestKVExists(t *testing.T) {
	ctx, buf := newBlobTestContext(t, corestore.ModelBlobBinBin)
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("SET"), []byte("a"), []byte("1")}})
	buf.Reset()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("EXISTS"), []byte("a"), []byte("b")}})
	want := []byte("+1\n1")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("EXISTS: got %q, want %q", buf.Bytes(), want)
	}
}

func TestKVSetEncodingError(t *testing.T) {
	ctx, _ := newBlobTestContext(t, corestore.ModelBlobBinUni)
	err := Dispatch(ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("SET"), []byte("k"), {0xff, 0xfe}}})
	ae, ok := err.(*ActionError)
	if !ok || !bytes.Equal(ae.Response, protocol.EncodingErr) {
		t.Fatalf("SET invalid unicode value: got %v, want encoding-error", err)
	}
}

func TestKVWrongModel(t *testing.T) {
	ctx, _ := newBlobTestContext(t, corestore.ModelListBinBin)
	err := Dispatch(ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("GET"), []byte("k")}})
	ae, ok := err.(*ActionError)
	if !ok || !bytes.Equal(ae.Response, protocol.WrongModel) {
		t.Fatalf("GET on list table: got %v, want wrong-model", err)
	}
}
