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

package dbnet

import (
	"bytes"
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/registry"
)

// serveOnPipe starts a Connection (with authentication disabled, so it
// starts in the auth executor) on one end of a net.Pipe and returns the
// other end for the test to drive.
func serveOnPipe(t *testing.T) (client net.Conn, done <-chan error) {
	t.Helper()
	server, client := net.Pipe()
	reg := corestore.NewRegistry()
	c := NewConnection(server, reg, registry.New(), nil)

	ch := make(chan error, 1)
	go func() {
		ch <- c.Serve(context.Background())
	}()
	return client, ch
}

func readN(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("readN(%d): %v", n, err)
	}
	return buf
}

// TestConnectionSimpleSetGet covers spec.md S1.
func TestConnectionSimpleSetGet(t *testing.T) {
	client, _ := serveOnPipe(t)
	defer client.Close()

	// Select a blob/blob table first via DDL, since the fresh registry has
	// no tables yet.
	mustRoundTrip(t, client, "*4\n6\nCREATE5\nMODEL1\nt1\n0", "*!1\n0\n")
	mustRoundTrip(t, client, "*3\n3\nUSE7\ndefault1\nt", "*!1\n0\n")

	mustRoundTrip(t, client, "*3\n3\nSET3\nfoo3\nbar", "*!1\n0\n")
	mustRoundTrip(t, client, "*2\n3\nGET3\nfoo", "*?3\nbar")
}

// TestConnectionUnknownVerb covers spec.md S4.
func TestConnectionUnknownVerb(t *testing.T) {
	client, _ := serveOnPipe(t)
	defer client.Close()
	mustRoundTrip(t, client, "*1\n5\nWOBBL", "*!14\nunknown-action\n")
}

// TestConnectionPipelineOrdering covers spec.md S5.
func TestConnectionPipelineOrdering(t *testing.T) {
	client, _ := serveOnPipe(t)
	defer client.Close()

	mustRoundTrip(t, client, "*4\n6\nCREATE5\nMODEL1\nt1\n0", "*!1\n0\n")
	mustRoundTrip(t, client, "*3\n3\nUSE7\ndefault1\nt", "*!1\n0\n")
	mustRoundTrip(t, client, "*3\n3\nSET1\nx1\n1", "*!1\n0\n")
	mustRoundTrip(t, client, "*3\n3\nSET1\ny1\n2", "*!1\n0\n")

	req := "$2\n2\n3\nGET1\nx2\n3\nGET1\ny"
	if _, err := io.WriteString(client, req); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "$2\n?1\n1?1\n2"
	got := readN(t, client, len(want))
	if !bytes.Equal(got, []byte(want)) {
		t.Fatalf("pipeline response: got %q, want %q", got, want)
	}
}

// mustRoundTrip writes req to client and asserts the exact byte-for-byte
// response.
func mustRoundTrip(t *testing.T, client net.Conn, req, want string) {
	t.Helper()
	client.SetDeadline(time.Now().Add(5 * time.Second))
	if _, err := io.WriteString(client, req); err != nil {
		t.Fatalf("write %q: %v", req, err)
	}
	got := readN(t, client, len(want))
	if !bytes.Equal(got, []byte(want)) {
		t.Fatalf("round trip %q: got %q, want %q", req, got, want)
	}
}
