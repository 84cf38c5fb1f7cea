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

// Package dbnet implements the per-connection state machine of spec.md
// §4.5: Reading, Parsing, Dispatching, Writing, Advancing, Terminated.
package dbnet

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"

	"github.com/ohsayan/skyhashd/actions"
	"github.com/ohsayan/skyhashd/auth"
	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/protocol"
	"github.com/ohsayan/skyhashd/registry"
)

// executor dispatches one parsed Query over conn and reports a terminal
// error, if any. There are exactly two implementations, selected by the
// connection's current executor field: execUnauth and execAuth.
type executor func(c *Connection, q protocol.Query) error

// Connection is one client socket's state machine. It owns its own
// corestore.Corestore selector (spec.md §5: "owned by the connection task,
// no sharing required") and can swap its own executor at runtime, the way
// the original's mutable function-pointer dispatch does.
type Connection struct {
	conn net.Conn
	w    *bufio.Writer

	oracle registry.Oracle
	auth   auth.Provider
	store  *corestore.Corestore

	exec executor
	buf  []byte // unparsed bytes read so far
}

// NewConnection constructs a Connection bound to conn, sharing reg (the
// process-wide keyspace registry) and oracle (the okay/poison fence). The
// connection starts in the unauthenticated executor state whenever authFn
// is non-nil; if authFn is nil, authentication is disabled and every
// connection starts already authenticated, matching a deployment with no
// credentials configured.
func NewConnection(conn net.Conn, reg *corestore.Registry, oracle registry.Oracle, authFn auth.Provider) *Connection {
	c := &Connection{
		conn:   conn,
		w:      bufio.NewWriter(conn),
		oracle: oracle,
		auth:   authFn,
		store:  corestore.NewCorestore(reg),
	}
	if authFn == nil {
		c.exec = execAuth
	} else {
		c.exec = execUnauth
	}
	return c
}

// errConnReset is returned by Serve when the peer closes the connection
// mid-frame (EOF with a non-empty, unparsed buffer), matching spec.md
// §4.5's Reading-state "connection-reset" case.
var errConnReset = errors.New("dbnet: connection reset by peer")

// Serve runs the connection's state machine until ctx is done, the peer
// disconnects, or an unrecoverable error occurs. It returns nil on a clean
// EOF, on shutdown, and after writing a packet-error or wrongtype-error
// reply for an unparseable frame; an EOF mid-frame or an I/O error is
// returned as a non-nil error.
func (c *Connection) Serve(ctx context.Context) error {
	defer c.w.Flush()

	reads := make(chan readResult, 1)
	go pumpReads(c.conn, reads)

	for {
		q, n, perr := protocol.Parse(c.buf)
		switch {
		case perr == nil:
			if err := c.dispatchAndAdvance(q, n); err != nil {
				return err
			}
			continue
		case isNotEnough(perr):
			// fall through to Reading
		case isDatatypeFailure(perr):
			protocol.WriteRaw(c.w, protocol.WrongTypeErr)
			c.w.Flush()
			return nil
		default:
			protocol.WriteRaw(c.w, protocol.PacketErr)
			c.w.Flush()
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case res, ok := <-reads:
			if !ok {
				if len(c.buf) == 0 {
					return nil
				}
				return errConnReset
			}
			if res.err != nil {
				return res.err
			}
			c.buf = append(c.buf, res.data...)
		}
	}
}

// dispatchAndAdvance runs the Dispatching/Writing/Advancing states for one
// already-parsed Query occupying the first n bytes of c.buf.
func (c *Connection) dispatchAndAdvance(q protocol.Query, n int) error {
	err := c.exec(c, q)
	c.buf = c.buf[n:]
	if err == nil {
		return c.w.Flush()
	}
	var ae *actions.ActionError
	if errors.As(err, &ae) {
		if werr := protocol.WriteRaw(c.w, ae.Response); werr != nil {
			return werr
		}
		return c.w.Flush()
	}
	return err
}

func isNotEnough(err error) bool {
	k, ok := protocol.KindOf(err)
	return ok && k == protocol.NotEnough
}

func isDatatypeFailure(err error) bool {
	k, ok := protocol.KindOf(err)
	return ok && k == protocol.DatatypeParseFailure
}

// readResult is one read's outcome, handed from pumpReads to Serve over a
// channel so a blocking net.Conn.Read can race against ctx.Done().
type readResult struct {
	data []byte
	err  error
}

// pumpReads reads from conn in a loop and forwards each chunk (or the
// terminal error) to out, then closes out. This is the standard Go
// pattern for giving a blocking Read a cancellation signal, grounded on
// the teacher's own context-threaded shutdown in cmd/blobd/start.go.
func pumpReads(conn net.Conn, out chan<- readResult) {
	defer close(out)
	buf := make([]byte, 64*1024)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			cp := make([]byte, n)
			copy(cp, buf[:n])
			out <- readResult{data: cp}
		}
		if err != nil {
			if err != io.EOF {
				out <- readResult{err: err}
			}
			return
		}
	}
}
