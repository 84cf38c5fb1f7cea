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

	"github.com/ohsayan/skyhashd/actions"
	"github.com/ohsayan/skyhashd/protocol"
)

// execUnauth is the executor installed on every connection before a
// successful AUTH LOGIN: it accepts only authentication commands. A
// Simple query gets the simple header and then the result of dispatching
// it (the only verb that makes sense pre-auth is AUTH); a Pipelined query
// is rejected outright, per spec.md §4.5.
func execUnauth(c *Connection, q protocol.Query) error {
	if q.Pipelined != nil {
		if err := protocol.WriteSimpleHeader(c.w); err != nil {
			return err
		}
		return protocol.WriteRaw(c.w, protocol.BadCredentials)
	}
	if !isAuthCommand(q.Simple.Args) {
		if err := protocol.WriteSimpleHeader(c.w); err != nil {
			return err
		}
		return protocol.WriteRaw(c.w, protocol.BadCredentials)
	}
	if err := protocol.WriteSimpleHeader(c.w); err != nil {
		return err
	}
	return runAction(c, *q.Simple)
}

// execAuth is the executor installed once a connection has authenticated
// (or when authentication is disabled): it writes the simple header and
// dispatches for a Simple query, or the pipeline header and dispatches
// each sub-query in order for a Pipelined one.
func execAuth(c *Connection, q protocol.Query) error {
	if q.Simple != nil {
		if err := protocol.WriteSimpleHeader(c.w); err != nil {
			return err
		}
		return runAction(c, *q.Simple)
	}
	pq := q.Pipelined
	if err := protocol.WritePipelineHeader(c.w, pq.Len()); err != nil {
		return err
	}
	for _, sq := range pq.Queries {
		if err := runAction(c, sq); err != nil {
			// A terminal I/O error here aborts the whole pipeline; a
			// recoverable action error's response bytes are written here,
			// in place, and submission order is preserved by continuing.
			var ae *actions.ActionError
			if !asActionError(err, &ae) {
				return err
			}
			if werr := protocol.WriteRaw(c.w, ae.Response); werr != nil {
				return werr
			}
		}
	}
	return nil
}

// runAction builds an actions.Context bound to c and dispatches sq through
// it. Its return value is handled by the caller: a nil error means the
// handler already wrote its own success bytes; a non-nil *ActionError
// means the handler already produced error bytes that the caller must
// still forward; any other error is a terminal I/O failure.
func runAction(c *Connection, sq protocol.SimpleQuery) error {
	ctx := &actions.Context{
		Store:  c.store,
		Oracle: c.oracle,
		Auth:   c.auth,
		W:      c.w,
		SwapToAuth: func() {
			c.exec = execAuth
		},
	}
	return actions.Dispatch(ctx, sq)
}

// isAuthCommand reports whether args names the AUTH verb, case-insensitive,
// matching the verb comparison actions.Dispatch itself performs.
func isAuthCommand(args [][]byte) bool {
	if len(args) == 0 {
		return false
	}
	return bytes.EqualFold(args[0], []byte("AUTH"))
}

// asActionError reports whether err is an *actions.ActionError, assigning
// it to *target on success.
func asActionError(err error, target **actions.ActionError) bool {
	ae, ok := err.(*actions.ActionError)
	if ok {
		*target = ae
	}
	return ok
}
