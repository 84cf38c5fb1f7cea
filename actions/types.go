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

// Package actions implements the verb-dispatched action surface: GET, SET,
// LMOD and its subcommands, the DDL and admin surface, and the narrow AUTH
// contract, all grounded on the teacher's blob/store.Registry tag-to-opener
// map generalized from a one-shot lookup to a per-request dispatch.
package actions

import (
	"io"

	"github.com/ohsayan/skyhashd/auth"
	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/registry"
)

// ArgIter hands out a Simple query's arguments one at a time, aliasing the
// parser's original buffer exactly as protocol.Parse documents — no
// argument is ever copied unless a handler chooses to retain it past the
// current call (in which case corestore.NewData copies it into the store).
type ArgIter struct {
	rest [][]byte
}

// NewArgIter builds an iterator over args, a Simple query's argument list
// with the action verb already stripped off by the caller.
func NewArgIter(args [][]byte) *ArgIter { return &ArgIter{rest: args} }

// Len reports the number of arguments remaining.
func (a *ArgIter) Len() int { return len(a.rest) }

// Next returns the next argument and advances the iterator, reporting false
// if exhausted.
func (a *ArgIter) Next() ([]byte, bool) {
	if len(a.rest) == 0 {
		return nil, false
	}
	v := a.rest[0]
	a.rest = a.rest[1:]
	return v, true
}

// Rest returns every remaining argument without consuming them.
func (a *ArgIter) Rest() [][]byte { return a.rest }

// ActionError is a recoverable action-level failure: the handler has
// already produced the exact response bytes that should be written to the
// connection, and the connection should continue serving further requests.
// This mirrors the teacher's blob.KeyError: a concrete type carrying
// domain detail, distinguished from a plain I/O error by type, not by
// string matching.
type ActionError struct {
	Response []byte
}

func (e *ActionError) Error() string { return "action error: " + string(e.Response) }

// actionErr wraps group bytes as an *ActionError.
func actionErr(group []byte) error { return &ActionError{Response: group} }

// Context bundles everything an action handler needs: the per-connection
// store selector, the global health oracle, the authentication decision
// point, and the connection's output stream. Handlers write their response
// bytes directly to W, exactly as spec.md §4.6 describes.
type Context struct {
	Store  *corestore.Corestore
	Oracle registry.Oracle
	Auth   auth.Provider
	W      io.Writer

	// SwapToAuth is invoked by the AUTH LOGIN handler on a successful login
	// to move the connection from the unauthenticated executor to the
	// authenticated one (spec.md §4.5). If it is nil, a successful login
	// swaps nothing.
	SwapToAuth func()
}

// Func is the signature every registered action implements. A non-nil
// *ActionError return carries response bytes that the caller writes to the
// connection before continuing; any other non-nil error is a terminal I/O
// failure and the connection must close.
type Func func(ctx *Context, args [][]byte) error
