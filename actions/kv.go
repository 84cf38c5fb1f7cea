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
	"fmt"

	"github.com/ohsayan/skyhashd/protocol"
)

// doGet implements GET <key>: a monotype value, or nil if absent.
func doGet(ctx *Context, args [][]byte) error {
	if len(args) != 1 {
		return actionErr(protocol.ActionErr)
	}
	bm, err := currentBlobTable(ctx)
	if err != nil {
		return err
	}
	v, ok := bm.Get(args[0])
	if !ok {
		return writeGroup(ctx, protocol.Nil)
	}
	return protocol.WriteMono(ctx.W, valTSymbol(ctx), v.Bytes())
}

// doSet implements SET <key> <value>: insert-or-error.
func doSet(ctx *Context, args [][]byte) error {
	if len(args) != 2 {
		return actionErr(protocol.ActionErr)
	}
	if err := checkOkay(ctx); err != nil {
		return err
	}
	bm, err := currentBlobTable(ctx)
	if err != nil {
		return err
	}
	t, _ := ctx.Store.CurrentTable()
	if !t.ValEncoder()(args[1]) {
		return actionErr(protocol.EncodingErr)
	}
	if err := bm.Insert(args[0], args[1]); err != nil {
		return actionErr(protocol.Overwrite)
	}
	return writeGroup(ctx, protocol.Okay)
}

// doUpdate implements UPDATE <key> <value>: replace existing, nil if
// missing.
func doUpdate(ctx *Context, args [][]byte) error {
	if len(args) != 2 {
		return actionErr(protocol.ActionErr)
	}
	if err := checkOkay(ctx); err != nil {
		return err
	}
	bm, err := currentBlobTable(ctx)
	if err != nil {
		return err
	}
	t, _ := ctx.Store.CurrentTable()
	if !t.ValEncoder()(args[1]) {
		return actionErr(protocol.EncodingErr)
	}
	if !bm.Update(args[0], args[1]) {
		return writeGroup(ctx, protocol.Nil)
	}
	return writeGroup(ctx, protocol.Okay)
}

// doDel implements DEL <key>...: deletes one or more keys, returning the
// count of keys actually removed as a flat unsigned value.
func doDel(ctx *Context, args [][]byte) error {
	if len(args) == 0 {
		return actionErr(protocol.ActionErr)
	}
	if err := checkOkay(ctx); err != nil {
		return err
	}
	bm, err := currentBlobTable(ctx)
	if err != nil {
		return err
	}
	n := 0
	for _, k := range args {
		if bm.Delete(k) {
			n++
		}
	}
	return protocol.WriteMono(ctx.W, protocol.TSymUnicode, []byte(fmt.Sprintf("%d", n)))
}

// doExists implements EXISTS <key>...: returns the count of keys present.
func doExists(ctx *Context, args [][]byte) error {
	if len(args) == 0 {
		return actionErr(protocol.ActionErr)
	}
	bm, err := currentBlobTable(ctx)
	if err != nil {
		return err
	}
	n := 0
	for _, k := range args {
		if bm.Exists(k) {
			n++
		}
	}
	return protocol.WriteMono(ctx.W, protocol.TSymUnicode, []byte(fmt.Sprintf("%d", n)))
}

// valTSymbol returns the wire type-symbol for the current table's value
// kind, falling back to the binary symbol if no table is selected (the
// caller has already failed in that case and never reaches this point in
// practice, but the fallback keeps the function total).
func valTSymbol(ctx *Context) byte {
	t, err := ctx.Store.CurrentTable()
	if err != nil {
		return protocol.TSymBinary
	}
	return t.Model.ValKind().TSymbol()
}

// writeGroup writes a canned response group and returns nil, the uniform
// shape every "okay"/"nil"-style handler return reduces to.
func writeGroup(ctx *Context, group []byte) error {
	return protocol.WriteRaw(ctx.W, group)
}
