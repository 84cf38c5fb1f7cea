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
	"fmt"

	"github.com/ohsayan/skyhashd/protocol"
)

// doLSet implements LSET <listname>: create a new, empty list container.
func doLSet(ctx *Context, args [][]byte) error {
	if len(args) != 1 {
		return actionErr(protocol.ActionErr)
	}
	if err := checkOkay(ctx); err != nil {
		return err
	}
	lm, err := currentListTable(ctx)
	if err != nil {
		return err
	}
	if err := lm.AddList(args[0]); err != nil {
		return translateStoreErr(err)
	}
	return writeGroup(ctx, protocol.Okay)
}

// doLLen implements LLEN <listname>: a length snapshot, taken under the
// list's shared lock only, per spec.md invariant 3.
func doLLen(ctx *Context, args [][]byte) error {
	if len(args) != 1 {
		return actionErr(protocol.ActionErr)
	}
	lm, err := currentListTable(ctx)
	if err != nil {
		return err
	}
	n, ok := lm.Len(args[0])
	if !ok {
		return writeGroup(ctx, protocol.Nil)
	}
	return protocol.WriteMono(ctx.W, protocol.TSymUnicode, []byte(fmt.Sprintf("%d", n)))
}

// doLGet implements LGET <listname> [LIMIT n]: a flat array of the list's
// current contents, optionally capped to the first n elements.
func doLGet(ctx *Context, args [][]byte) error {
	if len(args) != 1 && len(args) != 3 {
		return actionErr(protocol.ActionErr)
	}
	lm, err := currentListTable(ctx)
	if err != nil {
		return err
	}
	items, ok := lm.Snapshot(args[0])
	if !ok {
		return writeGroup(ctx, protocol.Nil)
	}
	if len(args) == 3 {
		if !bytes.Equal(bytes.ToUpper(args[1]), []byte("LIMIT")) {
			return actionErr(protocol.ActionErr)
		}
		limit, err := parseIndex(args[2])
		if err != nil {
			return err
		}
		if limit < len(items) {
			items = items[:limit]
		}
	}
	t, _ := ctx.Store.CurrentTable()
	tsym := t.Model.ValKind().TSymbol()
	if err := protocol.WriteFlatArrayLength(ctx.W, len(items)); err != nil {
		return err
	}
	for _, it := range items {
		if err := protocol.WriteMono(ctx.W, tsym, it.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
