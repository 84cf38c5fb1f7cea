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

	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/protocol"
)

// doLMod implements LMOD <listname> <SUBCMD> [args...], the canonical
// dispatcher example of spec.md §4.4: CLEAR, PUSH, INSERT, REMOVE, POP.
func doLMod(ctx *Context, args [][]byte) error {
	if len(args) < 2 {
		return actionErr(protocol.ActionErr)
	}
	name := args[0]
	subcmd := string(bytes.ToUpper(args[1]))
	rest := args[2:]

	if err := checkOkay(ctx); err != nil {
		return err
	}
	lm, err := currentListTable(ctx)
	if err != nil {
		return err
	}

	switch subcmd {
	case "CLEAR":
		return lmodClear(ctx, lm, name, rest)
	case "PUSH":
		return lmodPush(ctx, lm, name, rest)
	case "INSERT":
		return lmodInsert(ctx, lm, name, rest)
	case "REMOVE":
		return lmodRemove(ctx, lm, name, rest)
	case "POP":
		return lmodPop(ctx, lm, name, rest)
	default:
		return actionErr(protocol.UnknownAction)
	}
}

func lmodClear(ctx *Context, lm *corestore.ListMap, name []byte, rest [][]byte) error {
	if len(rest) != 0 {
		return actionErr(protocol.ActionErr)
	}
	if !lm.Clear(name) {
		return writeGroup(ctx, protocol.Nil)
	}
	return writeGroup(ctx, protocol.Okay)
}

func lmodPush(ctx *Context, lm *corestore.ListMap, name []byte, rest [][]byte) error {
	if len(rest) == 0 {
		return actionErr(protocol.ActionErr)
	}
	t, _ := ctx.Store.CurrentTable()
	enc := t.ValEncoder()
	values := make([]corestore.Data, len(rest))
	for i, v := range rest {
		if !enc(v) {
			return actionErr(protocol.EncodingErr)
		}
		values[i] = corestore.NewData(v)
	}
	if !lm.Push(name, values...) {
		return writeGroup(ctx, protocol.Nil)
	}
	return writeGroup(ctx, protocol.Okay)
}

func lmodInsert(ctx *Context, lm *corestore.ListMap, name []byte, rest [][]byte) error {
	if len(rest) != 2 {
		return actionErr(protocol.ActionErr)
	}
	idx, err := parseIndex(rest[0])
	if err != nil {
		return err
	}
	t, _ := ctx.Store.CurrentTable()
	if !t.ValEncoder()(rest[1]) {
		return actionErr(protocol.EncodingErr)
	}
	found, inBounds := lm.Insert(name, idx, corestore.NewData(rest[1]))
	if !found {
		return writeGroup(ctx, protocol.Nil)
	}
	if !inBounds {
		return actionErr(protocol.BadIndex)
	}
	return writeGroup(ctx, protocol.Okay)
}

func lmodRemove(ctx *Context, lm *corestore.ListMap, name []byte, rest [][]byte) error {
	if len(rest) != 1 {
		return actionErr(protocol.ActionErr)
	}
	idx, err := parseIndex(rest[0])
	if err != nil {
		return err
	}
	found, inBounds := lm.Remove(name, idx)
	if !found {
		return writeGroup(ctx, protocol.Nil)
	}
	if !inBounds {
		return actionErr(protocol.BadIndex)
	}
	return writeGroup(ctx, protocol.Okay)
}

func lmodPop(ctx *Context, lm *corestore.ListMap, name []byte, rest [][]byte) error {
	if len(rest) > 1 {
		return actionErr(protocol.ActionErr)
	}
	var idxPtr *int
	if len(rest) == 1 {
		idx, err := parseIndex(rest[0])
		if err != nil {
			return err
		}
		idxPtr = &idx
	}
	found, inBounds, val := lm.Pop(name, idxPtr)
	if !found {
		return writeGroup(ctx, protocol.Nil)
	}
	if !inBounds {
		return actionErr(protocol.BadIndex)
	}
	t, _ := ctx.Store.CurrentTable()
	if err := protocol.WriteFlatArrayLength(ctx.W, 1); err != nil {
		return err
	}
	return protocol.WriteMono(ctx.W, t.Model.ValKind().TSymbol(), val.Bytes())
}
