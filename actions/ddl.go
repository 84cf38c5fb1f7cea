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

// doCreate implements the DDL surface:
//
//	CREATE KEYSPACE <name>
//	CREATE TABLE <name> <modelcode>
//
// SPACE and MODEL are accepted as aliases for KEYSPACE and TABLE, matching
// the original admin surface's shorter spelling.
func doCreate(ctx *Context, args [][]byte) error {
	if len(args) < 2 {
		return actionErr(protocol.ActionErr)
	}
	if err := checkOkay(ctx); err != nil {
		return err
	}
	switch kind := string(bytes.ToUpper(args[0])); kind {
	case "KEYSPACE", "SPACE":
		if len(args) != 2 {
			return actionErr(protocol.ActionErr)
		}
		id, err := corestore.ParseObjectID(string(args[1]))
		if err != nil {
			return translateStoreErr(err)
		}
		if err := ctx.Store.Registry.CreateKeyspace(id); err != nil {
			return translateStoreErr(err)
		}
		return writeGroup(ctx, protocol.Okay)
	case "TABLE", "MODEL":
		if len(args) != 3 {
			return actionErr(protocol.ActionErr)
		}
		id, err := corestore.ParseObjectID(string(args[1]))
		if err != nil {
			return translateStoreErr(err)
		}
		code, err := parseIndex(args[2])
		if err != nil {
			return err
		}
		model := corestore.ModelCode(code)
		if !model.Valid() {
			return actionErr(protocol.BadExpression)
		}
		if err := ctx.Store.CreateTable(id, model); err != nil {
			return translateStoreErr(err)
		}
		return writeGroup(ctx, protocol.Okay)
	default:
		return actionErr(protocol.UnknownDDLQuery)
	}
}

// doDrop implements the DDL surface:
//
//	DROP KEYSPACE <name> [FORCE]
//	DROP TABLE <name>
//
// SPACE and MODEL are accepted as aliases for KEYSPACE and TABLE, matching
// the original admin surface's shorter spelling.
func doDrop(ctx *Context, args [][]byte) error {
	if len(args) < 2 {
		return actionErr(protocol.ActionErr)
	}
	if err := checkOkay(ctx); err != nil {
		return err
	}
	switch kind := string(bytes.ToUpper(args[0])); kind {
	case "KEYSPACE", "SPACE":
		if len(args) != 2 && len(args) != 3 {
			return actionErr(protocol.ActionErr)
		}
		id, err := corestore.ParseObjectID(string(args[1]))
		if err != nil {
			return translateStoreErr(err)
		}
		force := false
		if len(args) == 3 {
			if !bytes.Equal(bytes.ToUpper(args[2]), []byte("FORCE")) {
				return actionErr(protocol.ActionErr)
			}
			force = true
		}
		if err := ctx.Store.Registry.DropKeyspace(id, force); err != nil {
			return translateStoreErr(err)
		}
		return writeGroup(ctx, protocol.Okay)
	case "TABLE", "MODEL":
		if len(args) != 2 {
			return actionErr(protocol.ActionErr)
		}
		id, err := corestore.ParseObjectID(string(args[1]))
		if err != nil {
			return translateStoreErr(err)
		}
		if err := ctx.Store.DropTable(id); err != nil {
			return translateStoreErr(err)
		}
		return writeGroup(ctx, protocol.Okay)
	default:
		return actionErr(protocol.UnknownDDLQuery)
	}
}
