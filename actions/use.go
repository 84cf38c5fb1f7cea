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
	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/protocol"
)

// doUse implements USE <keyspace> [table]: sets the connection's current
// selector, named in spec.md §4.2's "Selection" family but spelled out as
// its own action by original_source's queryengine.
func doUse(ctx *Context, args [][]byte) error {
	if len(args) != 1 && len(args) != 2 {
		return actionErr(protocol.ActionErr)
	}
	ksID, err := corestore.ParseObjectID(string(args[0]))
	if err != nil {
		return translateStoreErr(err)
	}
	if err := ctx.Store.UseKeyspace(ksID); err != nil {
		return translateStoreErr(err)
	}
	if len(args) == 2 {
		tblID, err := corestore.ParseObjectID(string(args[1]))
		if err != nil {
			return translateStoreErr(err)
		}
		if err := ctx.Store.UseTable(tblID); err != nil {
			return translateStoreErr(err)
		}
	}
	return writeGroup(ctx, protocol.Okay)
}
