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

	"github.com/ohsayan/skyhashd/protocol"
)

// table is the verb-to-handler map, grounded on the teacher's
// blob/store.Registry: a package-level map from a short string tag to a
// constructor, looked up once per request rather than once per process.
var table = map[string]Func{
	"GET":    doGet,
	"SET":    doSet,
	"UPDATE": doUpdate,
	"DEL":    doDel,
	"EXISTS": doExists,

	"LSET": doLSet,
	"LLEN": doLLen,
	"LGET": doLGet,
	"LMOD": doLMod,

	"USE": doUse,

	"CREATE": doCreate,
	"DROP":   doDrop,

	"SYS": doSys,

	"AUTH": doAuth,
}

// Dispatch resolves and runs the handler for query, a single Simple query
// whose first argument is the action verb (case-insensitive: the verb is
// upper-cased before lookup). It reports UnknownAction as an
// *ActionError if the verb has no registered handler.
func Dispatch(ctx *Context, query protocol.SimpleQuery) error {
	if len(query.Args) == 0 {
		return actionErr(protocol.UnknownAction)
	}
	verb := string(bytes.ToUpper(query.Args[0]))
	fn, ok := table[verb]
	if !ok {
		return actionErr(protocol.UnknownAction)
	}
	return fn(ctx, query.Args[1:])
}
