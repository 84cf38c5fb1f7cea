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

// doAuth implements AUTH LOGIN <user> <pass>: a narrow contract that calls
// the injected auth.Provider and, on success, swaps the connection's
// executor from unauth to auth (spec.md §4.5). The credential store
// itself is out of scope; this handler only ever talks to the Provider
// interface.
func doAuth(ctx *Context, args [][]byte) error {
	if len(args) != 3 {
		return actionErr(protocol.ActionErr)
	}
	if !bytes.Equal(bytes.ToUpper(args[0]), []byte("LOGIN")) {
		return actionErr(protocol.UnknownAction)
	}
	if ctx.Auth == nil {
		return actionErr(protocol.ServerErr)
	}
	if err := ctx.Auth.Login(args[1], args[2]); err != nil {
		return actionErr(protocol.BadCredentials)
	}
	if ctx.SwapToAuth != nil {
		ctx.SwapToAuth()
	}
	return writeGroup(ctx, protocol.Okay)
}
