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

// doSys implements the admin surface:
//
//	SYS INFO protocol|protover|version
//	SYS METRIC health
func doSys(ctx *Context, args [][]byte) error {
	if len(args) != 2 {
		return actionErr(protocol.ActionErr)
	}
	switch kind := string(bytes.ToUpper(args[0])); kind {
	case "INFO":
		return sysInfo(ctx, string(bytes.ToLower(args[1])))
	case "METRIC":
		return sysMetric(ctx, string(bytes.ToLower(args[1])))
	default:
		return actionErr(protocol.UnknownProperty)
	}
}

func sysInfo(ctx *Context, prop string) error {
	switch prop {
	case "protocol":
		return protocol.WriteMono(ctx.W, protocol.TSymUnicode, []byte(protocol.VersionString))
	case "protover":
		return protocol.WriteMono(ctx.W, protocol.TSymUnicode, []byte("2.0"))
	case "version":
		return protocol.WriteMono(ctx.W, protocol.TSymUnicode, []byte(serverVersion))
	default:
		return actionErr(protocol.UnknownProperty)
	}
}

func sysMetric(ctx *Context, metric string) error {
	switch metric {
	case "health":
		token := "good"
		if !ctx.Oracle.StateOkay() {
			token = "critical"
		}
		return protocol.WriteMono(ctx.W, protocol.TSymUnicode, []byte(token))
	default:
		return actionErr(protocol.UnknownMetric)
	}
}

// serverVersion is the implementation's own release identifier, reported
// by SYS INFO version.
const serverVersion = "0.1.0"
