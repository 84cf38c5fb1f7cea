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

package protocol

import "fmt"

// group builds a canned response literal of the form "!<len>\n<token>\n".
// Deriving the length from the token at init time keeps it correct by
// construction instead of hand-counted, the way storage/dbkey derives its
// wire prefixes from Go values rather than magic numbers.
func group(token string) []byte {
	return []byte(fmt.Sprintf("!%d\n%s\n", len(token), token))
}

// Canned response groups, exact bytes per spec.md §6.
//
// Okay, Nil (NotFound) and Overwrite reuse the single-digit response codes
// directly as their token; every other canned reply carries a short
// descriptive token instead
// of its numeric code, exactly as spec.md's error-handling prose names them
// (e.g. "write wrongtype-error", "write packet-error").
var (
	Okay       = group("0")
	Nil        = group("1")
	Overwrite  = group("2")
	ActionErr  = group("action-error")
	PacketErr  = group("packet-error")
	ServerErr  = group("server-error")

	WrongTypeErr          = group("wrongtype-error")
	EncodingErr           = group("encoding-error")
	UnknownAction         = group("unknown-action")
	BadExpression         = group("bad-expression")
	ContainerNameTooLong  = group("container-name-too-long")
	DefaultContainerUnset = group("default-container-unset")
	BadCredentials        = group("bad-credentials")
	UnknownDDLQuery       = group("unknown-ddl-query")
	UnknownProperty       = group("unknown-property")
	UnknownMetric         = group("unknown-metric")
	BadIndex              = group("bad-index")
	AlreadyExists         = group("already-exists")
	NotEmpty              = group("not-empty")
	BadContainerName      = group("bad-container-name")
	ContainerNotFound     = group("container-not-found")
	WrongModel            = group("wrong-model")
	NoSuchEntity          = group("no-such-entity")
)

// OkayBadIndexNilLUT mirrors the original OKAY_BADIDX_NIL_NLUT lookup table:
// index by whether the operation found the list (it always checks existence
// first) and then whether the index was in bounds. LMOD's REMOVE/INSERT
// handlers in package actions make the same choice inline and do not call
// it.
func OkayBadIndexNilLUT(listFound, inBounds bool) []byte {
	if !listFound {
		return Nil
	}
	if !inBounds {
		return BadIndex
	}
	return Okay
}
