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
	"errors"

	"github.com/ohsayan/skyhashd/corestore"
	"github.com/ohsayan/skyhashd/protocol"
)

// checkOkay returns a *server-error* ActionError unless the oracle reports
// a healthy store, per spec.md §4.3: every mutating path checks this
// before touching the store.
func checkOkay(ctx *Context) error {
	if !ctx.Oracle.StateOkay() {
		return actionErr(protocol.ServerErr)
	}
	return nil
}

// maxInt is the largest value an int can hold; used to detect overflow
// while accumulating a decimal index, mirroring protocol.readUint's
// checked-multiply/checked-add arithmetic.
const maxInt = int(^uint(0) >> 1)

// parseIndex parses s as an unsigned decimal index, returning
// protocol.WrongTypeErr wrapped as an *ActionError for any non-digit byte
// or for a value that overflows int, exactly as spec.md §4.4's tie-break
// rule requires. Without the overflow check, an index like
// 9223372036854775808 would wrap to a negative int and sail past every
// "idx < len" bounds check downstream, turning a bad-index case into a
// slice-bounds panic.
func parseIndex(s []byte) (int, error) {
	if len(s) == 0 {
		return 0, actionErr(protocol.WrongTypeErr)
	}
	n := 0
	for _, b := range s {
		if b < '0' || b > '9' {
			return 0, actionErr(protocol.WrongTypeErr)
		}
		digit := int(b - '0')
		if n > maxInt/10 {
			return 0, actionErr(protocol.WrongTypeErr)
		}
		n *= 10
		if n > maxInt-digit {
			return 0, actionErr(protocol.WrongTypeErr)
		}
		n += digit
	}
	return n, nil
}

// currentBlobTable returns the connection's currently selected table,
// failing with wrong-model-error if it is not a KVEBlob table.
func currentBlobTable(ctx *Context) (*corestore.BlobMap, error) {
	t, err := ctx.Store.CurrentTable()
	if err != nil {
		return nil, translateStoreErr(err)
	}
	bm, ok := t.Blobs()
	if !ok {
		return nil, actionErr(protocol.WrongModel)
	}
	return bm, nil
}

// currentListTable returns the connection's currently selected table,
// failing with wrong-model-error if it is not a KVEList table.
func currentListTable(ctx *Context) (*corestore.ListMap, error) {
	t, err := ctx.Store.CurrentTable()
	if err != nil {
		return nil, translateStoreErr(err)
	}
	lm, ok := t.Lists()
	if !ok {
		return nil, actionErr(protocol.WrongModel)
	}
	return lm, nil
}

// translateStoreErr maps a corestore sentinel error to its wire response.
func translateStoreErr(err error) error {
	switch {
	case corestore.IsDefaultContainerUnset(err):
		return actionErr(protocol.DefaultContainerUnset)
	case corestore.IsContainerNotFound(err):
		return actionErr(protocol.ContainerNotFound)
	case corestore.IsAlreadyExists(err):
		return actionErr(protocol.AlreadyExists)
	case corestore.IsNotEmpty(err):
		return actionErr(protocol.NotEmpty)
	case corestore.IsWrongModel(err):
		return actionErr(protocol.WrongModel)
	case errors.Is(err, corestore.ErrBadExpression):
		return actionErr(protocol.BadExpression)
	case errors.Is(err, corestore.ErrContainerNameTooLong):
		return actionErr(protocol.ContainerNameTooLong)
	default:
		return actionErr(protocol.ServerErr)
	}
}
