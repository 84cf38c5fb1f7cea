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

package corestore

import (
	"unicode/utf8"

	"github.com/ohsayan/skyhashd/protocol"
)

// Kind distinguishes the two encodings a key or value slot may carry.
type Kind bool

const (
	Binary  Kind = false
	Unicode Kind = true
)

// TSymbol returns the wire type-symbol for k: '?' for binary, '+' for
// unicode, fixed once here per spec.md §9's resolution of the original
// source's inconsistency.
func (k Kind) TSymbol() byte {
	if k == Unicode {
		return protocol.TSymUnicode
	}
	return protocol.TSymBinary
}

// Encoder is a total predicate over a candidate byte slice: it never
// panics, and a batch of candidates can be checked before any mutation is
// applied (spec.md §4.2, invariant 2).
type Encoder func(b []byte) bool

// encoderFor returns the validator for kind k. Binary accepts anything;
// unicode requires valid UTF-8.
func encoderFor(k Kind) Encoder {
	if k == Unicode {
		return utf8.Valid
	}
	return func([]byte) bool { return true }
}

// ModelCode is the stable wire byte naming a table's shape: 0..3 are the
// four KVEBlob (key-kind, value-kind) combinations, 4..7 are the
// corresponding KVEList combinations, in the same key/value kind order.
type ModelCode uint8

const (
	ModelBlobBinBin ModelCode = iota
	ModelBlobBinUni
	ModelBlobUniBin
	ModelBlobUniUni
	ModelListBinBin
	ModelListBinUni
	ModelListUniBin
	ModelListUniUni
)

// IsList reports whether m names a KVEList table.
func (m ModelCode) IsList() bool { return m >= ModelListBinBin }

// KeyKind reports the key encoding for m: subcodes 0,1 are binary-keyed,
// subcodes 2,3 are unicode-keyed (0:bin/bin, 1:bin/uni, 2:uni/bin, 3:uni/uni).
func (m ModelCode) KeyKind() Kind {
	if m%4 >= 2 {
		return Unicode
	}
	return Binary
}

// ValKind reports the value encoding for m: odd subcodes are unicode-valued.
func (m ModelCode) ValKind() Kind {
	if m%4%2 == 1 {
		return Unicode
	}
	return Binary
}

// Valid reports whether m is one of the eight defined model codes.
func (m ModelCode) Valid() bool { return m <= ModelListUniUni }
