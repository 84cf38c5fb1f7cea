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

import (
	"io"
	"strconv"
)

// Type symbols identify the wire type of a value in a response. Binary and
// unicode are the only two this server distinguishes; spec.md §9 resolves
// the ambiguity in the original source by fixing these once, here, and
// nowhere else.
const (
	TSymBinary  = '?'
	TSymUnicode = '+'
)

// WriteSimpleHeader writes the simple-query response header ('*').
func WriteSimpleHeader(w io.Writer) error {
	_, err := w.Write([]byte{'*'})
	return err
}

// WritePipelineHeader writes the pipeline response header ("$<n>\n").
func WritePipelineHeader(w io.Writer, n int) error {
	return writeLengthLine(w, '$', n)
}

// WriteFlatArrayLength writes a monotype flat array length ("_<n>\n").
func WriteFlatArrayLength(w io.Writer, n int) error {
	return writeLengthLine(w, '_', n)
}

// WriteArrayLength writes a heterogeneous typed array length ("&<n>\n").
func WriteArrayLength(w io.Writer, n int) error {
	return writeLengthLine(w, '&', n)
}

func writeLengthLine(w io.Writer, tag byte, n int) error {
	buf := make([]byte, 0, 1+20+1)
	buf = append(buf, tag)
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

// WriteMono writes a single typed value: "<tsym><len>\n<bytes>", with no
// trailing delimiter after the payload.
func WriteMono(w io.Writer, tsym byte, data []byte) error {
	buf := make([]byte, 0, 1+20+1)
	buf = append(buf, tsym)
	buf = strconv.AppendInt(buf, int64(len(data)), 10)
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// WriteRaw writes b verbatim; used for pre-built canned responses (see
// groups.go) and for bytes already in wire form.
func WriteRaw(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
