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

// Package protocol implements the Skyhash-2.0 wire protocol: a line-framed
// binary format for simple and pipelined queries, and the response framing
// primitives used to answer them.
package protocol

// Version is the Skyhash protocol version.
const Version = 2.0

// VersionString is the Skyhash protocol version string, as reported by
// SYS INFO protocol.
const VersionString = "Skyhash-2.0"

// SimpleQuery is a finite ordered sequence of argument slices. Each element
// aliases the buffer that was parsed to produce it; the caller must not
// reuse or advance that buffer until it is done with the query.
type SimpleQuery struct {
	Args [][]byte
}

// PipelinedQuery is a finite ordered sequence of SimpleQuery payloads.
type PipelinedQuery struct {
	Queries []SimpleQuery
}

// Query is a tagged union of a SimpleQuery and a PipelinedQuery. Exactly one
// of Simple or Pipelined is non-nil.
type Query struct {
	Simple    *SimpleQuery
	Pipelined *PipelinedQuery
}

// Len reports the number of inner queries in a pipeline.
func (p *PipelinedQuery) Len() int { return len(p.Queries) }
