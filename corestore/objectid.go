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

import "regexp"

// MaxObjectIDLen is the maximum byte length of a keyspace or table
// identifier. Identifiers of this length or longer are rejected with
// ErrContainerNameTooLong.
const MaxObjectIDLen = 64

// validIdentifier matches the identifier grammar from spec.md §3:
// ^[A-Za-z_][A-Za-z0-9_]{0,63}$
var validIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// ObjectID names a keyspace or table. It is a short, fixed-capacity
// identifier: non-empty, matching validIdentifier, and shorter than
// MaxObjectIDLen bytes.
type ObjectID string

// ParseObjectID validates s as an ObjectID, returning ErrBadExpression if it
// does not match the identifier grammar, or ErrContainerNameTooLong if it is
// at least MaxObjectIDLen bytes.
func ParseObjectID(s string) (ObjectID, error) {
	if len(s) >= MaxObjectIDLen {
		return "", ErrContainerNameTooLong
	}
	if !validIdentifier.MatchString(s) {
		return "", ErrBadExpression
	}
	return ObjectID(s), nil
}
