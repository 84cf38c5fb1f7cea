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

import "errors"

// Sentinel errors for the store's DDL and selection operations, following
// the teacher's blob.ErrKeyNotFound/blob.ErrKeyExists idiom: a package-level
// sentinel plus an IsXxx predicate, rather than a sprawling custom error
// type hierarchy.
var (
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotEmpty              = errors.New("not empty")
	ErrDefaultContainerUnset = errors.New("default container unset")
	ErrBadContainerName      = errors.New("bad container name")
	ErrContainerNameTooLong  = errors.New("container name too long")
	ErrBadExpression         = errors.New("bad expression")
	ErrContainerNotFound     = errors.New("container not found")
	ErrWrongModel            = errors.New("wrong model")
	ErrNoSuchEntity          = errors.New("no such entity")
	ErrEncoding              = errors.New("encoding error")
)

// IsAlreadyExists reports whether err is ErrAlreadyExists.
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }

// IsNotEmpty reports whether err is ErrNotEmpty.
func IsNotEmpty(err error) bool { return errors.Is(err, ErrNotEmpty) }

// IsContainerNotFound reports whether err is ErrContainerNotFound.
func IsContainerNotFound(err error) bool { return errors.Is(err, ErrContainerNotFound) }

// IsWrongModel reports whether err is ErrWrongModel.
func IsWrongModel(err error) bool { return errors.Is(err, ErrWrongModel) }

// IsDefaultContainerUnset reports whether err is ErrDefaultContainerUnset.
func IsDefaultContainerUnset(err error) bool { return errors.Is(err, ErrDefaultContainerUnset) }
