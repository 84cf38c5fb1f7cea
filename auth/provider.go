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

// Package auth models the narrow AUTH LOGIN contract spec.md §4.4
// describes: action handlers call Provider.Login and, on success, swap
// the connection's executor. The credential store itself is explicitly
// out of scope, so Provider is an interface with exactly one
// implementation here, a static bcrypt-backed map, grounded on the
// teacher's own preference for hashing with golang.org/x/crypto rather
// than a hand-rolled comparison.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned by Login when the username is unknown or
// the password does not match.
var ErrBadCredentials = errors.New("bad credentials")

// Provider decides whether a username/password pair is valid.
type Provider interface {
	Login(user, pass []byte) error
}

// StaticProvider is a fixed, in-memory credential set keyed by username,
// each password stored only as a bcrypt hash. It exists to give the
// dispatcher's AUTH LOGIN handler something real to call; a production
// deployment would inject a different Provider backed by persistent
// storage, which is why Provider is an interface rather than a concrete
// type wired directly into actions.Context.
type StaticProvider struct {
	hashes map[string][]byte
}

// NewStaticProvider builds a StaticProvider from plaintext credentials,
// hashing each password with bcrypt at construction time. It is meant for
// tests and small deployments, not as a scalable credential store.
func NewStaticProvider(credentials map[string]string) (*StaticProvider, error) {
	hashes := make(map[string][]byte, len(credentials))
	for user, pass := range credentials {
		h, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashes[user] = h
	}
	return &StaticProvider{hashes: hashes}, nil
}

// Login reports ErrBadCredentials if user is unknown or pass does not
// match the stored hash.
func (s *StaticProvider) Login(user, pass []byte) error {
	hash, ok := s.hashes[string(user)]
	if !ok {
		return ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, pass); err != nil {
		return ErrBadCredentials
	}
	return nil
}

var _ Provider = (*StaticProvider)(nil)
