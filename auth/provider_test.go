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

package auth

import "testing"

func TestStaticProviderLogin(t *testing.T) {
	p, err := NewStaticProvider(map[string]string{"root": "s3cret"})
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}
	if err := p.Login([]byte("root"), []byte("s3cret")); err != nil {
		t.Fatalf("Login with correct credentials: %v", err)
	}
	if err := p.Login([]byte("root"), []byte("wrong")); err != ErrBadCredentials {
		t.Fatalf("Login with wrong password: got %v, want ErrBadCredentials", err)
	}
	if err := p.Login([]byte("ghost"), []byte("x")); err != ErrBadCredentials {
		t.Fatalf("Login with unknown user: got %v, want ErrBadCredentials", err)
	}
}
