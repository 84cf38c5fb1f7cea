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
	"testing"

	"github.com/ohsayan/skyhashd/protocol"
)

func TestDispatchUnknownAction(t *testing.T) {
	ctx, _ := newDDLTestContext()
	err := Dispatch(ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("BOGUS")}})
	ae, ok := err.(*ActionError)
	if !ok || !bytes.Equal(ae.Response, protocol.UnknownAction) {
		t.Fatalf("Dispatch unknown verb: got %v, want unknown-action", err)
	}
}

func TestDispatchEmptyQuery(t *testing.T) {
	ctx, _ := newDDLTestContext()
	err := Dispatch(ctx, protocol.SimpleQuery{})
	ae, ok := err.(*ActionError)
	if !ok || !bytes.Equal(ae.Response, protocol.UnknownAction) {
		t.Fatalf("Dispatch empty query: got %v, want unknown-action", err)
	}
}

func TestDispatchLowercaseVerb(t *testing.T) {
	ctx, buf := newDDLTestContext()
	mustDispatch(t, ctx, protocol.SimpleQuery{Args: [][]byte{[]byte("create"), []byte("SPACE"), []byte("ks1")}})
	if !bytes.Equal(buf.Bytes(), protocol.Okay) {
		t.Fatalf("Dispatch lowercase verb: got %q, want okay", buf.Bytes())
	}
}
