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
	"bytes"
	"testing"
)

func TestCannedGroupBytes(t *testing.T) {
	cases := []struct {
		name string
		got  []byte
		want string
	}{
		{"Okay", Okay, "!1\n0\n"},
		{"Nil", Nil, "!1\n1\n"},
		{"UnknownProperty", UnknownProperty, "!16\nunknown-property\n"},
		{"UnknownMetric", UnknownMetric, "!14\nunknown-metric\n"},
		{"WrongTypeErr", WrongTypeErr, "!15\nwrongtype-error\n"},
		{"EncodingErr", EncodingErr, "!14\nencoding-error\n"},
		{"ServerErr", ServerErr, "!12\nserver-error\n"},
	}
	for _, c := range cases {
		if string(c.got) != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
}

func TestWriteMono(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMono(&buf, TSymUnicode, []byte("bar")); err != nil {
		t.Fatalf("WriteMono: %v", err)
	}
	if got, want := buf.String(), "+3\nbar"; got != want {
		t.Errorf("WriteMono = %q, want %q", got, want)
	}
}

func TestWritePipelineHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePipelineHeader(&buf, 2); err != nil {
		t.Fatalf("WritePipelineHeader: %v", err)
	}
	if got, want := buf.String(), "$2\n"; got != want {
		t.Errorf("WritePipelineHeader = %q, want %q", got, want)
	}
}

func TestWriteFlatArrayLength(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFlatArrayLength(&buf, 0); err != nil {
		t.Fatalf("WriteFlatArrayLength: %v", err)
	}
	if got, want := buf.String(), "_0\n"; got != want {
		t.Errorf("WriteFlatArrayLength = %q, want %q", got, want)
	}
}
