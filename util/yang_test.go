// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"
	"github.com/openconfig/goyang/pkg/yang"
)

func TestIsAnydataAndRPC(t *testing.T) {
	tests := []struct {
		name        string
		in          *yang.Entry
		wantAnydata bool
		wantRPC     bool
	}{{
		name: "nil",
	}, {
		name: "container",
		in:   &yang.Entry{Kind: yang.DirectoryEntry},
	}, {
		name:        "anydata",
		in:          &yang.Entry{Kind: yang.AnyDataEntry},
		wantAnydata: true,
	}, {
		name:    "rpc",
		in:      &yang.Entry{Kind: yang.DirectoryEntry, RPC: &yang.RPCEntry{}},
		wantRPC: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAnydata(tt.in); got != tt.wantAnydata {
				t.Errorf("IsAnydata: got %v, want %v", got, tt.wantAnydata)
			}
			if got := IsRPC(tt.in); got != tt.wantRPC {
				t.Errorf("IsRPC: got %v, want %v", got, tt.wantRPC)
			}
		})
	}
}

func TestListKeyNames(t *testing.T) {
	tests := []struct {
		name             string
		inKey            string
		want             []string
		wantErrSubstring string
	}{{
		name: "unkeyed list",
	}, {
		name:  "single key",
		inKey: "name",
		want:  []string{"name"},
	}, {
		name:  "multiple keys in statement order with prefixes",
		inKey: " type  acl:name\n",
		want:  []string{"type", "name"},
	}, {
		name:             "invalid key",
		inKey:            "a:b:c",
		wantErrSubstring: "invalid key of list l",
	}, {
		name:             "empty name after prefix",
		inKey:            "a:",
		wantErrSubstring: "did not form a valid name",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListKeyNames(&yang.Entry{Name: "l", Key: tt.inKey})
			if diff := errdiff.Substring(err, tt.wantErrSubstring); diff != "" {
				t.Fatalf("ListKeyNames(%q): %s", tt.inKey, diff)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ListKeyNames(%q) (-want, +got):\n%s", tt.inKey, diff)
			}
		})
	}
}
