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

package pyclass

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/openconfig/ypygen/genutil"
	"github.com/openconfig/ypygen/yschema"
)

// namespaceOf returns a namespace containing leaves with the supplied keys,
// registered in order.
func namespaceOf(keys ...string) *Namespace {
	ns := NewNamespace()
	for i, k := range keys {
		ns.Register(k, yschema.LeafKind, yschema.NodeID(i))
	}
	return ns
}

func identifiers(rec NameRecord) map[string]string {
	out := map[string]string{}
	for k, n := range rec {
		out[k] = n.Identifier
	}
	return out
}

func TestAssignNames(t *testing.T) {
	tests := []struct {
		desc     string
		inPaths  []string
		want     map[string]string
		wantErrs []error
	}{{
		desc:    "shared last two elements",
		inPaths: []string{"/m:a/b/leaf1", "/m:c/b/leaf1"},
		want: map[string]string{
			"/m:a/b/leaf1": "ALeaf1",
			"/m:c/b/leaf1": "CLeaf1",
		},
	}, {
		desc:    "single path",
		inPaths: []string{"/m:x/y/z"},
		want:    map[string]string{"/m:x/y/z": "Z"},
	}, {
		desc:    "unique last elements",
		inPaths: []string{"/m:a/leaf1", "/m:a/leaf2", "/m:a/admin-state"},
		want: map[string]string{
			"/m:a/leaf1":       "Leaf1",
			"/m:a/leaf2":       "Leaf2",
			"/m:a/admin-state": "AdminState",
		},
	}, {
		desc:    "suffix extends to the first distinguishing element",
		inPaths: []string{"/m:a/b/c/leaf", "/m:a/d/c/leaf", "/m:other"},
		want: map[string]string{
			"/m:a/b/c/leaf": "BLeaf",
			"/m:a/d/c/leaf": "DLeaf",
			"/m:other":      "Other",
		},
	}, {
		desc:    "partial element names do not match",
		inPaths: []string{"/m:a/leaf", "/m:b/aleaf"},
		want: map[string]string{
			"/m:a/leaf":  "Leaf",
			"/m:b/aleaf": "Aleaf",
		},
	}, {
		desc:    "full path is a suffix of another path",
		inPaths: []string{"/m:a/b", "/m:x/a/b"},
		want: map[string]string{
			"/m:a/b":   "AB",
			"/m:x/a/b": "XB",
		},
		wantErrs: []error{&AmbiguousNameError{Path: "/m:a/b"}},
	}, {
		desc:    "single element path that is a suffix of another path",
		inPaths: []string{"/m:b", "/m:a/b"},
		want: map[string]string{
			"/m:b":   "B",
			"/m:a/b": "AB",
		},
		wantErrs: []error{&AmbiguousNameError{Path: "/m:b"}},
	}, {
		desc:    "different tokens with the same identifier",
		inPaths: []string{"/m:x-leaf", "/m:x/leaf", "/m:y/leaf"},
		want: map[string]string{
			"/m:x-leaf": "XLeaf",
			"/m:x/leaf": "XLeaf_",
			"/m:y/leaf": "YLeaf",
		},
		wantErrs: []error{&CollisionError{
			Identifier: "XLeaf",
			Paths:      []string{"/m:x-leaf", "/m:x/leaf"},
			Renamed:    []string{"XLeaf_"},
		}},
	}, {
		desc:    "three tokens with the same identifier",
		inPaths: []string{"/m:x-leaf", "/m:x/leaf", "/m:y/leaf", "/m:x_leaf"},
		want: map[string]string{
			"/m:x-leaf": "XLeaf",
			"/m:x/leaf": "XLeaf_",
			"/m:y/leaf": "YLeaf",
			"/m:x_leaf": "XLeaf__",
		},
		wantErrs: []error{&CollisionError{
			Identifier: "XLeaf",
			Paths:      []string{"/m:x-leaf", "/m:x/leaf", "/m:x_leaf"},
			Renamed:    []string{"XLeaf_", "XLeaf__"},
		}},
	}, {
		desc:    "same stripped path in different modules",
		inPaths: []string{"/a:c/leaf", "/a:c/b:leaf"},
		want: map[string]string{
			"/a:c/leaf":   "CLeaf",
			"/a:c/b:leaf": "CLeaf_",
		},
		wantErrs: []error{
			&AmbiguousNameError{Path: "/a:c/leaf"},
			&AmbiguousNameError{Path: "/a:c/b:leaf"},
			&CollisionError{
				Identifier: "CLeaf",
				Paths:      []string{"/a:c/leaf", "/a:c/b:leaf"},
				Renamed:    []string{"CLeaf_"},
			},
		},
	}, {
		desc:    "dots are replaced",
		inPaths: []string{"/m:a/ipv4.address"},
		want:    map[string]string{"/m:a/ipv4.address": "Ipv4_address"},
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			rec, errs := AssignNames(namespaceOf(tt.inPaths...))
			if diff := cmp.Diff(tt.want, identifiers(rec)); diff != "" {
				t.Errorf("AssignNames(%v): identifiers (-want, +got):\n%s", tt.inPaths, diff)
			}
			if diff := cmp.Diff(tt.wantErrs, []error(errs), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("AssignNames(%v): errors (-want, +got):\n%s", tt.inPaths, diff)
			}
		})
	}
}

func TestAssignNamesElements(t *testing.T) {
	rec, errs := AssignNames(namespaceOf("/m:acl-sets/acl-set/m2:global"))
	if errs != nil {
		t.Fatalf("AssignNames: got unexpected errors: %v", errs)
	}
	want := &Name{
		Identifier:   "Global",
		Elements:     []string{"acl-sets", "acl-set", "global"},
		ElementsSafe: []string{"acl_sets", "acl_set", "global_"},
	}
	if diff := cmp.Diff(want, rec["/m:acl-sets/acl-set/m2:global"]); diff != "" {
		t.Errorf("AssignNames: name (-want, +got):\n%s", diff)
	}
	if got := rec.Identifier("/m:missing"); got != "" {
		t.Errorf("Identifier(/m:missing): got %q, want empty string", got)
	}
}

func TestAssignNamesInvalidToken(t *testing.T) {
	rec, errs := AssignNames(namespaceOf("/m:a/-", "/m:a/b"))
	if got, want := rec.Identifier("/m:a/-"), "Unnamed"; got != want {
		t.Errorf("Identifier(/m:a/-): got %q, want %q", got, want)
	}
	if got, want := rec.Identifier("/m:a/b"), "B"; got != want {
		t.Errorf("Identifier(/m:a/b): got %q, want %q", got, want)
	}
	if !errors.Is(errs, genutil.ErrInvalidToken) {
		t.Errorf("AssignNames: got errors %v, want an error wrapping ErrInvalidToken", errs)
	}
}

// TestAssignNamesDistinct checks that identifiers are pairwise distinct for
// namespaces made up of many overlapping paths.
func TestAssignNamesDistinct(t *testing.T) {
	elems := []string{"a", "b", "a-b", "leaf", "list"}
	var paths []string
	var gen func(prefix string, depth int)
	gen = func(prefix string, depth int) {
		if depth == 0 {
			return
		}
		for _, e := range elems {
			p := fmt.Sprintf("%s/%s", prefix, e)
			if prefix == "" {
				p = "/m:" + e
			}
			paths = append(paths, p)
			gen(p, depth-1)
		}
	}
	gen("", 3)

	rec, _ := AssignNames(namespaceOf(paths...))
	if got, want := len(rec), len(paths); got != want {
		t.Fatalf("AssignNames: got %d names, want %d", got, want)
	}
	seen := map[string]string{}
	for _, p := range paths {
		id := rec.Identifier(p)
		if id == "" {
			t.Errorf("AssignNames: no identifier for %s", p)
		}
		if other, ok := seen[id]; ok {
			t.Errorf("AssignNames: identifier %s is used by %s and %s", id, other, p)
		}
		seen[id] = p
	}
}

func TestAssignNamesDeterministic(t *testing.T) {
	paths := []string{"/m:a/b/leaf", "/m:c/b/leaf", "/m:b/leaf", "/m:leaf", "/m:d/leaf"}
	first, _ := AssignNames(namespaceOf(paths...))
	for i := 0; i < 5; i++ {
		got, _ := AssignNames(namespaceOf(paths...))
		if diff := cmp.Diff(identifiers(first), identifiers(got)); diff != "" {
			t.Fatalf("AssignNames: run %d differs from first run (-first, +got):\n%s", i, diff)
		}
	}
}
