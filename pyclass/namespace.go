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
	"github.com/openconfig/ypygen/ypath"
	"github.com/openconfig/ypygen/yschema"
	"golang.org/x/exp/slices"
)

// PathEntry is a schema node registered within a Namespace.
type PathEntry struct {
	// Key is the plain path of the node, and uniquely identifies the entry
	// within its Namespace.
	Key string
	// Segments are the elements of Key.
	Segments []ypath.Segment
	// Kind is the kind of the schema node.
	Kind yschema.Kind
	// Node is the ID of the schema node.
	Node yschema.NodeID
	// Order is the index at which the entry was registered.
	Order int
}

// Elements returns the local names of the entry's path elements, with
// module prefixes removed.
func (p *PathEntry) Elements() []string {
	els := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		els[i] = s.Name
	}
	return els
}

// Namespace is an insertion-ordered set of PathEntry values whose names are
// chosen together.
type Namespace struct {
	order   []string
	entries map[string]*PathEntry
	next    int
}

// NewNamespace returns an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{entries: map[string]*PathEntry{}}
}

// Register adds the node with the supplied plain path key to the namespace.
// If key is already registered, the existing entry is returned unchanged.
func (ns *Namespace) Register(key string, kind yschema.Kind, node yschema.NodeID) *PathEntry {
	if e, ok := ns.entries[key]; ok {
		return e
	}
	e := &PathEntry{
		Key:      key,
		Segments: ypath.Segments(key),
		Kind:     kind,
		Node:     node,
		Order:    ns.next,
	}
	ns.next++
	ns.entries[key] = e
	ns.order = append(ns.order, key)
	return e
}

// Lookup returns the entry registered under key.
func (ns *Namespace) Lookup(key string) (*PathEntry, bool) {
	e, ok := ns.entries[key]
	return e, ok
}

// Delete removes the entry registered under key, returning false if there
// was none. The registration order of the remaining entries is unchanged.
func (ns *Namespace) Delete(key string) bool {
	if _, ok := ns.entries[key]; !ok {
		return false
	}
	delete(ns.entries, key)
	if i := slices.Index(ns.order, key); i >= 0 {
		ns.order = slices.Delete(ns.order, i, i+1)
	}
	return true
}

// Len returns the number of entries in the namespace.
func (ns *Namespace) Len() int {
	return len(ns.order)
}

// Keys returns the keys of the namespace in registration order.
func (ns *Namespace) Keys() []string {
	return slices.Clone(ns.order)
}

// Entries returns the entries of the namespace in registration order.
func (ns *Namespace) Entries() []*PathEntry {
	out := make([]*PathEntry, 0, len(ns.order))
	for _, k := range ns.order {
		out = append(out, ns.entries[k])
	}
	return out
}
