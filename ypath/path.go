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

// Package ypath builds the string paths that address a schema node in the
// generated code. Three styles are produced: a plain XPath-like schema path,
// a RESTCONF path with key placeholders, and a gNMI path with bracketed key
// predicates.
//
// In all styles the module prefix of a path element is only included where
// the module differs from that of the preceding element, e.g.,
// /openconfig-acl:acl/acl-sets/acl-set.
package ypath

import (
	"fmt"
	"strings"

	"github.com/openconfig/ypygen/yschema"
)

// Style selects the form of a path.
type Style int

const (
	// Plain is a schema path, e.g., /m:interfaces/interface.
	Plain Style = iota
	// REST is a RESTCONF path, e.g., /m:interfaces/interface={}.
	REST
	// Streaming is a gNMI path, e.g., /m:interfaces/interface[name={}].
	Streaming
)

// String returns the name of s.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case REST:
		return "rest"
	case Streaming:
		return "gnmi"
	}
	return fmt.Sprintf("unknown-style-%d", s)
}

// KeyPlaceholder is the value used for each list key in REST and Streaming
// paths. The generated Python code substitutes key values using str.format.
const KeyPlaceholder = "{}"

// Build returns the path of the node id within t in the supplied style.
//
// A module's path is /<module>:<module>. Choice and case nodes have the path
// of their parent, since they have no presence in the data tree. All other
// nodes have the path formed by the data tree nodes from the top of the
// module down to and including the node.
func Build(t *yschema.Tree, id yschema.NodeID, style Style) (string, error) {
	n, err := t.Lookup(id)
	if err != nil {
		return "", err
	}

	var segs []string
	for cur := n; cur != nil; {
		switch {
		case cur.Kind.IsModule():
			if len(segs) == 0 {
				segs = append(segs, qualify(cur.Name, cur.Name))
			}
		case cur.Kind.IsChoiceOrCase():
		default:
			seg, err := segment(t, cur, style)
			if err != nil {
				return "", err
			}
			segs = append(segs, seg)
		}
		if cur.Kind.IsModule() || cur.Parent == yschema.NoNode {
			break
		}
		if cur, err = t.Lookup(cur.Parent); err != nil {
			return "", fmt.Errorf("invalid parent of %q: %v", n.Name, err)
		}
	}

	var b strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return CollapsePrefixes(b.String()), nil
}

// BuildAll returns the path of id in each style, indexed by Style.
func BuildAll(t *yschema.Tree, id yschema.NodeID) ([3]string, error) {
	var out [3]string
	for _, s := range []Style{Plain, REST, Streaming} {
		p, err := Build(t, id, s)
		if err != nil {
			return out, err
		}
		out[s] = p
	}
	return out, nil
}

func qualify(module, name string) string {
	return module + ":" + name
}

// segment returns the module-qualified path element of the data node n.
func segment(t *yschema.Tree, n *yschema.Node, style Style) (string, error) {
	seg := qualify(n.Module, n.Name)
	if n.Kind != yschema.ListKind {
		return seg, nil
	}

	switch style {
	case REST:
		ph := make([]string, len(n.Keys))
		for i := range ph {
			ph[i] = KeyPlaceholder
		}
		return seg + "=" + strings.Join(ph, ","), nil
	case Streaming:
		var b strings.Builder
		b.WriteString(seg)
		for _, k := range n.Keys {
			kn, err := t.Lookup(k)
			if err != nil {
				return "", fmt.Errorf("invalid key of list %q: %v", n.Name, err)
			}
			fmt.Fprintf(&b, "[%s=%s]", kn.Name, KeyPlaceholder)
		}
		return b.String(), nil
	}
	return seg, nil
}

// CollapsePrefixes rewrites path such that a module prefix is only retained
// on the first element and on elements whose module differs from that of the
// previous element. Elements of the input without a prefix are taken to be
// in the module of the preceding element. The result always starts with /.
func CollapsePrefixes(path string) string {
	var b strings.Builder
	var cur string
	for _, el := range SplitPath(path) {
		mod, rest, ok := splitPrefix(el)
		b.WriteByte('/')
		if ok && mod != cur {
			cur = mod
			b.WriteString(el)
			continue
		}
		b.WriteString(rest)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// Segment is an element of a schema path.
type Segment struct {
	// Module is the module the element belongs to.
	Module string
	// Name is the local name of the element, without key decoration.
	Name string
}

// String returns the module-qualified form of s.
func (s Segment) String() string {
	if s.Module == "" {
		return s.Name
	}
	return qualify(s.Module, s.Name)
}

// Segments splits path into its elements. Elements without a module prefix
// inherit the module of the preceding element. Key decorations of REST and
// Streaming paths are removed from the element names.
func Segments(path string) []Segment {
	var segs []Segment
	var cur string
	for _, el := range SplitPath(path) {
		mod, rest, ok := splitPrefix(el)
		if ok {
			cur = mod
		}
		if i := strings.IndexAny(rest, "[="); i >= 0 {
			rest = rest[:i]
		}
		segs = append(segs, Segment{Module: cur, Name: rest})
	}
	return segs
}

// splitPrefix splits the path element el into its module prefix and the
// remainder. ok is false if el has no prefix. A colon that follows the
// start of a key predicate is not a prefix separator.
func splitPrefix(el string) (mod, rest string, ok bool) {
	i := strings.IndexByte(el, ':')
	if i < 0 {
		return "", el, false
	}
	if j := strings.IndexAny(el, "[="); j >= 0 && j < i {
		return "", el, false
	}
	return el[:i], el[i+1:], true
}
