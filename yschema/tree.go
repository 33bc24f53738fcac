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

// Package yschema contains a compact representation of a compiled YANG
// schema tree, and the functions that build it from the output of goyang.
//
// Nodes are stored in an arena (Tree) and refer to each other by NodeID, such
// that parent and child links do not form pointer cycles.
package yschema

import "fmt"

// NodeID identifies a node within a Tree.
type NodeID int

// NoNode is the NodeID used where a node has no parent.
const NoNode NodeID = -1

// Kind is the YANG statement keyword of a schema node.
type Kind int

const (
	// InvalidKind is the zero value of Kind.
	InvalidKind Kind = iota
	// ModuleKind is a YANG module.
	ModuleKind
	// SubmoduleKind is a YANG submodule.
	SubmoduleKind
	// ContainerKind is a YANG container.
	ContainerKind
	// ListKind is a YANG list.
	ListKind
	// LeafKind is a YANG leaf.
	LeafKind
	// LeafListKind is a YANG leaf-list.
	LeafListKind
	// ChoiceKind is a YANG choice.
	ChoiceKind
	// CaseKind is a YANG case.
	CaseKind
)

var kindNames = map[Kind]string{
	ModuleKind:    "module",
	SubmoduleKind: "submodule",
	ContainerKind: "container",
	ListKind:      "list",
	LeafKind:      "leaf",
	LeafListKind:  "leaf-list",
	ChoiceKind:    "choice",
	CaseKind:      "case",
}

// String returns the YANG keyword corresponding to k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown-kind-%d", k)
}

// IsModule reports whether k is a module or submodule.
func (k Kind) IsModule() bool {
	return k == ModuleKind || k == SubmoduleKind
}

// IsChoiceOrCase reports whether k is a choice or case. These are schema
// nodes only and have no presence in the data tree.
func (k Kind) IsChoiceOrCase() bool {
	return k == ChoiceKind || k == CaseKind
}

// IsLeaf reports whether k is a leaf or leaf-list.
func (k Kind) IsLeaf() bool {
	return k == LeafKind || k == LeafListKind
}

// Config describes whether a node is writable configuration or read-only
// operational state.
type Config int

const (
	// ConfigUnset indicates that the node carries no config marker, as is the
	// case for modules.
	ConfigUnset Config = iota
	// ConfigTrue marks writable configuration.
	ConfigTrue
	// ConfigFalse marks operational state.
	ConfigFalse
)

// String returns the representation of c used in the generated code.
func (c Config) String() string {
	switch c {
	case ConfigTrue:
		return "config"
	case ConfigFalse:
		return "state"
	}
	return "N/A"
}

// Node is a single schema node.
type Node struct {
	// ID is the identifier of the node within its Tree.
	ID NodeID
	// Kind is the statement keyword of the node.
	Kind Kind
	// Name is the local name of the node.
	Name string
	// Module is the name of the module that defines the node. For modules
	// it is the module's own name.
	Module string
	// Parent is the node's parent, or NoNode at the root.
	Parent NodeID
	// Children are the node's children in schema order.
	Children []NodeID
	// Keys are the key leaves of a list, in declaration order.
	Keys []NodeID
	// IsKey is set for leaves that are keys of their parent list.
	IsKey bool
	// Config is the node's config marker.
	Config Config
	// Description is the node's description statement, if any.
	Description string
}

// Tree is an arena of schema nodes.
type Tree struct {
	nodes []*Node
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Add adds n to the tree below parent, returning the new node's ID. The ID,
// Parent and Children fields of n are overwritten. Use NoNode as parent for a
// root node.
func (t *Tree) Add(parent NodeID, n Node) (NodeID, error) {
	var p *Node
	if parent != NoNode {
		var err error
		if p, err = t.Lookup(parent); err != nil {
			return NoNode, fmt.Errorf("cannot add %s %q: %v", n.Kind, n.Name, err)
		}
	}
	id := NodeID(len(t.nodes))
	n.ID = id
	n.Parent = parent
	n.Children = nil
	t.nodes = append(t.nodes, &n)
	if p != nil {
		p.Children = append(p.Children, id)
	}
	return id, nil
}

// SetKeys records keys as the key leaves of the list identified by list. Each
// key must be a child of the list.
func (t *Tree) SetKeys(list NodeID, keys ...NodeID) error {
	l, err := t.Lookup(list)
	if err != nil {
		return err
	}
	if l.Kind != ListKind {
		return fmt.Errorf("cannot set keys on %s %q, not a list", l.Kind, l.Name)
	}
	for _, k := range keys {
		kn, err := t.Lookup(k)
		if err != nil {
			return err
		}
		if kn.Parent != list {
			return fmt.Errorf("key %q is not a child of list %q", kn.Name, l.Name)
		}
		kn.IsKey = true
	}
	l.Keys = append([]NodeID(nil), keys...)
	return nil
}

// Lookup returns the node identified by id.
func (t *Tree) Lookup(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("node %d does not exist", id)
	}
	return t.nodes[id], nil
}

// Node returns the node identified by id, or nil if it does not exist.
func (t *Tree) Node(id NodeID) *Node {
	n, err := t.Lookup(id)
	if err != nil {
		return nil
	}
	return n
}

// Root returns the root of the tree containing id.
func (t *Tree) Root(id NodeID) NodeID {
	for {
		n := t.Node(id)
		if n == nil || n.Parent == NoNode {
			return id
		}
		id = n.Parent
	}
}

// Child returns the child of id with the supplied local name.
func (t *Tree) Child(id NodeID, name string) (NodeID, bool) {
	n := t.Node(id)
	if n == nil {
		return NoNode, false
	}
	for _, c := range n.Children {
		if t.nodes[c].Name == name {
			return c, true
		}
	}
	return NoNode, false
}
