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

package yschema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	log "github.com/golang/glog"
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/ypygen/util"
)

// FromEntry converts the goyang entry for a module or submodule into a Tree,
// returning the tree and the ID of its root node.
//
// goyang stores the children of an entry in a map, so children are added in
// name order. RPCs, notifications, anydata and anyxml nodes have no
// representation in the generated classes and are skipped.
func FromEntry(e *yang.Entry) (*Tree, NodeID, error) {
	if e == nil {
		return nil, NoNode, errors.New("nil module entry")
	}

	kind := ModuleKind
	if e.Node != nil && e.Node.Kind() == "submodule" {
		kind = SubmoduleKind
	}

	t := NewTree()
	root, err := t.Add(NoNode, Node{
		Kind:        kind,
		Name:        e.Name,
		Module:      e.Name,
		Config:      ConfigUnset,
		Description: e.Description,
	})
	if err != nil {
		return nil, NoNode, err
	}
	if err := t.addEntryChildren(root, e, e.Name); err != nil {
		return nil, NoNode, err
	}
	return t, root, nil
}

// addEntryChildren adds the children of the goyang entry e below the node
// parent. defaultModule is used as the defining module of children whose
// goyang node is not available.
func (t *Tree) addEntryChildren(parent NodeID, e *yang.Entry, defaultModule string) error {
	for _, name := range orderedChildNames(e) {
		ch := e.Dir[name]
		kind := entryKind(ch)
		if kind == InvalidKind {
			log.V(2).Infof("skipping %s, kind %v has no generated representation", ch.Path(), ch.Kind)
			continue
		}

		mod := definingModuleName(ch, defaultModule)
		id, err := t.Add(parent, Node{
			Kind:        kind,
			Name:        ch.Name,
			Module:      mod,
			Config:      entryConfig(ch),
			Description: ch.Description,
		})
		if err != nil {
			return err
		}
		if err := t.addEntryChildren(id, ch, mod); err != nil {
			return err
		}
		if kind == ListKind {
			t.addEntryKeys(id, ch)
		}
	}
	return nil
}

// addEntryKeys records the keys named in the key statement of the list
// entry e. Keys that do not resolve to a child leaf are skipped, leaving the
// list with the keys that could be found.
func (t *Tree) addEntryKeys(list NodeID, e *yang.Entry) {
	names, err := util.ListKeyNames(e)
	if err != nil {
		log.Warningf("list %s: %v", e.Path(), err)
		return
	}
	var keys []NodeID
	for _, k := range names {
		id, ok := t.Child(list, k)
		if !ok {
			log.Warningf("list %s: key %q is not a child of the list", e.Path(), k)
			continue
		}
		keys = append(keys, id)
	}
	if err := t.SetKeys(list, keys...); err != nil {
		log.Warningf("list %s: cannot record keys: %v", e.Path(), err)
	}
}

// orderedChildNames returns the names of the children of e that are not
// RPCs, in alphabetical order.
func orderedChildNames(e *yang.Entry) []string {
	var names []string
	for name, ch := range e.Dir {
		if util.IsRPC(ch) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// entryKind maps a goyang entry onto the Kind of its statement.
func entryKind(e *yang.Entry) Kind {
	switch {
	case util.IsRPC(e), util.IsAnydata(e):
		return InvalidKind
	case e.IsChoice():
		return ChoiceKind
	case e.IsCase():
		return CaseKind
	case e.IsList():
		return ListKind
	case e.IsLeafList():
		return LeafListKind
	case e.IsLeaf():
		return LeafKind
	case e.IsContainer():
		return ContainerKind
	}
	return InvalidKind
}

// entryConfig returns the Config of a data node.
func entryConfig(e *yang.Entry) Config {
	if e.ReadOnly() {
		return ConfigFalse
	}
	return ConfigTrue
}

// definingModuleName returns the name of the module that defined the entry
// e. Where e was defined in a submodule, the name of the module the submodule
// belongs to is returned.
func definingModuleName(e *yang.Entry, defaultModule string) string {
	if e.Node == nil {
		return defaultModule
	}
	root := yang.RootNode(e.Node)
	if root == nil {
		return defaultModule
	}
	if root.Kind() == "submodule" && root.BelongsTo != nil {
		return root.BelongsTo.Name
	}
	return root.NName()
}

// String returns a human readable rendering of the subtree rooted at id,
// used in debug output.
func (t *Tree) String() string {
	var b strings.Builder
	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		n := t.Node(id)
		fmt.Fprintf(&b, "%s%s %s:%s\n", strings.Repeat("  ", depth), n.Kind, n.Module, n.Name)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, n := range t.nodes {
		if n.Parent == NoNode {
			walk(n.ID, 0)
		}
	}
	return b.String()
}
