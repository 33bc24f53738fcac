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
	"fmt"

	"github.com/openconfig/ypygen/ypath"
	"github.com/openconfig/ypygen/yschema"
)

// Class is a schema node for which a Python class is generated.
type Class struct {
	// Path is the plain path of the node.
	Path string
	// Node is the ID of the schema node.
	Node yschema.NodeID
	// Kind is the kind of the schema node: a module, container or list.
	Kind yschema.Kind
	// Attrs are the leaves and leaf-lists that are attributes of the class.
	Attrs *Namespace
	// Keys are the plain paths of the list keys, for list classes.
	Keys []string
	// Parent is the path of the enclosing class of a list, or empty.
	Parent string
	// Children are the paths of the lists enclosed by the class.
	Children []string
}

// ClassTable is the insertion-ordered set of classes of a module.
type ClassTable struct {
	ns      *Namespace
	classes map[string]*Class
}

func newClassTable() *ClassTable {
	return &ClassTable{
		ns:      NewNamespace(),
		classes: map[string]*Class{},
	}
}

// Namespace returns the namespace of class paths, within which class names
// are chosen.
func (ct *ClassTable) Namespace() *Namespace {
	return ct.ns
}

// Class returns the class with the supplied path.
func (ct *ClassTable) Class(path string) (*Class, bool) {
	c, ok := ct.classes[path]
	return c, ok
}

// Classes returns the classes in the order they were found.
func (ct *ClassTable) Classes() []*Class {
	var out []*Class
	for _, k := range ct.ns.Keys() {
		out = append(out, ct.classes[k])
	}
	return out
}

// Len returns the number of classes in the table.
func (ct *ClassTable) Len() int {
	return ct.ns.Len()
}

// Prune removes container and module classes that have no attributes. The
// lists they enclose are kept as top-level classes, with their parent
// cleared. The paths of the removed classes are returned.
func (ct *ClassTable) Prune() []string {
	var removed []string
	for _, c := range ct.Classes() {
		if c.Kind != yschema.ContainerKind && !c.Kind.IsModule() {
			continue
		}
		if c.Attrs.Len() != 0 {
			continue
		}
		for _, ch := range c.Children {
			if cc, ok := ct.classes[ch]; ok {
				cc.Parent = ""
			}
		}
		delete(ct.classes, c.Path)
		ct.ns.Delete(c.Path)
		removed = append(removed, c.Path)
	}
	return removed
}

// walker holds the state of a single Walk.
type walker struct {
	t      *yschema.Tree
	module yschema.NodeID
	ct     *ClassTable
}

// Walk traverses the module rooted at module depth-first and builds its
// ClassTable:
//   - the first container found outside of any class starts a class, nested
//     containers belong to the enclosing class;
//   - every list starts a class, and is linked to the enclosing class;
//   - leaves and leaf-lists are attributes of the enclosing class, where there
//     is none they are attributes of the module's class.
//
// Choice and case nodes are descended into like any other node.
func Walk(t *yschema.Tree, module yschema.NodeID) (*ClassTable, error) {
	n, err := t.Lookup(module)
	if err != nil {
		return nil, err
	}
	if n.Kind != yschema.ModuleKind {
		return nil, fmt.Errorf("cannot walk %s %s, the root of a walk must be a module", n.Kind, n.Name)
	}

	w := &walker{t: t, module: module, ct: newClassTable()}
	for _, ch := range n.Children {
		if err := w.walk(ch, ""); err != nil {
			return nil, err
		}
	}
	return w.ct, nil
}

// walk visits the node id, with cls the path of the enclosing class.
func (w *walker) walk(id yschema.NodeID, cls string) error {
	n, err := w.t.Lookup(id)
	if err != nil {
		return err
	}

	switch {
	case n.Kind == yschema.ContainerKind && cls == "":
		if cls, err = w.addClass(n); err != nil {
			return err
		}
	case n.Kind == yschema.ListKind:
		parent := cls
		if cls, err = w.addClass(n); err != nil {
			return err
		}
		c := w.ct.classes[cls]
		for _, k := range n.Keys {
			kp, err := ypath.Build(w.t, k, ypath.Plain)
			if err != nil {
				return err
			}
			c.Keys = append(c.Keys, kp)
		}
		if parent != "" {
			p := w.ct.classes[parent]
			p.Children = append(p.Children, cls)
			c.Parent = parent
		}
	case n.Kind.IsLeaf():
		if cls == "" {
			if cls, err = w.addClass(w.t.Node(w.module)); err != nil {
				return err
			}
		}
		p, err := ypath.Build(w.t, id, ypath.Plain)
		if err != nil {
			return err
		}
		w.ct.classes[cls].Attrs.Register(p, n.Kind, id)
	}

	for _, ch := range n.Children {
		if err := w.walk(ch, cls); err != nil {
			return err
		}
	}
	return nil
}

// addClass adds n to the class table if it is not already present, and
// returns its path.
func (w *walker) addClass(n *yschema.Node) (string, error) {
	p, err := ypath.Build(w.t, n.ID, ypath.Plain)
	if err != nil {
		return "", err
	}
	if _, ok := w.ct.classes[p]; ok {
		return p, nil
	}
	w.ct.ns.Register(p, n.Kind, n.ID)
	w.ct.classes[p] = &Class{
		Path:  p,
		Node:  n.ID,
		Kind:  n.Kind,
		Attrs: NewNamespace(),
	}
	return p, nil
}
