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

	"github.com/openconfig/ypygen/genutil"
	"github.com/openconfig/ypygen/ypath"
	"github.com/openconfig/ypygen/yschema"

	gnmipb "github.com/openconfig/gnmi/proto/gnmi"
)

// DescriptionPlaceholder is the description of nodes that have no
// description statement.
const DescriptionPlaceholder = "Description not present in YANG"

// Paths are the forms of the path of a node.
type Paths struct {
	// Plain is the schema path.
	Plain string
	// REST is the RESTCONF path with key placeholders.
	REST string
	// GNMI is the gNMI path with key predicates.
	GNMI string
}

// NodeInfo is the data common to the records of classes and attributes.
type NodeInfo struct {
	// Kind is the YANG keyword of the node.
	Kind string
	// YangName is the local name of the node.
	YangName string
	// YangNameSafe is YangName converted with genutil.SafeName.
	YangNameSafe string
	// ModuleName is the name of the module that defines the node.
	ModuleName string
	// ModuleNameSafe is ModuleName converted with genutil.SafeName.
	ModuleNameSafe string
	// Paths are the paths of the node.
	Paths Paths
	// Config is one of "config", "state" or "N/A".
	Config string
	// Description is the node's description.
	Description string
	// Name is the identifier chosen for the node.
	Name string
	// Elements are the local names of the node's path elements.
	Elements []string
	// ElementsSafe are Elements converted with genutil.SafeName.
	ElementsSafe []string
}

// AttrRecord is the template input for an attribute of a class.
type AttrRecord struct {
	NodeInfo
	// Path is the plain path of the attribute.
	Path string
	// IsKey is set if the attribute is a key of its list.
	IsKey bool
}

// ClassRecord is the template input for a class.
type ClassRecord struct {
	NodeInfo
	// Path is the plain path of the class.
	Path string
	// GNMIProto is Paths.GNMI as a gNMI Path message.
	GNMIProto *gnmipb.Path
	// Keys are the plain paths of the list keys.
	Keys []string
	// Parent is the plain path of the enclosing class, if any.
	Parent string
	// Children are the plain paths of the enclosed list classes.
	Children []string
	// Attrs are the attributes of the class in schema order.
	Attrs []*AttrRecord
}

// Attr returns the attribute with the supplied plain path.
func (c *ClassRecord) Attr(path string) (*AttrRecord, bool) {
	for _, a := range c.Attrs {
		if a.Path == path {
			return a, true
		}
	}
	return nil, false
}

// nodeInfo builds the NodeInfo of node id.
func nodeInfo(t *yschema.Tree, id yschema.NodeID, name *Name) (NodeInfo, error) {
	n, err := t.Lookup(id)
	if err != nil {
		return NodeInfo{}, err
	}
	paths, err := ypath.BuildAll(t, id)
	if err != nil {
		return NodeInfo{}, err
	}
	desc := n.Description
	if desc == "" {
		desc = DescriptionPlaceholder
	}
	ni := NodeInfo{
		Kind:           n.Kind.String(),
		YangName:       n.Name,
		YangNameSafe:   genutil.SafeName(n.Name),
		ModuleName:     n.Module,
		ModuleNameSafe: genutil.SafeName(n.Module),
		Paths: Paths{
			Plain: paths[ypath.Plain],
			REST:  paths[ypath.REST],
			GNMI:  paths[ypath.Streaming],
		},
		Config:      n.Config.String(),
		Description: desc,
	}
	if name != nil {
		ni.Name = name.Identifier
		ni.Elements = name.Elements
		ni.ElementsSafe = name.ElementsSafe
	}
	return ni, nil
}

// classRecord builds the record of class c, using classNames for the class
// and attrNames for its attributes.
func classRecord(t *yschema.Tree, c *Class, classNames, attrNames NameRecord) (*ClassRecord, error) {
	ni, err := nodeInfo(t, c.Node, classNames[c.Path])
	if err != nil {
		return nil, fmt.Errorf("class %s: %v", c.Path, err)
	}
	gp, err := ypath.ToProto(ni.Paths.GNMI)
	if err != nil {
		return nil, fmt.Errorf("class %s: %v", c.Path, err)
	}
	rec := &ClassRecord{
		NodeInfo:  ni,
		Path:      c.Path,
		GNMIProto: gp,
		Keys:      c.Keys,
		Parent:    c.Parent,
		Children:  c.Children,
	}
	for _, a := range c.Attrs.Entries() {
		ani, err := nodeInfo(t, a.Node, attrNames[a.Key])
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %v", a.Key, err)
		}
		rec.Attrs = append(rec.Attrs, &AttrRecord{
			NodeInfo: ani,
			Path:     a.Key,
			IsKey:    t.Node(a.Node).IsKey,
		})
	}
	return rec, nil
}
