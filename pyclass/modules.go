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
	"strings"

	log "github.com/golang/glog"
	"github.com/openconfig/ypygen/genutil"
	"github.com/openconfig/ypygen/yschema"
	"golang.org/x/exp/slices"
)

// DefaultOrgPrefixes are the organisation prefixes removed from module names
// when deriving module keys.
var DefaultOrgPrefixes = []string{"openconfig", "ietf"}

// Module is a module registered in a ModuleRegistry.
type Module struct {
	// Key is the normalised name of the module. It names the output
	// directory of the module's classes.
	Key string
	// Name is the YANG name of the module.
	Name string
	// Tree is the schema tree containing the module.
	Tree *yschema.Tree
	// Root is the ID of the module node within Tree.
	Root yschema.NodeID
}

// ModuleRegistry is the insertion-ordered set of modules for which classes
// are generated, keyed by normalised module name.
type ModuleRegistry struct {
	orgPrefixes []string
	keys        []string
	mods        map[string]*Module
	// collapsed are keys that more than one module normalised to. Modules
	// normalising to such a key are registered under their full name.
	collapsed map[string]bool
}

// NewModuleRegistry returns a registry that removes the supplied
// organisation prefixes from module names. If none are supplied,
// DefaultOrgPrefixes are used.
func NewModuleRegistry(orgPrefixes ...string) *ModuleRegistry {
	if len(orgPrefixes) == 0 {
		orgPrefixes = DefaultOrgPrefixes
	}
	return &ModuleRegistry{
		orgPrefixes: orgPrefixes,
		mods:        map[string]*Module{},
		collapsed:   map[string]bool{},
	}
}

// normalizeModuleName makes a module name usable as a Python package name.
func normalizeModuleName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Register adds the module rooted at root to the registry and returns the
// key under which it was registered.
//
// The key is the module name with its organisation prefix removed and
// hyphens replaced by underscores, e.g., openconfig-acl becomes acl. Where
// two different modules normalise to the same key, both are registered
// under their full normalised name, e.g., openconfig_acl and ietf_acl, and
// the shared key is not used.
//
// Submodules are not registered, their contents are part of the module they
// belong to; the empty key is returned for them. Registering a module with
// the name of an already registered module returns the existing key.
func (r *ModuleRegistry) Register(t *yschema.Tree, root yschema.NodeID) (string, error) {
	n, err := t.Lookup(root)
	if err != nil {
		return "", err
	}
	switch n.Kind {
	case yschema.SubmoduleKind:
		log.V(1).Infof("skipping submodule %s", n.Name)
		return "", nil
	case yschema.ModuleKind:
	default:
		return "", fmt.Errorf("cannot register %s %s, not a module", n.Kind, n.Name)
	}

	for _, k := range r.keys {
		if r.mods[k].Name == n.Name {
			log.V(1).Infof("module %s is already registered as %s", n.Name, k)
			return k, nil
		}
	}

	m := &Module{Name: n.Name, Tree: t, Root: root}
	full := normalizeModuleName(n.Name)
	key := normalizeModuleName(genutil.TrimOrgPrefix(n.Name, r.orgPrefixes...))
	if r.collapsed[key] {
		key = full
	}

	existing, ok := r.mods[key]
	if !ok {
		return key, r.insert(key, m)
	}

	// Two modules normalise to key, fall back to the full names of both.
	log.V(1).Infof("modules %s and %s both normalise to %s, using full names", existing.Name, n.Name, key)
	r.collapsed[key] = true
	r.remove(key)
	if err := r.insert(normalizeModuleName(existing.Name), existing); err != nil {
		return "", err
	}
	if err := r.insert(full, m); err != nil {
		return "", err
	}
	return full, nil
}

// insert adds m under key. It is an error for key to be in use.
func (r *ModuleRegistry) insert(key string, m *Module) error {
	if other, ok := r.mods[key]; ok {
		return fmt.Errorf("cannot register module %s as %s, key is used by module %s", m.Name, key, other.Name)
	}
	m.Key = key
	r.mods[key] = m
	r.keys = append(r.keys, key)
	return nil
}

// remove deletes key from the registry.
func (r *ModuleRegistry) remove(key string) {
	delete(r.mods, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}
}

// Keys returns the registered keys in registration order.
func (r *ModuleRegistry) Keys() []string {
	return slices.Clone(r.keys)
}

// Lookup returns the module registered under key.
func (r *ModuleRegistry) Lookup(key string) (*Module, bool) {
	m, ok := r.mods[key]
	return m, ok
}

// Modules returns the registered modules in registration order.
func (r *ModuleRegistry) Modules() []*Module {
	out := make([]*Module, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.mods[k])
	}
	return out
}
