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

// Package pyclass maps a YANG schema onto the set of Python classes that
// represent it, and computes the data from which each class is rendered.
//
// Each module is processed on its own. The containers and lists of the
// module are found by Walk, each class and each attribute of a class is
// given an identifier by AssignNames, and classes without attributes are
// pruned. Identifiers are derived from the shortest path suffix that is
// unique within the module, such that the same leaf name in different parts
// of a schema results in different identifiers.
package pyclass

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/kr/pretty"
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/ypygen/util"
	"github.com/openconfig/ypygen/yschema"
)

// Config is the configuration of Generate.
type Config struct {
	// OrgPrefixes are the organisation prefixes removed from module names
	// to form module keys. DefaultOrgPrefixes are used if it is empty.
	OrgPrefixes []string
	// ExcludeModules are the names of modules for which no classes are
	// generated.
	ExcludeModules []string
}

// ModuleClasses are the classes generated for a module.
type ModuleClasses struct {
	// Key is the normalised module name.
	Key string
	// ModuleName is the YANG name of the module.
	ModuleName string
	// Classes are the records of the module's classes.
	Classes []*ClassRecord
	// Pruned are the paths of the classes removed for having no attributes.
	Pruned []string

	byPath map[string]*ClassRecord
}

// NewModuleClasses returns the ModuleClasses of the module name registered
// under key, containing classes.
func NewModuleClasses(key, name string, classes []*ClassRecord) *ModuleClasses {
	mc := &ModuleClasses{
		Key:        key,
		ModuleName: name,
		byPath:     map[string]*ClassRecord{},
	}
	for _, c := range classes {
		mc.add(c)
	}
	return mc
}

func (m *ModuleClasses) add(c *ClassRecord) {
	m.Classes = append(m.Classes, c)
	m.byPath[c.Path] = c
}

// Class returns the class record with the supplied plain path.
func (m *ModuleClasses) Class(path string) (*ClassRecord, bool) {
	c, ok := m.byPath[path]
	return c, ok
}

// GeneratedModules is the output of Generate.
type GeneratedModules struct {
	// Modules are the generated modules in registration order.
	Modules []*ModuleClasses
	// Warnings are the naming problems found while generating the modules.
	// Each is an *AmbiguousNameError, a *CollisionError, or an error that
	// wraps genutil.ErrInvalidToken.
	Warnings util.Errors
}

// Generate computes the classes of each of the supplied goyang module
// entries. Errors converting or registering a module, or walking its schema
// tree, are returned and the module is skipped; naming problems are
// reported as warnings within the returned GeneratedModules.
func Generate(entries []*yang.Entry, cfg *Config) (*GeneratedModules, util.Errors) {
	if cfg == nil {
		cfg = &Config{}
	}
	excluded := map[string]bool{}
	for _, m := range cfg.ExcludeModules {
		excluded[m] = true
	}

	var errs util.Errors
	reg := NewModuleRegistry(cfg.OrgPrefixes...)
	for _, e := range entries {
		if excluded[e.Name] {
			log.Infof("excluding module %s", e.Name)
			continue
		}
		t, root, err := yschema.FromEntry(e)
		if err != nil {
			errs = util.AppendErr(errs, fmt.Errorf("module %s: %v", e.Name, err))
			continue
		}
		if _, err := reg.Register(t, root); err != nil {
			errs = util.AppendErr(errs, err)
		}
	}

	gm := &GeneratedModules{}
	for _, m := range reg.Modules() {
		log.Infof("processing module %s as %s", m.Name, m.Key)
		mc, warns, err := GenerateModule(m)
		gm.Warnings = util.AppendErrs(gm.Warnings, warns)
		if err != nil {
			errs = util.AppendErr(errs, fmt.Errorf("module %s: %v", m.Name, err))
			continue
		}
		gm.Modules = append(gm.Modules, mc)
	}
	return gm, errs
}

// GenerateModule computes the classes of the registered module m. The
// returned warnings describe naming problems; a non-nil error means that no
// classes could be computed.
//
// Names are chosen before classes without attributes are pruned, such that
// the identifier of a class does not depend on whether its ancestors are
// generated.
func GenerateModule(m *Module) (*ModuleClasses, util.Errors, error) {
	ct, err := Walk(m.Tree, m.Root)
	if err != nil {
		return nil, nil, err
	}

	var warns util.Errors
	classNames, errs := AssignNames(ct.Namespace())
	warns = util.AppendErrs(warns, errs)

	attrNames := map[string]NameRecord{}
	for _, c := range ct.Classes() {
		names, errs := AssignNames(c.Attrs)
		warns = util.AppendErrs(warns, errs)
		attrNames[c.Path] = names
	}

	mc := NewModuleClasses(m.Key, m.Name, nil)
	mc.Pruned = ct.Prune()
	for _, p := range mc.Pruned {
		log.V(1).Infof("module %s: pruned class %s without attributes", m.Name, p)
	}

	for _, c := range ct.Classes() {
		rec, err := classRecord(m.Tree, c, classNames, attrNames[c.Path])
		if err != nil {
			return nil, warns, err
		}
		if log.V(2) {
			log.Infof("class record %s:\n%s", rec.Path, pretty.Sprint(rec))
		}
		mc.add(rec)
	}
	return mc, warns, nil
}
