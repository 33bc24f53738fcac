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

// Package pyrender renders the classes computed by pyclass into Python
// source files using text/template.
//
// For each module a directory named after the module key is created in the
// output directory. The base class of every class is written to
// <key>/Base/<Name>.py and replaced on each run. If a derived template is
// available, <key>/<Name>.py is written only if it does not exist, such that
// it can be edited by hand.
package pyrender

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	log "github.com/golang/glog"
	"github.com/openconfig/ypygen/genutil"
	"github.com/openconfig/ypygen/pyclass"
	"github.com/openconfig/ypygen/util"
	"google.golang.org/protobuf/encoding/prototext"
	"gopkg.in/yaml.v3"

	gnmipb "github.com/openconfig/gnmi/proto/gnmi"
)

// baseDir is the directory, within a module's output directory, that holds
// the base classes.
const baseDir = "Base"

// ClassData is the input of the templates.
type ClassData struct {
	// Module is the module the class belongs to.
	Module *pyclass.ModuleClasses
	// Class is the class being rendered.
	Class *pyclass.ClassRecord
}

// helperFuncs returns the functions available to templates rendering the
// classes of mc. mc may be nil when the templates are only parsed.
func helperFuncs(mc *pyclass.ModuleClasses) template.FuncMap {
	fm := sprig.TxtFuncMap()
	// safeName converts a YANG identifier into one that can be used in
	// Python.
	fm["safeName"] = genutil.SafeName
	// className returns the name of the class with the supplied plain path.
	fm["className"] = func(path string) (string, error) {
		if mc == nil {
			return "", errors.New("className used outside of a module")
		}
		c, ok := mc.Class(path)
		if !ok {
			return "", fmt.Errorf("module %s has no class %s", mc.ModuleName, path)
		}
		return c.Name, nil
	}
	// protoText renders a gNMI path in the protobuf text format.
	fm["protoText"] = func(p *gnmipb.Path) (string, error) {
		b, err := prototext.Marshal(p)
		if err != nil {
			return "", err
		}
		return string(bytes.TrimSpace(b)), nil
	}
	return fm
}

// Renderer writes Python source files for generated classes.
type Renderer struct {
	cfg     *Config
	base    *template.Template
	derived *template.Template
}

// NewRenderer validates cfg and parses the configured templates.
func NewRenderer(cfg *Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{cfg: cfg}

	var err error
	if r.base, err = parseTemplate(cfg.basePath()); err != nil {
		return nil, err
	}
	switch _, err := os.Stat(cfg.derivedPath()); {
	case err == nil:
		if r.derived, err = parseTemplate(cfg.derivedPath()); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		log.V(1).Infof("derived template %s does not exist, only base classes are rendered", cfg.derivedPath())
	default:
		return nil, fmt.Errorf("cannot read derived template: %v", err)
	}
	return r, nil
}

func parseTemplate(fn string) (*template.Template, error) {
	t, err := template.New(filepath.Base(fn)).Funcs(helperFuncs(nil)).ParseFiles(fn)
	if err != nil {
		return nil, fmt.Errorf("cannot parse template %s: %v", fn, err)
	}
	return t, nil
}

// Render renders every module of gm, returning the errors of all modules.
func (r *Renderer) Render(gm *pyclass.GeneratedModules) util.Errors {
	var errs util.Errors
	for _, mc := range gm.Modules {
		errs = util.AppendErr(errs, r.RenderModule(mc))
	}
	return errs
}

// RenderModule writes the source files of the classes of mc, and its manifest
// if one is configured.
func (r *Renderer) RenderModule(mc *pyclass.ModuleClasses) error {
	modDir := filepath.Join(r.cfg.OutputDir, mc.Key)
	base, err := forModule(r.base, mc)
	if err != nil {
		return err
	}
	var derived *template.Template
	if r.derived != nil {
		if derived, err = forModule(r.derived, mc); err != nil {
			return err
		}
	}

	var errs util.Errors
	for _, c := range mc.Classes {
		data := &ClassData{Module: mc, Class: c}
		fn := filepath.Join(modDir, baseDir, c.Name+".py")
		if err := render(base, data, fn, false); err != nil {
			errs = util.AppendErr(errs, err)
			continue
		}
		if derived == nil {
			continue
		}
		fn = filepath.Join(modDir, c.Name+".py")
		errs = util.AppendErr(errs, render(derived, data, fn, true))
	}

	if r.cfg.WriteManifest {
		errs = util.AppendErr(errs, writeManifest(modDir, mc))
	}
	if errs != nil {
		return fmt.Errorf("module %s: %v", mc.ModuleName, errs)
	}
	log.Infof("rendered %d classes of module %s to %s", len(mc.Classes), mc.ModuleName, modDir)
	return nil
}

// forModule returns a copy of t whose helper functions refer to mc.
func forModule(t *template.Template, mc *pyclass.ModuleClasses) (*template.Template, error) {
	c, err := t.Clone()
	if err != nil {
		return nil, err
	}
	return c.Funcs(helperFuncs(mc)), nil
}

// render executes t with data and writes the result to fn. If ifAbsent is
// set an existing file is left unchanged.
func render(t *template.Template, data *ClassData, fn string, ifAbsent bool) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("cannot render class %s: %v", data.Class.Path, err)
	}
	if !ifAbsent {
		return genutil.WriteFile(fn, buf.Bytes())
	}
	written, err := genutil.WriteFileIfAbsent(fn, buf.Bytes())
	if err == nil && !written {
		log.V(1).Infof("not replacing existing file %s", fn)
	}
	return err
}

// Manifest lists the classes generated for a module.
type Manifest struct {
	Module  string          `yaml:"module"`
	Key     string          `yaml:"key"`
	Classes []ManifestEntry `yaml:"classes"`
}

// ManifestEntry describes a generated class.
type ManifestEntry struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	File   string `yaml:"file"`
	Parent string `yaml:"parent,omitempty"`
}

func writeManifest(modDir string, mc *pyclass.ModuleClasses) error {
	m := &Manifest{Module: mc.ModuleName, Key: mc.Key}
	for _, c := range mc.Classes {
		e := ManifestEntry{
			Name: c.Name,
			Path: c.Path,
			File: filepath.ToSlash(filepath.Join(baseDir, c.Name+".py")),
		}
		if p, ok := mc.Class(c.Parent); ok {
			e.Parent = p.Name
		}
		m.Classes = append(m.Classes, e)
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("cannot marshal manifest: %v", err)
	}
	return genutil.WriteFile(filepath.Join(modDir, ManifestFile), b)
}
