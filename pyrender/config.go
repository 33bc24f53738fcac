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

package pyrender

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DefaultBaseTemplate is the file name of the template used to render
	// base classes when none is configured.
	DefaultBaseTemplate = "base.tmpl"
	// DefaultDerivedTemplate is the file name of the template used to render
	// derived classes when none is configured.
	DefaultDerivedTemplate = "derived.tmpl"
	// ManifestFile is the name of the per-module manifest.
	ManifestFile = "manifest.yaml"
)

// Config is the configuration of a Renderer.
type Config struct {
	// OutputDir is the directory below which a directory is created for
	// each module. It is created if it does not exist.
	OutputDir string
	// TemplateDir is the directory containing the templates.
	TemplateDir string
	// BaseTemplate is the file name, within TemplateDir, of the template
	// for base classes. It must exist.
	BaseTemplate string
	// DerivedTemplate is the file name, within TemplateDir, of the template
	// for derived classes. Derived classes are only rendered if it exists.
	DerivedTemplate string
	// WriteManifest selects whether a manifest of the generated classes is
	// written for each module.
	WriteManifest bool
}

// ConfigurationError is returned when the rendering configuration is
// unusable. No output is written when it is returned.
type ConfigurationError struct {
	// Field is the name of the offending Config field.
	Field string
	// Value is the value of the field.
	Value string
	// Reason describes the problem.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Validate checks c, filling in default template names, and creates the
// output directory if it does not exist.
func (c *Config) Validate() error {
	if c.BaseTemplate == "" {
		c.BaseTemplate = DefaultBaseTemplate
	}
	if c.DerivedTemplate == "" {
		c.DerivedTemplate = DefaultDerivedTemplate
	}

	if c.OutputDir == "" {
		return &ConfigurationError{Field: "OutputDir", Reason: "an output directory must be specified"}
	}
	switch fi, err := os.Stat(c.OutputDir); {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
			return &ConfigurationError{Field: "OutputDir", Value: c.OutputDir, Reason: err.Error()}
		}
	case err != nil:
		return &ConfigurationError{Field: "OutputDir", Value: c.OutputDir, Reason: err.Error()}
	case !fi.IsDir():
		return &ConfigurationError{Field: "OutputDir", Value: c.OutputDir, Reason: "not a directory"}
	}

	if c.TemplateDir == "" {
		return &ConfigurationError{Field: "TemplateDir", Reason: "a template directory must be specified"}
	}
	if fi, err := os.Stat(c.TemplateDir); err != nil || !fi.IsDir() {
		return &ConfigurationError{Field: "TemplateDir", Value: c.TemplateDir, Reason: "does not exist or is not a directory"}
	}
	if _, err := os.Stat(c.basePath()); err != nil {
		return &ConfigurationError{Field: "BaseTemplate", Value: c.basePath(), Reason: "template does not exist"}
	}
	return nil
}

func (c *Config) basePath() string {
	return filepath.Join(c.TemplateDir, c.BaseTemplate)
}

func (c *Config) derivedPath() string {
	return filepath.Join(c.TemplateDir, c.DerivedTemplate)
}
