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
	"os"
	"path/filepath"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestValidate(t *testing.T) {
	tmplDir := writeTemplates(t, map[string]string{DefaultBaseTemplate: testBaseTemplate})
	scratch := t.TempDir()
	file := filepath.Join(scratch, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("cannot write %s: %v", file, err)
	}

	tests := []struct {
		desc             string
		in               *Config
		wantField        string
		wantErrSubstring string
	}{{
		desc: "valid, output directory is created",
		in:   &Config{OutputDir: filepath.Join(scratch, "new", "out"), TemplateDir: tmplDir},
	}, {
		desc:             "no output directory",
		in:               &Config{TemplateDir: tmplDir},
		wantField:        "OutputDir",
		wantErrSubstring: "must be specified",
	}, {
		desc:             "output is a file",
		in:               &Config{OutputDir: file, TemplateDir: tmplDir},
		wantField:        "OutputDir",
		wantErrSubstring: "not a directory",
	}, {
		desc:             "no template directory",
		in:               &Config{OutputDir: scratch},
		wantField:        "TemplateDir",
		wantErrSubstring: "must be specified",
	}, {
		desc:             "missing template directory",
		in:               &Config{OutputDir: scratch, TemplateDir: filepath.Join(scratch, "missing")},
		wantField:        "TemplateDir",
		wantErrSubstring: "does not exist",
	}, {
		desc:             "missing base template",
		in:               &Config{OutputDir: scratch, TemplateDir: tmplDir, BaseTemplate: "other.tmpl"},
		wantField:        "BaseTemplate",
		wantErrSubstring: "template does not exist",
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			err := tt.in.Validate()
			if diff := errdiff.Substring(err, tt.wantErrSubstring); diff != "" {
				t.Fatalf("Validate: %s", diff)
			}
			if err != nil {
				var cerr *ConfigurationError
				if !errors.As(err, &cerr) {
					t.Fatalf("Validate: got error type %T, want *ConfigurationError", err)
				}
				if cerr.Field != tt.wantField {
					t.Errorf("Validate: got field %s, want %s", cerr.Field, tt.wantField)
				}
				return
			}
			if fi, err := os.Stat(tt.in.OutputDir); err != nil || !fi.IsDir() {
				t.Errorf("Validate: output directory %s was not created: %v", tt.in.OutputDir, err)
			}
			if tt.in.BaseTemplate != DefaultBaseTemplate || tt.in.DerivedTemplate != DefaultDerivedTemplate {
				t.Errorf("Validate: got templates %s, %s, want defaults", tt.in.BaseTemplate, tt.in.DerivedTemplate)
			}
		})
	}
}
