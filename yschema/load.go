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
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/openconfig/goyang/pkg/yang"
	"github.com/openconfig/ypygen/util"
)

// ExpandInputs expands each of the supplied input arguments as a doublestar
// glob pattern (e.g., "models/**/*.yang"). Arguments without glob
// metacharacters are returned unchanged, such that goyang can resolve bare
// module names against its search path. A pattern that matches no files is
// an error.
func ExpandInputs(inputs []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}
	for _, in := range inputs {
		base, pattern := doublestar.SplitPattern(in)
		if !hasMeta(pattern) {
			add(in)
			continue
		}
		matches, err := doublestar.FilepathGlob(in)
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %q: %v", in, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("input pattern %q (base %s) matched no files", in, base)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return files, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{', '\\':
			return true
		}
	}
	return false
}

// LoadModules takes a list of YANG files or glob patterns (yangFiles), and a
// list of paths in which included modules or submodules may be found, and
// returns the processed set of yang.Entry pointers for the modules, ordered
// by module name. If errors are returned during the
// goyang processing of the modules, these errors are returned.
func LoadModules(yangFiles, includePaths []string, options yang.Options) ([]*yang.Entry, util.Errors) {
	files, err := ExpandInputs(yangFiles)
	if err != nil {
		return nil, util.Errors{err}
	}

	moduleSet := yang.NewModules()
	// Append the includePaths to the search path of the module set, such
	// that modules referenced by import or include statements can be found.
	for _, path := range includePaths {
		moduleSet.AddPath(path)
	}
	moduleSet.ParseOptions = options

	var errs util.Errors
	for _, name := range files {
		errs = util.AppendErr(errs, moduleSet.Read(name))
	}
	if errs != nil {
		return nil, errs
	}

	if perrs := moduleSet.Process(); perrs != nil {
		return nil, util.AppendErrs(nil, perrs)
	}

	// goyang stores each module under its name and under name@revision, so
	// the unique set is built by name.
	var modNames []string
	mods := map[string]*yang.Module{}
	for _, m := range moduleSet.Modules {
		if mods[m.Name] == nil {
			mods[m.Name] = m
			modNames = append(modNames, m.Name)
		}
	}
	sort.Strings(modNames)

	var entries []*yang.Entry
	for _, modName := range modNames {
		entries = append(entries, yang.ToEntry(mods[modName]))
	}
	return entries, nil
}
