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
	"github.com/openconfig/ypygen/util"
)

// Name is the name chosen for an entry of a Namespace.
type Name struct {
	// Identifier is the Python identifier of the entry. It is unique within
	// the Namespace.
	Identifier string
	// Elements are the local names of the entry's path elements.
	Elements []string
	// ElementsSafe are Elements converted with genutil.SafeName.
	ElementsSafe []string
}

// NameRecord maps the key of each entry of a Namespace to its Name.
type NameRecord map[string]*Name

// Identifier returns the identifier chosen for key, or the empty string if
// key has no name.
func (r NameRecord) Identifier(key string) string {
	if n, ok := r[key]; ok {
		return n.Identifier
	}
	return ""
}

// AmbiguousNameError is reported when even the full path of an entry is a
// suffix of another entry's path, such that no suffix can identify it. The
// name is then derived from the full path.
type AmbiguousNameError struct {
	// Path is the key of the entry.
	Path string
}

// Error implements the error interface.
func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("unable to generate a unique name for %s, all of its path suffixes are shared with other paths", e.Path)
}

// CollisionError is reported when the names derived for several entries
// result in the same identifier. All but the first entry are renamed by
// appending underscores.
type CollisionError struct {
	// Identifier is the identifier that was derived for all of Paths.
	Identifier string
	// Paths are the keys of the colliding entries in registration order.
	Paths []string
	// Renamed are the identifiers assigned to Paths[1:].
	Renamed []string
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("identifier %s is derived for paths %s, renamed to %s",
		e.Identifier, strings.Join(e.Paths, ", "), strings.Join(e.Renamed, ", "))
}

// AssignNames chooses a Python identifier for every entry of ns.
//
// The identifier of an entry is derived from the shortest suffix of its path
// elements that no other path in ns ends with. If the last element is
// sufficient it is used alone, otherwise the first element of the suffix is
// joined to the last element, e.g., /a/b/leaf1 becomes ALeaf1 when another
// path ends with /b/leaf1.
//
// The returned identifiers are pairwise distinct. Where distinctness required
// renaming, or no unique suffix exists, the returned errors describe what
// happened; they are warnings and the NameRecord is complete regardless.
func AssignNames(ns *Namespace) (NameRecord, util.Errors) {
	idx := newSuffixIndex(ns)
	rec := NameRecord{}
	var errs util.Errors
	for _, e := range ns.Entries() {
		els := e.Elements()
		token, err := uniqueToken(idx, e.Key, els)
		errs = util.AppendErr(errs, err)

		id, err := identifier(token)
		if err != nil {
			errs = util.AppendErr(errs, fmt.Errorf("cannot name %s: %w", e.Key, err))
		}

		safe := make([]string, len(els))
		for i, el := range els {
			safe[i] = genutil.SafeName(el)
		}
		rec[e.Key] = &Name{
			Identifier:   id,
			Elements:     els,
			ElementsSafe: safe,
		}
	}
	return rec, util.AppendErrs(errs, resolveCollisions(ns, rec))
}

// uniqueToken returns the name token for the entry key with the path
// elements els. A non-nil error is an *AmbiguousNameError.
func uniqueToken(idx *suffixIndex, key string, els []string) (string, error) {
	if len(els) == 0 {
		return "", nil
	}
	last := len(els) - 1
	start := last
	for ; start >= 0; start-- {
		if _, shared := idx.sharedBy(strippedPath(els[start:]), key); !shared {
			break
		}
	}

	var err error
	if start < 0 {
		err = &AmbiguousNameError{Path: key}
		log.Warningf("%v", err)
		start = 0
	}

	// A single element path that is still ambiguous is named after the
	// element alone rather than the element repeated.
	if start == last {
		return els[last], err
	}
	return els[start] + "_" + els[last], err
}

// identifier converts a name token into a safe Python identifier.
func identifier(token string) (string, error) {
	id, err := genutil.IdentifierCase(token)
	if err != nil {
		return "Unnamed", err
	}
	return genutil.SafeName(id), nil
}

// resolveCollisions renames entries of rec that share an identifier. The
// first entry, in registration order, keeps the identifier; later ones are
// made unique against every identifier in use.
func resolveCollisions(ns *Namespace, rec NameRecord) []error {
	byID := map[string][]string{}
	var ids []string
	for _, k := range ns.Keys() {
		id := rec[k].Identifier
		if _, ok := byID[id]; !ok {
			ids = append(ids, id)
		}
		byID[id] = append(byID[id], k)
	}

	used := map[string]bool{}
	for id := range byID {
		used[id] = true
	}

	var errs []error
	for _, id := range ids {
		paths := byID[id]
		if len(paths) < 2 {
			continue
		}
		cerr := &CollisionError{Identifier: id, Paths: paths}
		for _, k := range paths[1:] {
			n := genutil.MakeNameUnique(id, used)
			rec[k].Identifier = n
			cerr.Renamed = append(cerr.Renamed, n)
		}
		log.Warningf("%v", cerr)
		errs = append(errs, cerr)
	}
	return errs
}
