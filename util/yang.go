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

package util

import (
	"fmt"
	"strings"

	"github.com/openconfig/goyang/pkg/yang"
)

// IsAnydata returns true if the entry is an Anydata node.
func IsAnydata(e *yang.Entry) bool {
	if e == nil {
		return false
	}
	return e.Kind == yang.AnyDataEntry
}

// IsRPC returns true if the entry is an RPC, or the input or output of one.
func IsRPC(e *yang.Entry) bool {
	return e != nil && e.RPC != nil
}

// ListKeyNames returns the names of the keys of the list described by the
// supplied yang.Entry, in the order of its key statement, with any module
// prefixes removed. Nil is returned for entries that are not keyed lists.
// An error is returned for a key that is not a valid (prefix:)name.
func ListKeyNames(e *yang.Entry) ([]string, error) {
	var keys []string
	for _, k := range strings.Fields(e.Key) {
		name, err := StripModulePrefixWithCheck(k)
		if err != nil {
			return nil, fmt.Errorf("invalid key of list %s: %v", e.Name, err)
		}
		keys = append(keys, name)
	}
	return keys, nil
}

// StripModulePrefixWithCheck removes the prefix from a YANG path element, and
// returns an error for unexpected formats. For example, removing foo from
// "foo:bar". Such qualified names are used in YANG modules where remote
// nodes are referenced.
func StripModulePrefixWithCheck(name string) (string, error) {
	ps := strings.Split(name, ":")
	switch {
	case len(ps) == 1:
		return name, nil
	case len(ps) == 2 && ps[1] != "":
		return ps[1], nil
	}
	return "", fmt.Errorf("element did not form a valid name (name, prefix:name): %v", name)
}
