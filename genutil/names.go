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

// Package genutil provides naming and file utilities for packages that
// generate Python code based on a YANG schema.
package genutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidToken is returned when a token cannot be converted into an
// identifier, because it is empty or consists only of separators.
var ErrInvalidToken = errors.New("invalid token")

// reservedNames are words that could turn up in YANG definition files that
// are reserved in Python, either as keywords, builtin types, or as methods
// that the generated classes expose. The list is not complete.
var reservedNames = map[string]bool{
	"list": true, "str": true, "int": true, "global": true, "decimal": true,
	"float": true, "as": true, "if": true, "else": true, "elif": true,
	"map": true, "set": true, "class": true, "from": true, "import": true,
	"pass": true, "return": true, "is": true, "exec": true, "pop": true,
	"insert": true, "remove": true, "add": true, "delete": true,
	"local": true, "get": true, "default": true, "yang_name": true,
	"def": true, "print": true, "del": true, "break": true,
	"continue": true, "raise": true, "in": true, "assert": true,
	"while": true, "for": true, "try": true, "finally": true, "with": true,
	"except": true, "lambda": true, "or": true, "and": true, "not": true,
	"yield": true, "property": true, "min": true, "max": true,
}

// IsReservedName reports whether name shadows a Python reserved word or a
// method of the generated classes.
func IsReservedName(name string) bool {
	return reservedNames[name]
}

// safeNameReplacer maps the characters that may appear in a YANG identifier
// but not in a Python one.
var safeNameReplacer = strings.NewReplacer("-", "_", ".", "_")

// SafeName makes a leaf or container name safe for use in Python. Hyphens and
// dots are replaced with underscores, and an underscore is appended to names
// that would shadow a reserved word.
func SafeName(name string) string {
	name = safeNameReplacer.Replace(name)
	if IsReservedName(name) {
		name += "_"
	}
	return name
}

// IdentifierCase converts a hyphen or underscore separated token into an
// upper camel case identifier, e.g., "admin-state" becomes "AdminState".
// The character following each separator is upper-cased and the separator is
// removed; a trailing separator is dropped. It returns ErrInvalidToken if no
// characters remain.
func IdentifierCase(token string) (string, error) {
	var b strings.Builder
	upper := true
	for _, r := range token {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	return b.String(), nil
}

// TrimOrgPrefix checks each input organization prefix (e.g. "openconfig", "ietf")
// (https://tools.ietf.org/html/rfc8407#section-4.1), and if matching the input
// module name, trims it and returns it. If none is matching, the original
// module name is returned.
// E.g. If "openconfig" is provided as a prefix to trim, then
// "openconfig-interfaces" becomes simply "interfaces".
func TrimOrgPrefix(modName string, orgPrefixesToTrim ...string) string {
	for _, pfx := range orgPrefixesToTrim {
		if trimmedModName := strings.TrimPrefix(modName, pfx+"-"); trimmedModName != modName {
			return trimmedModName
		}
	}
	return modName
}

// MakeNameUnique makes the name specified as an argument unique based on the names
// already defined within a particular context which are specified within the
// definedNames map. If the name has already been defined, an underscore is appended
// to the name until it is unique.
func MakeNameUnique(name string, definedNames map[string]bool) string {
	for {
		if _, nameUsed := definedNames[name]; !nameUsed {
			definedNames[name] = true
			return name
		}
		name = fmt.Sprintf("%s_", name)
	}
}
