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

// Package util implements utility functions that are shared between the
// ypygen packages.
package util

import "strings"

// Errors is a slice of error. It is used wherever processing continues past
// an individual failure and the failures are handed back to the caller as a
// collectible list.
type Errors []error

// Error implements the error#Error method.
func (e Errors) Error() string {
	return ToString([]error(e))
}

// String implements the stringer#String method.
func (e Errors) String() string {
	return e.Error()
}

// Unwrap returns the contained errors such that errors.Is and errors.As can
// inspect each member of the list.
func (e Errors) Unwrap() []error {
	return []error(e)
}

// AppendErr appends err to errors if it is not nil and returns the result.
func AppendErr(errors Errors, err error) Errors {
	if err == nil {
		return errors
	}
	return append(errors, err)
}

// AppendErrs appends the non-nil members of newErrs to errors and returns the
// result. A nil slice is returned when both inputs are empty.
func AppendErrs(errors Errors, newErrs []error) Errors {
	for _, err := range newErrs {
		errors = AppendErr(errors, err)
	}
	return errors
}

// ToString returns a comma-separated string representation of errors,
// skipping nil entries.
func ToString(errors []error) string {
	var parts []string
	for _, e := range errors {
		if e == nil {
			continue
		}
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, ", ")
}
