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

package genutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// generatedFileMode is the permission mode of generated source files.
const generatedFileMode fs.FileMode = 0o644

// WriteFile writes data to the file fn, creating any missing parent
// directories. The file is replaced atomically, such that a reader never
// observes a partially generated file.
func WriteFile(fn string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return fmt.Errorf("could not create output directory for %s: %v", fn, err)
	}
	if err := renameio.WriteFile(fn, data, generatedFileMode); err != nil {
		return fmt.Errorf("could not write output file %s: %v", fn, err)
	}
	return nil
}

// WriteFileIfAbsent writes data to fn only if fn does not already exist. It
// returns true if the file was written.
func WriteFileIfAbsent(fn string, data []byte) (bool, error) {
	switch _, err := os.Stat(fn); {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("could not stat output file %s: %v", fn, err)
	}
	if err := WriteFile(fn, data); err != nil {
		return false, err
	}
	return true, nil
}
