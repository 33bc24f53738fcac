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
	"strings"

	"github.com/derekparker/trie"
)

// suffixIndex answers whether any path of a namespace, other than a given
// one, ends with a candidate suffix. Paths are compared in their stripped
// form, i.e., with module prefixes removed. The stripped paths are stored
// reversed in a trie so that a suffix match becomes a prefix search.
type suffixIndex struct {
	t *trie.Trie
	// owners maps a reversed stripped path to the keys of the entries that
	// have that stripped path. Entries from different modules may share a
	// stripped path.
	owners map[string][]string
}

func newSuffixIndex(ns *Namespace) *suffixIndex {
	idx := &suffixIndex{
		t:      trie.New(),
		owners: map[string][]string{},
	}
	for _, e := range ns.Entries() {
		r := reverse(strippedPath(e.Elements()))
		if _, ok := idx.owners[r]; !ok {
			idx.t.Add(r, nil)
		}
		idx.owners[r] = append(idx.owners[r], e.Key)
	}
	return idx
}

// sharedBy returns the key of an entry other than self whose stripped path
// ends with suffix. ok is false if there is no such entry. suffix must start
// with /, such that only whole path elements are matched.
func (idx *suffixIndex) sharedBy(suffix, self string) (key string, ok bool) {
	for _, m := range idx.t.PrefixSearch(reverse(suffix)) {
		for _, k := range idx.owners[m] {
			if k != self {
				return k, true
			}
		}
	}
	return "", false
}

// strippedPath joins els into a path string starting with /.
func strippedPath(els []string) string {
	return "/" + strings.Join(els, "/")
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
