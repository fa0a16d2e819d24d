/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"reflect"
	"sort"
)

// Registry provides memoized declared-field discovery per (type, filter).
// Field sets are computed once and shared by reference across all guards of
// the same type, so callers must treat returned sets as read-only.
type Registry interface {
	// Fields returns the set of field names declared directly on the
	// normalized form of t that match filter f. An empty set is valid and
	// means every strict read is a violation.
	Fields(t reflect.Type, f Filter) (FieldSet, error)
	// Register installs an explicit declaration manifest for a type,
	// overriding discovery. Idempotent for an equal set; conflicting
	// re-registrations fail.
	Register(t reflect.Type, f Filter, fields FieldSet) error
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of cached entries.
	Count() int
	// Reset clears all cached and registered entries.
	Reset()
}

// Entry is a single cached (type, filter, fields) association in a Registry snapshot.
type Entry struct {
	// Type is the normalized reflect.Type the set was computed for.
	Type reflect.Type
	// Filter is the visibility filter the set was computed under.
	Filter Filter
	// Fields is the declared-field set.
	Fields FieldSet
}

// FieldSet is a set of declared field names.
type FieldSet map[string]struct{}

// NewFieldSet constructs a FieldSet from the given names.
func NewFieldSet(names ...string) FieldSet {
	s := make(FieldSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s FieldSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the field names in sorted order.
func (s FieldSet) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether s and o contain exactly the same names.
func (s FieldSet) Equal(o FieldSet) bool {
	if len(s) != len(o) {
		return false
	}
	for n := range s {
		if _, ok := o[n]; !ok {
			return false
		}
	}
	return true
}
