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

package mode

import (
	"fmt"
	"strings"
)

// Filter selects which declared-field visibility tier a guard treats as
// "known".
//
// # Overview
//
// A type's declared surface varies with visibility: the exported fields
// form the public shape, the unexported fields the internal one. Filter
// picks the tier that counts as declared for interception purposes; field
// sets are discovered and cached per (type, filter) pair.
//
// # Values
//
// The following filters are defined:
//
//   - Exported   — exported fields only (the default).
//   - Unexported — unexported fields only.
//   - All        — every field declared on the type.
//
// # Contract
//
//   - Registry implementations MUST key their caches on the filter as well
//     as the type, since the declared surface differs per tier.
//   - Filter values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
type Filter int

const (
	// Exported admits exported fields only.
	//
	// # Semantics
	//
	// Under Exported, only fields whose names are exported count as
	// declared; reads and writes of unexported fields are treated exactly
	// like accesses to fields that do not exist at all. This is the
	// default tier and matches the common case of guarding a type's
	// public shape.
	Exported Filter = iota

	// Unexported admits unexported fields only.
	//
	// # Semantics
	//
	// Under Unexported, the declared surface is the internal one. This
	// tier exists mainly for introspection and diagnostics; note that
	// unexported field values are not readable through reflection, so
	// declared-ness suppresses violations without exposing values.
	Unexported

	// All admits every field declared on the type.
	//
	// # Semantics
	//
	// All is the union of Exported and Unexported: the entire declared
	// surface counts as known, and only genuinely nonexistent fields
	// trigger violations.
	All
)

// String returns a human-readable representation of the Filter value.
//
// For all defined enum values, the returned strings are:
//
//   - Exported   -> "exported"
//   - Unexported -> "unexported"
//   - All        -> "all"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)" and MUST NOT panic.
func (f Filter) String() string {
	switch f {
	case Exported:
		return "exported"
	case Unexported:
		return "unexported"
	case All:
		return "all"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// Valid reports whether f is one of the defined filters.
//
// # Contract
//
//   - Valid MUST return true for exactly the values Exported, Unexported,
//     and All.
//   - Valid MUST NOT panic for any input.
func (f Filter) Valid() bool {
	switch f {
	case Exported, Unexported, All:
		return true
	}
	return false
}

// ParseFilter parses a textual representation of a Filter.
//
// Accepted (case-insensitive, whitespace-trimmed) inputs:
//
//   - "exported"   -> Exported
//   - "unexported" -> Unexported
//   - "all"        -> All
//
// Any other input results in a non-nil error; the returned Filter MUST NOT
// be relied on in the error case. ParseFilter MUST NOT panic for any input.
func ParseFilter(s string) (Filter, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Exported, fmt.Errorf("mode: empty filter")
	}

	switch strings.ToLower(trimmed) {
	case "exported":
		return Exported, nil
	case "unexported":
		return Unexported, nil
	case "all":
		return All, nil
	default:
		return Exported, fmt.Errorf("mode: unknown filter %q", s)
	}
}

// MarshalText encodes Filter as text.
//
// For the defined values it returns the same tokens as String() and a nil
// error; unknown values return a non-nil error rather than serializing a
// diagnostic form.
func (f Filter) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("mode: cannot marshal unknown filter %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes Filter from text. It accepts exactly the inputs
// accepted by ParseFilter; on failure the receiver is left unchanged.
func (f *Filter) UnmarshalText(text []byte) error {
	parsed, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
