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

import "fmt"

// OutputMode selects the reporting channel for violations in non-raise mode.
type OutputMode int

const (
	// OutputEcho emits violation messages to the guard's output writer only.
	OutputEcho OutputMode = iota
	// OutputLog forwards violation messages to the attached Logger only.
	OutputLog
	// OutputBoth emits to the output writer and forwards to the Logger.
	OutputBoth
)

// Valid reports whether m is one of the defined output modes.
func (m OutputMode) Valid() bool {
	switch m {
	case OutputEcho, OutputLog, OutputBoth:
		return true
	}
	return false
}

// String returns a stable token for m, or a diagnostic form for unknown values.
func (m OutputMode) String() string {
	switch m {
	case OutputEcho:
		return "echo"
	case OutputLog:
		return "log"
	case OutputBoth:
		return "both"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Filter selects which declared-field visibility tier is treated as known.
type Filter int

const (
	// FilterExported admits exported fields only.
	FilterExported Filter = iota
	// FilterUnexported admits unexported fields only.
	FilterUnexported
	// FilterAll admits every field declared on the type.
	FilterAll
)

// Valid reports whether f is one of the defined filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterExported, FilterUnexported, FilterAll:
		return true
	}
	return false
}

// String returns a stable token for f, or a diagnostic form for unknown values.
func (f Filter) String() string {
	switch f {
	case FilterExported:
		return "exported"
	case FilterUnexported:
		return "unexported"
	case FilterAll:
		return "all"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}
