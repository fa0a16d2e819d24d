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

// OutputMode selects the reporting channel a guard uses for violations when
// exceptions are disabled.
//
// # Overview
//
// OutputMode is a small enumerated type that describes where violation
// messages go: the guard's echo writer, the attached Logger capability, or
// both. It is part of the guard's configuration surface and is validated
// on every mutation; an unrecognized value is rejected synchronously and
// leaves the prior mode unchanged.
//
// OutputMode is intentionally minimal and sink-agnostic: it does not define
// message formats, writer destinations, or Logger semantics, but instead
// selects a broad routing class. The concrete sinks are configured
// separately on the guard.
//
// # Values
//
// The following modes are defined:
//
//   - Echo — emit to the guard's output writer only.
//   - Log  — forward to the attached Logger only.
//   - Both — emit and forward.
//
// # Contract
//
//   - Guard implementations MUST treat OutputMode as a stable, public API;
//     adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
//   - OutputMode values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - OutputMode SHOULD be used as configuration input, not mutated at
//     runtime in performance-critical paths.
type OutputMode int

const (
	// Echo emits violation messages to the guard's output writer only.
	//
	// # Semantics
	//
	// Under Echo, a violation in non-raise mode SHOULD produce exactly one
	// line (the message plus a trailing newline) on the guard's configured
	// output writer, and the attached Logger, if any, SHOULD NOT be
	// invoked for that violation.
	//
	// Recommended usage:
	//
	//   - Interactive or script contexts where violations are meant to be
	//     seen immediately by a human.
	Echo OutputMode = iota

	// Log forwards violation messages to the attached Logger only.
	//
	// # Semantics
	//
	// Under Log, a violation in non-raise mode SHOULD be forwarded to the
	// attached Logger capability and SHOULD NOT be echoed to the output
	// writer. When no Logger is attached the forward is a no-op; the mode
	// does not imply that a Logger exists.
	//
	// Recommended usage:
	//
	//   - Long-running services where stdout noise is undesirable and
	//     violations are collected through the diagnostic channel.
	Log

	// Both emits to the output writer and forwards to the Logger.
	//
	// # Semantics
	//
	// Both is the union of Echo and Log and is the default mode. Each
	// violation in non-raise mode SHOULD be echoed exactly once and
	// forwarded to the Logger exactly once (no-op when none is attached).
	Both
)

// String returns a human-readable representation of the OutputMode value.
//
// # Semantics
//
// String implements fmt.Stringer and provides short, stable identifiers
// suitable for logging, configuration dumps, and debugging. For all defined
// enum values, the returned strings are:
//
//   - Echo -> "echo"
//   - Log  -> "log"
//   - Both -> "both"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This behavior
// is intentional and MUST NOT panic, so that corrupted or unexpected values
// can still be surfaced safely in logs and diagnostics.
func (m OutputMode) String() string {
	switch m {
	case Echo:
		return "echo"
	case Log:
		return "log"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined output modes.
//
// # Contract
//
//   - Valid MUST return true for exactly the values Echo, Log, and Both.
//   - Valid MUST NOT panic for any input.
//
// Guard configuration setters use Valid to reject unrecognized modes
// synchronously at the call site with no partial state change.
func (m OutputMode) Valid() bool {
	switch m {
	case Echo, Log, Both:
		return true
	}
	return false
}

// Parse parses a textual representation of an OutputMode.
//
// # Overview
//
// Parse converts a string token into the corresponding OutputMode value.
// It accepts the same canonical tokens that are produced by
// OutputMode.String() for known values, with case-insensitive matching.
//
// Accepted (case-insensitive) inputs:
//
//   - "echo" -> Echo
//   - "log"  -> Log
//   - "both" -> Both
//
// Any other input results in a non-nil error.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - On success, Parse returns a valid OutputMode and a nil error.
//   - On failure, Parse returns Both and a non-nil error;
//     callers MUST NOT rely on the returned OutputMode in the error case.
//   - Parse MUST NOT panic for any input.
func Parse(s string) (OutputMode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Both, fmt.Errorf("mode: empty output mode")
	}

	switch strings.ToLower(trimmed) {
	case "echo":
		return Echo, nil
	case "log":
		return Log, nil
	case "both":
		return Both, nil
	default:
		return Both, fmt.Errorf("mode: unknown output mode %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// # Contract
//
//   - On valid input, MustParse returns the same value as Parse and MUST
//     NOT panic.
//   - On invalid input (including empty strings), MustParse panics with a
//     diagnostic message.
//   - Callers MUST NOT use MustParse on untrusted or user-supplied data;
//     they SHOULD use Parse instead and handle errors.
func MustParse(s string) OutputMode {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText encodes OutputMode as text.
//
// # Contract
//
//   - For the defined values, MarshalText returns the same tokens as
//     String() and a nil error.
//   - For unknown or out-of-range values, MarshalText returns a non-nil
//     error and MUST NOT silently serialize an "Unknown(...)" form; this
//     avoids persisting potentially invalid states.
//   - MarshalText MUST NOT panic for any OutputMode value.
func (m OutputMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("mode: cannot marshal unknown output mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes OutputMode from text.
//
// # Contract
//
//   - UnmarshalText accepts exactly the inputs accepted by Parse.
//   - On failure, the receiver is left unchanged and a non-nil error is
//     returned.
//   - UnmarshalText MUST NOT panic for any input.
func (m *OutputMode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
