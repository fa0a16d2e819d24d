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

package common

// MissingFieldHandler is the override capability a guarded type may
// implement to take over read-violation reporting.
//
// # Overview
//
// Unlike Logger and Observer, which are attached to a guard from the
// outside, MissingFieldHandler lives on the guarded value itself: a type
// opts in by implementing the method. When the guard intercepts a read of
// an undeclared field and the target implements this interface, the hook
// is invoked and default reporting is fully suppressed — no echo, no log
// forwarding, no raised error, even when exceptions are enabled.
//
// The hook applies to the read path only. Writes attempting to create an
// undeclared field never consult it; they always follow the default
// reporting routine.
//
// # Discovery
//
// The capability is probed structurally at violation time via a type
// assertion on the concrete target, not captured at guard construction.
// A type whose handler behavior depends on runtime state therefore sees
// the state current at the moment of the violation.
//
// # Ordering
//
// The hook fires after the attached Observer (if any) has been notified
// and after the field name has been appended to the guard's invalid-access
// history. Implementing the hook changes what is reported, never what is
// recorded.
//
// # Contract
//
//   - HandleMissingField MUST NOT panic and MUST NOT block indefinitely;
//     it runs inline on the goroutine performing the intercepted read.
//   - The return value does not exist; the intercepted read still yields
//     no value for the undeclared field.
//   - Implementations MUST NOT call back into the guard from within the
//     hook; the guard is mid-interception.
//
// # Usage
//
//	type Tolerant struct {
//	    Name string
//	}
//
//	func (t *Tolerant) HandleMissingField(name string) {
//	    // swallow the violation, e.g. count it or map it to a default
//	}
type MissingFieldHandler interface {
	// HandleMissingField is invoked with the undeclared field name.
	HandleMissingField(name string)
}
