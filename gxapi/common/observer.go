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

// Observer is the monitoring-sink capability of the fgx guard subsystem.
//
// # Overview
//
// An Observer is notified about the two kinds of invalid access a guard can
// intercept: reads of undeclared fields and writes attempting to create
// them. It exists for monitoring, auditing, and test instrumentation —
// counting violations, sampling field names, feeding dashboards.
//
// Observers are purely observational. The guard invokes them synchronously,
// before default reporting runs, and ignores anything they do: an Observer
// MUST NOT be assumed to affect control flow, suppress reporting, or
// substitute values. Code that needs to replace default reporting should
// implement MissingFieldHandler on the guarded type instead.
//
// # Ordering
//
// For a read violation the sequence is: history append, then
// OnMissingField, then the reporting chain (where the guarded type's own
// hook, if any, fires after the Observer and suppresses the default
// routine). For a write violation the sequence is: OnDynamicFieldCreationAttempt,
// then the reporting chain; no history append and no hook check occur on
// the write path.
//
// # Ownership
//
// An Observer reference held by a guard is shared, not owned. The same
// instance may watch many guards; guards never manage its lifecycle.
//
// # Contract
//
//   - Both methods MUST NOT panic and MUST NOT block indefinitely; they run
//     inline on the goroutine performing the intercepted access.
//   - Return values do not exist; side effects are the only output.
//   - Implementations MUST be safe for concurrent use when shared across
//     guards on different goroutines.
//   - Implementations MUST NOT call back into the notifying guard from
//     within a notification; the guard is mid-interception.
type Observer interface {
	// OnMissingField is invoked for a strict-mode read of an undeclared
	// field, with the field name as encountered.
	OnMissingField(name string)

	// OnDynamicFieldCreationAttempt is invoked for a strict-mode write
	// attempting to create an undeclared field. value is the value the
	// caller tried to store; the guard discards it after notification.
	OnDynamicFieldCreationAttempt(name string, value any)
}

// ObserverFuncs adapts a pair of plain functions to the Observer interface.
//
// # Overview
//
// ObserverFuncs lets call sites assemble an Observer from closures without
// declaring a type, which keeps test and wiring code compact. Either
// function may be nil; nil callbacks are skipped.
//
// # Usage
//
//	var reads, writes int
//	g.SetPropertyAccessObserver(common.ObserverFuncs{
//	    Missing:  func(string) { reads++ },
//	    Creation: func(string, any) { writes++ },
//	})
type ObserverFuncs struct {
	// Missing handles OnMissingField; may be nil.
	Missing func(name string)
	// Creation handles OnDynamicFieldCreationAttempt; may be nil.
	Creation func(name string, value any)
}

// OnMissingField implements Observer for ObserverFuncs.
func (o ObserverFuncs) OnMissingField(name string) {
	if o.Missing != nil {
		o.Missing(name)
	}
}

// OnDynamicFieldCreationAttempt implements Observer for ObserverFuncs.
func (o ObserverFuncs) OnDynamicFieldCreationAttempt(name string, value any) {
	if o.Creation != nil {
		o.Creation(name, value)
	}
}
