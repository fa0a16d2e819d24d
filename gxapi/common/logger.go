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

// Logger is the diagnostic-sink capability of the fgx guard subsystem.
//
// # Overview
//
// Logger is a deliberately narrow contract: a single method that records a
// message string. The guard forwards every violation message to the
// attached Logger whenever exceptions are disabled; the Logger is the
// "side channel" that lets violations be collected without interrupting
// the intercepted access.
//
// The contract is substitutable independently of the guard's core logic:
// any object with a Log method can serve — a stdlib log wrapper, a test
// recorder, a metrics adapter, a ring buffer.
//
// # Ownership
//
// A Logger reference held by a guard is shared, not owned: the same Logger
// instance may be attached to many guards, and detaching it from one guard
// MUST NOT affect the others. Guards never close, flush, or otherwise
// manage the lifecycle of an attached Logger.
//
// # Contract
//
//   - Log MUST NOT fail visibly; no error outcomes are declared. An
//     implementation that can fail internally (e.g., a network sink)
//     MUST absorb the failure.
//   - Log is invoked synchronously on the calling goroutine of the
//     intercepted access; implementations SHOULD keep per-call cost low
//     and MUST NOT block indefinitely.
//   - Implementations MUST be safe for concurrent use when the same
//     instance is attached to guards living on different goroutines.
//   - Log MUST NOT panic for any input, including the empty string.
//
// # Usage
//
//	type recorder struct{ msgs []string }
//
//	func (r *recorder) Log(message string) { r.msgs = append(r.msgs, message) }
//
//	g.SetLogger(&recorder{})
type Logger interface {
	// Log records message. No error outcomes are declared.
	Log(message string)
}

// LoggerFunc adapts a plain function to the Logger interface.
//
// # Overview
//
// LoggerFunc is a convenience adapter that allows standalone functions with
// signature `func(string)` to satisfy the Logger interface. This is useful
// when the sink is naturally expressed as a closure (for example, in tests,
// or when bridging to an existing logging call) rather than as a method on
// a dedicated type.
//
// # Contract
//
// All contractual requirements of Logger apply to the wrapped function:
// it MUST NOT panic, MUST absorb internal failures, and MUST be safe for
// concurrent calls when shared across guards.
//
// # Usage
//
//	g.SetLogger(common.LoggerFunc(func(m string) {
//	    slogger.Warn(m)
//	}))
type LoggerFunc func(message string)

// Log implements Logger for LoggerFunc.
//
// Calling Log on a LoggerFunc is equivalent to invoking the underlying
// function value directly; the adapter adds a single call indirection and
// no allocations.
func (f LoggerFunc) Log(message string) {
	f(message)
}
