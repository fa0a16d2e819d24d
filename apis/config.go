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

// Config carries the enforcement knobs of a guard.
// It is passed by value and should be treated as immutable by implementations;
// per-guard mutation goes through the guard's toggle operations.
type Config struct {
	// Strict controls whether interception is active. When false, all
	// accesses pass through with open-object semantics and nothing is
	// recorded or reported.
	Strict bool

	// RaiseOnViolation selects the reporting channel. When true, a violation
	// surfaces as a *ViolationError and is never echoed or logged.
	RaiseOnViolation bool

	// OutputMode selects the non-raise reporting channel.
	// It is validated on mutation but not yet consulted by the default
	// reporting chain (see strategy.NewEmitReporter).
	OutputMode OutputMode

	// Filter selects which declared-field visibility tier counts as known.
	Filter Filter

	// MaxUnwrap limits pointer unwrapping depth when locating the guarded
	// struct type. Acts as a safety guard against pathological nesting.
	MaxUnwrap int
}
