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

import "io"

// Guard intercepts field reads and writes on a single guarded value,
// enforcing its declared field set. All field access funnels through
// Get/Set; declared-field accesses pass through untouched, undeclared
// accesses in strict mode are classified as violations and routed through
// the reporting chain.
//
// A Guard is single-owner, single-thread state: no concurrent-access
// guarantees are made for its mutable parts.
type Guard interface {
	// Get intercepts a field read. The error is non-nil only for a
	// violation while RaiseOnViolation is enabled.
	Get(name string) (any, error)
	// Set intercepts a field write. Writes to declared fields bypass guard
	// logic irrespective of strict mode. The error is non-nil for a raised
	// violation or a failed declared-field assignment.
	Set(name string, value any) error

	// EnableStrictMode turns interception on for subsequent accesses.
	EnableStrictMode()
	// DisableStrictMode bypasses all interception for subsequent accesses.
	DisableStrictMode()
	// EnableExceptions makes subsequent violations surface as *ViolationError.
	EnableExceptions()
	// DisableExceptions routes subsequent violations to echo/log instead.
	DisableExceptions()

	// SetLogger attaches a diagnostic sink. Nil detaches.
	SetLogger(l Logger)
	// SetPropertyAccessObserver attaches a monitoring sink. Nil detaches.
	SetPropertyAccessObserver(o Observer)
	// SetFieldFilter re-resolves the declared set under f against the shared
	// type-level cache. It fails for an unknown filter and leaves the prior
	// set unchanged in that case.
	SetFieldFilter(f Filter) error
	// SetErrorOutputMode validates and stores m. An unknown mode fails and
	// leaves the prior mode unchanged.
	SetErrorOutputMode(m OutputMode) error
	// SetOutput redirects echo output. Nil is ignored.
	SetOutput(w io.Writer)

	// InvalidAccesses returns a copy of the append-only history of invalid
	// reads, in the order encountered. Duplicates are permitted.
	InvalidAccesses() []string
	// Fields returns the declared-field set currently in force.
	Fields() FieldSet
}
