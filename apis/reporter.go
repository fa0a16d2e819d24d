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

// Reporter is a pluggable violation-reporting step. A guard routes every
// violation through a chain of reporters in precedence order
// (handler hook -> raise -> emit); the first step that handles the violation
// stops the chain.
type Reporter interface {
	// Report attempts to handle v. It returns handled=true if the violation
	// was consumed; err is non-nil only when the violation surfaces as an
	// error to the caller of the intercepted access.
	Report(v Violation, env ReportEnv) (handled bool, err error)
}

// ReportEnv carries the per-guard state a reporter may consult. Reporters
// stay stateless and shareable; all mutable sinks travel here.
type ReportEnv struct {
	// Target is the guarded value; reporters may probe it for optional
	// capabilities such as MissingFieldHandler.
	Target any
	// Cfg is the guard's configuration at the moment of violation.
	Cfg Config
	// Out is the echo destination. Nil means process stdout.
	Out io.Writer
	// Logger is the attached diagnostic sink, if any.
	Logger Logger
}
