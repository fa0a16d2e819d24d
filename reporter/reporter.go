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

package reporter

import (
	"dirpx.dev/fgx/apis"
)

// New constructs an apis.Reporter that tries the given reporters in order.
// Nil reporters are ignored. The returned chain is stateless and safe for
// concurrent use provided the reporters themselves are.
func New(reporters ...apis.Reporter) apis.Reporter {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{reps: out}
}

// chain is an immutable, order-preserving reporter over a set of steps.
type chain struct {
	reps []apis.Reporter
}

// Report runs reporters in order until one handles the violation.
// The first handled step decides the outcome; its error (if any) is the
// error surfaced to the caller of the intercepted access.
func (c chain) Report(v apis.Violation, env apis.ReportEnv) (bool, error) {
	for _, r := range c.reps {
		if handled, err := r.Report(v, env); handled {
			return true, err
		}
	}
	return false, nil
}
