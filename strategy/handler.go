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

package strategy

import (
	"dirpx.dev/fgx/apis"
)

// NewHandlerReporter creates an apis.Reporter that dispatches read
// violations to the target's own MissingFieldHandler capability.
func NewHandlerReporter() apis.Reporter {
	return &handlerReporter{}
}

// handlerReporter is the override fast path: when the guarded value itself
// implements apis.MissingFieldHandler, the hook takes full precedence over
// raise/echo/log for missing-field reads. Write violations fall through:
// dynamic-creation attempts never consult the hook.
type handlerReporter struct{}

// Ensure handlerReporter implements apis.Reporter.
var _ apis.Reporter = (*handlerReporter)(nil)

// Report invokes the target's HandleMissingField for read violations.
// The capability is probed at violation time, not at guard construction.
func (*handlerReporter) Report(v apis.Violation, env apis.ReportEnv) (bool, error) {
	if v.Kind != apis.MissingField {
		return false, nil
	}
	h, ok := env.Target.(apis.MissingFieldHandler)
	if !ok {
		return false, nil
	}
	h.HandleMissingField(v.Field)
	return true, nil
}
