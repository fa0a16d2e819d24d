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

// NewRaiseReporter creates an apis.Reporter that converts violations into
// *apis.ViolationError when RaiseOnViolation is enabled.
func NewRaiseReporter() apis.Reporter {
	return &raiseReporter{}
}

// raiseReporter consumes the violation when exceptions are enabled so that
// no echo or log output happens for it. The flag is read from the config at
// the moment of violation, never cached.
type raiseReporter struct{}

// Ensure raiseReporter implements apis.Reporter.
var _ apis.Reporter = (*raiseReporter)(nil)

// Report raises the violation as an error if env.Cfg.RaiseOnViolation is set.
func (*raiseReporter) Report(v apis.Violation, env apis.ReportEnv) (bool, error) {
	if !env.Cfg.RaiseOnViolation {
		return false, nil
	}
	return true, apis.NewViolationError(v)
}
