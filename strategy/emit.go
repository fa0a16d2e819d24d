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
	"fmt"
	"io"
	"os"

	"dirpx.dev/fgx/apis"
)

// NewEmitReporter creates the terminal apis.Reporter: echo the message to
// the guard's output writer and forward it to the attached Logger.
func NewEmitReporter() apis.Reporter {
	return &emitReporter{}
}

// emitReporter always handles. It is the tail of the default chain, reached
// only when no hook consumed the violation and exceptions are disabled.
//
// env.Cfg.OutputMode is validated and stored by the guard but not consulted
// here: echo always happens in non-raise mode and OutputLog behaves like
// OutputBoth.
// TODO: gate the echo and log branches on env.Cfg.OutputMode.
type emitReporter struct{}

// Ensure emitReporter implements apis.Reporter.
var _ apis.Reporter = (*emitReporter)(nil)

// Report echoes the violation message and forwards it to the Logger, if any.
func (*emitReporter) Report(v apis.Violation, env apis.ReportEnv) (bool, error) {
	var out io.Writer = os.Stdout
	if env.Out != nil {
		out = env.Out
	}
	fmt.Fprintln(out, v.Message)
	if env.Logger != nil {
		env.Logger.Log(v.Message)
	}
	return true, nil
}
