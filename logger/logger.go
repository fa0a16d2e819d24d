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

package logger

import (
	"io"
	"log"
	"os"

	"dirpx.dev/fgx/apis"
)

// Tag is the fixed prefix the default logger puts in front of every message.
const Tag = "fgx: "

// New creates the default apis.Logger: tag-prefixed lines on the process
// error log (stderr).
func New() apis.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a tag-prefixed apis.Logger writing to w.
func NewWithWriter(w io.Writer) apis.Logger {
	return &stdLogger{l: log.New(w, Tag, log.LstdFlags)}
}

// stdLogger adapts the standard library logger to the Logger capability.
type stdLogger struct {
	l *log.Logger
}

// Ensure stdLogger implements apis.Logger.
var _ apis.Logger = (*stdLogger)(nil)

// Log records message on the diagnostic channel.
func (s *stdLogger) Log(message string) {
	s.l.Print(message)
}
