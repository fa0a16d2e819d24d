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

// Logger is a pluggable diagnostic sink that records a message string.
// The guard forwards violation messages to it in non-raise mode.
type Logger interface {
	// Log records message. No error outcomes are declared.
	Log(message string)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(message string)

// Log implements Logger for LoggerFunc.
func (f LoggerFunc) Log(message string) {
	f(message)
}

// Observer is a pluggable hook notified on missing-field reads and on
// dynamic-field-creation write attempts. It is invoked synchronously before
// default reporting and is advisory only: it must not be assumed to affect
// control flow.
type Observer interface {
	// OnMissingField is invoked for a strict-mode read of an undeclared field.
	OnMissingField(name string)
	// OnDynamicFieldCreationAttempt is invoked for a strict-mode write
	// attempting to create an undeclared field. value is the discarded value.
	OnDynamicFieldCreationAttempt(name string, value any)
}

// MissingFieldHandler is an optional capability a guarded type may implement.
// When present, it fully replaces default reporting for read violations:
// no echo, no log, no raise. Write violations never consult it.
type MissingFieldHandler interface {
	// HandleMissingField is invoked with the undeclared field name.
	HandleMissingField(name string)
}
