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

import (
	"fmt"
	"strings"
)

// ViolationKind classifies an invalid access.
type ViolationKind int

const (
	// MissingField is a strict-mode read of an undeclared field.
	MissingField ViolationKind = iota
	// DynamicCreation is a strict-mode write attempting to create an
	// undeclared field.
	DynamicCreation
)

// String returns a stable token for k, or a diagnostic form for unknown values.
func (k ViolationKind) String() string {
	switch k {
	case MissingField:
		return "missing-field"
	case DynamicCreation:
		return "dynamic-creation"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Violation describes a single invalid access about to be reported.
type Violation struct {
	// Kind classifies the access.
	Kind ViolationKind
	// Field is the undeclared field name.
	Field string
	// Value is the discarded value on DynamicCreation; nil for reads.
	Value any
	// Message is the human-readable violation message.
	Message string
}

// ViolationError is the raised form of a violation. It is produced only when
// RaiseOnViolation is enabled and carries the trimmed violation message.
type ViolationError struct {
	// Kind classifies the violated access.
	Kind ViolationKind
	// Field is the undeclared field name.
	Field string
	// Msg is the trimmed human-readable message.
	Msg string
}

// NewViolationError constructs a ViolationError from v, trimming the message.
func NewViolationError(v Violation) *ViolationError {
	return &ViolationError{Kind: v.Kind, Field: v.Field, Msg: strings.TrimSpace(v.Message)}
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	return e.Msg
}
