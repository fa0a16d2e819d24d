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

package strategy_test

import (
	"errors"
	"testing"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/strategy"
)

func TestRaiseReporter_Disabled_FallsThrough(t *testing.T) {
	s := strategy.NewRaiseReporter()

	v := apis.Violation{Kind: apis.MissingField, Field: "age", Message: "Prop 'age' does not exist!!!"}
	handled, err := s.Report(v, apis.ReportEnv{Cfg: apis.Config{RaiseOnViolation: false}})
	if handled || err != nil {
		t.Fatalf("Report = (%v,%v), want (false,nil)", handled, err)
	}
}

func TestRaiseReporter_Enabled_RaisesViolationError(t *testing.T) {
	s := strategy.NewRaiseReporter()

	v := apis.Violation{
		Kind:    apis.MissingField,
		Field:   "age",
		Message: "  Prop 'age' does not exist!!!  ",
	}
	handled, err := s.Report(v, apis.ReportEnv{Cfg: apis.Config{RaiseOnViolation: true}})
	if !handled {
		t.Fatal("Report not handled with raise enabled")
	}

	var verr *apis.ViolationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *apis.ViolationError", err)
	}
	if verr.Msg != "Prop 'age' does not exist!!!" {
		t.Fatalf("Msg = %q, want trimmed message", verr.Msg)
	}
	if verr.Kind != apis.MissingField || verr.Field != "age" {
		t.Fatalf("error carries (%v,%q), want (MissingField,age)", verr.Kind, verr.Field)
	}
	if verr.Error() != verr.Msg {
		t.Fatalf("Error() = %q, want %q", verr.Error(), verr.Msg)
	}
}

func TestRaiseReporter_WriteViolation(t *testing.T) {
	s := strategy.NewRaiseReporter()

	v := apis.Violation{
		Kind:    apis.DynamicCreation,
		Field:   "age",
		Value:   5,
		Message: "creation of dynamic field is disallowed",
	}
	handled, err := s.Report(v, apis.ReportEnv{Cfg: apis.Config{RaiseOnViolation: true}})
	if !handled || err == nil {
		t.Fatalf("Report = (%v,%v), want handled with error", handled, err)
	}
	if err.Error() != "creation of dynamic field is disallowed" {
		t.Fatalf("Error() = %q, want fixed write message", err.Error())
	}
}
