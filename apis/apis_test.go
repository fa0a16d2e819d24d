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

package apis_test

import (
	"reflect"
	"testing"

	"dirpx.dev/fgx/apis"
)

func TestFieldSet_Basics(t *testing.T) {
	s := apis.NewFieldSet("Name", "Email")

	if !s.Contains("Name") || !s.Contains("Email") {
		t.Fatal("set misses a member")
	}
	if s.Contains("age") {
		t.Fatal("set contains a non-member")
	}
	if got, want := s.Names(), []string{"Email", "Name"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v (sorted)", got, want)
	}
}

func TestFieldSet_Equal(t *testing.T) {
	a := apis.NewFieldSet("A", "B")

	for _, tt := range []struct {
		name string
		b    apis.FieldSet
		want bool
	}{
		{"same members", apis.NewFieldSet("B", "A"), true},
		{"subset", apis.NewFieldSet("A"), false},
		{"superset", apis.NewFieldSet("A", "B", "C"), false},
		{"disjoint", apis.NewFieldSet("X"), false},
		{"empty", apis.NewFieldSet(), false},
	} {
		if got := a.Equal(tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}

	if !apis.NewFieldSet().Equal(apis.NewFieldSet()) {
		t.Fatal("empty sets not equal")
	}
}

func TestOutputMode_Valid(t *testing.T) {
	for _, m := range []apis.OutputMode{apis.OutputEcho, apis.OutputLog, apis.OutputBoth} {
		if !m.Valid() {
			t.Errorf("%v: Valid() = false", m)
		}
	}
	if apis.OutputMode(42).Valid() {
		t.Error("OutputMode(42): Valid() = true")
	}
}

func TestFilter_Valid(t *testing.T) {
	for _, f := range []apis.Filter{apis.FilterExported, apis.FilterUnexported, apis.FilterAll} {
		if !f.Valid() {
			t.Errorf("%v: Valid() = false", f)
		}
	}
	if apis.Filter(42).Valid() {
		t.Error("Filter(42): Valid() = true")
	}
}

func TestNewViolationError_TrimsMessage(t *testing.T) {
	v := apis.Violation{
		Kind:    apis.MissingField,
		Field:   "age",
		Message: "  Prop 'age' does not exist!!! \n",
	}
	err := apis.NewViolationError(v)
	if err.Msg != "Prop 'age' does not exist!!!" {
		t.Fatalf("Msg = %q, want trimmed", err.Msg)
	}
	if err.Error() != err.Msg {
		t.Fatalf("Error() = %q, want %q", err.Error(), err.Msg)
	}
}

func TestViolationKind_String(t *testing.T) {
	if got := apis.MissingField.String(); got == "" {
		t.Fatal("MissingField.String() empty")
	}
	if got := apis.DynamicCreation.String(); got == "" {
		t.Fatal("DynamicCreation.String() empty")
	}
	if apis.MissingField.String() == apis.DynamicCreation.String() {
		t.Fatal("kinds share a string form")
	}
}
