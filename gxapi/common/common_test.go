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

package common_test

import (
	"reflect"
	"testing"

	"dirpx.dev/fgx/api/common"
)

func TestLoggerFunc_Adapts(t *testing.T) {
	var got []string
	var l common.Logger = common.LoggerFunc(func(message string) {
		got = append(got, message)
	})

	l.Log("first")
	l.Log("second")

	if want := []string{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("logged %v, want %v", got, want)
	}
}

func TestObserverFuncs_Dispatch(t *testing.T) {
	var events []string
	var o common.Observer = common.ObserverFuncs{
		Missing: func(name string) {
			events = append(events, "missing:"+name)
		},
		Creation: func(name string, value any) {
			events = append(events, "creation:"+name)
		},
	}

	o.OnMissingField("age")
	o.OnDynamicFieldCreationAttempt("age", 5)

	want := []string{"missing:age", "creation:age"}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
}

func TestObserverFuncs_NilCallbacksAreNoops(t *testing.T) {
	var o common.Observer = common.ObserverFuncs{}

	// Must not panic.
	o.OnMissingField("age")
	o.OnDynamicFieldCreationAttempt("age", 5)
}
