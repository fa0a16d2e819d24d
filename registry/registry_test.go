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

package registry_test

import (
	"reflect"
	"testing"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/config"
	"dirpx.dev/fgx/registry"
	uref "dirpx.dev/fgx/utils/reflect"
)

type T1 struct {
	Name  string
	Email string
	note  string // declared surface under FilterUnexported/FilterAll
}

func TestFields_ExportedOnly(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	fields, err := reg.Fields(reflect.TypeOf(T1{}), apis.FilterExported)
	if err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}
	want := []string{"Email", "Name"}
	if got := fields.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if fields.Contains("note") {
		t.Fatal("exported filter leaked unexported field")
	}
}

func TestFields_FilterTiers(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	tt := reflect.TypeOf(&T1{})

	cases := []struct {
		name   string
		filter apis.Filter
		want   []string
	}{
		{"exported", apis.FilterExported, []string{"Email", "Name"}},
		{"unexported", apis.FilterUnexported, []string{"note"}},
		{"all", apis.FilterAll, []string{"Email", "Name", "note"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields, err := reg.Fields(tt, tc.filter)
			if err != nil {
				t.Fatalf("Fields: unexpected error: %v", err)
			}
			if got := fields.Names(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Names() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFields_MemoizedAcrossPointerForms(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	// T1, *T1 and **T1 normalize to the same type and must share one entry.
	for _, tt := range []reflect.Type{
		reflect.TypeOf(T1{}),
		reflect.TypeOf(&T1{}),
		reflect.TypeOf(new(*T1)),
	} {
		if _, err := reg.Fields(tt, apis.FilterExported); err != nil {
			t.Fatalf("Fields(%v): unexpected error: %v", tt, err)
		}
	}
	if got := reg.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
}

func TestFields_SharedByReference(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	a, err := reg.Fields(reflect.TypeOf(T1{}), apis.FilterExported)
	if err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}
	b, err := reg.Fields(reflect.TypeOf(&T1{}), apis.FilterExported)
	if err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}
	// Same underlying map, not merely equal content.
	if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
		t.Fatal("Fields returned distinct sets for the same (type, filter)")
	}
}

func TestFields_NonStructIsEmptySet(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	fields, err := reg.Fields(reflect.TypeOf(42), apis.FilterExported)
	if err != nil {
		t.Fatalf("Fields(int): unexpected error: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("Fields(int) = %v, want empty set", fields.Names())
	}
}

func TestFields_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if _, err := reg.Fields(nil, apis.FilterExported); err != registry.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if _, err := reg.Fields(reflect.TypeOf(T1{}), apis.Filter(42)); err != registry.ErrInvalidFilter {
		t.Fatalf("bad filter: want ErrInvalidFilter, got %v", err)
	}
}

func TestFields_MaxUnwrapLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxUnwrap = 1
	reg := registry.New(cfg)

	// **T1 -> after 1 unwrap stays *T1, normalization fails.
	if _, err := reg.Fields(reflect.TypeOf(new(*T1)), apis.FilterExported); err != uref.ErrReflectNotNormalized {
		t.Fatalf("MaxUnwrap=1: want ErrReflectNotNormalized, got %v", err)
	}

	reg2 := registry.New(config.DefaultConfig())
	if _, err := reg2.Fields(reflect.TypeOf(new(*T1)), apis.FilterExported); err != nil {
		t.Fatalf("MaxUnwrap=8: unexpected error: %v", err)
	}
}

func TestRegister_ManifestOverridesDiscovery(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	manifest := apis.NewFieldSet("Name") // narrower than the discovered surface
	if err := reg.Register(reflect.TypeOf(&T1{}), apis.FilterExported, manifest); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	fields, err := reg.Fields(reflect.TypeOf(T1{}), apis.FilterExported)
	if err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}
	if fields.Contains("Email") || !fields.Contains("Name") {
		t.Fatalf("manifest not honored: got %v", fields.Names())
	}
}

func TestRegister_IdempotentAndConflict(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	tt := reflect.TypeOf(T1{})

	if err := reg.Register(tt, apis.FilterExported, apis.NewFieldSet("Name")); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Idempotent re-register with an equal set.
	if err := reg.Register(tt, apis.FilterExported, apis.NewFieldSet("Name")); err != nil {
		t.Fatalf("Register idempotent: unexpected error: %v", err)
	}
	// Same normalized (type, filter), different set -> conflict.
	err := reg.Register(reflect.TypeOf(&T1{}), apis.FilterExported, apis.NewFieldSet("Other"))
	if err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
	// A different filter tier is an independent entry, not a conflict.
	if err := reg.Register(tt, apis.FilterAll, apis.NewFieldSet("Other")); err != nil {
		t.Fatalf("Register(other filter): unexpected error: %v", err)
	}
}

func TestRegister_CopiesManifest(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	tt := reflect.TypeOf(T1{})

	manifest := apis.NewFieldSet("Name")
	if err := reg.Register(tt, apis.FilterExported, manifest); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	manifest["Sneaky"] = struct{}{}

	fields, err := reg.Fields(tt, apis.FilterExported)
	if err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}
	if fields.Contains("Sneaky") {
		t.Fatal("caller mutation leaked into the cached manifest")
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	tt := reflect.TypeOf(T1{})

	if err := reg.Register(nil, apis.FilterExported, apis.NewFieldSet()); err != registry.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := reg.Register(tt, apis.Filter(42), apis.NewFieldSet()); err != registry.ErrInvalidFilter {
		t.Fatalf("bad filter: want ErrInvalidFilter, got %v", err)
	}
	if err := reg.Register(tt, apis.FilterExported, nil); err != registry.ErrNilFields {
		t.Fatalf("nil fields: want ErrNilFields, got %v", err)
	}
}

func TestEntriesCountReset(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if _, err := reg.Fields(reflect.TypeOf(T1{}), apis.FilterExported); err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}
	if _, err := reg.Fields(reflect.TypeOf(T1{}), apis.FilterAll); err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}

	if got := reg.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	if snap := reg.Entries(); len(snap) != 2 {
		t.Fatalf("Entries() length = %d, want 2", len(snap))
	}

	reg.Reset()
	if got := reg.Count(); got != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", got)
	}
	if snap := reg.Entries(); len(snap) != 0 {
		t.Fatalf("Entries() after Reset length = %d, want 0", len(snap))
	}
}
