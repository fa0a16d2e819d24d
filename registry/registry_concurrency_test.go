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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/config"
	"dirpx.dev/fgx/registry"
)

type C1 struct{ A, B string }
type C2 struct{ X int }
type C3 struct{ Y, Z float64 }

// TestFields_ConcurrentDiscovery_NoRace verifies that concurrent discovery
// over a mixed set of types and filters is race-free and that each
// (type, filter) pair is cached exactly once.
func TestFields_ConcurrentDiscovery_NoRace(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	types := []reflect.Type{
		reflect.TypeOf(C1{}), reflect.TypeOf(&C1{}),
		reflect.TypeOf(C2{}), reflect.TypeOf(&C2{}),
		reflect.TypeOf(C3{}), reflect.TypeOf(&C3{}),
	}
	filters := []apis.Filter{apis.FilterExported, apis.FilterAll}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				tt := types[(i+id)%len(types)]
				f := filters[(i+id)%len(filters)]
				fields, err := reg.Fields(tt, f)
				if err != nil {
					t.Errorf("Fields(%v,%v): %v", tt, f, err)
					return
				}
				if fields == nil {
					t.Errorf("Fields(%v,%v): nil set", tt, f)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	// 3 normalized types x 2 filters.
	if got := reg.Count(); got != 6 {
		t.Fatalf("Count() = %d, want 6", got)
	}
}

// TestRegister_ConcurrentIdempotent verifies that concurrent registration of
// the same manifest never conflicts with itself and results in one entry.
func TestRegister_ConcurrentIdempotent(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	tt := reflect.TypeOf(C1{})
	manifest := apis.NewFieldSet("A", "B")

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if err := reg.Register(tt, apis.FilterExported, manifest); err != nil {
					t.Errorf("Register: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := reg.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
}
