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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/config"
	uref "dirpx.dev/fgx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("fgx(registry): nil reflect.Type provided")
	// ErrInvalidFilter is returned when an unknown visibility filter is provided.
	ErrInvalidFilter = errors.New("fgx(registry): invalid field filter")
	// ErrNilFields is returned when a nil field set is registered.
	ErrNilFields = errors.New("fgx(registry): nil field set provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a (type, filter) pair with a different field set.
	ErrConflictingRegistration = errors.New("fgx(registry): conflicting manifest registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here (the guard knobs are irrelevant to discovery).
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// key identifies one cached field set. The declared surface of a type varies
// with the visibility filter, so the filter is part of the cache key.
type key struct {
	t reflect.Type
	f apis.Filter
}

// registry is a Registry implementation backed by sync.Map.
// Discovery results and explicit manifests share the same cache.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps key to apis.FieldSet.
	m sync.Map
	// count tracks the number of cached entries.
	count int
}

// Fields returns the declared-field set for the normalized form of t under f.
// The set is computed at most once per (type, filter) and shared by reference
// across all callers; it must be treated as read-only.
func (r *registry) Fields(t reflect.Type, f apis.Filter) (apis.FieldSet, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if !f.Valid() {
		return nil, ErrInvalidFilter
	}

	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, err
	}

	k := key{t: nt, f: f}
	if v, ok := r.m.Load(k); ok {
		return v.(apis.FieldSet), nil
	}

	fields := discover(nt, f)

	// Guard the counter with a mutex; re-check under lock in case another
	// goroutine stored meanwhile.
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.m.Load(k); ok {
		return v.(apis.FieldSet), nil
	}
	r.m.Store(k, fields)
	r.count++
	return fields, nil
}

// Register installs an explicit declaration manifest for the normalized form
// of t under f, overriding discovery. It is idempotent for an equal set.
func (r *registry) Register(t reflect.Type, f apis.Filter, fields apis.FieldSet) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if !f.Valid() {
		return ErrInvalidFilter
	}
	if fields == nil {
		return ErrNilFields
	}

	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	k := key{t: nt, f: f}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(k); ok {
		if old.(apis.FieldSet).Equal(fields) {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(k); ok {
		if old.(apis.FieldSet).Equal(fields) {
			return nil
		}
		return ErrConflictingRegistration
	}

	// Store a copy so later caller mutations cannot leak into the cache.
	cp := make(apis.FieldSet, len(fields))
	for n := range fields {
		cp[n] = struct{}{}
	}
	r.m.Store(k, cp)
	r.count++
	return nil
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(k, v any) bool {
		ck := k.(key)
		entries = append(entries, apis.Entry{
			Type:   ck.t,
			Filter: ck.f,
			Fields: v.(apis.FieldSet),
		})
		return true
	})
	return entries
}

// Count returns the number of cached entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all cached and registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

// discover computes the declared-field surface of t under f.
// Non-struct types yield an empty set: nothing is declared, so every strict
// read is a violation.
func discover(t reflect.Type, f apis.Filter) apis.FieldSet {
	if t.Kind() != reflect.Struct {
		return apis.FieldSet{}
	}
	fields := make(apis.FieldSet, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		switch f {
		case apis.FilterExported:
			if !sf.IsExported() {
				continue
			}
		case apis.FilterUnexported:
			if sf.IsExported() {
				continue
			}
		case apis.FilterAll:
			// keep everything
		}
		fields[sf.Name] = struct{}{}
	}
	return fields
}
