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

package fgx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/builder"
	"dirpx.dev/fgx/config"
	"dirpx.dev/fgx/guard"
)

// init initializes the global fgx state.
func init() {
	// Initialize state with default cfg, reg, and rep.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.rep = b.BuildReporter(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("fgx: builder returned nil registry")
	// ErrNilReporter is returned when a builder returns a nil reporter.
	ErrNilReporter = errors.New("fgx: builder returned nil reporter")
)

// Wrap builds a guard for target using the global registry, reporter and
// configuration, so all guards of the same type share one declared-field
// set. Options are applied after the snapshot defaults and may override
// any of them. This is a convenience wrapper around guard.New.
func Wrap(target any, opts ...guard.Option) (apis.Guard, error) {
	s := st.Load()
	base := []guard.Option{
		guard.WithConfig(s.cfg),
		guard.WithRegistry(s.reg),
		guard.WithReporter(s.rep),
	}
	return guard.New(target, append(base, opts...)...)
}

// Fields resolves the declared-field set for the concrete type of v using
// the global reg and configuration.
// This is a convenience wrapper around the global reg.
func Fields(v any) (apis.FieldSet, error) {
	s := st.Load()
	return s.reg.Fields(reflect.TypeOf(v), s.cfg.Filter)
}

// FieldsOf resolves the declared-field set for the reflect.Type t using
// the global reg and configuration.
// This is a convenience wrapper around the global reg.
func FieldsOf(t reflect.Type) (apis.FieldSet, error) {
	s := st.Load()
	return s.reg.Fields(t, s.cfg.Filter)
}

// RegisterManifest adds an explicit declaration manifest to the global reg.
// It uses the global fgx configuration's filter.
// This is a convenience wrapper around the global reg.
func RegisterManifest(t reflect.Type, fields apis.FieldSet) error {
	s := st.Load()
	return s.reg.Register(t, s.cfg.Filter, fields)
}

// SetAll explicitly sets all global fgx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, rep apis.Reporter, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Reporter
	nrep := rep
	nprep := false
	if nrep == nil {
		nrep = nbld.BuildReporter(ncfg, old.rep, next)
	} else {
		nprep = true
	}

	// Ensure non-nil reg and rep.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nrep == nil {
		panic(ErrNilReporter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			rep:  nrep,
			bld:  nbld,
			preg: npreg,
			prep: nprep,
		},
	)
}

// Config returns the global fgx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global fgx configuration to cfg.
// It rebuilds the global reg and rep using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and rep based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nrep := old.rep
	if !old.prep {
		nrep = b.BuildReporter(cfg, old.rep, old.ext)
	}

	// Ensure non-nil reg and rep.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nrep == nil {
		panic(ErrNilReporter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			rep:  nrep,
			bld:  b,
			preg: old.preg,
			prep: old.prep,
		},
	)
}

// Registry returns the global fgx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global fgx reg to reg and pins it.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			rep:  old.rep,
			bld:  old.bld,
			preg: true,
			prep: old.prep,
		},
	)
}

// Reporter returns the global fgx rep.
func Reporter() apis.Reporter {
	return st.Load().rep
}

// SetReporter sets the global fgx rep to rep and pins it.
// This is a convenience wrapper around the global state.
func SetReporter(rep apis.Reporter) {
	if rep == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			rep:  rep,
			bld:  old.bld,
			preg: old.preg,
			prep: true,
		},
	)
}

// Builder returns the global fgx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global fgx bld to b.
// It rebuilds the non-pinned layers using the new builder.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and rep based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nrep := old.rep
	if !old.prep {
		nrep = b.BuildReporter(old.cfg, old.rep, old.ext)
	}

	// Ensure non-nil reg and rep.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nrep == nil {
		panic(ErrNilReporter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			rep:  nrep,
			bld:  b,
			preg: old.preg,
			prep: old.prep,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and rep based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nrep := old.rep
	if !old.prep {
		nrep = b.BuildReporter(old.cfg, old.rep, ext)
	}

	// Ensure non-nil reg and rep.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nrep == nil {
		panic(ErrNilReporter)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			rep:  nrep,
			bld:  b,
			preg: old.preg,
			prep: old.prep,
		},
	)
}

// ExtAs returns the global fgx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global fgx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global fgx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			rep:  old.rep,
			bld:  old.bld,
			preg: true,
			prep: old.prep,
		},
	)
}

// UnpinRegistry makes the global fgx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			rep:  old.rep,
			bld:  old.bld,
			preg: false,
			prep: old.prep,
		},
	)
}

// IsReporterPinned returns whether the global fgx rep is pinned (immutable).
func IsReporterPinned() bool {
	return st.Load().prep
}

// PinReporter makes the global fgx rep immutable.
func PinReporter() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			rep:  old.rep,
			bld:  old.bld,
			preg: old.preg,
			prep: true,
		},
	)
}

// UnpinReporter makes the global fgx rep mutable again.
func UnpinReporter() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			rep:  old.rep,
			bld:  old.bld,
			preg: old.preg,
			prep: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global fgx state.
var st atomic.Pointer[state]

// state is the global fgx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global fgx configuration.
	cfg apis.Config
	// ext is the global fgx extension configuration.
	ext any
	// reg is the global fgx reg.
	reg apis.Registry
	// rep is the global fgx rep.
	rep apis.Reporter
	// bld is the global fgx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// prep indicates whether the rep is pinned (immutable).
	prep bool
}
