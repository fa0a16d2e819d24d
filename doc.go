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

// Package fgx retrofits a closed, declared field surface onto values whose
// fields would otherwise be accessed ad hoc through a dynamic entry point.
//
// fgx intercepts field reads and writes funneled through explicit
// Get(name)/Set(name, value) calls, checks them against the set of fields
// declared on the value's concrete type, and routes every access to an
// undeclared field through a layered error-reporting pipeline. Declared
// fields stay cost-free: reads return the actual value, writes go straight
// to the struct, and neither is ever recorded or reported.
//
// # Design
//
// The core of fgx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: the enforcement knobs new guards start from (strict mode,
//     raise-on-violation, output mode, visibility filter, pointer unwrap
//     depth).
//
//   - Registry: a process-wide, type-keyed cache of declared-field sets.
//     The declared surface of a type is structurally invariant, so it is
//     discovered once per (type, filter) and shared by reference across
//     every guard of that type. Explicit manifests can be registered to
//     override discovery.
//
//   - Reporter: the violation-reporting chain. The default chain tries,
//     in order:
//     1. The guarded value's own HandleMissingField hook (reads only);
//     when present it fully replaces default reporting.
//     2. Raise: with exceptions enabled, the violation surfaces as a
//     *apis.ViolationError and nothing is echoed or logged.
//     3. Emit: echo the message to the guard's output writer and forward
//     it to the attached Logger capability.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Reporter instances for a given Config (and optional extension
//     data). The Builder is also allowed to reuse/migrate state from
//     previous Registry/Reporter instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// Individual guards, by contrast, are deliberately single-owner: mode
// flags, the invalid-access history, and the logger/observer references
// are per-guard mutable state with no concurrent-access guarantees.
//
// # Guarding a value
//
// A typical adoption looks like:
//
//	type User struct {
//	    Name  string
//	    Email string
//	}
//
//	u := &User{Name: "Ada"}
//	g, err := fgx.Wrap(u)
//	if err != nil { ... }
//
//	v, _ := g.Get("Name")  // "Ada", no interception cost beyond the lookup
//	_, _ = g.Get("Age")    // echoes "Prop 'Age' does not exist!!!" and
//	                       // appends "Age" to g.InvalidAccesses()
//
// With exceptions enabled the same access raises instead:
//
//	g.EnableExceptions()
//	_, err = g.Get("Age")  // *apis.ViolationError, nothing echoed or logged
//
// Disabling strict mode restores open-object semantics: undeclared writes
// create dynamic fields on the guard and undeclared reads return them, with
// no recording and no reporting.
//
// Types that prefer inheritance-style adoption can embed model.Strict,
// which carries a pre-wired guard behind Bind(self).
//
// # Capabilities
//
// Two narrow contracts plug into a guard without touching its core logic:
//
//   - apis.Logger ("Log(message)"): a diagnostic sink. The default
//     implementation (package logger) writes tag-prefixed lines to the
//     process error log.
//
//   - apis.Observer: notified synchronously on missing-field reads and on
//     dynamic-field-creation attempts, before default reporting. Observers
//     are advisory only and never alter control flow.
//
// A guarded type may additionally implement apis.MissingFieldHandler; the
// hook is probed at violation time and takes full precedence over default
// reporting, for the read path only.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Wrap(target, opts...) (apis.Guard, error)
//     Fields(v any) (apis.FieldSet, error)
//     FieldsOf(t reflect.Type) (apis.FieldSet, error)
//     Registry() apis.Registry
//     Reporter() apis.Reporter
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetReporter(rep apis.Reporter)
//     UnpinRegistry() / UnpinReporter()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Registry / Reporter as needed),
//     and then atomically publishes that snapshot.
//
//     SetRegistry/SetReporter overwrite the corresponding layer and "pin"
//     it: fgx stops rebuilding that layer automatically until the matching
//     Unpin call. SetAll is the hard-reset API, mainly used by tests to get
//     a clean deterministic state between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     IsRegistryPinned() / IsReporterPinned()
//     // plus Registry().Entries(), etc.
//
// # Scope
//
// fgx is intentionally small. It enforces structural closedness of the
// declared field surface; it does not validate field types or values, does
// not follow nested object graphs, and does not persist configuration
// across instances. One job:
//
//	"Given a value and a field name, decide whether the access is part of
//	 the type's declared surface, and if not, record it and report it."
//
// Everything else (validation, serialization, persistence, etc.) belongs
// to higher layers.
package fgx
