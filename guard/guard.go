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

// Package guard implements the field-access interceptor.
//
// A Guard wraps one value and funnels every field read/write through
// Get/Set. The declared field set of the value's concrete type is resolved
// exactly once at construction (against a shared, type-keyed registry) and
// every subsequent undeclared access in strict mode is classified as a
// violation and routed through the reporting chain.
//
// A Guard is single-owner state: it makes no concurrent-access guarantees
// for its mutable parts (history, toggles, sink references).
package guard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/config"
	"dirpx.dev/fgx/registry"
	"dirpx.dev/fgx/reporter"
	"dirpx.dev/fgx/strategy"
)

var (
	// ErrNilTarget is returned when a nil target is wrapped.
	ErrNilTarget = errors.New("fgx(guard): nil target provided")
	// ErrUnaddressable is returned when a declared-field write cannot be
	// performed because the target was not wrapped as a pointer (or the
	// field is unexported).
	ErrUnaddressable = errors.New("fgx(guard): declared field is not settable; wrap a pointer to the value")
	// ErrIncompatibleValue is returned when a written value cannot be
	// assigned or converted to the declared field's type.
	ErrIncompatibleValue = errors.New("fgx(guard): value is not assignable to declared field")
	// ErrInvalidOutputMode is returned for an unrecognized error output mode.
	// The prior mode is left unchanged.
	ErrInvalidOutputMode = errors.New("fgx(guard): invalid error output mode")
)

// missingFieldMessage is the read-violation message.
func missingFieldMessage(name string) string {
	return fmt.Sprintf("Prop '%s' does not exist!!!", name)
}

// dynamicCreationMessage is the fixed write-violation message.
const dynamicCreationMessage = "creation of dynamic field is disallowed"

// Option is a functional option that configures a Guard during construction.
type Option func(*Guard)

// WithConfig sets the guard's initial configuration. Prefer building cfg
// with config.NewConfig or config.DefaultConfig; for literal configs a
// non-positive MaxUnwrap is normalized to config.DefaultMaxUnwrap during
// construction.
func WithConfig(cfg apis.Config) Option {
	return func(g *Guard) {
		g.cfg = cfg
	}
}

// WithRegistry sets the field registry the guard resolves declared sets from.
func WithRegistry(reg apis.Registry) Option {
	return func(g *Guard) {
		if reg != nil {
			g.reg = reg
		}
	}
}

// WithReporter sets the violation-reporting chain.
func WithReporter(rep apis.Reporter) Option {
	return func(g *Guard) {
		if rep != nil {
			g.rep = rep
		}
	}
}

// WithLogger attaches a diagnostic sink.
func WithLogger(l apis.Logger) Option {
	return func(g *Guard) {
		g.logger = l
	}
}

// WithObserver attaches a monitoring sink.
func WithObserver(o apis.Observer) Option {
	return func(g *Guard) {
		g.observer = o
	}
}

// WithOutput redirects echo output (default: process stdout).
func WithOutput(w io.Writer) Option {
	return func(g *Guard) {
		if w != nil {
			g.out = w
		}
	}
}

// Guard is the central interceptor. It owns the mode flags, the resolved
// declared-field set, the invalid-access history, and the references to the
// logger/observer capabilities (shared, not owned).
type Guard struct {
	// target is the guarded value as provided by the caller.
	target any
	// sv is the underlying struct value; addressable when target is a pointer.
	sv reflect.Value
	// cfg holds the mode flags.
	cfg apis.Config
	// reg is the shared field registry.
	reg apis.Registry
	// rep is the violation-reporting chain.
	rep apis.Reporter
	// fields is the declared-field set in force; resolved once per filter.
	fields apis.FieldSet
	// dynamic backs open-object semantics while strict mode is off.
	dynamic map[string]any
	// history is the append-only log of invalid reads, in order.
	history []string
	// logger is the optional diagnostic sink (shared, not owned).
	logger apis.Logger
	// observer is the optional monitoring sink (shared, not owned).
	observer apis.Observer
	// out is the echo destination.
	out io.Writer
}

// Ensure Guard implements apis.Guard.
var _ apis.Guard = (*Guard)(nil)

// New wraps target in a Guard. Field discovery runs exactly once here;
// wrap a pointer if declared fields must be writable through the guard.
func New(target any, opts ...Option) (*Guard, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	g := &Guard{
		target:  target,
		cfg:     config.DefaultConfig(),
		out:     os.Stdout,
		dynamic: make(map[string]any),
	}
	for _, opt := range opts {
		opt(g)
	}
	// Hand-built configs may leave MaxUnwrap zero; normalize like registry.New
	// so the unwrap loop below and the registry agree on the declared surface.
	if g.cfg.MaxUnwrap <= 0 {
		g.cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	if g.reg == nil {
		g.reg = registry.New(g.cfg)
	}
	if g.rep == nil {
		g.rep = DefaultReporter()
	}

	// Locate the underlying struct value for direct field access.
	rv := reflect.ValueOf(target)
	for i := 0; rv.Kind() == reflect.Ptr && !rv.IsNil() && i < g.cfg.MaxUnwrap; i++ {
		rv = rv.Elem()
	}
	g.sv = rv

	fields, err := g.reg.Fields(reflect.TypeOf(target), g.cfg.Filter)
	if err != nil {
		return nil, err
	}
	g.fields = fields
	return g, nil
}

// DefaultReporter returns the default reporting chain:
// handler hook -> raise -> emit.
func DefaultReporter() apis.Reporter {
	return reporter.New(
		strategy.NewHandlerReporter(),
		strategy.NewRaiseReporter(),
		strategy.NewEmitReporter(),
	)
}

// Get intercepts a field read.
//
// Strict mode off is a pass-through: declared fields read from the struct,
// anything else from the dynamic map, with no recording or reporting.
// In strict mode a declared read returns the actual value; an undeclared
// read is a violation: it is appended to the history, the observer is
// notified, and the reporting chain runs. The returned value for a
// violation is always nil; the error is non-nil only in raise mode.
func (g *Guard) Get(name string) (any, error) {
	if !g.cfg.Strict {
		if g.fields.Contains(name) {
			return g.fieldValue(name), nil
		}
		return g.dynamic[name], nil
	}

	if g.fields.Contains(name) {
		return g.fieldValue(name), nil
	}

	// Violation: record first, then observer, then the reporting chain.
	g.history = append(g.history, name)
	if g.observer != nil {
		g.observer.OnMissingField(name)
	}
	v := apis.Violation{
		Kind:    apis.MissingField,
		Field:   name,
		Message: missingFieldMessage(name),
	}
	_, err := g.rep.Report(v, g.env())
	return nil, err
}

// Set intercepts a field write.
//
// Writes to declared fields bypass guard logic irrespective of strict mode:
// they are performed directly, never recorded and never observed. With
// strict mode off, undeclared writes create ordinary dynamic fields. With
// strict mode on, an undeclared write is a violation: the observer is
// notified and the reporting chain runs with a fixed message; the value is
// discarded. Write violations do not enter the invalid-access history and
// do not consult the MissingFieldHandler hook.
func (g *Guard) Set(name string, value any) error {
	if g.fields.Contains(name) {
		return g.assign(name, value)
	}

	if !g.cfg.Strict {
		g.dynamic[name] = value
		return nil
	}

	if g.observer != nil {
		g.observer.OnDynamicFieldCreationAttempt(name, value)
	}
	v := apis.Violation{
		Kind:    apis.DynamicCreation,
		Field:   name,
		Value:   value,
		Message: dynamicCreationMessage,
	}
	_, err := g.rep.Report(v, g.env())
	return err
}

// EnableStrictMode turns interception on for subsequent accesses.
func (g *Guard) EnableStrictMode() { g.cfg.Strict = true }

// DisableStrictMode bypasses interception for subsequent accesses.
func (g *Guard) DisableStrictMode() { g.cfg.Strict = false }

// EnableExceptions makes subsequent violations surface as *apis.ViolationError.
func (g *Guard) EnableExceptions() { g.cfg.RaiseOnViolation = true }

// DisableExceptions routes subsequent violations to echo/log instead.
func (g *Guard) DisableExceptions() { g.cfg.RaiseOnViolation = false }

// SetLogger attaches a diagnostic sink. Nil detaches.
func (g *Guard) SetLogger(l apis.Logger) { g.logger = l }

// SetPropertyAccessObserver attaches a monitoring sink. Nil detaches.
func (g *Guard) SetPropertyAccessObserver(o apis.Observer) { g.observer = o }

// SetOutput redirects echo output. Nil is ignored.
func (g *Guard) SetOutput(w io.Writer) {
	if w != nil {
		g.out = w
	}
}

// SetFieldFilter re-resolves the declared set under f against the shared
// type-level cache. On error the prior filter and set stay in force.
func (g *Guard) SetFieldFilter(f apis.Filter) error {
	fields, err := g.reg.Fields(reflect.TypeOf(g.target), f)
	if err != nil {
		return err
	}
	g.cfg.Filter = f
	g.fields = fields
	return nil
}

// SetErrorOutputMode validates and stores m.
// An unknown mode fails and leaves the prior mode unchanged.
func (g *Guard) SetErrorOutputMode(m apis.OutputMode) error {
	if !m.Valid() {
		return ErrInvalidOutputMode
	}
	g.cfg.OutputMode = m
	return nil
}

// InvalidAccesses returns a copy of the invalid-read history, in order.
func (g *Guard) InvalidAccesses() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}

// Fields returns the declared-field set currently in force.
func (g *Guard) Fields() apis.FieldSet { return g.fields }

// env snapshots the per-guard state the reporting chain may consult.
func (g *Guard) env() apis.ReportEnv {
	return apis.ReportEnv{
		Target: g.target,
		Cfg:    g.cfg,
		Out:    g.out,
		Logger: g.logger,
	}
}

// fieldValue reads a declared field from the underlying struct.
// Unexported declared fields are not readable through reflection; their
// declared-ness still suppresses violations, but the value comes back nil.
func (g *Guard) fieldValue(name string) any {
	if !g.sv.IsValid() || g.sv.Kind() != reflect.Struct {
		return nil
	}
	f := g.sv.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return nil
	}
	return f.Interface()
}

// assign writes a declared field directly, outside all guard logic.
func (g *Guard) assign(name string, value any) error {
	if !g.sv.IsValid() || g.sv.Kind() != reflect.Struct {
		return ErrUnaddressable
	}
	f := g.sv.FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return ErrUnaddressable
	}
	if value == nil {
		f.Set(reflect.Zero(f.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(f.Type()):
		f.Set(rv)
	case rv.Type().ConvertibleTo(f.Type()):
		f.Set(rv.Convert(f.Type()))
	default:
		return ErrIncompatibleValue
	}
	return nil
}
