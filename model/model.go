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

// Package model provides an embeddable base pre-wired with a field-access
// guard, for inheritance-style adoption:
//
//	type User struct {
//	    model.Strict
//	    Name  string
//	    Email string
//	}
//
//	u := &User{}
//	if err := u.Bind(u); err != nil { ... }
//	v, _ := u.Get("Name")
//
// The alternative is mixing a *guard.Guard field into the type directly.
package model

import (
	"errors"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/guard"
)

// ErrUnbound is returned when Get/Set are called before Bind.
var ErrUnbound = errors.New("fgx(model): guard not bound; call Bind first")

// Strict is the embeddable base. Its zero value is unbound; Bind wires a
// guard to the outer value.
type Strict struct {
	g apis.Guard
}

// Bind creates the guard for self, the outer value embedding Strict.
// Pass a pointer so declared fields stay writable through the guard.
// Binding again replaces the guard (and its recorded history).
func (m *Strict) Bind(self any, opts ...guard.Option) error {
	g, err := guard.New(self, opts...)
	if err != nil {
		return err
	}
	m.g = g
	return nil
}

// Guard exposes the bound guard for mode toggles; nil before Bind.
func (m *Strict) Guard() apis.Guard { return m.g }

// Get delegates the intercepted read to the bound guard.
func (m *Strict) Get(name string) (any, error) {
	if m.g == nil {
		return nil, ErrUnbound
	}
	return m.g.Get(name)
}

// Set delegates the intercepted write to the bound guard.
func (m *Strict) Set(name string, value any) error {
	if m.g == nil {
		return ErrUnbound
	}
	return m.g.Set(name, value)
}
