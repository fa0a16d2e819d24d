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

package builder

import (
	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/registry"
	"dirpx.dev/fgx/reporter"
	"dirpx.dev/fgx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its entries are copied into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Type, e.Filter, e.Fields)
		}
	}
	return nreg
}

// BuildReporter builds and returns the default violation-reporting chain:
// the target's own MissingFieldHandler hook first, then raise, then echo+log.
func (b *builder) BuildReporter(_ apis.Config, _ apis.Reporter, _ any) apis.Reporter {
	return reporter.New(
		strategy.NewHandlerReporter(),
		strategy.NewRaiseReporter(),
		strategy.NewEmitReporter(),
	)
}
