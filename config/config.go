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

package config

import (
	"dirpx.dev/fgx/apis"
)

const (
	// DefaultStrict represents the default for Strict.
	// Guards enforce the declared field set unless explicitly relaxed.
	DefaultStrict = true
	// DefaultRaiseOnViolation represents the default for RaiseOnViolation.
	// Violations are echoed/logged rather than raised.
	DefaultRaiseOnViolation = false
	// DefaultOutputMode represents the default for OutputMode.
	DefaultOutputMode = apis.OutputBoth
	// DefaultFilter represents the default for Filter.
	// Only exported fields count as declared.
	DefaultFilter = apis.FilterExported
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Strict:           DefaultStrict,
		RaiseOnViolation: DefaultRaiseOnViolation,
		OutputMode:       DefaultOutputMode,
		Filter:           DefaultFilter,
		MaxUnwrap:        DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrict sets the Strict option.
func WithStrict(strict bool) Option {
	return func(c *apis.Config) {
		c.Strict = strict
	}
}

// WithRaiseOnViolation sets the RaiseOnViolation option.
func WithRaiseOnViolation(raise bool) Option {
	return func(c *apis.Config) {
		c.RaiseOnViolation = raise
	}
}

// WithOutputMode sets the OutputMode option.
// An invalid mode resets to the default.
func WithOutputMode(m apis.OutputMode) Option {
	return func(c *apis.Config) {
		if !m.Valid() {
			c.OutputMode = DefaultOutputMode
			return
		}
		c.OutputMode = m
	}
}

// WithFieldFilter sets the Filter option.
// An invalid filter resets to the default.
func WithFieldFilter(f apis.Filter) Option {
	return func(c *apis.Config) {
		if !f.Valid() {
			c.Filter = DefaultFilter
			return
		}
		c.Filter = f
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
