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

package guard

import (
	"errors"
	"testing"

	"dirpx.dev/fgx/apis"
	"dirpx.dev/fgx/config"
)

func TestSetErrorOutputMode_FailureRetainsPriorMode(t *testing.T) {
	type target struct {
		Name string
	}
	g, err := New(&target{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := g.SetErrorOutputMode(apis.OutputLog); err != nil {
		t.Fatalf("SetErrorOutputMode(OutputLog): %v", err)
	}
	if err := g.SetErrorOutputMode(apis.OutputMode(42)); !errors.Is(err, ErrInvalidOutputMode) {
		t.Fatalf("SetErrorOutputMode(42) error = %v, want ErrInvalidOutputMode", err)
	}
	if g.cfg.OutputMode != apis.OutputLog {
		t.Fatalf("OutputMode = %v after failed set, want OutputLog", g.cfg.OutputMode)
	}
}

func TestNew_NormalizesZeroMaxUnwrap(t *testing.T) {
	type target struct {
		Name string
	}
	g, err := New(&target{}, WithConfig(apis.Config{Strict: true}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.cfg.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", g.cfg.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}
