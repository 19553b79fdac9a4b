// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package debuglog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrintf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(EnvVar, path)

	if !Enabled() {
		t.Fatalf("Enabled() = false with %s set", EnvVar)
	}
	Printf("aligned %d tokens", 3)
	Printf("done\n")

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if want := "aligned 3 tokens\ndone\n"; string(got) != want {
		t.Errorf("log file contains %q, want %q", got, want)
	}
}

func TestPrintfDisabled(t *testing.T) {
	t.Setenv(EnvVar, "")
	if Enabled() {
		t.Fatalf("Enabled() = true with %s unset", EnvVar)
	}
	Printf("nothing to see") // must not panic or write anywhere
}

func TestPrintfUnwritablePath(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing", "debug.log"))
	Printf("dropped")
}
