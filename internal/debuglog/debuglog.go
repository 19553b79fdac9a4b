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

// Package debuglog provides a printf-style logger for diagnosing diffs outside of tests.
//
// Nothing is logged unless the TRANSCRIPTDIFF_LOG_FILE environment variable names a file.
package debuglog

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// EnvVar is the environment variable holding the path of the log file.
const EnvVar = "TRANSCRIPTDIFF_LOG_FILE"

var mu sync.Mutex

// Enabled reports whether log output is written anywhere.
func Enabled() bool {
	return os.Getenv(EnvVar) != ""
}

// Printf appends formatted output followed by a newline to the log file. If the log file isn't
// configured or can't be opened, Printf is a no-op.
func Printf(format string, args ...any) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
