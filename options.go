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

package transcriptdiff

import "znkr.io/transcriptdiff/internal/config"

// Option configures the behavior of functions in this module.
type Option = config.Option

// MaxCells limits the size of the table used to align raw and cleaned tokens in [Compute]. The
// table has (N+1)·(M+1) cells for N raw and M cleaned tokens. Larger inputs are aligned with the
// Myers algorithm, which needs linear space but doesn't guarantee the same alignment for
// ambiguous inputs. The default is 1<<20; n <= 0 removes the limit.
func MaxCells(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxCells = n
		return config.MaxCells
	}
}
