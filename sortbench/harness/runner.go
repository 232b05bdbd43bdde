// Copyright 2025 go-sortbench Authors
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

package harness

import (
	"slices"
	"time"

	"github.com/ajroetker/go-sortbench/sortbench/sort"
)

// Runner times a single sort call.
type Runner struct {
	now func() time.Time
}

// NewRunner returns a Runner reading the monotonic wall clock.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// Time sorts a clone of src with fn and returns the elapsed time. src is
// never modified.
func (r *Runner) Time(fn sort.Func, src []int) time.Duration {
	data := slices.Clone(src)
	start := r.now()
	fn(data)
	end := r.now()
	return end.Sub(start)
}
