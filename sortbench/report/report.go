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

// Package report formats benchmark aggregates as human-readable text.
//
// Output per algorithm:
//
//	BUBBLE SORT (n=7000, 10 runs)
//	----------------------------------------
//	Random:          | Avg:  61.30 ms | Min:  59 ms | Max:  66 ms
//	Partially Sorted: | Avg:  48.10 ms | Min:  47 ms | Max:  50 ms
//	Reversed:        | Avg:  74.00 ms | Min:  73 ms | Max:  76 ms
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-sortbench/sortbench/harness"
)

// ruleWidth is the number of dashes under each section header.
const ruleWidth = 40

// Reporter writes sections to an io.Writer. It is not safe for concurrent use.
type Reporter struct {
	w     io.Writer
	upper cases.Caser
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w, upper: cases.Upper(language.Und)}
}

// Header writes the section header for an algorithm, preceded by a blank line.
func (r *Reporter) Header(name string, size, runs int) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n%s (n=%d, %d runs)\n", r.upper.String(name), size, runs)
	buf.WriteString(strings.Repeat("-", ruleWidth))
	buf.WriteByte('\n')
	_, err := r.w.Write(buf.Bytes())
	return err
}

// Line writes the aggregate for one distribution.
func (r *Reporter) Line(label string, stats harness.Stats) error {
	_, err := fmt.Fprintf(r.w, "%-16s | Avg: %6.2f ms | Min: %3d ms | Max: %3d ms\n",
		label+":", stats.AvgMillis(), stats.MinMillis(), stats.MaxMillis())
	return err
}

var _ harness.Reporter = (*Reporter)(nil)
