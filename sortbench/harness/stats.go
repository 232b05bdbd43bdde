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
	"time"

	"github.com/samber/lo"
)

// Stats aggregates the timing samples of one algorithm on one distribution.
type Stats struct {
	Count int
	Mean  time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Aggregate computes Stats over samples. Every sample is first truncated to
// whole milliseconds, so Min <= Mean <= Max holds in the reported unit. An
// empty sample set yields the zero Stats.
func Aggregate(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	millis := lo.Map(samples, func(d time.Duration, _ int) time.Duration {
		return d.Truncate(time.Millisecond)
	})
	return Stats{
		Count: len(millis),
		Mean:  lo.Sum(millis) / time.Duration(len(millis)),
		Min:   lo.Min(millis),
		Max:   lo.Max(millis),
	}
}

// AvgMillis returns the mean of the whole-millisecond samples.
func (s Stats) AvgMillis() float64 {
	return float64(s.Mean) / float64(time.Millisecond)
}

// MinMillis returns the minimum in whole milliseconds.
func (s Stats) MinMillis() int64 {
	return s.Min.Milliseconds()
}

// MaxMillis returns the maximum in whole milliseconds.
func (s Stats) MaxMillis() int64 {
	return s.Max.Milliseconds()
}
