/*
Copyright (c) Facebook, Inc. and its affiliates.

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

package protocol

import "github.com/eclesh/welford"

// TrajStats is a read-only analysis companion to the streaming
// decoder: online mean/variance of the relative-time deltas between
// consecutive points (jitter) and of curvature, computed without
// retaining the points themselves.
type TrajStats struct {
	interval *welford.Stats
	curvature *welford.Stats
	lastTimeS float64
	haveLast  bool
	count     int
}

// NewTrajStats returns an empty TrajStats accumulator.
func NewTrajStats() *TrajStats {
	return &TrajStats{interval: welford.New(), curvature: welford.New()}
}

// Add folds one decoded trajectory point into the running statistics.
// Points must be added in the order they appear in the trajectory.
func (s *TrajStats) Add(p TrajectoryPoint) {
	if s.haveLast {
		s.interval.Add(p.RelativeTimeS - s.lastTimeS)
	}
	s.lastTimeS = p.RelativeTimeS
	s.haveLast = true
	s.curvature.Add(float64(p.Curvature))
	s.count++
}

// Count returns the number of points folded in so far.
func (s *TrajStats) Count() int {
	return s.count
}

// IntervalMeanS is the mean relative-time delta between consecutive
// points, in seconds.
func (s *TrajStats) IntervalMeanS() float64 {
	return s.interval.Mean()
}

// IntervalStddevS is the standard deviation of the relative-time delta
// between consecutive points - a jitter measure.
func (s *TrajStats) IntervalStddevS() float64 {
	return s.interval.Stddev()
}

// CurvatureMean is the mean curvature across every point added so far.
func (s *TrajStats) CurvatureMean() float64 {
	return s.curvature.Mean()
}

// CurvatureStddev is the standard deviation of curvature across every
// point added so far.
func (s *TrajStats) CurvatureStddev() float64 {
	return s.curvature.Stddev()
}
