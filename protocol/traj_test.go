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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrajEncoder_RoundTrip(t *testing.T) {
	ctx := NewContext()
	points := []TrajectoryPoint{
		{
			RelativeTimeS: 0,
			Position:      CartesianPosition{XM: 0, YM: 0, ZM: 0, IsPositionValid: true, HeadingRad: 0, IsHeadingValid: true},
			Speed:         Speed{LongitudinalMS: 5, IsLongitudinalValid: true, LateralMS: 0, IsLateralValid: true},
			Acceleration:  Acceleration{LongitudinalMS2: 0, IsLongitudinalValid: true, LateralMS2: 0, IsLateralValid: true},
			Curvature:     0,
		},
		{
			RelativeTimeS: 0.5,
			Position:      CartesianPosition{XM: 2.5, YM: 0.1, ZM: 0, IsPositionValid: true, HeadingRad: 0.01, IsHeadingValid: true},
			Speed:         Speed{LongitudinalMS: 5.2, IsLongitudinalValid: true, LateralMS: 0.1, IsLateralValid: true},
			Acceleration:  Acceleration{LongitudinalMS2: 0.4, IsLongitudinalValid: true, LateralMS2: 0, IsLateralValid: true},
			Curvature:     0.003,
		},
	}

	header := TrajectoryHeader{TrajectoryID: 7, Name: "lane-change", Version: 1, NumberOfPoints: uint32(len(points))}

	enc := NewTrajEncoder(ctx)
	frame := make([]byte, HeaderSize+trajHeaderFieldsSize+len(points)*trajPointSize+FooterSize)

	hn, err := enc.EncodeHeader(HeaderInput{}, header, frame)
	require.NoError(t, err)

	off := hn
	for _, p := range points {
		pn, err := enc.EncodePoint(p, frame[off:])
		require.NoError(t, err)
		off += pn
	}

	fn, err := enc.EncodeFooter(frame[off:])
	require.NoError(t, err)
	off += fn
	require.Equal(t, len(frame), off)

	require.NoError(t, VerifyTrajCRC(ctx, frame))

	gotHeader, hoff, err := DecodeTrajHeader(ctx, frame)
	require.NoError(t, err)
	require.Equal(t, header.TrajectoryID, gotHeader.TrajectoryID)
	require.Equal(t, header.Name, gotHeader.Name)
	require.Equal(t, header.Version, gotHeader.Version)
	require.Equal(t, header.NumberOfPoints, gotHeader.NumberOfPoints)

	poff := hoff
	for i, want := range points {
		got, n, err := DecodeTrajPoint(frame[poff:])
		require.NoError(t, err)
		require.InDelta(t, want.RelativeTimeS, got.RelativeTimeS, 1e-3)
		require.InDelta(t, want.Position.XM, got.Position.XM, 1e-3)
		require.InDelta(t, want.Speed.LongitudinalMS, got.Speed.LongitudinalMS, 1e-2)
		require.InDelta(t, float64(want.Curvature), float64(got.Curvature), 1e-6)
		poff += n
		_ = i
	}
}

func TestTrajEncoder_PhaseOrderingEnforced(t *testing.T) {
	ctx := NewContext()
	enc := NewTrajEncoder(ctx)
	buf := make([]byte, trajPointSize)
	_, err := enc.EncodePoint(TrajectoryPoint{Position: CartesianPosition{IsPositionValid: true}, Speed: Speed{IsLongitudinalValid: true}}, buf)
	require.Equal(t, ErrInvalid, KindOf(err))

	_, err = enc.EncodeFooter(buf)
	require.Equal(t, ErrInvalid, KindOf(err))
}

func TestTrajEncoder_PointRequiresPositionAndSpeed(t *testing.T) {
	ctx := NewContext()
	enc := NewTrajEncoder(ctx)
	header := TrajectoryHeader{TrajectoryID: 1, Name: "x", NumberOfPoints: 1}
	frame := make([]byte, HeaderSize+trajHeaderFieldsSize+trajPointSize+FooterSize)
	_, err := enc.EncodeHeader(HeaderInput{}, header, frame)
	require.NoError(t, err)

	_, err = enc.EncodePoint(TrajectoryPoint{}, frame[HeaderSize+trajHeaderFieldsSize:])
	require.Equal(t, ErrInvalid, KindOf(err))
}
