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

func TestOSEM_RoundTrip(t *testing.T) {
	ctx := NewContext()
	s := ObjectSettings{
		DesiredTransmitterID:  42,
		OriginLatitudeDeg:     57.78145,
		OriginLongitudeDeg:    16.46547,
		OriginAltitudeM:       153.7,
		IsOriginPositionValid: true,
		GPSQmsOfWeek:          1200000,
		GPSWeek:               2200,
		IsTimeValid:           true,
		OriginRotationRad:     0.1,
		CoordinateSystem:      1,
		Deviation: DeviationLimits{
			PositionM: 0.5,
			LateralM:  0.3,
			YawRad:    0.05,
		},
		MinPositioningAccuracyM:   0.1,
		AccuracyRequired:          true,
		MaxWayDeviationM:          1.5,
		IsMaxWayDeviationValid:    true,
		MaxLateralDeviationM:      0.8,
		IsMaxLateralDeviationValid: true,
	}

	buf := make([]byte, 256)
	n, err := EncodeOSEM(ctx, HeaderInput{}, s, buf)
	require.NoError(t, err)

	got, n2, err := DecodeOSEM(ctx, buf[:n])
	require.NoError(t, err)
	require.Equal(t, n, n2)

	require.Equal(t, s.DesiredTransmitterID, got.DesiredTransmitterID)
	require.InDelta(t, s.OriginLatitudeDeg, got.OriginLatitudeDeg, 1e-6)
	require.InDelta(t, s.OriginLongitudeDeg, got.OriginLongitudeDeg, 1e-6)
	require.InDelta(t, s.OriginAltitudeM, got.OriginAltitudeM, 0.01)
	require.True(t, got.IsOriginPositionValid)
	require.Equal(t, s.GPSQmsOfWeek, got.GPSQmsOfWeek)
	require.Equal(t, s.GPSWeek, got.GPSWeek)
	require.True(t, got.IsTimeValid)
	require.True(t, got.IsMaxWayDeviationValid)
	require.True(t, got.IsMaxLateralDeviationValid)
	require.InDelta(t, s.MaxWayDeviationM, got.MaxWayDeviationM, 0.001)
}

func TestOSEM_InvalidOriginIsNotValidOnDecode(t *testing.T) {
	ctx := NewContext()
	s := ObjectSettings{
		IsOriginPositionValid: false,
		IsTimeValid:           false,
	}
	buf := make([]byte, 256)
	n, err := EncodeOSEM(ctx, HeaderInput{}, s, buf)
	require.NoError(t, err)

	got, _, err := DecodeOSEM(ctx, buf[:n])
	require.NoError(t, err)
	require.False(t, got.IsOriginPositionValid)
	require.False(t, got.IsTimeValid)
}
