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

func TestRDCA_RoundTrip_AngleAndMeterPerSecond(t *testing.T) {
	ctx := NewContext()
	r := RequestControlAction{
		IntendedReceiver: 5,
		GPSQmsOfWeek:     300000,
		IsTimeValid:      true,
		Steering:         SteeringManoeuvre{Unit: SteeringUnitAngle, Valid: true, AngleRad: 0.2},
		Speed:            SpeedManoeuvre{Unit: SpeedUnitMeterPerSecond, Valid: true, MetersPerSecond: 3.5},
	}
	buf := make([]byte, 128)
	n, err := EncodeRDCA(ctx, HeaderInput{}, r, buf)
	require.NoError(t, err)

	got, n2, err := DecodeRDCA(ctx, buf[:n])
	require.NoError(t, err)
	require.Equal(t, n, n2)
	require.Equal(t, r.IntendedReceiver, got.IntendedReceiver)
	require.Equal(t, r.GPSQmsOfWeek, got.GPSQmsOfWeek)
	require.True(t, got.IsTimeValid)
	require.Equal(t, SteeringUnitAngle, got.Steering.Unit)
	require.InDelta(t, r.Steering.AngleRad, got.Steering.AngleRad, 1e-3)
	require.Equal(t, SpeedUnitMeterPerSecond, got.Speed.Unit)
	require.InDelta(t, r.Speed.MetersPerSecond, got.Speed.MetersPerSecond, 1e-2)
}

func TestRDCA_OmitsInvalidManoeuvres(t *testing.T) {
	ctx := NewContext()
	r := RequestControlAction{IntendedReceiver: 1, IsTimeValid: false}
	buf := make([]byte, 64)
	n, err := EncodeRDCA(ctx, HeaderInput{}, r, buf)
	require.NoError(t, err)

	got, _, err := DecodeRDCA(ctx, buf[:n])
	require.NoError(t, err)
	require.False(t, got.IsTimeValid)
	require.False(t, got.Steering.Valid)
	require.False(t, got.Speed.Valid)
}

func TestPODI_RoundTrip(t *testing.T) {
	ctx := NewContext()
	p := PeerObjectInjection{
		ForeignTransmitterID: 11,
		GPSQmsOfWeek:         400000,
		State:                ObjectStateRunning,
		Position: CartesianPosition{
			XM: 10, YM: -5, ZM: 0, HeadingRad: 1.2,
			IsPositionValid: true, IsHeadingValid: true,
		},
		PitchRad:     0.02,
		IsPitchValid: true,
		RollRad:      0.01,
		IsRollValid:  true,
		Speed: Speed{
			LongitudinalMS: 4, IsLongitudinalValid: true,
			LateralMS: 0.5, IsLateralValid: true,
		},
	}
	buf := make([]byte, 128)
	n, err := EncodePODI(ctx, HeaderInput{}, p, buf)
	require.NoError(t, err)

	got, n2, err := DecodePODI(ctx, buf[:n])
	require.NoError(t, err)
	require.Equal(t, n, n2)
	require.Equal(t, p.ForeignTransmitterID, got.ForeignTransmitterID)
	require.Equal(t, p.GPSQmsOfWeek, got.GPSQmsOfWeek)
	require.Equal(t, p.State, got.State)
	require.InDelta(t, p.Position.XM, got.Position.XM, 1e-3)
	require.InDelta(t, p.PitchRad, got.PitchRad, 1e-3)
	require.True(t, got.IsPitchValid)
	require.InDelta(t, p.RollRad, got.RollRad, 1e-3)
	require.True(t, got.IsRollValid)
}

func TestOPRO_FOPR_RoundTrip(t *testing.T) {
	ctx := NewContext()
	o := ObjectProperties{
		ObjectType: 1, ActorType: 2, OperationMode: 3,
		MassKg: 1200, IsMassValid: true,
		LengthXM: 4.5, IsLengthXValid: true,
		LengthYM: 1.8, IsLengthYValid: true,
		LengthZM: 1.5, IsLengthZValid: true,
		DisplacementXM: 0.5, IsDisplacementXValid: true,
		DisplacementYM: -0.2, IsDisplacementYValid: true,
		DisplacementZM: 0, IsDisplacementZValid: false,
	}

	bufOPRO := make([]byte, 128)
	n, err := EncodeOPRO(ctx, HeaderInput{}, o, bufOPRO)
	require.NoError(t, err)
	got, _, err := DecodeOPRO(ctx, bufOPRO[:n])
	require.NoError(t, err)
	require.Equal(t, o.ObjectType, got.ObjectType)
	require.InDelta(t, o.MassKg, got.MassKg, 0.001)
	require.True(t, got.IsMassValid)
	require.False(t, got.IsDisplacementZValid)

	f := ForeignObjectProperties{ForeignTransmitterID: 99, ObjectProperties: o}
	bufFOPR := make([]byte, 128)
	fn, err := EncodeFOPR(ctx, HeaderInput{}, f, bufFOPR)
	require.NoError(t, err)
	gotF, _, err := DecodeFOPR(ctx, bufFOPR[:fn])
	require.NoError(t, err)
	require.Equal(t, f.ForeignTransmitterID, gotF.ForeignTransmitterID)
	require.Equal(t, o.ActorType, gotF.ActorType)
}
