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

// TestEncodeMONR_ByteExact reproduces the inner-struct scenario: position
// (1, -2, 3) m, heading 0.4 rad (host CCW-from-east; remapped to the
// wire's NED clockwise-from-north convention before scaling), long/lat
// speed (1, 2) m/s, accelerations (1, 2) m/s^2, drive Forward, state
// Running, arm Ready, error bits 0b01101011, error code 0xBEEF.
func TestEncodeMONR_ByteExact(t *testing.T) {
	ctx := NewContext()
	m := ObjectMonitor{
		GPSQmsOfWeek: 1762240000,
		Position: CartesianPosition{
			XM: 1, YM: -2, ZM: 3,
			HeadingRad: 0.4, IsPositionValid: true, IsHeadingValid: true,
		},
		Speed: Speed{
			LongitudinalMS: 1, LateralMS: 2,
			IsLongitudinalValid: true, IsLateralValid: true,
		},
		Acceleration: Acceleration{
			LongitudinalMS2: 1, LateralMS2: 2,
			IsLongitudinalValid: true, IsLateralValid: true,
		},
		Drive: DriveDirectionForward,
		State: ObjectStateRunning,
		Arm:   ArmReadinessReady,
		Errors: ObjectMonitorErrors{
			VendorSpecific: true, SyncPointEnded: true, BatteryFault: true,
			BadPositioningAccuracy: true, OutsideGeofence: true,
		},
		ErrorCode: 0xBEEF,
	}

	buf := make([]byte, 128)
	n, err := EncodeMONR(ctx, HeaderInput{}, m, buf)
	require.NoError(t, err)

	wantInner := []byte{
		0x00, 0xA6, 0x09, 0x69, // GPS qms of week
		0xE8, 0x03, 0x00, 0x00, // x
		0x30, 0xF8, 0xFF, 0xFF, // y
		0xB8, 0x0B, 0x00, 0x00, // z
		0x34, 0x1A, // heading, NED-remapped from 0.4 rad
		0x64, 0x00, // long speed
		0xC8, 0x00, // lat speed
		0xE8, 0x03, // long acc
		0xD0, 0x07, // lat acc
		0x00,       // drive
		0x04,       // state
		0x01,       // arm
		0x6B,       // error bits
		0xEF, 0xBE, // error code
	}
	gotInner := buf[HeaderSize+4 : HeaderSize+4+monrInnerSize]
	require.Equal(t, wantInner, gotInner)

	m2, n2, err := DecodeMONR(ctx, buf[:n])
	require.NoError(t, err)
	require.Equal(t, n, n2)
	require.Equal(t, m.GPSQmsOfWeek, m2.GPSQmsOfWeek)
	require.Equal(t, m.Position.XM, m2.Position.XM)
	require.Equal(t, m.Position.YM, m2.Position.YM)
	require.Equal(t, m.Position.ZM, m2.Position.ZM)
	require.InDelta(t, m.Position.HeadingRad, m2.Position.HeadingRad, 1e-3)
	require.Equal(t, m.Drive, m2.Drive)
	require.Equal(t, m.State, m2.State)
	require.Equal(t, m.Arm, m2.Arm)
	require.Equal(t, m.Errors, m2.Errors)
	require.Equal(t, m.ErrorCode, m2.ErrorCode)
}

func TestEncodeMONR_RequiresPosition(t *testing.T) {
	ctx := NewContext()
	_, err := EncodeMONR(ctx, HeaderInput{}, ObjectMonitor{}, make([]byte, 64))
	require.Equal(t, ErrInvalid, KindOf(err))
}
