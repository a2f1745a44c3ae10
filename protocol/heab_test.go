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

func TestHEAB_RoundTrip(t *testing.T) {
	ctx := NewContext()
	hb := HeartbeatStatus{GPSQmsOfWeek: 123456, IsTimeValid: true, Status: HeabStatusNormal}
	buf := make([]byte, 64)
	n, err := EncodeHEAB(ctx, HeaderInput{}, hb, buf)
	require.NoError(t, err)

	got, n2, err := DecodeHEAB(ctx, buf[:n])
	require.NoError(t, err)
	require.Equal(t, n, n2)
	require.Equal(t, hb.GPSQmsOfWeek, got.GPSQmsOfWeek)
	require.True(t, got.IsTimeValid)
	require.Equal(t, HeabStatusNormal, got.Status)
}

func TestHEAB_UnrecognisedStatusDefaultsToAbort(t *testing.T) {
	ctx := NewContext()
	hb := HeartbeatStatus{Status: HeabControlCenterStatus(0xAB)}
	buf := make([]byte, 64)
	n, err := EncodeHEAB(ctx, HeaderInput{}, hb, buf)
	require.NoError(t, err)

	got, _, err := DecodeHEAB(ctx, buf[:n])
	require.NoError(t, err)
	require.Equal(t, HeabStatusAbort, got.Status)
}
