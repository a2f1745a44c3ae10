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

func TestCRC16_CheckValue(t *testing.T) {
	// CRCInit starts the accumulator at 0x0000 (DEFAULT_CRC_INIT_VALUE in
	// the original source), which is the XMODEM variant's check value
	// for "123456789", not the 0xFFFF-seeded CCITT-FALSE one.
	got := CRC16([]byte("123456789"))
	require.Equal(t, uint16(0x31C3), got)
}

func TestCRC16_Incremental(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	oneShot := CRC16(data)

	crc := CRCInit()
	crc = CRCUpdate(crc, data[:10])
	crc = CRCUpdate(crc, data[10:])
	require.Equal(t, oneShot, CRCFinalize(crc))
}

func TestCRC16_Empty(t *testing.T) {
	require.Equal(t, uint16(0), CRC16(nil))
}
