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

func TestHeader_EncodeDecodeRoundTrip(t *testing.T) {
	ctx := NewContext()
	in := HeaderInput{TransmitterID: 7, ReceiverID: 9, MessageCounter: 3, AckRequest: true}

	h, err := BuildHeader(ctx, MessageIDOSTM, in, HeaderSize+4+FooterSize)
	require.NoError(t, err)

	buf := make([]byte, HeaderSize)
	require.NoError(t, h.EncodeTo(buf))

	got, err := DecodeHeader(ctx, buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, SyncWord, got.SyncWord)
	require.True(t, got.AckRequest)
	require.EqualValues(t, 4, got.MessageLength)
}

func TestHeader_DecodeShortBuffer(t *testing.T) {
	ctx := NewContext()
	_, err := DecodeHeader(ctx, make([]byte, HeaderSize-1))
	require.Equal(t, ErrShortBuffer, KindOf(err))
}

func TestHeader_DecodeBadSyncWord(t *testing.T) {
	ctx := NewContext()
	buf := make([]byte, HeaderSize)
	buf[0], buf[1] = 0x00, 0x00
	_, err := DecodeHeader(ctx, buf)
	require.Equal(t, ErrSyncWord, KindOf(err))
}

func TestHeader_DecodeUnsupportedVersion(t *testing.T) {
	ctx := NewContext()
	in := HeaderInput{}
	h, err := BuildHeader(ctx, MessageIDOSTM, in, HeaderSize+FooterSize+2)
	require.NoError(t, err)
	buf := make([]byte, HeaderSize)
	require.NoError(t, h.EncodeTo(buf))
	buf[6] = 0x7f // clobber AckReqProtVer's version bits with an unsupported value
	_, err = DecodeHeader(ctx, buf)
	require.Equal(t, ErrVersion, KindOf(err))
}

func TestVerifyFrameCRC_ZeroDeclaredAlwaysPasses(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, VerifyFrameCRC(ctx, []byte{1, 2, 3}, 0))
}

func TestVerifyFrameCRC_Mismatch(t *testing.T) {
	ctx := NewContext()
	data := []byte{1, 2, 3}
	err := VerifyFrameCRC(ctx, data, CRC16(data)+1)
	require.Equal(t, ErrCRC, KindOf(err))
}

func TestVerifyFrameCRC_DisabledContextAlwaysPasses(t *testing.T) {
	ctx := NewContext()
	ctx.SetCRCVerification(false)
	data := []byte{1, 2, 3}
	require.NoError(t, VerifyFrameCRC(ctx, data, CRC16(data)+1))
}
