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

const vidGREMStatus uint16 = 0x00FF

// EncodeGREM writes the GREM message responding to respondingTo with
// code into buf. The header of the message being responded to is
// supplied explicitly by the caller: its TransmitterID becomes this
// frame's ReceiverID (the response is addressed back to the sender),
// rather than being re-embedded as payload bytes.
func EncodeGREM(ctx *Context, respondingTo Header, code GremResponseCode, buf []byte) (int, error) {
	in := HeaderInput{
		TransmitterID:  uint32(ctx.GetTransmitterID()),
		ReceiverID:     respondingTo.TransmitterID,
		MessageCounter: respondingTo.MessageCounter,
	}
	var b bodyBuilder
	b.putU8(vidGREMStatus, uint8(code))
	return encodeFrame(ctx, MessageIDGREM, in, b.bytes(), buf)
}

// DecodeGREM parses a GREM frame from b.
func DecodeGREM(ctx *Context, b []byte) (GremResponseCode, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDGREM)
	if err != nil {
		return 0, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return 0, 0, err
	}
	var code GremResponseCode
	var seen bool
	for _, f := range fields {
		if f.valueID != vidGREMStatus {
			return 0, 0, newErr(ErrValueID, "grem: unexpected value id 0x%04x", f.valueID)
		}
		v, err := fieldU8(f)
		if err != nil {
			return 0, 0, err
		}
		code, seen = GremResponseCode(v), true
	}
	if !seen {
		return 0, 0, newErr(ErrInvalid, "grem: status field missing")
	}
	return code, total, nil
}
