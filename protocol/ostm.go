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

const vidOSTMStateChangeRequest uint16 = 0x0064

// EncodeOSTM writes the OSTM message requesting cmd into buf. Only Arm,
// Disarm and RemoteControl are accepted; any other value is rejected
// without writing anything.
func EncodeOSTM(ctx *Context, in HeaderInput, cmd ObjectCommand, buf []byte) (int, error) {
	switch cmd {
	case ObjectCommandArm, ObjectCommandDisarm, ObjectCommandRemoteControl:
	default:
		return 0, newErr(ErrContentOutOfRange, "ostm: unsupported object command %d", cmd)
	}
	var b bodyBuilder
	b.putU8(vidOSTMStateChangeRequest, uint8(cmd))
	return encodeFrame(ctx, MessageIDOSTM, in, b.bytes(), buf)
}

// DecodeOSTM parses an OSTM frame from b.
func DecodeOSTM(ctx *Context, b []byte) (ObjectCommand, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDOSTM)
	if err != nil {
		return 0, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return 0, 0, err
	}
	var cmd ObjectCommand
	var seen bool
	for _, f := range fields {
		if f.valueID != vidOSTMStateChangeRequest {
			return 0, 0, newErr(ErrValueID, "ostm: unexpected value id 0x%04x", f.valueID)
		}
		v, err := fieldU8(f)
		if err != nil {
			return 0, 0, err
		}
		cmd, seen = ObjectCommand(v), true
	}
	if !seen {
		return 0, 0, newErr(ErrInvalid, "ostm: state change request field missing")
	}
	return cmd, total, nil
}
