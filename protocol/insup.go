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

const vidINSUPMode uint16 = 0x0200

// EncodeINSUP writes the INSUP (vendor-specific infrastructure support
// mode) message carrying mode into buf.
func EncodeINSUP(ctx *Context, in HeaderInput, mode uint8, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU8(vidINSUPMode, mode)
	return encodeFrame(ctx, MessageIDINSUP, in, b.bytes(), buf)
}

// DecodeINSUP parses an INSUP frame from b.
func DecodeINSUP(ctx *Context, b []byte) (uint8, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDINSUP)
	if err != nil {
		return 0, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return 0, 0, err
	}
	var mode uint8
	var seen bool
	for _, f := range fields {
		if f.valueID != vidINSUPMode {
			return 0, 0, newErr(ErrValueID, "insup: unexpected value id 0x%04x", f.valueID)
		}
		v, err := fieldU8(f)
		if err != nil {
			return 0, 0, err
		}
		mode, seen = v, true
	}
	if !seen {
		return 0, 0, newErr(ErrInvalid, "insup: mode field missing")
	}
	return mode, total, nil
}
