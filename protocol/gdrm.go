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

const vidGDRMDataCode uint16 = 0x0205

// EncodeGDRM writes the GDRM (general data request) message for
// dataCode into buf.
func EncodeGDRM(ctx *Context, in HeaderInput, dataCode uint16, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU16(vidGDRMDataCode, dataCode)
	return encodeFrame(ctx, MessageIDGDRM, in, b.bytes(), buf)
}

// DecodeGDRM parses a GDRM frame from b.
func DecodeGDRM(ctx *Context, b []byte) (uint16, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDGDRM)
	if err != nil {
		return 0, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return 0, 0, err
	}
	var dataCode uint16
	var seen bool
	for _, f := range fields {
		if f.valueID != vidGDRMDataCode {
			return 0, 0, newErr(ErrValueID, "gdrm: unexpected value id 0x%04x", f.valueID)
		}
		v, err := fieldU16(f)
		if err != nil {
			return 0, 0, err
		}
		dataCode, seen = v, true
	}
	if !seen {
		return 0, 0, newErr(ErrInvalid, "gdrm: data code field missing")
	}
	return dataCode, total, nil
}
