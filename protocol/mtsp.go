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

const vidMTSPEstSyncPointTime uint16 = 0x0001

// EncodeMTSP writes the MTSP message carrying the estimated sync point
// time (quarter milliseconds of week) into buf.
func EncodeMTSP(ctx *Context, in HeaderInput, estSyncPointTimeQms uint32, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU32(vidMTSPEstSyncPointTime, estSyncPointTimeQms)
	return encodeFrame(ctx, MessageIDMTSP, in, b.bytes(), buf)
}

// DecodeMTSP parses an MTSP frame from b.
func DecodeMTSP(ctx *Context, b []byte) (uint32, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDMTSP)
	if err != nil {
		return 0, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return 0, 0, err
	}
	var est uint32
	var seen bool
	for _, f := range fields {
		if f.valueID != vidMTSPEstSyncPointTime {
			return 0, 0, newErr(ErrValueID, "mtsp: unexpected value id 0x%04x", f.valueID)
		}
		v, err := fieldU32(f)
		if err != nil {
			return 0, 0, err
		}
		est, seen = v, true
	}
	if !seen {
		return 0, 0, newErr(ErrInvalid, "mtsp: estimated sync point time field missing")
	}
	return est, total, nil
}
