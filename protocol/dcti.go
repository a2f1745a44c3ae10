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

const (
	vidDCTITotalCount   uint16 = 0x0202
	vidDCTICounter      uint16 = 0x0203
	vidDCTITransmitterID uint16 = 0x0010
)

// DirectControlTransmitterIDs is the DCTI payload: announces one
// transmitter ID out of a total count, used to enumerate which
// objects are under direct remote control.
type DirectControlTransmitterIDs struct {
	TotalCount    uint16
	Counter       uint16
	TransmitterID uint32
}

// EncodeDCTI writes the DCTI message for d into buf.
func EncodeDCTI(ctx *Context, in HeaderInput, d DirectControlTransmitterIDs, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU16(vidDCTITotalCount, d.TotalCount)
	b.putU16(vidDCTICounter, d.Counter)
	b.putU32(vidDCTITransmitterID, d.TransmitterID)
	return encodeFrame(ctx, MessageIDDCTI, in, b.bytes(), buf)
}

// DecodeDCTI parses a DCTI frame from b.
func DecodeDCTI(ctx *Context, b []byte) (DirectControlTransmitterIDs, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDDCTI)
	if err != nil {
		return DirectControlTransmitterIDs{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return DirectControlTransmitterIDs{}, 0, err
	}
	var d DirectControlTransmitterIDs
	for _, f := range fields {
		switch f.valueID {
		case vidDCTITotalCount:
			v, err := fieldU16(f)
			if err != nil {
				return DirectControlTransmitterIDs{}, 0, err
			}
			d.TotalCount = v
		case vidDCTICounter:
			v, err := fieldU16(f)
			if err != nil {
				return DirectControlTransmitterIDs{}, 0, err
			}
			d.Counter = v
		case vidDCTITransmitterID:
			v, err := fieldU32(f)
			if err != nil {
				return DirectControlTransmitterIDs{}, 0, err
			}
			d.TransmitterID = v
		default:
			return DirectControlTransmitterIDs{}, 0, newErr(ErrValueID, "dcti: unexpected value id 0x%04x", f.valueID)
		}
	}
	return d, total, nil
}
