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
	vidTREOTriggerID        uint16 = 0x0001
	vidTREOTriggerTimestamp uint16 = 0x0002
)

// TriggerEventOccurred is the TREO payload: reports that a
// previously-configured trigger (TRCM) fired at a given time.
type TriggerEventOccurred struct {
	TriggerID      uint16
	TimestampQms   uint32
}

// EncodeTREO writes the TREO message for t into buf.
func EncodeTREO(ctx *Context, in HeaderInput, t TriggerEventOccurred, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU16(vidTREOTriggerID, t.TriggerID)
	b.putU32(vidTREOTriggerTimestamp, t.TimestampQms)
	return encodeFrame(ctx, MessageIDTREO, in, b.bytes(), buf)
}

// DecodeTREO parses a TREO frame from b.
func DecodeTREO(ctx *Context, b []byte) (TriggerEventOccurred, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDTREO)
	if err != nil {
		return TriggerEventOccurred{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return TriggerEventOccurred{}, 0, err
	}
	var t TriggerEventOccurred
	for _, f := range fields {
		switch f.valueID {
		case vidTREOTriggerID:
			v, err := fieldU16(f)
			if err != nil {
				return TriggerEventOccurred{}, 0, err
			}
			t.TriggerID = v
		case vidTREOTriggerTimestamp:
			v, err := fieldU32(f)
			if err != nil {
				return TriggerEventOccurred{}, 0, err
			}
			t.TimestampQms = v
		default:
			return TriggerEventOccurred{}, 0, newErr(ErrValueID, "treo: unexpected value id 0x%04x", f.valueID)
		}
	}
	return t, total, nil
}
