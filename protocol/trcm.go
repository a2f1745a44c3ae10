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
	vidTRCMTriggerID     uint16 = 0x0001
	vidTRCMTriggerType   uint16 = 0x0002
	vidTRCMTriggerParam1 uint16 = 0x0011
	vidTRCMTriggerParam2 uint16 = 0x0012
	vidTRCMTriggerParam3 uint16 = 0x0013
)

// TriggerConfiguration is the TRCM payload: registers a trigger type
// and up to three parameters under a trigger ID for later reference
// by ACCM.
type TriggerConfiguration struct {
	TriggerID   uint16
	TriggerType uint16
	Param1      uint32
	Param2      uint32
	Param3      uint32
}

// EncodeTRCM writes the TRCM message for t into buf.
func EncodeTRCM(ctx *Context, in HeaderInput, t TriggerConfiguration, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU16(vidTRCMTriggerID, t.TriggerID)
	b.putU16(vidTRCMTriggerType, t.TriggerType)
	b.putU32(vidTRCMTriggerParam1, t.Param1)
	b.putU32(vidTRCMTriggerParam2, t.Param2)
	b.putU32(vidTRCMTriggerParam3, t.Param3)
	return encodeFrame(ctx, MessageIDTRCM, in, b.bytes(), buf)
}

// DecodeTRCM parses a TRCM frame from b.
func DecodeTRCM(ctx *Context, b []byte) (TriggerConfiguration, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDTRCM)
	if err != nil {
		return TriggerConfiguration{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return TriggerConfiguration{}, 0, err
	}
	var t TriggerConfiguration
	for _, f := range fields {
		switch f.valueID {
		case vidTRCMTriggerID:
			v, err := fieldU16(f)
			if err != nil {
				return TriggerConfiguration{}, 0, err
			}
			t.TriggerID = v
		case vidTRCMTriggerType:
			v, err := fieldU16(f)
			if err != nil {
				return TriggerConfiguration{}, 0, err
			}
			t.TriggerType = v
		case vidTRCMTriggerParam1:
			v, err := fieldU32(f)
			if err != nil {
				return TriggerConfiguration{}, 0, err
			}
			t.Param1 = v
		case vidTRCMTriggerParam2:
			v, err := fieldU32(f)
			if err != nil {
				return TriggerConfiguration{}, 0, err
			}
			t.Param2 = v
		case vidTRCMTriggerParam3:
			v, err := fieldU32(f)
			if err != nil {
				return TriggerConfiguration{}, 0, err
			}
			t.Param3 = v
		default:
			return TriggerConfiguration{}, 0, newErr(ErrValueID, "trcm: unexpected value id 0x%04x", f.valueID)
		}
	}
	return t, total, nil
}
