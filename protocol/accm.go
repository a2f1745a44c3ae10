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
	vidACCMActionID     uint16 = 0x0002
	vidACCMActionType   uint16 = 0x0003
	vidACCMActionParam1 uint16 = 0x00A1
	vidACCMActionParam2 uint16 = 0x00A2
	vidACCMActionParam3 uint16 = 0x00A3
)

// ActionConfiguration is the ACCM payload: registers an action type
// and up to three parameters under an action ID for later reference
// by EXAC.
type ActionConfiguration struct {
	ActionID   uint16
	ActionType uint16
	Param1     uint32
	Param2     uint32
	Param3     uint32
}

// EncodeACCM writes the ACCM message for a into buf.
func EncodeACCM(ctx *Context, in HeaderInput, a ActionConfiguration, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU16(vidACCMActionID, a.ActionID)
	b.putU16(vidACCMActionType, a.ActionType)
	b.putU32(vidACCMActionParam1, a.Param1)
	b.putU32(vidACCMActionParam2, a.Param2)
	b.putU32(vidACCMActionParam3, a.Param3)
	return encodeFrame(ctx, MessageIDACCM, in, b.bytes(), buf)
}

// DecodeACCM parses an ACCM frame from b.
func DecodeACCM(ctx *Context, b []byte) (ActionConfiguration, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDACCM)
	if err != nil {
		return ActionConfiguration{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return ActionConfiguration{}, 0, err
	}
	var a ActionConfiguration
	for _, f := range fields {
		switch f.valueID {
		case vidACCMActionID:
			v, err := fieldU16(f)
			if err != nil {
				return ActionConfiguration{}, 0, err
			}
			a.ActionID = v
		case vidACCMActionType:
			v, err := fieldU16(f)
			if err != nil {
				return ActionConfiguration{}, 0, err
			}
			a.ActionType = v
		case vidACCMActionParam1:
			v, err := fieldU32(f)
			if err != nil {
				return ActionConfiguration{}, 0, err
			}
			a.Param1 = v
		case vidACCMActionParam2:
			v, err := fieldU32(f)
			if err != nil {
				return ActionConfiguration{}, 0, err
			}
			a.Param2 = v
		case vidACCMActionParam3:
			v, err := fieldU32(f)
			if err != nil {
				return ActionConfiguration{}, 0, err
			}
			a.Param3 = v
		default:
			return ActionConfiguration{}, 0, newErr(ErrValueID, "accm: unexpected value id 0x%04x", f.valueID)
		}
	}
	return a, total, nil
}
