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
	vidEXACActionID          uint16 = 0x0002
	vidEXACActionExecuteTime uint16 = 0x0003
)

// ExecuteAction is the EXAC payload: instructs a previously-configured
// action (ACCM) to run at a given time.
type ExecuteAction struct {
	ActionID          uint16
	ExecuteTimeQms    uint32
}

// EncodeEXAC writes the EXAC message for e into buf.
func EncodeEXAC(ctx *Context, in HeaderInput, e ExecuteAction, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU16(vidEXACActionID, e.ActionID)
	b.putU32(vidEXACActionExecuteTime, e.ExecuteTimeQms)
	return encodeFrame(ctx, MessageIDEXAC, in, b.bytes(), buf)
}

// DecodeEXAC parses an EXAC frame from b.
func DecodeEXAC(ctx *Context, b []byte) (ExecuteAction, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDEXAC)
	if err != nil {
		return ExecuteAction{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return ExecuteAction{}, 0, err
	}
	var e ExecuteAction
	for _, f := range fields {
		switch f.valueID {
		case vidEXACActionID:
			v, err := fieldU16(f)
			if err != nil {
				return ExecuteAction{}, 0, err
			}
			e.ActionID = v
		case vidEXACActionExecuteTime:
			v, err := fieldU32(f)
			if err != nil {
				return ExecuteAction{}, 0, err
			}
			e.ExecuteTimeQms = v
		default:
			return ExecuteAction{}, 0, newErr(ErrValueID, "exac: unexpected value id 0x%04x", f.valueID)
		}
	}
	return e, total, nil
}
