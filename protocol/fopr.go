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

const vidFOPRForeignTransmitterID uint16 = 0x00FF

// ForeignObjectProperties is the FOPR payload: OPRO's static
// properties, reported on behalf of a peer rather than the
// transmitting object itself.
type ForeignObjectProperties struct {
	ForeignTransmitterID uint32
	ObjectProperties
}

// EncodeFOPR writes the FOPR message for f into buf.
func EncodeFOPR(ctx *Context, in HeaderInput, f ForeignObjectProperties, buf []byte) (int, error) {
	b, err := oproBody(f.ObjectProperties)
	if err != nil {
		return 0, err
	}
	var head bodyBuilder
	head.putU32(vidFOPRForeignTransmitterID, f.ForeignTransmitterID)
	return encodeFrame(ctx, MessageIDFOPR, in, append(head.bytes(), b.bytes()...), buf)
}

// DecodeFOPR parses a FOPR frame from b.
func DecodeFOPR(ctx *Context, b []byte) (ForeignObjectProperties, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDFOPR)
	if err != nil {
		return ForeignObjectProperties{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return ForeignObjectProperties{}, 0, err
	}
	var out ForeignObjectProperties
	var rest []field
	for _, fl := range fields {
		if fl.valueID == vidFOPRForeignTransmitterID {
			v, err := fieldU32(fl)
			if err != nil {
				return ForeignObjectProperties{}, 0, err
			}
			out.ForeignTransmitterID = v
			continue
		}
		rest = append(rest, fl)
	}
	props, err := oproParse(rest)
	if err != nil {
		return ForeignObjectProperties{}, 0, err
	}
	out.ObjectProperties = props
	return out, total, nil
}
