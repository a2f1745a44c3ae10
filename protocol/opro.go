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
	vidOPROObjectType              uint16 = 0x0100
	vidOPROActorType                uint16 = 0x0101
	vidOPROOperationMode             uint16 = 0x0102
	vidOPROMass                      uint16 = 0x0103
	vidOPROObjectLengthX             uint16 = 0x0104
	vidOPROObjectLengthY             uint16 = 0x0105
	vidOPROObjectLengthZ             uint16 = 0x0106
	vidOPROPositionDisplacementX     uint16 = 0x0107
	vidOPROPositionDisplacementY     uint16 = 0x0108
	vidOPROPositionDisplacementZ     uint16 = 0x0109
)

// oproBody renders the OPRO/FOPR-shared property fields. FOPR prepends
// its own ForeignTransmitterID tag ahead of these.
func oproBody(o ObjectProperties) (*bodyBuilder, error) {
	var b bodyBuilder
	b.putU8(vidOPROObjectType, o.ObjectType)
	b.putU8(vidOPROActorType, o.ActorType)
	b.putU8(vidOPROOperationMode, o.OperationMode)

	mass, err := MassToWire(o.MassKg, o.IsMassValid)
	if err != nil {
		return nil, err
	}
	b.putU32(vidOPROMass, mass)

	lx, err := LengthToWireU32(o.LengthXM, o.IsLengthXValid)
	if err != nil {
		return nil, err
	}
	b.putU32(vidOPROObjectLengthX, lx)

	ly, err := LengthToWireU32(o.LengthYM, o.IsLengthYValid)
	if err != nil {
		return nil, err
	}
	b.putU32(vidOPROObjectLengthY, ly)

	lz, err := LengthToWireU32(o.LengthZM, o.IsLengthZValid)
	if err != nil {
		return nil, err
	}
	b.putU32(vidOPROObjectLengthZ, lz)

	dx, err := LengthToWireI16(o.DisplacementXM, o.IsDisplacementXValid)
	if err != nil {
		return nil, err
	}
	b.putI16(vidOPROPositionDisplacementX, dx)

	dy, err := LengthToWireI16(o.DisplacementYM, o.IsDisplacementYValid)
	if err != nil {
		return nil, err
	}
	b.putI16(vidOPROPositionDisplacementY, dy)

	dz, err := LengthToWireI16(o.DisplacementZM, o.IsDisplacementZValid)
	if err != nil {
		return nil, err
	}
	b.putI16(vidOPROPositionDisplacementZ, dz)

	return &b, nil
}

func oproParse(fields []field) (ObjectProperties, error) {
	var o ObjectProperties
	for _, f := range fields {
		switch f.valueID {
		case vidOPROObjectType:
			v, err := fieldU8(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.ObjectType = v
		case vidOPROActorType:
			v, err := fieldU8(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.ActorType = v
		case vidOPROOperationMode:
			v, err := fieldU8(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.OperationMode = v
		case vidOPROMass:
			v, err := fieldU32(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.MassKg, o.IsMassValid = MassFromWire(v)
		case vidOPROObjectLengthX:
			v, err := fieldU32(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.LengthXM, o.IsLengthXValid = LengthFromWireU32(v)
		case vidOPROObjectLengthY:
			v, err := fieldU32(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.LengthYM, o.IsLengthYValid = LengthFromWireU32(v)
		case vidOPROObjectLengthZ:
			v, err := fieldU32(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.LengthZM, o.IsLengthZValid = LengthFromWireU32(v)
		case vidOPROPositionDisplacementX:
			v, err := fieldI16(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.DisplacementXM, o.IsDisplacementXValid = LengthFromWireI16(v)
		case vidOPROPositionDisplacementY:
			v, err := fieldI16(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.DisplacementYM, o.IsDisplacementYValid = LengthFromWireI16(v)
		case vidOPROPositionDisplacementZ:
			v, err := fieldI16(f)
			if err != nil {
				return ObjectProperties{}, err
			}
			o.DisplacementZM, o.IsDisplacementZValid = LengthFromWireI16(v)
		default:
			return ObjectProperties{}, newErr(ErrValueID, "opro: unexpected value id 0x%04x", f.valueID)
		}
	}
	return o, nil
}

// EncodeOPRO writes the OPRO message for o into buf.
func EncodeOPRO(ctx *Context, in HeaderInput, o ObjectProperties, buf []byte) (int, error) {
	b, err := oproBody(o)
	if err != nil {
		return 0, err
	}
	return encodeFrame(ctx, MessageIDOPRO, in, b.bytes(), buf)
}

// DecodeOPRO parses an OPRO frame from b.
func DecodeOPRO(ctx *Context, b []byte) (ObjectProperties, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDOPRO)
	if err != nil {
		return ObjectProperties{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return ObjectProperties{}, 0, err
	}
	o, err := oproParse(fields)
	if err != nil {
		return ObjectProperties{}, 0, err
	}
	return o, total, nil
}
