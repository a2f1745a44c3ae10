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
	vidPODIForeignTransmitterID uint16 = 0x00FF
	vidPODIGPSQmsOfWeek         uint16 = 0x010A
	vidPODIObjectState          uint16 = 0x010C
	vidPODIXPosition            uint16 = 0x010D
	vidPODIYPosition            uint16 = 0x010E
	vidPODIZPosition            uint16 = 0x010F
	vidPODIHeading              uint16 = 0x0110
	vidPODIPitch                uint16 = 0x0111
	vidPODIRoll                 uint16 = 0x0112
	vidPODILongitudinalSpeed    uint16 = 0x0113
	vidPODILateralSpeed         uint16 = 0x0114
)

// EncodePODI writes the PODI message announcing a peer's state for p
// into buf.
func EncodePODI(ctx *Context, in HeaderInput, p PeerObjectInjection, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU32(vidPODIForeignTransmitterID, p.ForeignTransmitterID)
	b.putU32(vidPODIGPSQmsOfWeek, GPSQmsOfWeekToWire(p.GPSQmsOfWeek, true))
	b.putU8(vidPODIObjectState, objectStateWire[p.State])

	x, err := PositionToWire(p.Position.XM)
	if err != nil {
		return 0, err
	}
	y, err := PositionToWire(p.Position.YM)
	if err != nil {
		return 0, err
	}
	z, err := PositionToWire(p.Position.ZM)
	if err != nil {
		return 0, err
	}
	b.putI32(vidPODIXPosition, x)
	b.putI32(vidPODIYPosition, y)
	b.putI32(vidPODIZPosition, z)

	heading, err := HeadingToWire(RemapHeading(p.Position.HeadingRad), p.Position.IsHeadingValid)
	if err != nil {
		return 0, err
	}
	b.putU16(vidPODIHeading, heading)

	pitch, err := HeadingToWire(p.PitchRad, p.IsPitchValid)
	if err != nil {
		return 0, err
	}
	b.putU16(vidPODIPitch, pitch)

	roll, err := HeadingToWire(p.RollRad, p.IsRollValid)
	if err != nil {
		return 0, err
	}
	b.putU16(vidPODIRoll, roll)

	if p.Speed.IsLongitudinalValid {
		wire, err := SpeedToWire(p.Speed.LongitudinalMS, true)
		if err != nil {
			return 0, err
		}
		b.putI16(vidPODILongitudinalSpeed, wire)
	}
	if p.Speed.IsLateralValid {
		wire, err := SpeedToWire(p.Speed.LateralMS, true)
		if err != nil {
			return 0, err
		}
		b.putI16(vidPODILateralSpeed, wire)
	}

	return encodeFrame(ctx, MessageIDPODI, in, b.bytes(), buf)
}

// DecodePODI parses a PODI frame from b.
func DecodePODI(ctx *Context, b []byte) (PeerObjectInjection, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDPODI)
	if err != nil {
		return PeerObjectInjection{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return PeerObjectInjection{}, 0, err
	}
	var p PeerObjectInjection
	var qmsWire uint32 = sentinelGPSQmsOfWeek
	for _, f := range fields {
		switch f.valueID {
		case vidPODIForeignTransmitterID:
			v, err := fieldU32(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.ForeignTransmitterID = v
		case vidPODIGPSQmsOfWeek:
			v, err := fieldU32(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			qmsWire = v
		case vidPODIObjectState:
			v, err := fieldU8(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.State = objectStateFromWire(v)
		case vidPODIXPosition:
			v, err := fieldI32(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.Position.XM = PositionFromWire(v)
			p.Position.IsPositionValid = true
		case vidPODIYPosition:
			v, err := fieldI32(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.Position.YM = PositionFromWire(v)
		case vidPODIZPosition:
			v, err := fieldI32(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.Position.ZM = PositionFromWire(v)
		case vidPODIHeading:
			v, err := fieldU16(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			heading, headingValid := HeadingFromWire(v)
			if headingValid {
				heading = RemapHeading(heading)
			}
			p.Position.HeadingRad, p.Position.IsHeadingValid = heading, headingValid
		case vidPODIPitch:
			v, err := fieldU16(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.PitchRad, p.IsPitchValid = HeadingFromWire(v)
		case vidPODIRoll:
			v, err := fieldU16(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.RollRad, p.IsRollValid = HeadingFromWire(v)
		case vidPODILongitudinalSpeed:
			v, err := fieldI16(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.Speed.LongitudinalMS, p.Speed.IsLongitudinalValid = SpeedFromWire(v)
		case vidPODILateralSpeed:
			v, err := fieldI16(f)
			if err != nil {
				return PeerObjectInjection{}, 0, err
			}
			p.Speed.LateralMS, p.Speed.IsLateralValid = SpeedFromWire(v)
		default:
			return PeerObjectInjection{}, 0, newErr(ErrValueID, "podi: unexpected value id 0x%04x", f.valueID)
		}
	}
	qms, _ := GPSQmsOfWeekFromWire(qmsWire)
	p.GPSQmsOfWeek = qms
	return p, total, nil
}
