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

// This file implements the TRAJ streamer (§4.7): a trajectory frame's
// body can run to kilobytes, so unlike every other message it is
// produced and consumed across multiple calls instead of being built
// in one shot. TrajEncoder carries the rolling CRC that must live only
// between header-begin and footer-emit for a single producing session;
// decoding (DecodeTrajHeader, DecodeTrajPoint, VerifyTrajCRC) is
// stateless.

const (
	vidTRAJTrajectoryIdentifier uint16 = 0x0101
	vidTRAJTrajectoryName       uint16 = 0x0102
	vidTRAJTrajectoryVersion    uint16 = 0x0103

	vidTRAJRelativeTime              uint16 = 0x0001
	vidTRAJXPosition                 uint16 = 0x0010
	vidTRAJYPosition                 uint16 = 0x0011
	vidTRAJZPosition                 uint16 = 0x0012
	vidTRAJHeading                   uint16 = 0x0030
	vidTRAJLongitudinalSpeed         uint16 = 0x0040
	vidTRAJLateralSpeed              uint16 = 0x0041
	vidTRAJLongitudinalAcceleration  uint16 = 0x0050
	vidTRAJLateralAcceleration       uint16 = 0x0051
	vidTRAJCurvature                 uint16 = 0x0052
)

// trajNameLength is the fixed, null-padded width of the TRAJ name
// field on the wire.
const trajNameLength = 64

// trajHeaderFieldsSize is the byte size of the three header VID-L-V
// fields (identifier, name, version), excluding the 18-byte frame
// header.
const trajHeaderFieldsSize = (4 + 2) + (4 + trajNameLength) + (4 + 2)

// trajPointSize is the byte size of one fixed 10-field point block.
const trajPointSize = (4 + 4) + (4 + 4) + (4 + 4) + (4 + 4) + (4 + 2) +
	(4 + 2) + (4 + 2) + (4 + 2) + (4 + 2) + (4 + 4)

// TrajectoryHeader identifies a trajectory and the number of points
// that follow it.
type TrajectoryHeader struct {
	TrajectoryID uint16
	Name         string
	Version      uint16
	NumberOfPoints uint32
}

// TrajectoryPoint is one point of a trajectory in host representation.
// Position and LongitudinalSpeed are mandatory; every other field
// carries its own validity flag.
type TrajectoryPoint struct {
	RelativeTimeS float64
	Position      CartesianPosition
	Speed         Speed
	Acceleration  Acceleration
	// Curvature is always present on the wire; the original source
	// carries no unavailable sentinel for it.
	Curvature float32
}

// TrajEncoder drives the three-phase encode_header -> encode_point* ->
// encode_footer protocol. Its zero value is not usable; construct with
// NewTrajEncoder. Only one trajectory may be in flight through a given
// encoder at a time - that's what makes the rolling CRC's lifetime
// well-defined.
type TrajEncoder struct {
	ctx   *Context
	crc   uint16
	phase trajPhase
}

type trajPhase uint8

const (
	trajPhaseNotStarted trajPhase = iota
	trajPhaseInPoints
	trajPhaseDone
)

// NewTrajEncoder returns a TrajEncoder bound to ctx. ctx may be nil, in
// which case CRC verification defaults apply but debug tracing is off.
func NewTrajEncoder(ctx *Context) *TrajEncoder {
	return &TrajEncoder{ctx: ctx, phase: trajPhaseNotStarted}
}

// EncodeHeader writes the TRAJ frame header and the three header
// VID-L-V fields into buf, resets the rolling CRC to 0x0000, and folds
// the just-written bytes into it. numberOfPoints must match the number
// of EncodePoint calls that follow, since messageLength is derived
// from it up front.
func (e *TrajEncoder) EncodeHeader(in HeaderInput, h TrajectoryHeader, buf []byte) (int, error) {
	if e.phase != trajPhaseNotStarted {
		return 0, newErr(ErrInvalid, "traj: encode_header called out of order")
	}
	if len(h.Name) > trajNameLength-1 {
		return 0, newErr(ErrContentOutOfRange, "traj: name %q longer than %d bytes", h.Name, trajNameLength-1)
	}

	total := HeaderSize + trajHeaderFieldsSize + int(h.NumberOfPoints)*trajPointSize + FooterSize
	if len(buf) < HeaderSize+trajHeaderFieldsSize {
		return 0, newErr(ErrShortBuffer, "need %d bytes for traj header, have %d", HeaderSize+trajHeaderFieldsSize, len(buf))
	}

	header, err := BuildHeader(e.ctx, MessageIDTRAJ, in, total)
	if err != nil {
		return 0, err
	}
	if err := header.EncodeTo(buf); err != nil {
		return 0, err
	}

	var b bodyBuilder
	b.putU16(vidTRAJTrajectoryIdentifier, h.TrajectoryID)
	var nameBuf [trajNameLength]byte
	copy(nameBuf[:], h.Name)
	b.putBytes(vidTRAJTrajectoryName, nameBuf[:])
	b.putU16(vidTRAJTrajectoryVersion, h.Version)

	body := b.bytes()
	if len(body) != trajHeaderFieldsSize {
		return 0, newErr(ErrInvalid, "traj: internal header size mismatch: %d != %d", len(body), trajHeaderFieldsSize)
	}
	copy(buf[HeaderSize:], body)

	e.crc = CRCUpdate(CRCInit(), buf[:HeaderSize+trajHeaderFieldsSize])
	e.phase = trajPhaseInPoints
	e.ctx.trace("traj: encode_header id=%d points=%d", h.TrajectoryID, h.NumberOfPoints)
	return HeaderSize + trajHeaderFieldsSize, nil
}

// EncodePoint writes one fixed 10-field point block into buf and folds
// it into the rolling CRC. Position and Speed.LongitudinalMS must be
// valid; every other field may carry its own unavailable sentinel.
func (e *TrajEncoder) EncodePoint(p TrajectoryPoint, buf []byte) (int, error) {
	if e.phase != trajPhaseInPoints {
		return 0, newErr(ErrInvalid, "traj: encode_point called out of order")
	}
	if !p.Position.IsPositionValid {
		return 0, newErr(ErrInvalid, "traj: point position is mandatory")
	}
	if !p.Speed.IsLongitudinalValid {
		return 0, newErr(ErrInvalid, "traj: point longitudinal speed is mandatory")
	}
	if len(buf) < trajPointSize {
		return 0, newErr(ErrShortBuffer, "need %d bytes for traj point, have %d", trajPointSize, len(buf))
	}

	relTime, err := RelativeTimeToWire(p.RelativeTimeS)
	if err != nil {
		return 0, err
	}
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
	heading, err := HeadingToWire(RemapHeading(p.Position.HeadingRad), p.Position.IsHeadingValid)
	if err != nil {
		return 0, err
	}
	longSpeed, err := SpeedToWire(p.Speed.LongitudinalMS, true)
	if err != nil {
		return 0, err
	}
	latSpeed, err := SpeedToWire(p.Speed.LateralMS, p.Speed.IsLateralValid)
	if err != nil {
		return 0, err
	}
	longAcc, err := AccelerationToWire(p.Acceleration.LongitudinalMS2, p.Acceleration.IsLongitudinalValid)
	if err != nil {
		return 0, err
	}
	latAcc, err := AccelerationToWire(p.Acceleration.LateralMS2, p.Acceleration.IsLateralValid)
	if err != nil {
		return 0, err
	}

	var b bodyBuilder
	b.putU32(vidTRAJRelativeTime, relTime)
	b.putI32(vidTRAJXPosition, x)
	b.putI32(vidTRAJYPosition, y)
	b.putI32(vidTRAJZPosition, z)
	b.putU16(vidTRAJHeading, heading)
	b.putI16(vidTRAJLongitudinalSpeed, longSpeed)
	b.putI16(vidTRAJLateralSpeed, latSpeed)
	b.putI16(vidTRAJLongitudinalAcceleration, longAcc)
	b.putI16(vidTRAJLateralAcceleration, latAcc)
	b.putF32(vidTRAJCurvature, p.Curvature)

	body := b.bytes()
	if len(body) != trajPointSize {
		return 0, newErr(ErrInvalid, "traj: internal point size mismatch: %d != %d", len(body), trajPointSize)
	}
	copy(buf, body)
	e.crc = CRCUpdate(e.crc, body)
	return trajPointSize, nil
}

// EncodeFooter writes the rolling CRC as the 2-byte footer into buf and
// ends the producing session.
func (e *TrajEncoder) EncodeFooter(buf []byte) (int, error) {
	if e.phase != trajPhaseInPoints {
		return 0, newErr(ErrInvalid, "traj: encode_footer called out of order")
	}
	if err := EncodeFooter(buf, CRCFinalize(e.crc)); err != nil {
		return 0, err
	}
	e.phase = trajPhaseDone
	return FooterSize, nil
}

// DecodeTrajHeader parses a TRAJ frame's header and header fields from
// b. Unlike the encoder, decode is stateless: the caller is expected to
// track its own running byte offset across DecodeTrajPoint calls, and
// CRC verification happens once at the end against the whole frame.
func DecodeTrajHeader(ctx *Context, b []byte) (TrajectoryHeader, int, error) {
	header, err := DecodeHeader(ctx, b)
	if err != nil {
		return TrajectoryHeader{}, 0, err
	}
	if header.MessageID != MessageIDTRAJ {
		return TrajectoryHeader{}, 0, newErr(ErrMessageType, "expected TRAJ (0x%04x), got 0x%04x", MessageIDTRAJ, header.MessageID)
	}
	if len(b) < HeaderSize+trajHeaderFieldsSize {
		return TrajectoryHeader{}, 0, newErr(ErrShortBuffer, "need %d bytes for traj header fields, have %d", trajHeaderFieldsSize, len(b)-HeaderSize)
	}
	fields, err := readFields(b[HeaderSize : HeaderSize+trajHeaderFieldsSize])
	if err != nil {
		return TrajectoryHeader{}, 0, err
	}
	var out TrajectoryHeader
	for _, f := range fields {
		switch f.valueID {
		case vidTRAJTrajectoryIdentifier:
			v, err := fieldU16(f)
			if err != nil {
				return TrajectoryHeader{}, 0, err
			}
			out.TrajectoryID = v
		case vidTRAJTrajectoryName:
			if err := expectLen(f, trajNameLength); err != nil {
				return TrajectoryHeader{}, 0, err
			}
			out.Name = nullTerminatedString(f.content)
		case vidTRAJTrajectoryVersion:
			v, err := fieldU16(f)
			if err != nil {
				return TrajectoryHeader{}, 0, err
			}
			out.Version = v
		default:
			return TrajectoryHeader{}, 0, newErr(ErrValueID, "traj: unexpected header value id 0x%04x", f.valueID)
		}
	}
	bodyLen := int(header.MessageLength)
	if bodyLen < trajHeaderFieldsSize {
		return TrajectoryHeader{}, 0, newErr(ErrLength, "traj: message length %d shorter than header fields", bodyLen)
	}
	out.NumberOfPoints = uint32((bodyLen - trajHeaderFieldsSize) / trajPointSize)
	return out, HeaderSize + trajHeaderFieldsSize, nil
}

// DecodeTrajPoint parses exactly trajPointSize bytes from b as one
// trajectory point.
func DecodeTrajPoint(b []byte) (TrajectoryPoint, int, error) {
	if len(b) < trajPointSize {
		return TrajectoryPoint{}, 0, newErr(ErrShortBuffer, "need %d bytes for traj point, have %d", trajPointSize, len(b))
	}
	fields, err := readFields(b[:trajPointSize])
	if err != nil {
		return TrajectoryPoint{}, 0, err
	}
	var p TrajectoryPoint
	for _, f := range fields {
		switch f.valueID {
		case vidTRAJRelativeTime:
			v, err := fieldU32(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.RelativeTimeS = RelativeTimeFromWire(v)
		case vidTRAJXPosition:
			v, err := fieldI32(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Position.XM = PositionFromWire(v)
			p.Position.IsPositionValid = true
		case vidTRAJYPosition:
			v, err := fieldI32(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Position.YM = PositionFromWire(v)
		case vidTRAJZPosition:
			v, err := fieldI32(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Position.ZM = PositionFromWire(v)
		case vidTRAJHeading:
			v, err := fieldU16(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			heading, headingValid := HeadingFromWire(v)
			if headingValid {
				heading = RemapHeading(heading)
			}
			p.Position.HeadingRad, p.Position.IsHeadingValid = heading, headingValid
		case vidTRAJLongitudinalSpeed:
			v, err := fieldI16(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Speed.LongitudinalMS, p.Speed.IsLongitudinalValid = SpeedFromWire(v)
		case vidTRAJLateralSpeed:
			v, err := fieldI16(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Speed.LateralMS, p.Speed.IsLateralValid = SpeedFromWire(v)
		case vidTRAJLongitudinalAcceleration:
			v, err := fieldI16(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Acceleration.LongitudinalMS2, p.Acceleration.IsLongitudinalValid = AccelerationFromWire(v)
		case vidTRAJLateralAcceleration:
			v, err := fieldI16(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Acceleration.LateralMS2, p.Acceleration.IsLateralValid = AccelerationFromWire(v)
		case vidTRAJCurvature:
			v, err := fieldF32(f)
			if err != nil {
				return TrajectoryPoint{}, 0, err
			}
			p.Curvature = v
		default:
			return TrajectoryPoint{}, 0, newErr(ErrValueID, "traj: unexpected point value id 0x%04x", f.valueID)
		}
	}
	return p, trajPointSize, nil
}

// VerifyTrajCRC checks a full TRAJ frame's trailing 2-byte footer
// against the CRC of everything preceding it.
func VerifyTrajCRC(ctx *Context, frame []byte) error {
	if len(frame) < FooterSize {
		return newErr(ErrShortBuffer, "traj frame too short for footer")
	}
	declared, err := DecodeFooter(frame[len(frame)-FooterSize:])
	if err != nil {
		return err
	}
	return VerifyFrameCRC(ctx, frame[:len(frame)-FooterSize], declared)
}

func nullTerminatedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
