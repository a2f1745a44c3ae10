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

const vidMONRStruct uint16 = 0x0080

// monrInnerSize is the packed inner struct width: qms(4) + x/y/z(4*3) +
// heading(2) + longSpeed/latSpeed/longAcc/latAcc(2*4) + drive/state/
// arm/err(1*4) + errorCode(2).
const monrInnerSize = 32

// EncodeMONR writes the MONR message for m into buf. MONR is a
// monolithic-body message: the entire inner struct is wrapped in a
// single outer VID-L-V and its fields are positional, not tagged.
func EncodeMONR(ctx *Context, in HeaderInput, m ObjectMonitor, buf []byte) (int, error) {
	if !m.Position.IsPositionValid {
		return 0, newErr(ErrInvalid, "monr: position is a required field")
	}
	var b bodyBuilder
	b.tag(vidMONRStruct, monrInnerSize)

	inner := make([]byte, monrInnerSize)
	c := newCursor(inner)
	_ = c.writeU32(GPSQmsOfWeekToWire(m.GPSQmsOfWeek, true))

	x, err := PositionToWire(m.Position.XM)
	if err != nil {
		return 0, err
	}
	y, err := PositionToWire(m.Position.YM)
	if err != nil {
		return 0, err
	}
	z, err := PositionToWire(m.Position.ZM)
	if err != nil {
		return 0, err
	}
	_ = c.writeI32(x)
	_ = c.writeI32(y)
	_ = c.writeI32(z)

	heading, err := HeadingToWire(RemapHeading(m.Position.HeadingRad), m.Position.IsHeadingValid)
	if err != nil {
		return 0, err
	}
	_ = c.writeU16(heading)

	longSpeed, err := SpeedToWire(m.Speed.LongitudinalMS, m.Speed.IsLongitudinalValid)
	if err != nil {
		return 0, err
	}
	latSpeed, err := SpeedToWire(m.Speed.LateralMS, m.Speed.IsLateralValid)
	if err != nil {
		return 0, err
	}
	_ = c.writeI16(longSpeed)
	_ = c.writeI16(latSpeed)

	longAcc, err := AccelerationToWire(m.Acceleration.LongitudinalMS2, m.Acceleration.IsLongitudinalValid)
	if err != nil {
		return 0, err
	}
	latAcc, err := AccelerationToWire(m.Acceleration.LateralMS2, m.Acceleration.IsLateralValid)
	if err != nil {
		return 0, err
	}
	_ = c.writeI16(longAcc)
	_ = c.writeI16(latAcc)

	_ = c.writeU8(driveDirectionWire[m.Drive])
	_ = c.writeU8(objectStateWire[m.State])
	_ = c.writeU8(armReadinessWire[m.Arm])
	_ = c.writeU8(monrErrorsToWire(m.Errors))
	_ = c.writeU16(m.ErrorCode)

	b.buf = append(b.buf, inner...)

	return encodeFrame(ctx, MessageIDMONR, in, b.bytes(), buf)
}

// DecodeMONR parses a MONR frame from b.
func DecodeMONR(ctx *Context, b []byte) (ObjectMonitor, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDMONR)
	if err != nil {
		return ObjectMonitor{}, 0, err
	}
	c := newCursor(body)
	valueID, err := c.readU16()
	if err != nil {
		return ObjectMonitor{}, 0, err
	}
	if valueID != vidMONRStruct {
		return ObjectMonitor{}, 0, newErr(ErrValueID, "monr: unexpected outer value id 0x%04x", valueID)
	}
	contentLength, err := c.readU16()
	if err != nil {
		return ObjectMonitor{}, 0, err
	}
	if int(contentLength) != monrInnerSize {
		return ObjectMonitor{}, 0, newErr(ErrLength, "monr: inner struct length %d != %d", contentLength, monrInnerSize)
	}

	var m ObjectMonitor
	qmsWire, _ := c.readU32()
	qms, _ := GPSQmsOfWeekFromWire(qmsWire)
	m.GPSQmsOfWeek = qms

	xWire, _ := c.readI32()
	yWire, _ := c.readI32()
	zWire, _ := c.readI32()
	m.Position.XM = PositionFromWire(xWire)
	m.Position.YM = PositionFromWire(yWire)
	m.Position.ZM = PositionFromWire(zWire)
	m.Position.IsPositionValid = true

	headingWire, _ := c.readU16()
	heading, headingValid := HeadingFromWire(headingWire)
	if headingValid {
		heading = RemapHeading(heading)
	}
	m.Position.HeadingRad, m.Position.IsHeadingValid = heading, headingValid

	longSpeedWire, _ := c.readI16()
	latSpeedWire, _ := c.readI16()
	m.Speed.LongitudinalMS, m.Speed.IsLongitudinalValid = SpeedFromWire(longSpeedWire)
	m.Speed.LateralMS, m.Speed.IsLateralValid = SpeedFromWire(latSpeedWire)

	longAccWire, _ := c.readI16()
	latAccWire, _ := c.readI16()
	m.Acceleration.LongitudinalMS2, m.Acceleration.IsLongitudinalValid = AccelerationFromWire(longAccWire)
	m.Acceleration.LateralMS2, m.Acceleration.IsLateralValid = AccelerationFromWire(latAccWire)

	driveWire, _ := c.readU8()
	stateWire, _ := c.readU8()
	armWire, _ := c.readU8()
	errWire, _ := c.readU8()
	errCodeWire, _ := c.readU16()

	m.Drive = driveDirectionFromWire(driveWire)
	m.State = objectStateFromWire(stateWire)
	m.Arm = armReadinessFromWire(armWire)
	m.Errors = monrErrorsFromWire(errWire)
	m.ErrorCode = errCodeWire

	return m, total, nil
}
