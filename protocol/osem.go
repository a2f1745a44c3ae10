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

// OSEM value IDs. TransmitterID/Latitude/Longitude/Altitude/GPS
// week/qms/MaxWayDeviation/MaxLateralDeviation/MinPositioningAccuracy
// come straight from the wire constants. OriginRotation, the
// coordinate-system tag, the deviation-limits substruct, the HEAB
// timeout, test mode, and the optional time server are supplemented
// fields with no defining header in the retrieved original source;
// their VIDs are assigned in an unused subrange of the OSEM tag
// alphabet rather than copied from a constant that wasn't available
// to ground on.
const (
	vidOSEMTransmitterID          uint16 = 0x0010
	vidOSEMLatitude               uint16 = 0x0020
	vidOSEMLongitude              uint16 = 0x0021
	vidOSEMAltitude               uint16 = 0x0022
	vidOSEMGPSQmsOfWeek           uint16 = 0x0002
	vidOSEMGPSWeek                uint16 = 0x0003
	vidOSEMMaxWayDeviation        uint16 = 0x0070
	vidOSEMMaxLateralDeviation    uint16 = 0x0072
	vidOSEMMinPositioningAccuracy uint16 = 0x0074

	vidOSEMOriginRotation    uint16 = 0x0040
	vidOSEMCoordinateSystem uint16 = 0x0041
	vidOSEMDeviationPosition uint16 = 0x0042
	vidOSEMDeviationLateral  uint16 = 0x0043
	vidOSEMDeviationYaw      uint16 = 0x0044
	vidOSEMHeabTimeout       uint16 = 0x0076
	vidOSEMTestMode          uint16 = 0x0078
	vidOSEMTimeServerIP      uint16 = 0x007A
	vidOSEMTimeServerPort    uint16 = 0x007B
)

// EncodeOSEM writes the OSEM message for s into buf.
func EncodeOSEM(ctx *Context, in HeaderInput, s ObjectSettings, buf []byte) (int, error) {
	var b bodyBuilder

	b.putU32(vidOSEMTransmitterID, s.DesiredTransmitterID)

	lat, err := LatLonToWire(s.OriginLatitudeDeg, s.IsOriginPositionValid, sentinelLatitude)
	if err != nil {
		return 0, err
	}
	b.putI48(vidOSEMLatitude, lat)

	lon, err := LatLonToWire(s.OriginLongitudeDeg, s.IsOriginPositionValid, sentinelLongitude)
	if err != nil {
		return 0, err
	}
	b.putI48(vidOSEMLongitude, lon)

	alt, err := AltitudeToWire(s.OriginAltitudeM, s.IsOriginPositionValid)
	if err != nil {
		return 0, err
	}
	b.putI32(vidOSEMAltitude, alt)

	if s.IsTimeValid {
		b.putU32(vidOSEMGPSQmsOfWeek, GPSQmsOfWeekToWire(s.GPSQmsOfWeek, true))
		b.putU16(vidOSEMGPSWeek, GPSWeekToWire(s.GPSWeek, true))
	} else {
		b.putU32(vidOSEMGPSQmsOfWeek, sentinelGPSQmsOfWeek)
		b.putU16(vidOSEMGPSWeek, sentinelGPSWeek)
	}

	heading, err := HeadingToWire(s.OriginRotationRad, true)
	if err != nil {
		return 0, err
	}
	b.putU16(vidOSEMOriginRotation, heading)
	b.putU8(vidOSEMCoordinateSystem, s.CoordinateSystem)

	devPos, err := MaxDeviationToWire(s.Deviation.PositionM, true)
	if err != nil {
		return 0, err
	}
	b.putU16(vidOSEMDeviationPosition, devPos)
	devLat, err := MaxDeviationToWire(s.Deviation.LateralM, true)
	if err != nil {
		return 0, err
	}
	b.putU16(vidOSEMDeviationLateral, devLat)
	devYaw, err := HeadingToWire(s.Deviation.YawRad, true)
	if err != nil {
		return 0, err
	}
	b.putU16(vidOSEMDeviationYaw, devYaw)

	minAcc, err := MinAccuracyToWire(s.MinPositioningAccuracyM, s.AccuracyRequired)
	if err != nil {
		return 0, err
	}
	b.putU16(vidOSEMMinPositioningAccuracy, minAcc)

	wayDev, err := MaxDeviationToWire(s.MaxWayDeviationM, s.IsMaxWayDeviationValid)
	if err != nil {
		return 0, err
	}
	b.putU16(vidOSEMMaxWayDeviation, wayDev)

	latDev, err := MaxDeviationToWire(s.MaxLateralDeviationM, s.IsMaxLateralDeviationValid)
	if err != nil {
		return 0, err
	}
	b.putU16(vidOSEMMaxLateralDeviation, latDev)

	if s.HeabTimeoutMS != 0 {
		b.putU16(vidOSEMHeabTimeout, s.HeabTimeoutMS)
	}
	if s.TestMode != 0 {
		b.putU8(vidOSEMTestMode, s.TestMode)
	}
	if s.HasTimeServer {
		b.putU32(vidOSEMTimeServerIP, s.TimeServer.IP)
		b.putU16(vidOSEMTimeServerPort, s.TimeServer.Port)
	}

	return encodeFrame(ctx, MessageIDOSEM, in, b.bytes(), buf)
}

// DecodeOSEM parses an OSEM frame from b. Unknown value IDs are
// logged-and-skipped rather than rejected, per the forward-compatible
// minority policy. Validity uses the dual-gated presence_from_tag
// rule: a field counts as valid only if its tag was seen AND its
// value isn't the sentinel.
func DecodeOSEM(ctx *Context, b []byte) (ObjectSettings, int, error) {
	h, body, total, err := decodeFrame(ctx, b, MessageIDOSEM)
	if err != nil {
		return ObjectSettings{}, 0, err
	}
	_ = h

	fields, err := readFields(body)
	if err != nil {
		return ObjectSettings{}, 0, err
	}

	var s ObjectSettings
	var latSeen, lonSeen, altSeen, qmsSeen, weekSeen bool
	var latWire, lonWire int64
	var altWire int32
	var qmsWire uint32
	var weekWire uint16
	var wayDevSeen, latDevSeen bool
	var wayDevWire, latDevWire uint16

	for _, f := range fields {
		switch f.valueID {
		case vidOSEMTransmitterID:
			v, err := fieldU32(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			s.DesiredTransmitterID = v
		case vidOSEMLatitude:
			v, err := fieldI48(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			latWire, latSeen = v, true
		case vidOSEMLongitude:
			v, err := fieldI48(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			lonWire, lonSeen = v, true
		case vidOSEMAltitude:
			v, err := fieldI32(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			altWire, altSeen = v, true
		case vidOSEMGPSQmsOfWeek:
			v, err := fieldU32(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			qmsWire, qmsSeen = v, true
		case vidOSEMGPSWeek:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			weekWire, weekSeen = v, true
		case vidOSEMOriginRotation:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			rad, _ := HeadingFromWire(v)
			s.OriginRotationRad = rad
		case vidOSEMCoordinateSystem:
			v, err := fieldU8(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			s.CoordinateSystem = v
		case vidOSEMDeviationPosition:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			m, _ := MaxDeviationFromWire(v)
			s.Deviation.PositionM = m
		case vidOSEMDeviationLateral:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			m, _ := MaxDeviationFromWire(v)
			s.Deviation.LateralM = m
		case vidOSEMDeviationYaw:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			rad, _ := HeadingFromWire(v)
			s.Deviation.YawRad = rad
		case vidOSEMMinPositioningAccuracy:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			m, required := MinAccuracyFromWire(v)
			s.MinPositioningAccuracyM, s.AccuracyRequired = m, required
		case vidOSEMMaxWayDeviation:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			wayDevWire, wayDevSeen = v, true
		case vidOSEMMaxLateralDeviation:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			latDevWire, latDevSeen = v, true
		case vidOSEMHeabTimeout:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			s.HeabTimeoutMS = v
		case vidOSEMTestMode:
			v, err := fieldU8(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			s.TestMode = v
		case vidOSEMTimeServerIP:
			v, err := fieldU32(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			s.TimeServer.IP = v
			s.HasTimeServer = true
		case vidOSEMTimeServerPort:
			v, err := fieldU16(f)
			if err != nil {
				return ObjectSettings{}, 0, err
			}
			s.TimeServer.Port = v
			s.HasTimeServer = true
		default:
			ctx.trace("decode OSEM: skipping unknown value id 0x%04x", f.valueID)
		}
	}

	lat, _ := LatLonFromWire(latWire, sentinelLatitude)
	lon, _ := LatLonFromWire(lonWire, sentinelLongitude)
	alt, _ := AltitudeFromWire(altWire)
	s.OriginLatitudeDeg, s.OriginLongitudeDeg, s.OriginAltitudeM = lat, lon, alt
	s.IsOriginPositionValid = PresenceFromTag(latSeen, latWire == sentinelLatitude) &&
		PresenceFromTag(lonSeen, lonWire == sentinelLongitude) &&
		PresenceFromTag(altSeen, altWire == sentinelAltitude)

	qms, _ := GPSQmsOfWeekFromWire(qmsWire)
	week, _ := GPSWeekFromWire(weekWire)
	s.GPSQmsOfWeek, s.GPSWeek = qms, week
	s.IsTimeValid = PresenceFromTag(qmsSeen, qmsWire == sentinelGPSQmsOfWeek) &&
		PresenceFromTag(weekSeen, weekWire == sentinelGPSWeek)

	wayDev, _ := MaxDeviationFromWire(wayDevWire)
	s.MaxWayDeviationM = wayDev
	s.IsMaxWayDeviationValid = PresenceFromTag(wayDevSeen, wayDevWire == sentinelMaxDeviation)

	latDev, _ := MaxDeviationFromWire(latDevWire)
	s.MaxLateralDeviationM = latDev
	s.IsMaxLateralDeviationValid = PresenceFromTag(latDevSeen, latDevWire == sentinelMaxDeviation)

	return s, total, nil
}
