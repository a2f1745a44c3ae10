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
	vidSTRTGPSQmsOfWeek uint16 = 0x0002
	vidSTRTGPSWeek      uint16 = 0x0003
)

// StartTime is STRT's optional start-of-test time. When IsValid is
// false both wire fields carry their unavailable sentinels.
type StartTime struct {
	GPSQmsOfWeek uint32
	GPSWeek      uint16
	IsValid      bool
}

// EncodeSTRT writes the STRT message for t into buf.
func EncodeSTRT(ctx *Context, in HeaderInput, t StartTime, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU32(vidSTRTGPSQmsOfWeek, GPSQmsOfWeekToWire(t.GPSQmsOfWeek, t.IsValid))
	b.putU16(vidSTRTGPSWeek, GPSWeekToWire(t.GPSWeek, t.IsValid))
	return encodeFrame(ctx, MessageIDSTRT, in, b.bytes(), buf)
}

// DecodeSTRT parses an STRT frame from b.
func DecodeSTRT(ctx *Context, b []byte) (StartTime, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDSTRT)
	if err != nil {
		return StartTime{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return StartTime{}, 0, err
	}
	var t StartTime
	var qmsWire uint32 = sentinelGPSQmsOfWeek
	var weekWire uint16 = sentinelGPSWeek
	var qmsSeen, weekSeen bool
	for _, f := range fields {
		switch f.valueID {
		case vidSTRTGPSQmsOfWeek:
			v, err := fieldU32(f)
			if err != nil {
				return StartTime{}, 0, err
			}
			qmsWire, qmsSeen = v, true
		case vidSTRTGPSWeek:
			v, err := fieldU16(f)
			if err != nil {
				return StartTime{}, 0, err
			}
			weekWire, weekSeen = v, true
		default:
			return StartTime{}, 0, newErr(ErrValueID, "strt: unexpected value id 0x%04x", f.valueID)
		}
	}
	qms, _ := GPSQmsOfWeekFromWire(qmsWire)
	week, _ := GPSWeekFromWire(weekWire)
	t.GPSQmsOfWeek, t.GPSWeek = qms, week
	t.IsValid = PresenceFromTag(qmsSeen, qmsWire == sentinelGPSQmsOfWeek) &&
		PresenceFromTag(weekSeen, weekWire == sentinelGPSWeek)
	return t, total, nil
}
