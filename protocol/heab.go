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

const vidHEABStruct uint16 = 0x0090

// heabInnerSize is the packed inner struct width: u32 GPSQmsOfWeek + u8
// controlCenterStatus.
const heabInnerSize = 5

// HeartbeatStatus is the HEAB payload in host representation.
type HeartbeatStatus struct {
	GPSQmsOfWeek uint32
	IsTimeValid  bool
	Status       HeabControlCenterStatus
}

// EncodeHEAB writes the HEAB message for hb into buf. HEAB is a
// monolithic-body message: a single outer VID-L-V wraps a packed inner
// struct read positionally rather than as sub-VID-L-V fields.
func EncodeHEAB(ctx *Context, in HeaderInput, hb HeartbeatStatus, buf []byte) (int, error) {
	var b bodyBuilder
	b.tag(vidHEABStruct, heabInnerSize)
	b.buf = append(b.buf, 0, 0, 0, 0) // reserve GPSQmsOfWeek
	off := len(b.buf) - 4
	qms := GPSQmsOfWeekToWire(hb.GPSQmsOfWeek, hb.IsTimeValid)
	b.buf[off], b.buf[off+1], b.buf[off+2], b.buf[off+3] = byte(qms), byte(qms>>8), byte(qms>>16), byte(qms>>24)
	b.buf = append(b.buf, heabStatusToWire(hb.Status))

	return encodeFrame(ctx, MessageIDHEAB, in, b.bytes(), buf)
}

// DecodeHEAB parses a HEAB frame from b.
func DecodeHEAB(ctx *Context, b []byte) (HeartbeatStatus, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDHEAB)
	if err != nil {
		return HeartbeatStatus{}, 0, err
	}
	c := newCursor(body)
	valueID, err := c.readU16()
	if err != nil {
		return HeartbeatStatus{}, 0, err
	}
	if valueID != vidHEABStruct {
		return HeartbeatStatus{}, 0, newErr(ErrValueID, "heab: unexpected outer value id 0x%04x", valueID)
	}
	contentLength, err := c.readU16()
	if err != nil {
		return HeartbeatStatus{}, 0, err
	}
	if int(contentLength) != heabInnerSize {
		return HeartbeatStatus{}, 0, newErr(ErrLength, "heab: inner struct length %d != %d", contentLength, heabInnerSize)
	}
	qmsWire, err := c.readU32()
	if err != nil {
		return HeartbeatStatus{}, 0, err
	}
	statusWire, err := c.readU8()
	if err != nil {
		return HeartbeatStatus{}, 0, err
	}

	qms, valid := GPSQmsOfWeekFromWire(qmsWire)
	return HeartbeatStatus{
		GPSQmsOfWeek: qms,
		IsTimeValid:  valid,
		Status:       heabStatusFromWire(statusWire),
	}, total, nil
}
