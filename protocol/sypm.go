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
	vidSYPMSyncPointTime uint16 = 0x0001
	vidSYPMFreezeTime    uint16 = 0x0002
)

// SyncPoint is the SYPM payload: a rendezvous time and the time at
// which object speed should be frozen ahead of it, both quarter
// milliseconds of week.
type SyncPoint struct {
	SyncPointTimeQms uint32
	FreezeTimeQms    uint32
}

// EncodeSYPM writes the SYPM message for s into buf.
func EncodeSYPM(ctx *Context, in HeaderInput, s SyncPoint, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU32(vidSYPMSyncPointTime, s.SyncPointTimeQms)
	b.putU32(vidSYPMFreezeTime, s.FreezeTimeQms)
	return encodeFrame(ctx, MessageIDSYPM, in, b.bytes(), buf)
}

// DecodeSYPM parses a SYPM frame from b.
func DecodeSYPM(ctx *Context, b []byte) (SyncPoint, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDSYPM)
	if err != nil {
		return SyncPoint{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return SyncPoint{}, 0, err
	}
	var s SyncPoint
	for _, f := range fields {
		switch f.valueID {
		case vidSYPMSyncPointTime:
			v, err := fieldU32(f)
			if err != nil {
				return SyncPoint{}, 0, err
			}
			s.SyncPointTimeQms = v
		case vidSYPMFreezeTime:
			v, err := fieldU32(f)
			if err != nil {
				return SyncPoint{}, 0, err
			}
			s.FreezeTimeQms = v
		default:
			return SyncPoint{}, 0, newErr(ErrValueID, "sypm: unexpected value id 0x%04x", f.valueID)
		}
	}
	return s, total, nil
}
