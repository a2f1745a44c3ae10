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
	vidRDCAIntendedReceiver    uint16 = 0x0100
	vidRDCAGPSQmsOfWeek        uint16 = 0x010A
	vidRDCASteeringAngle       uint16 = 0x0204
	vidRDCASteeringPercentage  uint16 = 0x0205
	vidRDCASpeedMeterPerSecond uint16 = 0x0206
	vidRDCASpeedPercentage     uint16 = 0x0207
)

// EncodeRDCA writes the RDCA message for r into buf. Either of Speed
// or Steering may be marked invalid, in which case its field is
// omitted entirely (the frame is shorter than the static maximum).
func EncodeRDCA(ctx *Context, in HeaderInput, r RequestControlAction, buf []byte) (int, error) {
	var b bodyBuilder
	b.putU32(vidRDCAIntendedReceiver, r.IntendedReceiver)
	b.putU32(vidRDCAGPSQmsOfWeek, GPSQmsOfWeekToWire(r.GPSQmsOfWeek, r.IsTimeValid))

	if r.Steering.Valid {
		switch r.Steering.Unit {
		case SteeringUnitAngle:
			wire, err := SteeringAngleToWire(r.Steering.AngleRad, true)
			if err != nil {
				return 0, err
			}
			b.putI16(vidRDCASteeringAngle, wire)
		case SteeringUnitPercent:
			wire, err := PercentToWire(r.Steering.Percent, -100, 100)
			if err != nil {
				return 0, err
			}
			b.putI16(vidRDCASteeringPercentage, wire)
		}
	}

	if r.Speed.Valid {
		switch r.Speed.Unit {
		case SpeedUnitMeterPerSecond:
			wire, err := SpeedToWire(r.Speed.MetersPerSecond, true)
			if err != nil {
				return 0, err
			}
			b.putI16(vidRDCASpeedMeterPerSecond, wire)
		case SpeedUnitPercent:
			wire, err := PercentToWire(r.Speed.Percent, -100, 100)
			if err != nil {
				return 0, err
			}
			b.putI16(vidRDCASpeedPercentage, wire)
		}
	}

	return encodeFrame(ctx, MessageIDRDCA, in, b.bytes(), buf)
}

// DecodeRDCA parses an RDCA frame from b. If both the angle and
// percentage wire VIDs for a given field appear in one frame, the
// second overwrites the first - a documented policy, not a fault.
func DecodeRDCA(ctx *Context, b []byte) (RequestControlAction, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDRDCA)
	if err != nil {
		return RequestControlAction{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return RequestControlAction{}, 0, err
	}
	var r RequestControlAction
	var qmsWire uint32 = sentinelGPSQmsOfWeek
	for _, f := range fields {
		switch f.valueID {
		case vidRDCAIntendedReceiver:
			v, err := fieldU32(f)
			if err != nil {
				return RequestControlAction{}, 0, err
			}
			r.IntendedReceiver = v
		case vidRDCAGPSQmsOfWeek:
			v, err := fieldU32(f)
			if err != nil {
				return RequestControlAction{}, 0, err
			}
			qmsWire = v
		case vidRDCASteeringAngle:
			v, err := fieldI16(f)
			if err != nil {
				return RequestControlAction{}, 0, err
			}
			rad, valid := SteeringAngleFromWire(v)
			r.Steering = SteeringManoeuvre{Unit: SteeringUnitAngle, Valid: valid, AngleRad: rad}
		case vidRDCASteeringPercentage:
			v, err := fieldI16(f)
			if err != nil {
				return RequestControlAction{}, 0, err
			}
			r.Steering = SteeringManoeuvre{Unit: SteeringUnitPercent, Valid: true, Percent: PercentFromWire(v)}
		case vidRDCASpeedMeterPerSecond:
			v, err := fieldI16(f)
			if err != nil {
				return RequestControlAction{}, 0, err
			}
			mps, valid := SpeedFromWire(v)
			r.Speed = SpeedManoeuvre{Unit: SpeedUnitMeterPerSecond, Valid: valid, MetersPerSecond: mps}
		case vidRDCASpeedPercentage:
			v, err := fieldI16(f)
			if err != nil {
				return RequestControlAction{}, 0, err
			}
			r.Speed = SpeedManoeuvre{Unit: SpeedUnitPercent, Valid: true, Percent: PercentFromWire(v)}
		default:
			return RequestControlAction{}, 0, newErr(ErrValueID, "rdca: unexpected value id 0x%04x", f.valueID)
		}
	}
	qms, valid := GPSQmsOfWeekFromWire(qmsWire)
	r.GPSQmsOfWeek, r.IsTimeValid = qms, valid
	return r, total, nil
}
