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
	vidRCMMControlStatus       uint16 = 0x0001
	vidRCMMSpeedMeterPerSecond uint16 = 0x0011
	vidRCMMSteeringAngle       uint16 = 0x0012
	vidRCMMSteeringPercentage  uint16 = 0x0031
	vidRCMMSpeedPercentage     uint16 = 0x0032
	vidRCMMCommand             uint16 = 0xA201
)

// rcmmBody renders the shared RCMM/DCMM payload: the outer message ID
// is the only difference between the two (DCMM lies in the
// vendor-specific span), so both encoders/decoders funnel through
// here.
func rcmmBody(m RemoteControlManoeuvre) (*bodyBuilder, error) {
	var b bodyBuilder
	b.putU8(vidRCMMControlStatus, uint8(m.Status))

	if m.Speed.Valid {
		switch m.Speed.Unit {
		case SpeedUnitMeterPerSecond:
			wire, err := SpeedToWire(m.Speed.MetersPerSecond, true)
			if err != nil {
				return nil, err
			}
			b.putI16(vidRCMMSpeedMeterPerSecond, wire)
		case SpeedUnitPercent:
			wire, err := PercentToWire(m.Speed.Percent, -100, 100)
			if err != nil {
				return nil, err
			}
			b.putI16(vidRCMMSpeedPercentage, wire)
		}
	}

	if m.Steering.Valid {
		switch m.Steering.Unit {
		case SteeringUnitAngle:
			wire, err := SteeringAngleToWire(m.Steering.AngleRad, true)
			if err != nil {
				return nil, err
			}
			b.putI16(vidRCMMSteeringAngle, wire)
		case SteeringUnitPercent:
			wire, err := PercentToWire(m.Steering.Percent, -100, 100)
			if err != nil {
				return nil, err
			}
			b.putI16(vidRCMMSteeringPercentage, wire)
		}
	}

	if m.HasCommand {
		b.putU8(vidRCMMCommand, uint8(m.Command))
	}

	return &b, nil
}

func rcmmParse(fields []field) (RemoteControlManoeuvre, error) {
	var m RemoteControlManoeuvre
	for _, f := range fields {
		switch f.valueID {
		case vidRCMMControlStatus:
			v, err := fieldU8(f)
			if err != nil {
				return RemoteControlManoeuvre{}, err
			}
			m.Status = ControlStatus(v)
		case vidRCMMSpeedMeterPerSecond:
			v, err := fieldI16(f)
			if err != nil {
				return RemoteControlManoeuvre{}, err
			}
			mps, valid := SpeedFromWire(v)
			m.Speed = SpeedManoeuvre{Unit: SpeedUnitMeterPerSecond, Valid: valid, MetersPerSecond: mps}
		case vidRCMMSpeedPercentage:
			v, err := fieldI16(f)
			if err != nil {
				return RemoteControlManoeuvre{}, err
			}
			m.Speed = SpeedManoeuvre{Unit: SpeedUnitPercent, Valid: true, Percent: PercentFromWire(v)}
		case vidRCMMSteeringAngle:
			v, err := fieldI16(f)
			if err != nil {
				return RemoteControlManoeuvre{}, err
			}
			rad, valid := SteeringAngleFromWire(v)
			m.Steering = SteeringManoeuvre{Unit: SteeringUnitAngle, Valid: valid, AngleRad: rad}
		case vidRCMMSteeringPercentage:
			v, err := fieldI16(f)
			if err != nil {
				return RemoteControlManoeuvre{}, err
			}
			m.Steering = SteeringManoeuvre{Unit: SteeringUnitPercent, Valid: true, Percent: PercentFromWire(v)}
		case vidRCMMCommand:
			v, err := fieldU8(f)
			if err != nil {
				return RemoteControlManoeuvre{}, err
			}
			m.Command, m.HasCommand = ObjectCommand(v), true
		default:
			return RemoteControlManoeuvre{}, newErr(ErrValueID, "rcmm: unexpected value id 0x%04x", f.valueID)
		}
	}
	return m, nil
}

// EncodeRCMM writes the RCMM message for m into buf.
func EncodeRCMM(ctx *Context, in HeaderInput, m RemoteControlManoeuvre, buf []byte) (int, error) {
	b, err := rcmmBody(m)
	if err != nil {
		return 0, err
	}
	return encodeFrame(ctx, MessageIDRCMM, in, b.bytes(), buf)
}

// DecodeRCMM parses an RCMM frame from b.
func DecodeRCMM(ctx *Context, b []byte) (RemoteControlManoeuvre, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDRCMM)
	if err != nil {
		return RemoteControlManoeuvre{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return RemoteControlManoeuvre{}, 0, err
	}
	m, err := rcmmParse(fields)
	if err != nil {
		return RemoteControlManoeuvre{}, 0, err
	}
	return m, total, nil
}

// EncodeDCMM writes the DCMM message for m into buf. DCMM is
// wire-identical to RCMM except for the outer message ID, which lies
// in the vendor-specific span.
func EncodeDCMM(ctx *Context, in HeaderInput, m RemoteControlManoeuvre, buf []byte) (int, error) {
	b, err := rcmmBody(m)
	if err != nil {
		return 0, err
	}
	return encodeFrame(ctx, MessageIDDCMM, in, b.bytes(), buf)
}

// DecodeDCMM parses a DCMM frame from b.
func DecodeDCMM(ctx *Context, b []byte) (RemoteControlManoeuvre, int, error) {
	_, body, total, err := decodeFrame(ctx, b, MessageIDDCMM)
	if err != nil {
		return RemoteControlManoeuvre{}, 0, err
	}
	fields, err := readFields(body)
	if err != nil {
		return RemoteControlManoeuvre{}, 0, err
	}
	m, err := rcmmParse(fields)
	if err != nil {
		return RemoteControlManoeuvre{}, 0, err
	}
	return m, total, nil
}
