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

// encodeFrame assembles header + body + CRC footer into buf, implementing
// the common encode_X contract shared by every non-streamed message.
func encodeFrame(ctx *Context, messageID uint16, in HeaderInput, body []byte, buf []byte) (int, error) {
	total := HeaderSize + len(body) + FooterSize
	if len(buf) < total {
		return 0, newErr(ErrShortBuffer, "need %d bytes for %s frame, have %d", total, messageName(messageID), len(buf))
	}
	h, err := BuildHeader(ctx, messageID, in, total)
	if err != nil {
		return 0, err
	}
	if err := h.EncodeTo(buf[:HeaderSize]); err != nil {
		return 0, err
	}
	copy(buf[HeaderSize:HeaderSize+len(body)], body)
	crc := CRC16(buf[:HeaderSize+len(body)])
	if err := EncodeFooter(buf[HeaderSize+len(body):total], crc); err != nil {
		return 0, err
	}
	return total, nil
}

// decodeFrame parses the common header/body/footer shape and verifies
// the frame CRC, implementing the common decode_X contract. It returns
// the header, the raw body bytes, and the total frame length consumed.
func decodeFrame(ctx *Context, b []byte, expectedID uint16) (Header, []byte, int, error) {
	h, err := DecodeHeader(ctx, b)
	if err != nil {
		return Header{}, nil, 0, err
	}
	if h.MessageID != expectedID {
		return Header{}, nil, 0, newErr(ErrMessageType, "expected message id 0x%04x, got 0x%04x", expectedID, h.MessageID)
	}
	bodyLen := int(h.MessageLength)
	if max, ok := messageMaxBodyLen[expectedID]; ok && bodyLen > max {
		return Header{}, nil, 0, newErr(ErrLength, "%s: declared body length %d exceeds static maximum %d", messageName(expectedID), bodyLen, max)
	}
	total := HeaderSize + bodyLen + FooterSize
	if len(b) < total {
		return Header{}, nil, 0, newErr(ErrShortBuffer, "need %d bytes for %s frame, have %d", total, messageName(expectedID), len(b))
	}
	body := b[HeaderSize : HeaderSize+bodyLen]
	crc, err := DecodeFooter(b[HeaderSize+bodyLen : total])
	if err != nil {
		return Header{}, nil, 0, err
	}
	if err := VerifyFrameCRC(ctx, b[:HeaderSize+bodyLen], crc); err != nil {
		return Header{}, nil, 0, err
	}
	return h, body, total, nil
}

// messageMaxBodyLen bounds the worst-case encoded body size for every
// fixed-field-alphabet message type: every optional field present at
// once, each at its widest tagged form. decodeFrame rejects a declared
// MessageLength in excess of this before any field is parsed. TRAJ
// isn't listed here - its body legitimately grows with point count and
// is bounded by the streaming decoder instead.
var messageMaxBodyLen = map[uint16]int{
	MessageIDOSEM:  122,
	MessageIDOSTM:  5,
	MessageIDSTRT:  14,
	MessageIDHEAB:  9,
	MessageIDMONR:  36,
	MessageIDSYPM:  16,
	MessageIDMTSP:  8,
	MessageIDTRCM:  36,
	MessageIDACCM:  36,
	MessageIDTREO:  14,
	MessageIDEXAC:  14,
	MessageIDRCMM:  22,
	MessageIDPODI:  75,
	MessageIDOPRO:  65,
	MessageIDFOPR:  73,
	MessageIDGDRM:  6,
	MessageIDDCTI:  20,
	MessageIDRDCA:  28,
	MessageIDGREM:  5,
	MessageIDDCMM:  22,
	MessageIDINSUP: 5,
}

var messageIDToName = map[uint16]string{
	MessageIDOSEM: "OSEM", MessageIDOSTM: "OSTM", MessageIDSTRT: "STRT",
	MessageIDHEAB: "HEAB", MessageIDMONR: "MONR", MessageIDSYPM: "SYPM",
	MessageIDMTSP: "MTSP", MessageIDTRCM: "TRCM", MessageIDACCM: "ACCM",
	MessageIDTREO: "TREO", MessageIDEXAC: "EXAC", MessageIDRCMM: "RCMM",
	MessageIDTRAJ: "TRAJ", MessageIDPODI: "PODI", MessageIDOPRO: "OPRO",
	MessageIDFOPR: "FOPR", MessageIDGDRM: "GDRM", MessageIDDCTI: "DCTI",
	MessageIDRDCA: "RDCA", MessageIDGREM: "GREM", MessageIDDCMM: "DCMM",
	MessageIDINSUP: "INSUP",
}

func messageName(id uint16) string {
	if n, ok := messageIDToName[id]; ok {
		return n
	}
	return "unknown"
}

// MessageName returns the short mnemonic for a message ID (e.g. "MONR"),
// or "unknown" if it isn't recognised.
func MessageName(id uint16) string {
	return messageName(id)
}
