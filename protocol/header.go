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

// SyncWord is the fixed marker every ISO 22133 frame starts with.
const SyncWord uint16 = 0x7E7F

// HeaderSize is the length in bytes of the common frame prolog.
const HeaderSize = 18

// FooterSize is the length in bytes of the CRC epilog.
const FooterSize = 2

// ProtocolVersion is the version this codec implements and builds.
const ProtocolVersion uint8 = 2

// supportedProtocolVersions is the set of protocol versions decode_header
// accepts in the low 7 bits of AckReqProtVer.
var supportedProtocolVersions = map[uint8]bool{2: true}

const ackRequestBit uint8 = 0x80
const protocolVersionMask uint8 = 0x7f

// Header is the 18-byte frame prolog common to every ISO 22133 message.
type Header struct {
	SyncWord        uint16
	MessageLength   uint32 // count of Body bytes only
	AckRequest      bool
	ProtocolVersion uint8
	TransmitterID   uint32
	ReceiverID      uint32
	MessageCounter  uint8
	MessageID       uint16
}

// HeaderInput carries the caller-supplied fields BuildHeader doesn't
// derive from the frame size: who's sending/receiving and the rolling
// message counter. Protocol version and sync word are filled in by
// BuildHeader itself.
type HeaderInput struct {
	TransmitterID  uint32
	ReceiverID     uint32
	MessageCounter uint8
	AckRequest     bool
}

// DecodeHeader parses the first HeaderSize bytes of b. On any failure the
// returned Header is the zero value.
func DecodeHeader(ctx *Context, b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, newErr(ErrShortBuffer, "need %d bytes for header, have %d", HeaderSize, len(b))
	}
	c := newCursor(b[:HeaderSize])

	sync, _ := c.readU16()
	if sync != SyncWord {
		ctx.trace("decode header: bad sync word 0x%04x", sync)
		return Header{}, newErr(ErrSyncWord, "sync word 0x%04x != 0x%04x", sync, SyncWord)
	}

	msgLen, _ := c.readU32()
	ackProtVer, _ := c.readU8()
	version := ackProtVer & protocolVersionMask
	if !supportedProtocolVersions[version] {
		ctx.trace("decode header: unsupported protocol version %d", version)
		return Header{}, newErr(ErrVersion, "unsupported protocol version %d", version)
	}
	txID, _ := c.readU32()
	rxID, _ := c.readU32()
	counter, _ := c.readU8()
	msgID, _ := c.readU16()

	h := Header{
		SyncWord:        sync,
		MessageLength:   msgLen,
		AckRequest:      ackProtVer&ackRequestBit != 0,
		ProtocolVersion: version,
		TransmitterID:   txID,
		ReceiverID:      rxID,
		MessageCounter:  counter,
		MessageID:       msgID,
	}
	ctx.trace("decode header: %+v", h)
	return h, nil
}

// BuildHeader constructs a Header for messageID given the caller-supplied
// sender/receiver/counter fields and the total size of the frame being
// produced (header + body + footer). MessageLength is derived from
// totalFrameSize; it is never supplied directly, eliminating the
// forgot-to-update-the-length-field class of bug.
func BuildHeader(ctx *Context, messageID uint16, in HeaderInput, totalFrameSize int) (Header, error) {
	if totalFrameSize < HeaderSize+FooterSize {
		return Header{}, newErr(ErrInvalid, "frame size %d too small to hold header+footer", totalFrameSize)
	}
	ackProtVer := ProtocolVersion & protocolVersionMask
	if in.AckRequest {
		ackProtVer |= ackRequestBit
	}
	h := Header{
		SyncWord:        SyncWord,
		MessageLength:   uint32(totalFrameSize - HeaderSize - FooterSize),
		AckRequest:      in.AckRequest,
		ProtocolVersion: ProtocolVersion,
		TransmitterID:   in.TransmitterID,
		ReceiverID:      in.ReceiverID,
		MessageCounter:  in.MessageCounter,
		MessageID:       messageID,
	}
	ctx.trace("build header: %+v", h)
	return h, nil
}

// EncodeTo writes the header into b[:HeaderSize].
func (h Header) EncodeTo(b []byte) error {
	if len(b) < HeaderSize {
		return newErr(ErrShortBuffer, "need %d bytes for header, have %d", HeaderSize, len(b))
	}
	c := newCursor(b[:HeaderSize])
	_ = c.writeU16(h.SyncWord)
	_ = c.writeU32(h.MessageLength)
	ackProtVer := h.ProtocolVersion & protocolVersionMask
	if h.AckRequest {
		ackProtVer |= ackRequestBit
	}
	_ = c.writeU8(ackProtVer)
	_ = c.writeU32(h.TransmitterID)
	_ = c.writeU32(h.ReceiverID)
	_ = c.writeU8(h.MessageCounter)
	_ = c.writeU16(h.MessageID)
	return nil
}

// DecodeFooter reads the 2-byte little-endian CRC that trails a frame.
func DecodeFooter(b []byte) (uint16, error) {
	if len(b) < FooterSize {
		return 0, newErr(ErrShortBuffer, "need %d bytes for footer, have %d", FooterSize, len(b))
	}
	c := newCursor(b[:FooterSize])
	crc, _ := c.readU16()
	return crc, nil
}

// EncodeFooter writes crc as the 2-byte little-endian footer into b.
func EncodeFooter(b []byte, crc uint16) error {
	if len(b) < FooterSize {
		return newErr(ErrShortBuffer, "need %d bytes for footer, have %d", FooterSize, len(b))
	}
	c := newCursor(b[:FooterSize])
	return c.writeU16(crc)
}

// VerifyFrameCRC checks frameBytes (header..body, excluding the trailing
// footer) against declaredCRC. Per §4.3/§7, a declared CRC of 0x0000
// means "sender disabled CRC" and always verifies successfully; so does
// a disabled Context.CRCVerification.
func VerifyFrameCRC(ctx *Context, frameBytes []byte, declaredCRC uint16) error {
	if ctx != nil && !ctx.CRCVerification {
		return nil
	}
	if declaredCRC == 0 {
		return nil
	}
	computed := CRC16(frameBytes)
	if computed != declaredCRC {
		return newErr(ErrCRC, "crc mismatch: computed 0x%04x, declared 0x%04x", computed, declaredCRC)
	}
	return nil
}
