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

// DebugSink receives human-readable trace lines from the codec when a
// call is made with debug=true. The codec never prints directly; the
// caller decides where traces go (logrus, stderr, nowhere).
type DebugSink func(format string, args ...any)

// Context carries the handful of values the original C implementation
// kept as process-global mutable state: the transmitter ID used when
// building headers, whether CRC verification is enforced, and the
// sink debug traces are written to. Threading it explicitly (rather
// than through package-level globals) makes concurrent encode/decode
// safe and makes the TRAJ streaming invariant (§4.7) locally
// enforceable through TrajEncoder's own type instead of a shared flag.
type Context struct {
	// TransmitterID is used as the header's TransmitterID when building
	// frames that don't carry their own explicit transmitter.
	TransmitterID uint8
	// CRCVerification, when false, makes VerifyFrameCRC always succeed.
	CRCVerification bool
	// Debug, when true, causes Sink to be called from codec paths.
	Debug bool
	// Sink receives debug traces. A nil Sink with Debug=true is a no-op.
	Sink DebugSink
}

// DefaultTransmitterID is the transmitter ID used when none has been
// configured, matching the "unconfigured" sentinel used throughout the
// source (0xFF, distinct from any real transmitter).
const DefaultTransmitterID uint8 = 0xFF

// NewContext returns a Context with CRC verification enabled and the
// default transmitter ID, mirroring the source's static initial state
// (`init = enabled`).
func NewContext() *Context {
	return &Context{
		TransmitterID:   DefaultTransmitterID,
		CRCVerification: true,
	}
}

func (ctx *Context) trace(format string, args ...any) {
	if ctx != nil && ctx.Debug && ctx.Sink != nil {
		ctx.Sink(format, args...)
	}
}

// SetTransmitterID sets the transmitter ID this Context builds headers
// with.
func (ctx *Context) SetTransmitterID(id uint8) {
	ctx.TransmitterID = id
}

// GetTransmitterID returns the transmitter ID this Context builds
// headers with.
func (ctx *Context) GetTransmitterID() uint8 {
	return ctx.TransmitterID
}

// SetCRCVerification toggles whether VerifyFrameCRC enforces a mismatch
// as an error.
func (ctx *Context) SetCRCVerification(enabled bool) {
	ctx.CRCVerification = enabled
}
