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

import "fmt"

// ErrorKind classifies why an encode or decode call failed, so that a
// caller can decide whether to discard a frame, resync a stream, or drop
// the connection entirely.
type ErrorKind uint8

// Error kinds, as per the wire protocol's error taxonomy.
const (
	ErrNone ErrorKind = iota
	ErrLength
	ErrSyncWord
	ErrVersion
	ErrValueID
	ErrMessageType
	ErrCRC
	ErrShortBuffer
	ErrContentOutOfRange
	ErrInvalid
	ErrFunction
)

var errorKindToString = map[ErrorKind]string{
	ErrNone:              "OK",
	ErrLength:            "LengthError",
	ErrSyncWord:          "SyncWordError",
	ErrVersion:           "VersionError",
	ErrValueID:           "ValueIdError",
	ErrMessageType:       "MessageTypeError",
	ErrCRC:               "CrcError",
	ErrShortBuffer:       "ShortBuffer",
	ErrContentOutOfRange: "ContentOutOfRange",
	ErrInvalid:           "Invalid",
	ErrFunction:          "FunctionError",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindToString[k]; ok {
		return s
	}
	return "UnknownError"
}

// Error is the error type returned by every codec operation that fails.
// It carries the typed ErrorKind so callers can switch on it without
// parsing a message string.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, &Error{Kind: ErrShortBuffer}) matches by kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newErr(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from any error produced by this package.
// Errors from elsewhere (e.g. a wrapped io error) classify as ErrFunction.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrNone
	}
	if pe, ok := err.(*Error); ok {
		return pe.Kind
	}
	return ErrFunction
}
