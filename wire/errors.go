// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"errors"
	"fmt"
	"math/big"
)

// EncodingError indicates a value that cannot be represented in the
// requested fixed-width encoding
type EncodingError struct {
	Value  *big.Int
	Length int
}

func (e EncodingError) Error() string {
	return fmt.Sprintf(
		"value %s does not fit in %d byte(s)",
		e.Value.String(),
		e.Length,
	)
}

// Sentinel error for fixed-width encoding failures so callers can use errors.Is
var ErrEncoding = errors.New("value does not fit requested width")

func (EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// ValueTooLargeError indicates a varint input outside the 64-bit range
type ValueTooLargeError struct {
	Value *big.Int
}

func (e ValueTooLargeError) Error() string {
	return fmt.Sprintf("integer too large for varint: %s", e.Value.String())
}

var ErrValueTooLarge = errors.New("integer too large for varint")

func (ValueTooLargeError) Is(target error) bool {
	return target == ErrValueTooLarge
}

// StreamExhaustedError indicates a stream that yielded fewer bytes than a
// read required
type StreamExhaustedError struct {
	Wanted int
	Err    error
}

func (e StreamExhaustedError) Error() string {
	return fmt.Sprintf(
		"stream exhausted: wanted %d byte(s): %v",
		e.Wanted,
		e.Err,
	)
}

func (e StreamExhaustedError) Unwrap() error { return e.Err }

var ErrStreamExhausted = errors.New("stream exhausted")

func (StreamExhaustedError) Is(target error) bool {
	return target == ErrStreamExhausted
}

// FormatError indicates a malformed hex string
type FormatError struct {
	Input string
	Err   error
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed hex string %q: %v", e.Input, e.Err)
}

func (e FormatError) Unwrap() error { return e.Err }

var ErrFormat = errors.New("malformed hex string")

func (FormatError) Is(target error) bool {
	return target == ErrFormat
}
