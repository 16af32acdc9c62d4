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

package base58

import (
	"errors"
	"fmt"
)

// AlphabetError indicates an input character outside the base-58 alphabet
type AlphabetError struct {
	Char rune
	Pos  int
}

func (e AlphabetError) Error() string {
	return fmt.Sprintf(
		"invalid base58 character %q at position %d",
		e.Char,
		e.Pos,
	)
}

// Sentinel error for alphabet violations so callers can use errors.Is
var ErrAlphabet = errors.New("invalid base58 character")

func (AlphabetError) Is(target error) bool {
	return target == ErrAlphabet
}

// DecodedLengthError indicates a decoded number that does not fit the
// fixed width requested by the caller
type DecodedLengthError struct {
	Input    string
	Expected int
	Actual   int
}

func (e DecodedLengthError) Error() string {
	return fmt.Sprintf(
		"decoded value of %q needs %d byte(s), requested width is %d",
		e.Input,
		e.Actual,
		e.Expected,
	)
}

var ErrDecodedLength = errors.New("decoded value exceeds requested width")

func (DecodedLengthError) Is(target error) bool {
	return target == ErrDecodedLength
}

// ChecksumError indicates a verifying decode whose trailing checksum bytes
// do not match the double-hash of the payload
type ChecksumError struct {
	Input string
}

func (e ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch decoding %q", e.Input)
}

var ErrChecksum = errors.New("base58 checksum mismatch")

func (ChecksumError) Is(target error) bool {
	return target == ErrChecksum
}
