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
	"io"
	"math/big"
)

// Varint marker bytes. Values below VarintMarker2 encode as themselves in
// a single byte; the markers select a 2/4/8 byte little-endian extension.
const (
	VarintMarker2 = 0xfd
	VarintMarker4 = 0xfe
	VarintMarker8 = 0xff
)

// maxVarint is one past the largest encodable value (2^64)
var maxVarint = new(big.Int).Lsh(big.NewInt(1), 64)

// ReadVarint reads a variable-length integer from r. It consumes a single
// marker byte and, depending on its value, up to 8 extension bytes. A
// stream that runs out of bytes at any step returns StreamExhaustedError.
func ReadVarint(r io.Reader) (uint64, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, StreamExhaustedError{
			Wanted: 1,
			Err:    err,
		}
	}
	var extLen int
	switch buf[0] {
	case VarintMarker2:
		extLen = 2
	case VarintMarker4:
		extLen = 4
	case VarintMarker8:
		extLen = 8
	default:
		return uint64(buf[0]), nil
	}
	if _, err := io.ReadFull(r, buf[:extLen]); err != nil {
		return 0, StreamExhaustedError{
			Wanted: extLen,
			Err:    err,
		}
	}
	return UintFromLE(buf[:extLen])
}

// WriteVarint encodes v using the narrowest of the 1/3/5/9 byte forms
func WriteVarint(v uint64) []byte {
	return AppendVarint(nil, v)
}

// AppendVarint appends the varint encoding of v to dst and returns the
// extended slice
func AppendVarint(dst []byte, v uint64) []byte {
	switch {
	case v < VarintMarker2:
		return append(dst, byte(v))
	case v < 0x10000:
		le, _ := UintToLE(v, 2)
		return append(append(dst, VarintMarker2), le...)
	case v < 0x100000000:
		le, _ := UintToLE(v, 4)
		return append(append(dst, VarintMarker4), le...)
	default:
		le, _ := UintToLE(v, 8)
		return append(append(dst, VarintMarker8), le...)
	}
}

// WriteVarintBig encodes an arbitrary-precision value. Values outside
// [0, 2^64) return ValueTooLargeError; within range the encoding matches
// WriteVarint.
func WriteVarintBig(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 || v.Cmp(maxVarint) >= 0 {
		return nil, ValueTooLargeError{
			Value: new(big.Int).Set(v),
		}
	}
	return WriteVarint(v.Uint64()), nil
}

// VarintLen returns the encoded size of v in bytes without encoding it
func VarintLen(v uint64) int {
	switch {
	case v < VarintMarker2:
		return 1
	case v < 0x10000:
		return 3
	case v < 0x100000000:
		return 5
	default:
		return 9
	}
}
