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

// Package wire implements the low-level binary codecs of the ledger wire
// format: fixed-width little-endian integers, hex byte-order reversal,
// and CompactSize varints
package wire

import (
	"encoding/hex"
	"math/big"
)

// UintFromLE interprets b as a little-endian unsigned integer. Inputs
// longer than 8 bytes do not fit a uint64 and return EncodingError; use
// BigFromLE for arbitrary lengths.
func UintFromLE(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, EncodingError{
			Value:  BigFromLE(b),
			Length: 8,
		}
	}
	var ret uint64
	for i := len(b) - 1; i >= 0; i-- {
		ret = ret<<8 | uint64(b[i])
	}
	return ret, nil
}

// BigFromLE interprets a byte sequence of any length as a little-endian
// unsigned integer
func BigFromLE(b []byte) *big.Int {
	tmp := make([]byte, len(b))
	for i, c := range b {
		tmp[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(tmp)
}

// UintToLE encodes v into exactly length little-endian bytes. The width is
// fixed by the caller per field type; values outside [0, 256^length) return
// EncodingError.
func UintToLE(v uint64, length int) ([]byte, error) {
	if length <= 0 || (length < 8 && v>>(8*length) != 0) {
		return nil, EncodingError{
			Value:  new(big.Int).SetUint64(v),
			Length: length,
		}
	}
	ret := make([]byte, length)
	for i := 0; i < length && i < 8; i++ {
		ret[i] = byte(v >> (8 * i))
	}
	return ret, nil
}

// BigToLE encodes v into exactly length little-endian bytes. Negative
// values and values outside [0, 256^length) return EncodingError.
func BigToLE(v *big.Int, length int) ([]byte, error) {
	if length <= 0 || v.Sign() < 0 || v.BitLen() > 8*length {
		return nil, EncodingError{
			Value:  new(big.Int).Set(v),
			Length: length,
		}
	}
	ret := make([]byte, length)
	be := v.Bytes()
	for i, c := range be {
		ret[len(be)-1-i] = c
	}
	return ret, nil
}

// ReverseHex decodes a hex string, reverses the byte order, and re-encodes
// to hex. Used to convert hashes between display order and wire order.
// Odd-length or non-hex input returns FormatError.
func ReverseHex(s string) (string, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return "", FormatError{
			Input: s,
			Err:   err,
		}
	}
	for i, j := 0, len(decoded)-1; i < j; i, j = i+1, j-1 {
		decoded[i], decoded[j] = decoded[j], decoded[i]
	}
	return hex.EncodeToString(decoded), nil
}
