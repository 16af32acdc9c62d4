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

// Package base58 implements the checksum-protected base-58 text encoding
// used for addresses and serialized keys.
//
// Encoding treats the input as a big-endian unsigned integer and converts
// it to base 58, except that leading zero bytes never enter the big-number
// math: each one maps to a single leading '1' character, which is what
// lets version/network marker bytes survive the round trip.
package base58

import (
	"math/big"

	"github.com/blinklabs-io/gobtc/hashing"
)

// Alphabet is the 58-character alphabet. It excludes 0, O, I, and l to
// avoid visual ambiguity.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ChecksumLen is the number of DoubleSha256 bytes appended by EncodeCheck
const ChecksumLen = 4

var bigRadix = big.NewInt(58)

// decodeMap maps an alphabet byte to its digit value, 0xff elsewhere
var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = 0xff
	}
	for i := range len(Alphabet) {
		m[Alphabet[i]] = byte(i)
	}
	return m
}()

// Encode converts input to base-58 text. Leading zero bytes become leading
// '1' characters; an all-zero input of length n encodes to n '1's.
func Encode(input []byte) string {
	zeros := 0
	for _, c := range input {
		if c != 0 {
			break
		}
		zeros++
	}
	num := new(big.Int).SetBytes(input[zeros:])
	mod := new(big.Int)
	// Enough room for the digits plus the zero prefix
	ret := make([]byte, 0, zeros+len(input)*2)
	for num.Sign() > 0 {
		num.DivMod(num, bigRadix, mod)
		ret = append(ret, Alphabet[mod.Int64()])
	}
	for range zeros {
		ret = append(ret, Alphabet[0])
	}
	// Digits were produced least significant first
	for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
		ret[i], ret[j] = ret[j], ret[i]
	}
	return string(ret)
}

// EncodeCheck appends the first ChecksumLen bytes of DoubleSha256(input)
// to input and encodes the result
func EncodeCheck(input []byte) string {
	checksum := hashing.DoubleSha256(input)
	buf := make([]byte, 0, len(input)+ChecksumLen)
	buf = append(buf, input...)
	buf = append(buf, checksum[:ChecksumLen]...)
	return Encode(buf)
}

// Decode is the exact inverse of Encode: leading '1' characters become
// leading zero bytes and the remaining digits are rebuilt into a
// big-endian byte string of natural width. Characters outside the
// alphabet return AlphabetError.
func Decode(s string) ([]byte, error) {
	num, err := decodeBig(s)
	if err != nil {
		return nil, err
	}
	zeros := 0
	for zeros < len(s) && s[zeros] == Alphabet[0] {
		zeros++
	}
	digits := num.Bytes()
	ret := make([]byte, 0, zeros+len(digits))
	ret = append(ret, make([]byte, zeros)...)
	return append(ret, digits...), nil
}

// DecodeFixed rebuilds the big number encoded in s and renders it into
// exactly totalLen big-endian bytes, left-padded with zeros. Leading '1'
// characters contribute zero-valued digits, so they are absorbed into the
// padding. A number wider than totalLen bytes returns DecodedLengthError.
func DecodeFixed(s string, totalLen int) ([]byte, error) {
	if totalLen < 0 {
		totalLen = 0
	}
	num, err := decodeBig(s)
	if err != nil {
		return nil, err
	}
	digits := num.Bytes()
	if len(digits) > totalLen {
		return nil, DecodedLengthError{
			Input:    s,
			Expected: totalLen,
			Actual:   len(digits),
		}
	}
	ret := make([]byte, totalLen)
	copy(ret[totalLen-len(digits):], digits)
	return ret, nil
}

// DecodePayload decodes s into a totalLen-byte buffer and strips the
// 1-byte version prefix and the trailing ChecksumLen checksum bytes
// WITHOUT verifying the checksum. Callers that require integrity must
// recompute the checksum themselves or use DecodeCheck.
func DecodePayload(s string, totalLen int) ([]byte, error) {
	if totalLen <= 1+ChecksumLen {
		return nil, DecodedLengthError{
			Input:    s,
			Expected: totalLen,
			Actual:   1 + ChecksumLen,
		}
	}
	decoded, err := DecodeFixed(s, totalLen)
	if err != nil {
		return nil, err
	}
	return decoded[1 : totalLen-ChecksumLen], nil
}

// DecodeCheck decodes s into a totalLen-byte buffer, verifies that the
// trailing checksum bytes match DoubleSha256 of the rest, and returns the
// leading totalLen-4 bytes (version prefix included)
func DecodeCheck(s string, totalLen int) ([]byte, error) {
	if totalLen <= ChecksumLen {
		return nil, DecodedLengthError{
			Input:    s,
			Expected: totalLen,
			Actual:   ChecksumLen,
		}
	}
	decoded, err := DecodeFixed(s, totalLen)
	if err != nil {
		return nil, err
	}
	payload := decoded[:totalLen-ChecksumLen]
	checksum := hashing.DoubleSha256(payload)
	if string(checksum[:ChecksumLen]) != string(decoded[totalLen-ChecksumLen:]) {
		return nil, ChecksumError{
			Input: s,
		}
	}
	return payload, nil
}

func decodeBig(s string) (*big.Int, error) {
	num := new(big.Int)
	for i := range len(s) {
		digit := decodeMap[s[i]]
		if digit == 0xff {
			return nil, AlphabetError{
				Char: rune(s[i]),
				Pos:  i,
			}
		}
		num.Mul(num, bigRadix)
		num.Add(num, big.NewInt(int64(digit)))
	}
	return num, nil
}
