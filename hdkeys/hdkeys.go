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

// Package hdkeys implements the serialized form of BIP32 extended keys:
// the 78-byte payload layout, its base58check text encoding, and master
// key material derivation from a seed. It does not perform any elliptic
// curve math; key bytes are carried opaquely.
package hdkeys

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gobtc/base58"
)

const (
	// PayloadLen is the serialized extended key before the checksum
	PayloadLen = 78
	// TotalLen is the base58check decode width: payload plus checksum
	TotalLen = PayloadLen + base58.ChecksumLen

	ChainCodeLen   = 32
	KeyDataLen     = 33
	FingerprintLen = 4
	VersionLen     = 4

	minSeedLen = 16
	maxSeedLen = 64
)

// Extended key version bytes
var (
	VersionMainnetPrivate = [VersionLen]byte{0x04, 0x88, 0xad, 0xe4}
	VersionMainnetPublic  = [VersionLen]byte{0x04, 0x88, 0xb2, 0x1e}
	VersionTestnetPrivate = [VersionLen]byte{0x04, 0x35, 0x83, 0x94}
	VersionTestnetPublic  = [VersionLen]byte{0x04, 0x35, 0x87, 0xcf}
)

// masterHmacKey seeds the HMAC that splits a seed into key material and
// chain code
var masterHmacKey = []byte("Bitcoin seed")

// ExtendedKey is the content of a serialized BIP32 extended key. KeyData
// is the 33-byte key field: a compressed public key, or a zero byte
// followed by a 32-byte private key.
type ExtendedKey struct {
	Version           [VersionLen]byte
	Depth             uint8
	ParentFingerprint [FingerprintLen]byte
	ChildNumber       uint32
	ChainCode         [ChainCodeLen]byte
	KeyData           [KeyDataLen]byte
}

// IsPrivate reports whether the key carries private key material
func (k *ExtendedKey) IsPrivate() bool {
	return k.Version == VersionMainnetPrivate ||
		k.Version == VersionTestnetPrivate
}

// IsTestnet reports whether the key uses testnet version bytes
func (k *ExtendedKey) IsTestnet() bool {
	return k.Version == VersionTestnetPrivate ||
		k.Version == VersionTestnetPublic
}

// String serializes the key to its base58check text form (xprv/xpub and
// friends)
func (k *ExtendedKey) String() string {
	payload := make([]byte, 0, PayloadLen)
	payload = append(payload, k.Version[:]...)
	payload = append(payload, k.Depth)
	payload = append(payload, k.ParentFingerprint[:]...)
	payload = append(payload,
		byte(k.ChildNumber>>24),
		byte(k.ChildNumber>>16),
		byte(k.ChildNumber>>8),
		byte(k.ChildNumber),
	)
	payload = append(payload, k.ChainCode[:]...)
	payload = append(payload, k.KeyData[:]...)
	return base58.EncodeCheck(payload)
}

// Parse decodes a base58check extended key, verifying the checksum and
// version bytes
func Parse(s string) (*ExtendedKey, error) {
	payload, err := base58.DecodeCheck(s, TotalLen)
	if err != nil {
		return nil, err
	}
	ret := &ExtendedKey{}
	copy(ret.Version[:], payload[0:4])
	switch ret.Version {
	case VersionMainnetPrivate, VersionMainnetPublic,
		VersionTestnetPrivate, VersionTestnetPublic:
	default:
		return nil, VersionError{
			Version: ret.Version,
		}
	}
	ret.Depth = payload[4]
	copy(ret.ParentFingerprint[:], payload[5:9])
	ret.ChildNumber = uint32(payload[9])<<24 |
		uint32(payload[10])<<16 |
		uint32(payload[11])<<8 |
		uint32(payload[12])
	copy(ret.ChainCode[:], payload[13:45])
	copy(ret.KeyData[:], payload[45:78])
	return ret, nil
}

// MasterFromSeed derives the master extended private key material from a
// seed: HMAC-SHA512 keyed with "Bitcoin seed", left half becoming the
// private key and right half the chain code. The seed must be between 16
// and 64 bytes (BIP32 bounds).
func MasterFromSeed(seed []byte, testnet bool) (*ExtendedKey, error) {
	if len(seed) < minSeedLen || len(seed) > maxSeedLen {
		return nil, SeedLengthError{
			Length: len(seed),
		}
	}
	mac := hmac.New(sha512.New, masterHmacKey)
	mac.Write(seed)
	raw := mac.Sum(nil)
	ret := &ExtendedKey{
		Version: VersionMainnetPrivate,
	}
	if testnet {
		ret.Version = VersionTestnetPrivate
	}
	// Private key data carries a zero prefix byte
	copy(ret.KeyData[1:], raw[:32])
	copy(ret.ChainCode[:], raw[32:])
	return ret, nil
}

// VersionError indicates extended key version bytes outside the known set
type VersionError struct {
	Version [VersionLen]byte
}

func (e VersionError) Error() string {
	return fmt.Sprintf(
		"unknown extended key version bytes %02x%02x%02x%02x",
		e.Version[0], e.Version[1], e.Version[2], e.Version[3],
	)
}

var ErrVersion = errors.New("unknown extended key version bytes")

func (VersionError) Is(target error) bool {
	return target == ErrVersion
}

// SeedLengthError indicates a master seed outside the 16..64 byte range
type SeedLengthError struct {
	Length int
}

func (e SeedLengthError) Error() string {
	return fmt.Sprintf("seed length %d outside [16, 64]", e.Length)
}

var ErrSeedLength = errors.New("seed length outside [16, 64]")

func (SeedLengthError) Is(target error) bool {
	return target == ErrSeedLength
}
