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

// Package address implements base58check address encoding over 20-byte
// hashes and the standard locking scripts those addresses correspond to
package address

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gobtc/base58"
	"github.com/blinklabs-io/gobtc/hashing"
)

// TotalLen is the decoded width of a base58check address: a 1-byte
// version, a 20-byte hash, and a 4-byte checksum
const TotalLen = 1 + hashing.Hash160Size + base58.ChecksumLen

// Script opcodes used by the standard locking script templates
const (
	opDup         = 0x76
	opHash160     = 0xa9
	opEqual       = 0x87
	opEqualVerify = 0x88
	opCheckSig    = 0xac
)

// New returns the pay-to-pubkey-hash address for h on the given network
func New(network Network, h hashing.Hash160) string {
	return encode(network.PubKeyHashVersion, h)
}

// NewScript returns the pay-to-script-hash address for h on the given
// network
func NewScript(network Network, h hashing.Hash160) string {
	return encode(network.ScriptHashVersion, h)
}

func encode(version byte, h hashing.Hash160) string {
	buf := make([]byte, 0, 1+hashing.Hash160Size)
	buf = append(buf, version)
	buf = append(buf, h[:]...)
	return base58.EncodeCheck(buf)
}

// Decode decodes a base58check address, verifies its checksum, and
// returns the version byte and 20-byte hash
func Decode(addr string) (byte, hashing.Hash160, error) {
	decoded, err := base58.DecodeCheck(addr, TotalLen)
	if err != nil {
		return 0, hashing.Hash160{}, err
	}
	return decoded[0], hashing.NewHash160(decoded[1:]), nil
}

// DecodeHash returns the 20-byte hash from an address without verifying
// the checksum, matching callers that validate out of band
func DecodeHash(addr string) (hashing.Hash160, error) {
	decoded, err := base58.DecodePayload(addr, TotalLen)
	if err != nil {
		return hashing.Hash160{}, err
	}
	return hashing.NewHash160(decoded), nil
}

// PayToPubKeyHashScript returns the standard P2PKH locking script for h:
// OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
func PayToPubKeyHashScript(h hashing.Hash160) []byte {
	script := make([]byte, 0, 25)
	script = append(script, opDup, opHash160, hashing.Hash160Size)
	script = append(script, h[:]...)
	return append(script, opEqualVerify, opCheckSig)
}

// PayToScriptHashScript returns the standard P2SH locking script for h:
// OP_HASH160 <20-byte hash> OP_EQUAL
func PayToScriptHashScript(h hashing.Hash160) []byte {
	script := make([]byte, 0, 23)
	script = append(script, opHash160, hashing.Hash160Size)
	script = append(script, h[:]...)
	return append(script, opEqual)
}

// UnknownVersionError indicates an address version byte that does not
// belong to any known network
type UnknownVersionError struct {
	Version byte
}

func (e UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown address version byte 0x%02x", e.Version)
}

var ErrUnknownVersion = errors.New("unknown address version byte")

func (UnknownVersionError) Is(target error) bool {
	return target == ErrUnknownVersion
}

// DecodeForNetwork decodes addr and checks that its version byte belongs
// to a known network, returning that network alongside the hash
func DecodeForNetwork(addr string) (Network, hashing.Hash160, error) {
	version, h, err := Decode(addr)
	if err != nil {
		return NetworkInvalid, hashing.Hash160{}, err
	}
	network := NetworkByVersion(version)
	if network.Name == NetworkInvalid.Name {
		return NetworkInvalid, hashing.Hash160{}, UnknownVersionError{
			Version: version,
		}
	}
	return network, h, nil
}
