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

// Package hashing provides the composite digest functions used for
// checksums, transaction/block identifiers, and address hashes
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/ripemd160"
)

const (
	Hash256Size = 32
	Hash160Size = 20
)

type Hash256 [Hash256Size]byte

func NewHash256(data []byte) Hash256 {
	h := Hash256{}
	copy(h[:], data)
	return h
}

func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash256) Bytes() []byte {
	return h[:]
}

func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

type Hash160 [Hash160Size]byte

func NewHash160(data []byte) Hash160 {
	h := Hash160{}
	copy(h[:], data)
	return h
}

func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash160) Bytes() []byte {
	return h[:]
}

func (h Hash160) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// DoubleSha256 computes SHA-256 over data and then SHA-256 over that
// digest. This is the hash used for checksums and block/transaction IDs.
func DoubleSha256(data []byte) Hash256 {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Sha256Ripemd160 computes SHA-256 over data and then RIPEMD-160 over the
// 32-byte digest, yielding the 20-byte hash used for addresses.
func Sha256Ripemd160(data []byte) Hash160 {
	first := sha256.Sum256(data)
	hasher := ripemd160.New()
	// ripemd160 hash writes never fail
	hasher.Write(first[:])
	return NewHash160(hasher.Sum(nil))
}
