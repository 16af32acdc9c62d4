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

// Package txquery defines the boundary to an external transaction lookup
// service. This library only consumes the records such a service
// produces; actual transport (node RPC, indexer, CLI tool) is supplied by
// the caller.
package txquery

import (
	"context"

	"github.com/blinklabs-io/gobtc/hashing"
)

// TxOutput is one output of a fetched transaction as reported by the
// lookup service: the script disassembly, the hex-encoded 20-byte address
// hash, and the output value in base units
type TxOutput struct {
	Script      string `json:"script"`
	AddressHash string `json:"address_hash"`
	Value       uint64 `json:"value"`
}

// TxRecord is the structured transaction record returned by a lookup
// service
type TxRecord struct {
	Outputs []TxOutput `json:"outputs"`
}

// Fetcher retrieves a transaction record by its 32-byte hash. Failures of
// the underlying service (unreachable, malformed response) surface as
// opaque errors from the implementation.
type Fetcher interface {
	FetchTx(
		ctx context.Context,
		txHash hashing.Hash256,
		testnet bool,
	) (*TxRecord, error)
}
