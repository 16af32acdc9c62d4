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

package txquery

import (
	"context"
	"errors"

	"github.com/blinklabs-io/gobtc/hashing"
)

// MockFetcher is a shared test helper that serves canned transaction
// records keyed by transaction hash.
// This file is intentionally non-_test.go so other package tests can import it.
type MockFetcher struct {
	Records map[hashing.Hash256]*TxRecord
}

func (m *MockFetcher) FetchTx(
	ctx context.Context,
	txHash hashing.Hash256,
	testnet bool,
) (*TxRecord, error) {
	if record, ok := m.Records[txHash]; ok {
		return record, nil
	}
	return nil, errors.New("transaction not found")
}
