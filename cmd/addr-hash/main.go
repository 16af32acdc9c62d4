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

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/blinklabs-io/gobtc/address"
	"github.com/blinklabs-io/gobtc/cmd/common"
	"github.com/blinklabs-io/gobtc/hashing"
)

func main() {
	// Parse commandline
	f := common.NewGlobalFlags()
	var encodeHash string
	var scriptHash bool
	f.Flagset.StringVar(
		&encodeHash,
		"encode",
		"",
		"hex-encoded 20-byte hash to encode as an address",
	)
	f.Flagset.BoolVar(
		&scriptHash,
		"script",
		false,
		"encode as a script-hash address",
	)
	f.Parse()
	if encodeHash != "" {
		rawHash, err := hex.DecodeString(encodeHash)
		if err != nil || len(rawHash) != hashing.Hash160Size {
			fmt.Printf("ERROR: expected %d hex-encoded bytes\n", hashing.Hash160Size)
			os.Exit(1)
		}
		h := hashing.NewHash160(rawHash)
		if scriptHash {
			fmt.Printf("%s\n", address.NewScript(f.Network, h))
		} else {
			fmt.Printf("%s\n", address.New(f.Network, h))
		}
		return
	}
	if f.Flagset.NArg() < 1 {
		fmt.Printf("ERROR: no address specified\n")
		os.Exit(1)
	}
	version, h, err := address.Decode(f.Flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("version = 0x%02x, hash160 = %s\n", version, h.String())
}
