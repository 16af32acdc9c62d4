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
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gobtc/wire"
)

func main() {
	// Parse commandline
	flagset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	if err := flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if flagset.NArg() < 1 {
		fmt.Printf("ERROR: no hex string specified\n")
		os.Exit(1)
	}
	for _, arg := range flagset.Args() {
		flipped, err := wire.ReverseHex(arg)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", flipped)
	}
}
