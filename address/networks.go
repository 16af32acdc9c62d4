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

package address

// Network describes the address version bytes of a particular network
type Network struct {
	Name              string
	PubKeyHashVersion byte
	ScriptHashVersion byte
}

// Network definitions
var (
	NetworkMainnet = Network{
		Name:              "mainnet",
		PubKeyHashVersion: 0x00,
		ScriptHashVersion: 0x05,
	}
	NetworkTestnet = Network{
		Name:              "testnet",
		PubKeyHashVersion: 0x6f,
		ScriptHashVersion: 0xc4,
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByVersion returns the predefined network that uses the given
// version byte for either address kind
func NetworkByVersion(version byte) Network {
	for _, network := range networks {
		if network.PubKeyHashVersion == version ||
			network.ScriptHashVersion == version {
			return network
		}
	}
	return NetworkInvalid
}
