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

package base58_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gobtc/base58"
	"github.com/blinklabs-io/gobtc/internal/test"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testDefs := []struct {
		inputHex string
		expected string
	}{
		{
			inputHex: "",
			expected: "",
		},
		{
			inputHex: "00",
			expected: "1",
		},
		{
			inputHex: "000000",
			expected: "111",
		},
		{
			inputHex: "626c696e6b6c616273", // "blinklabs"
			expected: "2FfRkv7K9ZDzS",
		},
		{
			// Leading zeros must not enter the big-number math
			inputHex: "0000abcdef",
			expected: "11zi2A",
		},
	}
	for _, testDef := range testDefs {
		encoded := base58.Encode(test.DecodeHexString(testDef.inputHex))
		if encoded != testDef.expected {
			t.Errorf(
				"did not get expected encoding for %q: got %s, wanted %s",
				testDef.inputHex,
				encoded,
				testDef.expected,
			)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	testDefs := []string{
		"",
		"00",
		"0000507b27411ccf7f16f10297de6cef3f291623eddf",
		"6f507b27411ccf7f16f10297de6cef3f291623eddf",
		"ff00ff00",
	}
	for _, testDef := range testDefs {
		input := test.DecodeHexString(testDef)
		decoded, err := base58.Decode(base58.Encode(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if test.EncodeHexString(decoded) != testDef {
			t.Errorf(
				"round trip mismatch: got %x, wanted %s",
				decoded,
				testDef,
			)
		}
	}
}

func TestDecodeAlphabetError(t *testing.T) {
	// The excluded look-alike characters plus a non-alphanumeric
	for _, input := range []string{"0", "O", "I", "l", "2FfRkv7K9ZDz+"} {
		_, err := base58.Decode(input)
		if !errors.Is(err, base58.ErrAlphabet) {
			t.Errorf(
				"did not get expected error for %q, got: %v",
				input,
				err,
			)
		}
	}
}

func TestEncodeCheck(t *testing.T) {
	encoded := base58.EncodeCheck(
		test.DecodeHexString("6f507b27411ccf7f16f10297de6cef3f291623eddf"),
	)
	expected := "mnrVtF8DWjMu839VW3rBfgYaAfKk8983Xf"
	if encoded != expected {
		t.Errorf(
			"did not get expected encoding: got %s, wanted %s",
			encoded,
			expected,
		)
	}
}

func TestDecodePayload(t *testing.T) {
	// Strips the version prefix and checksum without verification
	payload, err := base58.DecodePayload(
		"mnrVtF8DWjMu839VW3rBfgYaAfKk8983Xf",
		25,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "507b27411ccf7f16f10297de6cef3f291623eddf"
	if test.EncodeHexString(payload) != expected {
		t.Errorf(
			"did not get expected payload: got %x, wanted %s",
			payload,
			expected,
		)
	}
}

func TestDecodePayloadNoVerify(t *testing.T) {
	// A corrupted checksum is not detected by the non-verifying decode
	input := test.DecodeHexString(
		"6f507b27411ccf7f16f10297de6cef3f291623eddf00000000",
	)
	payload, err := base58.DecodePayload(base58.Encode(input), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "507b27411ccf7f16f10297de6cef3f291623eddf"
	if test.EncodeHexString(payload) != expected {
		t.Errorf(
			"did not get expected payload: got %x, wanted %s",
			payload,
			expected,
		)
	}
}

func TestDecodeCheck(t *testing.T) {
	payload, err := base58.DecodeCheck(
		"mnrVtF8DWjMu839VW3rBfgYaAfKk8983Xf",
		25,
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"6f507b27411ccf7f16f10297de6cef3f291623eddf",
		test.EncodeHexString(payload),
	)
}

func TestDecodeCheckMismatch(t *testing.T) {
	// Same address with the final character changed
	_, err := base58.DecodeCheck(
		"mnrVtF8DWjMu839VW3rBfgYaAfKk8983Xg",
		25,
	)
	require.ErrorIs(t, err, base58.ErrChecksum)
}

func TestDecodeFixed(t *testing.T) {
	decoded, err := base58.DecodeFixed(
		"mnrVtF8DWjMu839VW3rBfgYaAfKk8983Xf",
		25,
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"6f507b27411ccf7f16f10297de6cef3f291623eddf192d9df2",
		test.EncodeHexString(decoded),
	)
	// Shorter numbers are left-padded to the requested width
	decoded, err = base58.DecodeFixed("2", 4)
	require.NoError(t, err)
	assert.Equal(t, "00000001", test.EncodeHexString(decoded))
}

func TestDecodeFixedTooNarrow(t *testing.T) {
	_, err := base58.DecodeFixed(
		"mnrVtF8DWjMu839VW3rBfgYaAfKk8983Xf",
		10,
	)
	require.ErrorIs(t, err, base58.ErrDecodedLength)
}

func TestEncodeCheckRoundTrip(t *testing.T) {
	testDefs := []string{
		"00507b27411ccf7f16f10297de6cef3f291623eddf",
		"6f507b27411ccf7f16f10297de6cef3f291623eddf",
		"0000000000000000000000000000000000000000c4",
	}
	for _, testDef := range testDefs {
		input := test.DecodeHexString(testDef)
		payload, err := base58.DecodeCheck(
			base58.EncodeCheck(input),
			len(input)+base58.ChecksumLen,
		)
		require.NoError(t, err)
		assert.Equal(t, testDef, test.EncodeHexString(payload))
	}
}

// Pin our encoding to the btcutil implementation used elsewhere in the
// ecosystem
func TestAgainstReferenceImpl(t *testing.T) {
	testDefs := []string{
		"",
		"00",
		"0000abcdef",
		"626c696e6b6c616273",
		"6f507b27411ccf7f16f10297de6cef3f291623eddf",
		"ffffffffffffffffffffffffffffffff",
	}
	for _, testDef := range testDefs {
		input := test.DecodeHexString(testDef)
		encoded := base58.Encode(input)
		require.Equal(t, btcbase58.Encode(input), encoded)
		decoded, err := base58.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, btcbase58.Decode(encoded), decoded)
	}
	// Checksummed variant against btcutil CheckEncode
	h160 := test.DecodeHexString("507b27411ccf7f16f10297de6cef3f291623eddf")
	assert.Equal(
		t,
		btcbase58.CheckEncode(h160, 0x6f),
		base58.EncodeCheck(append([]byte{0x6f}, h160...)),
	)
}
