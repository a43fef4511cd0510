// Copyright 2025 Blink Labs Software
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

package common

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRewardAddressKnown(t *testing.T) {
	addr, err := NewRewardAddress(
		"stake1uyehkck0lajq8gr28t9uxnuvgcqrc6070x3k9r8048z8y5gh6ffgw",
	)
	require.NoError(t, err)
	assert.Equal(t, uint8(AddressNetworkMainnet), addr.Network)
	assert.False(t, addr.Credential.IsScript())
	assert.Equal(
		t,
		"337b62cfff6403a06a3acbc34f8c46003c69fe79a3628cefa9c47251",
		addr.Credential.Hash.String(),
	)
	assert.Equal(
		t,
		"e1337b62cfff6403a06a3acbc34f8c46003c69fe79a3628cefa9c47251",
		hex.EncodeToString(addr.Bytes()),
	)
}

func TestRewardAddressRoundTrip(t *testing.T) {
	hash := NewBlake2b224([]byte{0x01, 0x02, 0x03})
	testDefs := []struct {
		name    string
		network uint8
		cred    Credential
		prefix  string
		header  byte
	}{
		{
			name:    "MainnetKey",
			network: AddressNetworkMainnet,
			cred:    NewKeyHashCredential(hash),
			prefix:  "stake1",
			header:  0xe1,
		},
		{
			name:    "TestnetKey",
			network: AddressNetworkTestnet,
			cred:    NewKeyHashCredential(hash),
			prefix:  "stake_test1",
			header:  0xe0,
		},
		{
			name:    "MainnetScript",
			network: AddressNetworkMainnet,
			cred:    NewScriptHashCredential(hash),
			prefix:  "stake1",
			header:  0xf1,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			addr, err := NewRewardAddressFromParts(testDef.network, testDef.cred)
			require.NoError(t, err)
			assert.Equal(t, testDef.header, addr.Bytes()[0])
			encoded := addr.String()
			assert.Contains(t, encoded, testDef.prefix)
			decoded, err := NewRewardAddress(encoded)
			require.NoError(t, err)
			assert.Equal(t, addr, decoded)
			cborData, err := cbor.Encode(addr)
			require.NoError(t, err)
			var fromCbor RewardAddress
			_, err = cbor.Decode(cborData, &fromCbor)
			require.NoError(t, err)
			assert.Equal(t, addr, fromCbor)
		})
	}
}

func TestRewardAddressInvalid(t *testing.T) {
	_, err := NewRewardAddressFromParts(5, NewKeyHashCredential(AddrKeyHash{}))
	assert.Error(t, err)
	// Base address header
	base := append([]byte{0x01}, make([]byte, AddressHashSize)...)
	_, err = NewRewardAddressFromBytes(base)
	assert.Error(t, err)
	_, err = NewRewardAddressFromBytes([]byte{0xe1, 0x00})
	assert.Error(t, err)
	_, err = NewRewardAddress("not-an-address")
	assert.Error(t, err)
}

func TestRewardAddressCompare(t *testing.T) {
	low := NewBlake2b224([]byte{0x00})
	high := NewBlake2b224([]byte{0xff})
	testnetKeyHigh := RewardAddress{
		Network:    AddressNetworkTestnet,
		Credential: NewKeyHashCredential(high),
	}
	mainnetScriptHigh := RewardAddress{
		Network:    AddressNetworkMainnet,
		Credential: NewScriptHashCredential(high),
	}
	mainnetKeyLow := RewardAddress{
		Network:    AddressNetworkMainnet,
		Credential: NewKeyHashCredential(low),
	}
	mainnetKeyHigh := RewardAddress{
		Network:    AddressNetworkMainnet,
		Credential: NewKeyHashCredential(high),
	}
	// Network first
	assert.Equal(t, -1, testnetKeyHigh.Compare(mainnetKeyLow))
	// Script credentials sort before key credentials
	assert.Equal(t, -1, mainnetScriptHigh.Compare(mainnetKeyLow))
	// Then hash bytes
	assert.Equal(t, -1, mainnetKeyLow.Compare(mainnetKeyHigh))
	assert.Equal(t, 0, mainnetKeyHigh.Compare(mainnetKeyHigh))
}
