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
	"cmp"
	"errors"
	"fmt"

	"github.com/blinklabs-io/txbuilder/cbor"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F
	AddressHashSize          = 28

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1

	AddressTypeNoneKey    = 0b1110
	AddressTypeNoneScript = 0b1111

	rewardAddressLength = 1 + AddressHashSize
)

// RewardAddress is a reward account address, the target of a withdrawal
type RewardAddress struct {
	Network    uint8
	Credential Credential
}

// NewRewardAddress returns a RewardAddress from its bech32 form
func NewRewardAddress(addr string) (RewardAddress, error) {
	hrp, decoded, err := decodeBech32(addr)
	if err != nil {
		return RewardAddress{}, err
	}
	ret, err := NewRewardAddressFromBytes(decoded)
	if err != nil {
		return RewardAddress{}, err
	}
	if hrp != ret.hrp() {
		return RewardAddress{}, fmt.Errorf(
			"address prefix %q does not match network %d",
			hrp,
			ret.Network,
		)
	}
	return ret, nil
}

// NewRewardAddressFromBytes returns a RewardAddress from its raw header + hash bytes
func NewRewardAddressFromBytes(addrBytes []byte) (RewardAddress, error) {
	if len(addrBytes) != rewardAddressLength {
		return RewardAddress{}, fmt.Errorf(
			"invalid reward address length: %d",
			len(addrBytes),
		)
	}
	header := addrBytes[0]
	addrType := (header & AddressHeaderTypeMask) >> 4
	ret := RewardAddress{
		Network: header & AddressHeaderNetworkMask,
	}
	switch addrType {
	case AddressTypeNoneKey:
		ret.Credential = NewKeyHashCredential(NewBlake2b224(addrBytes[1:]))
	case AddressTypeNoneScript:
		ret.Credential = NewScriptHashCredential(NewBlake2b224(addrBytes[1:]))
	default:
		return RewardAddress{}, fmt.Errorf(
			"not a reward address type: %d",
			addrType,
		)
	}
	if ret.Network != AddressNetworkTestnet &&
		ret.Network != AddressNetworkMainnet {
		return RewardAddress{}, errors.New("invalid network ID")
	}
	return ret, nil
}

// NewRewardAddressFromParts returns a RewardAddress for the network and stake credential
func NewRewardAddressFromParts(
	networkId uint8,
	cred Credential,
) (RewardAddress, error) {
	if networkId != AddressNetworkTestnet &&
		networkId != AddressNetworkMainnet {
		return RewardAddress{}, errors.New("invalid network ID")
	}
	return RewardAddress{
		Network:    networkId,
		Credential: cred,
	}, nil
}

func (a RewardAddress) Bytes() []byte {
	addrType := uint8(AddressTypeNoneKey)
	if a.Credential.IsScript() {
		addrType = AddressTypeNoneScript
	}
	ret := make([]byte, 0, rewardAddressLength)
	ret = append(ret, (addrType<<4)|(a.Network&AddressHeaderNetworkMask))
	ret = append(ret, a.Credential.Hash.Bytes()...)
	return ret
}

func (a RewardAddress) hrp() string {
	if a.Network == AddressNetworkMainnet {
		return "stake"
	}
	return "stake_test"
}

// Compare orders reward addresses by network, then by credential
func (a RewardAddress) Compare(other RewardAddress) int {
	if c := cmp.Compare(a.Network, other.Network); c != 0 {
		return c
	}
	return a.Credential.Compare(other.Credential)
}

// String returns the bech32 encoded reward address
func (a RewardAddress) String() string {
	return encodeBech32(a.hrp(), a.Bytes())
}

func (a RewardAddress) MarshalJSON() ([]byte, error) {
	return []byte("\"" + a.String() + "\""), nil
}

func (a RewardAddress) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(a.Bytes())
}

func (a *RewardAddress) UnmarshalCBOR(cborData []byte) error {
	var tmp []byte
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	addr, err := NewRewardAddressFromBytes(tmp)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
