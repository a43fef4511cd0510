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
	"fmt"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/txbuilder/cbor"
)

const PublicKeySize = 32

// PublicKey is an ed25519 verification key
type PublicKey [PublicKeySize]byte

// NewPublicKey returns a PublicKey after checking that the bytes are a valid
// encoding of a point on the curve
func NewPublicKey(keyBytes []byte) (PublicKey, error) {
	if len(keyBytes) != PublicKeySize {
		return PublicKey{}, fmt.Errorf(
			"invalid public key length: %d",
			len(keyBytes),
		)
	}
	if _, err := new(edwards25519.Point).SetBytes(keyBytes); err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key: %w", err)
	}
	var ret PublicKey
	copy(ret[:], keyBytes)
	return ret, nil
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

// Hash returns the key hash used in addresses and required signers
func (k PublicKey) Hash() AddrKeyHash {
	return Blake2b224Hash(k[:])
}

type VkeyWitness struct {
	cbor.StructAsArray
	Vkey      []byte
	Signature []byte
}

// KeyHash returns the hash of the witness verification key
func (w VkeyWitness) KeyHash() AddrKeyHash {
	return Blake2b224Hash(w.Vkey)
}
