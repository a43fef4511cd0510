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
	"fmt"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	CredentialTypeAddrKeyHash = 0
	CredentialTypeScriptHash  = 1
)

// Credential is a stake or payment credential: either a key hash or a script hash
type Credential struct {
	cbor.StructAsArray
	CredType uint
	Hash     Blake2b224
}

func NewKeyHashCredential(hash AddrKeyHash) Credential {
	return Credential{
		CredType: CredentialTypeAddrKeyHash,
		Hash:     hash,
	}
}

func NewScriptHashCredential(hash ScriptHash) Credential {
	return Credential{
		CredType: CredentialTypeScriptHash,
		Hash:     hash,
	}
}

func (c Credential) IsScript() bool {
	return c.CredType == CredentialTypeScriptHash
}

// Compare orders credentials the way the ledger does: script hash credentials
// before key hash credentials, then by hash bytes
func (c Credential) Compare(other Credential) int {
	if c.IsScript() != other.IsScript() {
		if c.IsScript() {
			return -1
		}
		return 1
	}
	return c.Hash.Compare(other.Hash)
}

func (c Credential) String() string {
	if c.IsScript() {
		return fmt.Sprintf("script:%s", c.Hash)
	}
	return fmt.Sprintf("key:%s", c.Hash)
}

func (c Credential) Utxorpc() *utxorpc.StakeCredential {
	ret := &utxorpc.StakeCredential{}
	switch c.CredType {
	case CredentialTypeAddrKeyHash:
		ret.StakeCredential = &utxorpc.StakeCredential_AddrKeyHash{
			AddrKeyHash: c.Hash.Bytes(),
		}
	case CredentialTypeScriptHash:
		ret.StakeCredential = &utxorpc.StakeCredential_ScriptHash{
			ScriptHash: c.Hash.Bytes(),
		}
	}
	return ret
}
