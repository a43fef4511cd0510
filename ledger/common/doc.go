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

// Package common contains the ledger value types that a transaction builder
// keys on and emits: hashes, transaction inputs, reward addresses,
// credentials, scripts, certificates, Plutus datums, execution units and
// redeemers.
//
// All types encode to the canonical CBOR wire form through the cbor package,
// and most provide a Utxorpc() conversion for the UTxO RPC types.
//
// Ordering: TransactionInput, Credential and RewardAddress expose Compare
// methods implementing the ordering the ledger uses when it assigns
// redeemer indexes. Transaction inputs compare by transaction ID bytes then
// output index. Credentials compare by constructor (script hash before key
// hash) then hash bytes. Reward addresses compare by network then
// credential.
package common
