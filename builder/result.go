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

package builder

import (
	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/blinklabs-io/txbuilder/ledger/common"
)

// InputBuilderResult is an input ready to be added to a transaction
type InputBuilderResult struct {
	Input             common.TransactionInput
	Witness           AggregateWitness
	RequiredWitnesses RequiredWitnessSet
}

// MintBuilderResult is the mint of one policy ready to be added to a transaction
type MintBuilderResult struct {
	PolicyId          common.PolicyId
	Assets            map[cbor.ByteString]int64
	Witness           AggregateWitness
	RequiredWitnesses RequiredWitnessSet
}

// WithdrawalBuilderResult is a reward withdrawal ready to be added to a transaction
type WithdrawalBuilderResult struct {
	Address           common.RewardAddress
	Amount            uint64
	Witness           AggregateWitness
	RequiredWitnesses RequiredWitnessSet
}

// CertificateBuilderResult is a certificate ready to be added to a transaction
type CertificateBuilderResult struct {
	Certificate       common.Certificate
	Witness           AggregateWitness
	RequiredWitnesses RequiredWitnessSet
}
