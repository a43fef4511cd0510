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
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txbuilder/ledger/common"
)

var (
	testTxIdA = strings.Repeat("bb", 32)
	testTxIdB = strings.Repeat("aa", 32)

	testScriptHash = common.NewBlake2b224([]byte{0x5c, 0x01})
)

func testInput(t *testing.T, txId string, idx int) common.TransactionInput {
	t.Helper()
	input, err := common.NewTransactionInput(txId, idx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return input
}

func testRedeemerData(v int64) common.Datum {
	return common.NewDatum(data.NewInteger(big.NewInt(v)))
}

func testPlutusWitness(v int64) PlutusScriptWitnessData {
	return PlutusScriptWitnessData{
		Witness: NewPartialPlutusWitness(
			NewRefPlutusScriptWitness(testScriptHash),
			testRedeemerData(v),
		),
	}
}

func witnessedInput(input common.TransactionInput, v int64) InputBuilderResult {
	return InputBuilderResult{
		Input:   input,
		Witness: testPlutusWitness(v),
	}
}

func unwitnessedInput(input common.TransactionInput) InputBuilderResult {
	return InputBuilderResult{
		Input:   input,
		Witness: VkeyWitnessData{KeyHash: common.NewBlake2b224([]byte{0x01})},
	}
}

func testPolicy(b byte) common.PolicyId {
	return common.NewBlake2b224([]byte{b})
}

func testRewardAddress(
	t *testing.T,
	network uint8,
	cred common.Credential,
) common.RewardAddress {
	t.Helper()
	addr, err := common.NewRewardAddressFromParts(network, cred)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return addr
}

func testCert(b byte) common.Certificate {
	return common.NewStakeDelegationCertificate(
		common.NewScriptHashCredential(common.NewBlake2b224([]byte{b})),
		common.NewBlake2b224([]byte{0x9f}),
	)
}

// datumHex returns the CBOR of a datum as hex for comparisons
func datumHex(t *testing.T, d common.Datum) string {
	t.Helper()
	cborData, err := d.MarshalCBOR()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return hex.EncodeToString(cborData)
}
