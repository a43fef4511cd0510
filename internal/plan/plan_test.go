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

package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/txbuilder/builder"
	"github.com/blinklabs-io/txbuilder/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTxIdA    = strings.Repeat("bb", 32)
	testTxIdB    = strings.Repeat("aa", 32)
	testPolicyId = strings.Repeat("00", 28)
	testAddress  = "stake1uyehkck0lajq8gr28t9uxnuvgcqrc6070x3k9r8048z8y5gh6ffgw"
	// StakeDelegation for script credential 11..11 to pool 22..22
	testCertCbor = "8302" + "8201581c" + strings.Repeat("11", 28) + "581c" + strings.Repeat("22", 28)
	// StakeRegistration for key credential 33..33
	testRegCertCbor = "8200" + "8200581c" + strings.Repeat("33", 28)
)

var testPlanYaml = `
inputs:
  - txId: ` + testTxIdA + `
    index: 0
    redeemer: "182a"
    exUnits:
      memory: 1
      steps: 2
  - txId: ` + testTxIdB + `
    index: 5
mints:
  - policyId: "` + testPolicyId + `"
    redeemer: d87980
    exUnits:
      memory: 3
      steps: 4
withdrawals:
  - address: ` + testAddress + `
    amount: 1000000
    redeemer: "01"
    exUnits:
      memory: 5
      steps: 6
certificates:
  - cbor: "` + testRegCertCbor + `"
  - cbor: "` + testCertCbor + `"
    redeemer: "02"
    exUnits:
      memory: 7
      steps: 8
`

func TestPlanApply(t *testing.T) {
	p, err := Parse([]byte(testPlanYaml))
	require.NoError(t, err)
	require.Len(t, p.Inputs, 2)
	require.NotNil(t, p.Inputs[0].ExUnits)
	assert.Nil(t, p.Inputs[1].ExUnits)

	b := builder.NewRedeemerSetBuilder()
	require.NoError(t, p.Apply(b, common.AddressNetworkMainnet))
	redeemers, err := b.Build(false)
	require.NoError(t, err)
	expected := []struct {
		key     builder.RedeemerWitnessKey
		exUnits common.ExUnits
	}{
		{builder.NewRedeemerWitnessKey(common.RedeemerTagSpend, 1), common.NewExUnits(1, 2)},
		{builder.NewRedeemerWitnessKey(common.RedeemerTagMint, 0), common.NewExUnits(3, 4)},
		{builder.NewRedeemerWitnessKey(common.RedeemerTagCert, 1), common.NewExUnits(7, 8)},
		{builder.NewRedeemerWitnessKey(common.RedeemerTagReward, 0), common.NewExUnits(5, 6)},
	}
	require.Len(t, redeemers, len(expected))
	for i, redeemer := range redeemers {
		assert.Equal(t, expected[i].key, redeemer.Key())
		assert.Equal(t, expected[i].exUnits, redeemer.ExUnits)
	}
	assert.Equal(t, []byte{0x18, 0x2a}, redeemers[0].Data.Cbor())
}

func TestPlanMissingExUnits(t *testing.T) {
	p, err := Parse([]byte(`
inputs:
  - txId: ` + testTxIdA + `
    index: 0
    redeemer: "00"
`))
	require.NoError(t, err)
	b := builder.NewRedeemerSetBuilder()
	require.NoError(t, p.Apply(b, common.AddressNetworkMainnet))
	_, err = b.Build(false)
	var missingErr *builder.MissingExUnitsError
	require.ErrorAs(t, err, &missingErr)
	redeemers, err := b.Build(true)
	require.NoError(t, err)
	assert.Len(t, redeemers, 1)
}

func TestPlanApplyErrors(t *testing.T) {
	testDefs := []struct {
		name      string
		yaml      string
		networkId uint8
	}{
		{
			name:      "ExUnitsWithoutRedeemer",
			yaml:      "inputs:\n  - txId: " + testTxIdA + "\n    exUnits: {memory: 1, steps: 1}\n",
			networkId: common.AddressNetworkMainnet,
		},
		{
			name:      "BadTxId",
			yaml:      "inputs:\n  - txId: abcd\n",
			networkId: common.AddressNetworkMainnet,
		},
		{
			name:      "BadRedeemerHex",
			yaml:      "mints:\n  - policyId: " + testPolicyId + "\n    redeemer: zz\n",
			networkId: common.AddressNetworkMainnet,
		},
		{
			name:      "BadPolicyLength",
			yaml:      "mints:\n  - policyId: abcd\n",
			networkId: common.AddressNetworkMainnet,
		},
		{
			name:      "WrongNetwork",
			yaml:      "withdrawals:\n  - address: " + testAddress + "\n",
			networkId: common.AddressNetworkTestnet,
		},
		{
			name:      "BadCertificate",
			yaml:      "certificates:\n  - cbor: \"8304\"\n",
			networkId: common.AddressNetworkMainnet,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			p, err := Parse([]byte(testDef.yaml))
			require.NoError(t, err)
			err = p.Apply(builder.NewRedeemerSetBuilder(), testDef.networkId)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(testPlanYaml), 0o600))
	p, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Len(t, p.Certificates, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = Parse([]byte("inputs: {"))
	assert.Error(t, err)
}
