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

// Package plan reads a YAML description of the script-witnessed elements of
// a transaction and feeds it to a redeemer set builder
package plan

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/blinklabs-io/txbuilder/builder"
	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/blinklabs-io/txbuilder/ledger/common"
	"gopkg.in/yaml.v3"
)

var ErrExUnitsWithoutRedeemer = errors.New("ex units provided without redeemer")

type ExUnits struct {
	Memory uint64 `yaml:"memory"`
	Steps  uint64 `yaml:"steps"`
}

// Witness is the optional Plutus redeemer of a plan element
type Witness struct {
	// Redeemer is hex encoded CBOR Plutus data
	Redeemer string   `yaml:"redeemer"`
	ExUnits  *ExUnits `yaml:"exUnits"`
}

type Input struct {
	Witness    `yaml:",inline"`
	TxId       string `yaml:"txId"`
	Index      int    `yaml:"index"`
	ScriptHash string `yaml:"scriptHash"`
}

type Mint struct {
	Witness  `yaml:",inline"`
	PolicyId string `yaml:"policyId"`
}

type Withdrawal struct {
	Witness `yaml:",inline"`
	Address string `yaml:"address"`
	Amount  uint64 `yaml:"amount"`
}

type Certificate struct {
	Witness `yaml:",inline"`
	// Cbor is the hex encoded certificate
	Cbor string `yaml:"cbor"`
}

type Plan struct {
	Inputs       []Input       `yaml:"inputs"`
	Mints        []Mint        `yaml:"mints"`
	Withdrawals  []Withdrawal  `yaml:"withdrawals"`
	Certificates []Certificate `yaml:"certificates"`
}

func Load(path string) (*Plan, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading plan file: %w", err)
	}
	return Parse(buf)
}

func Parse(buf []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(buf, &p); err != nil {
		return nil, fmt.Errorf("error parsing plan: %w", err)
	}
	return &p, nil
}

func decodeHash(hexHash string) (common.Blake2b224, error) {
	hashBytes, err := hex.DecodeString(hexHash)
	if err != nil {
		return common.Blake2b224{}, err
	}
	if len(hashBytes) != common.Blake2b224Size {
		return common.Blake2b224{}, fmt.Errorf(
			"invalid hash length %d, expected %d",
			len(hashBytes),
			common.Blake2b224Size,
		)
	}
	return common.NewBlake2b224(hashBytes), nil
}

// aggregateWitness returns the Plutus witness for w, or nil when it has no redeemer
func (w Witness) aggregateWitness(
	scriptHash common.ScriptHash,
) (builder.AggregateWitness, error) {
	if w.Redeemer == "" {
		if w.ExUnits != nil {
			return nil, ErrExUnitsWithoutRedeemer
		}
		return nil, nil
	}
	cborData, err := hex.DecodeString(w.Redeemer)
	if err != nil {
		return nil, fmt.Errorf("invalid redeemer hex: %w", err)
	}
	var datum common.Datum
	if _, err := cbor.Decode(cborData, &datum); err != nil {
		return nil, fmt.Errorf("invalid redeemer data: %w", err)
	}
	return builder.PlutusScriptWitnessData{
		Witness: builder.NewPartialPlutusWitness(
			builder.NewRefPlutusScriptWitness(scriptHash),
			datum,
		),
	}, nil
}

func (w Witness) update(
	b *builder.RedeemerSetBuilder,
	key builder.RedeemerWitnessKey,
) {
	if w.ExUnits == nil {
		return
	}
	b.UpdateExUnits(key, common.NewExUnits(w.ExUnits.Memory, w.ExUnits.Steps))
}

// Apply adds every element of the plan to the builder and then sets any
// budgets present in the plan. Withdrawal addresses must belong to networkId
func (p *Plan) Apply(b *builder.RedeemerSetBuilder, networkId uint8) error {
	inputs := make([]common.TransactionInput, len(p.Inputs))
	for i, tmpInput := range p.Inputs {
		input, err := common.NewTransactionInput(tmpInput.TxId, tmpInput.Index)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		var scriptHash common.ScriptHash
		if tmpInput.ScriptHash != "" {
			scriptHash, err = decodeHash(tmpInput.ScriptHash)
			if err != nil {
				return fmt.Errorf("input %d: invalid script hash: %w", i, err)
			}
		}
		witness, err := tmpInput.aggregateWitness(scriptHash)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		if err := b.AddSpend(builder.InputBuilderResult{Input: input, Witness: witness}); err != nil {
			return err
		}
		inputs[i] = input
	}
	policies := make([]common.PolicyId, len(p.Mints))
	for i, tmpMint := range p.Mints {
		policyId, err := decodeHash(tmpMint.PolicyId)
		if err != nil {
			return fmt.Errorf("mint %d: invalid policy ID: %w", i, err)
		}
		witness, err := tmpMint.aggregateWitness(policyId)
		if err != nil {
			return fmt.Errorf("mint %d: %w", i, err)
		}
		if err := b.AddMint(builder.MintBuilderResult{PolicyId: policyId, Witness: witness}); err != nil {
			return err
		}
		policies[i] = policyId
	}
	addrs := make([]common.RewardAddress, len(p.Withdrawals))
	for i, tmpWithdrawal := range p.Withdrawals {
		addr, err := common.NewRewardAddress(tmpWithdrawal.Address)
		if err != nil {
			return fmt.Errorf("withdrawal %d: %w", i, err)
		}
		if addr.Network != networkId {
			return fmt.Errorf(
				"withdrawal %d: address %s is not on network %d",
				i,
				addr,
				networkId,
			)
		}
		witness, err := tmpWithdrawal.aggregateWitness(addr.Credential.Hash)
		if err != nil {
			return fmt.Errorf("withdrawal %d: %w", i, err)
		}
		err = b.AddReward(
			builder.WithdrawalBuilderResult{
				Address: addr,
				Amount:  tmpWithdrawal.Amount,
				Witness: witness,
			},
		)
		if err != nil {
			return err
		}
		addrs[i] = addr
	}
	for i, tmpCert := range p.Certificates {
		certBytes, err := hex.DecodeString(tmpCert.Cbor)
		if err != nil {
			return fmt.Errorf("certificate %d: invalid hex: %w", i, err)
		}
		var wrapper common.CertificateWrapper
		if _, err := cbor.Decode(certBytes, &wrapper); err != nil {
			return fmt.Errorf("certificate %d: %w", i, err)
		}
		var scriptHash common.ScriptHash
		if credCert, ok := wrapper.Certificate.(common.CredentialCertificate); ok {
			scriptHash = credCert.Credential().Hash
		}
		witness, err := tmpCert.aggregateWitness(scriptHash)
		if err != nil {
			return fmt.Errorf("certificate %d: %w", i, err)
		}
		err = b.AddCert(
			builder.CertificateBuilderResult{
				Certificate: wrapper.Certificate,
				Witness:     witness,
			},
		)
		if err != nil {
			return err
		}
	}
	// Budgets are set once every element is known, as later elements can
	// shift the index of earlier ones
	for i, tmpInput := range p.Inputs {
		if key, ok := b.SpendWitnessKey(inputs[i]); ok {
			tmpInput.update(b, key)
		}
	}
	for i, tmpMint := range p.Mints {
		if key, ok := b.MintWitnessKey(policies[i]); ok {
			tmpMint.update(b, key)
		}
	}
	for i, tmpWithdrawal := range p.Withdrawals {
		if key, ok := b.RewardWitnessKey(addrs[i]); ok {
			tmpWithdrawal.update(b, key)
		}
	}
	for i, tmpCert := range p.Certificates {
		if tmpCert.Redeemer == "" {
			continue
		}
		// #nosec G115
		tmpCert.update(b, builder.NewRedeemerWitnessKey(common.RedeemerTagCert, uint32(i)))
	}
	return nil
}
