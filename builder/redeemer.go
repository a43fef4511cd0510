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
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/txbuilder/ledger/common"
)

// Redeemers are emitted in this kind order, which does not follow the tag values
var emissionOrder = []common.RedeemerTag{
	common.RedeemerTagSpend,
	common.RedeemerTagMint,
	common.RedeemerTagCert,
	common.RedeemerTagReward,
}

// RedeemerSetBuilder assigns ledger indexes to the redeemers of a
// transaction under construction. The Add* functions must be called for
// every input, mint, withdrawal and certificate added to the transaction,
// including those without a script witness, as they still take up an index.
//
// A RedeemerSetBuilder is not safe for concurrent use
type RedeemerSetBuilder struct {
	logger *slog.Logger
	spend  *trackedCollection[common.TransactionInput]
	mint   *trackedCollection[common.PolicyId]
	reward *trackedCollection[common.RewardAddress]
	cert   *trackedCollection[certificateKey]
}

// NewRedeemerSetBuilder returns an empty RedeemerSetBuilder
func NewRedeemerSetBuilder(
	opts ...RedeemerSetBuilderOptionFunc,
) *RedeemerSetBuilder {
	b := &RedeemerSetBuilder{
		spend: newSortedCollection(
			common.RedeemerTagSpend,
			common.TransactionInput.Compare,
		),
		mint: newSortedCollection(
			common.RedeemerTagMint,
			common.PolicyId.Compare,
		),
		reward: newSortedCollection(
			common.RedeemerTagReward,
			common.RewardAddress.Compare,
		),
		cert: newSequentialCollection[certificateKey](common.RedeemerTagCert),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.logger = b.logger.With("component", "redeemer_set_builder")
	return b
}

func (b *RedeemerSetBuilder) collection(tag common.RedeemerTag) redeemerCollection {
	switch tag {
	case common.RedeemerTagSpend:
		return b.spend
	case common.RedeemerTagMint:
		return b.mint
	case common.RedeemerTagCert:
		return b.cert
	case common.RedeemerTagReward:
		return b.reward
	default:
		panic(fmt.Sprintf("unknown redeemer tag %d", uint8(tag)))
	}
}

// placeholderFor returns a data-only placeholder holding a private copy of
// the redeemer data of witness, or nil if it is not a Plutus script witness
func placeholderFor(witness AggregateWitness) (redeemerPlaceholder, error) {
	pd, ok := witnessPlutusData(witness)
	if !ok {
		return nil, nil
	}
	tmpData, err := pd.Clone()
	if err != nil {
		return nil, fmt.Errorf("copy redeemer data: %w", err)
	}
	return dataOnlyPlaceholder{data: tmpData}, nil
}

// AddSpend records a transaction input
func (b *RedeemerSetBuilder) AddSpend(result InputBuilderResult) error {
	placeholder, err := placeholderFor(result.Witness)
	if err != nil {
		return fmt.Errorf("input %s: %w", result.Input, err)
	}
	b.spend.add(result.Input, placeholder)
	b.logger.Debug(
		"added spend",
		"input",
		result.Input.String(),
		"witnessed",
		placeholder != nil,
	)
	return nil
}

// AddMint records the mint of a policy
func (b *RedeemerSetBuilder) AddMint(result MintBuilderResult) error {
	placeholder, err := placeholderFor(result.Witness)
	if err != nil {
		return fmt.Errorf("policy %s: %w", result.PolicyId, err)
	}
	b.mint.add(result.PolicyId, placeholder)
	b.logger.Debug(
		"added mint",
		"policy_id",
		result.PolicyId.String(),
		"witnessed",
		placeholder != nil,
	)
	return nil
}

// AddReward records a reward withdrawal
func (b *RedeemerSetBuilder) AddReward(result WithdrawalBuilderResult) error {
	placeholder, err := placeholderFor(result.Witness)
	if err != nil {
		return fmt.Errorf("reward address %s: %w", result.Address, err)
	}
	b.reward.add(result.Address, placeholder)
	b.logger.Debug(
		"added reward",
		"address",
		result.Address.String(),
		"witnessed",
		placeholder != nil,
	)
	return nil
}

// AddCert records a certificate. Certificates are indexed in the order they are added
func (b *RedeemerSetBuilder) AddCert(result CertificateBuilderResult) error {
	key := certificateKey{cert: result.Certificate}
	placeholder, err := placeholderFor(result.Witness)
	if err != nil {
		return fmt.Errorf("certificate %s: %w", key, err)
	}
	b.cert.add(key, placeholder)
	b.logger.Debug(
		"added cert",
		"certificate",
		key.String(),
		"index",
		b.cert.size()-1,
		"witnessed",
		placeholder != nil,
	)
	return nil
}

// UpdateExUnits sets the execution budget of the redeemer at key, replacing
// any previous budget. It panics if key does not refer to a witnessed
// element, which means the key did not come from this builder
func (b *RedeemerSetBuilder) UpdateExUnits(
	key RedeemerWitnessKey,
	exUnits common.ExUnits,
) {
	b.collection(key.Tag).updateExUnits(int(key.Index), exUnits)
	b.logger.Debug(
		"updated ex units",
		"redeemer",
		key.String(),
		"memory",
		exUnits.Memory,
		"steps",
		exUnits.Steps,
	)
}

// SpendWitnessKey returns the redeemer key of a witnessed input
func (b *RedeemerSetBuilder) SpendWitnessKey(
	input common.TransactionInput,
) (RedeemerWitnessKey, bool) {
	return b.spend.witnessKey(input)
}

// MintWitnessKey returns the redeemer key of a witnessed policy
func (b *RedeemerSetBuilder) MintWitnessKey(
	policyId common.PolicyId,
) (RedeemerWitnessKey, bool) {
	return b.mint.witnessKey(policyId)
}

// RewardWitnessKey returns the redeemer key of a witnessed withdrawal
func (b *RedeemerSetBuilder) RewardWitnessKey(
	address common.RewardAddress,
) (RedeemerWitnessKey, bool) {
	return b.reward.witnessKey(address)
}

// WitnessKeys returns the keys of all redeemers in the order Build emits them
func (b *RedeemerSetBuilder) WitnessKeys() []RedeemerWitnessKey {
	ret := []RedeemerWitnessKey{}
	for _, tag := range emissionOrder {
		for pos := range b.collection(tag).placeholders() {
			// #nosec G115
			ret = append(ret, NewRedeemerWitnessKey(tag, uint32(pos)))
		}
	}
	return ret
}

// IsEmpty reports whether no element with a Plutus script witness was added
func (b *RedeemerSetBuilder) IsEmpty() bool {
	for _, tag := range emissionOrder {
		for range b.collection(tag).placeholders() {
			return false
		}
	}
	return true
}

// Build returns the redeemers in ledger order. Spend redeemers come first,
// then mint, cert and reward. A redeemer without a budget results in a
// MissingExUnitsError unless defaultToDummyExUnits is set, in which case it
// gets common.DummyExUnits(). Build does not modify the builder
func (b *RedeemerSetBuilder) Build(
	defaultToDummyExUnits bool,
) (common.Redeemers, error) {
	ret := common.Redeemers{}
	for _, tag := range emissionOrder {
		for pos, tmpPlaceholder := range b.collection(tag).placeholders() {
			// #nosec G115
			index := uint32(pos)
			redeemer, ok := finish(tmpPlaceholder.placeholder, defaultToDummyExUnits)
			if !ok {
				return nil, &MissingExUnitsError{
					Tag:   tag,
					Index: index,
					Key:   tmpPlaceholder.key,
				}
			}
			ret = append(
				ret,
				common.Redeemer{
					Tag:     tag,
					Index:   index,
					Data:    redeemer.Data,
					ExUnits: redeemer.ExUnits,
				},
			)
		}
	}
	b.logger.Debug(
		"built redeemers",
		"count",
		len(ret),
		"dummy_ex_units",
		defaultToDummyExUnits,
	)
	return ret, nil
}
