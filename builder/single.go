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
	"slices"

	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/blinklabs-io/txbuilder/ledger/common"
)

func nativeScriptWitness(
	script common.NativeScript,
	signers []common.AddrKeyHash,
	required *RequiredWitnessSet,
) (NativeScriptWitnessData, error) {
	keyHashes := script.KeyHashes()
	for _, signer := range signers {
		if !slices.Contains(keyHashes, signer) {
			return NativeScriptWitnessData{}, &SignerNotInScriptError{Signer: signer}
		}
		required.AddVkeyHash(signer)
	}
	required.AddScriptHash(script.Hash())
	return NativeScriptWitnessData{
		Script:  script,
		Signers: signers,
	}, nil
}

func plutusScriptWitness(
	witness PartialPlutusWitness,
	requiredSigners []common.AddrKeyHash,
	datum *common.Datum,
	required *RequiredWitnessSet,
) (PlutusScriptWitnessData, error) {
	if witness.Data.Data == nil && witness.Data.Cbor() == nil {
		return PlutusScriptWitnessData{}, ErrNoPlutusData
	}
	for _, signer := range requiredSigners {
		required.AddVkeyHash(signer)
	}
	required.AddScriptHash(witness.Script.Hash())
	if datum != nil {
		required.AddPlutusDataHash(datum.Hash())
	}
	return PlutusScriptWitnessData{
		Witness:         witness,
		RequiredSigners: requiredSigners,
		Datum:           datum,
	}, nil
}

func checkScriptCredential(cred common.Credential, hash common.ScriptHash) error {
	if !cred.IsScript() || cred.Hash != hash {
		return fmt.Errorf(
			"%w: credential %s, script %s",
			ErrScriptHashMismatch,
			cred,
			hash,
		)
	}
	return nil
}

// SingleInputBuilder attaches a witness to a transaction input
type SingleInputBuilder struct {
	input common.TransactionInput
}

func NewSingleInputBuilder(input common.TransactionInput) *SingleInputBuilder {
	return &SingleInputBuilder{input: input}
}

// PaymentKey finalizes an input locked by a payment key
func (b *SingleInputBuilder) PaymentKey(
	keyHash common.AddrKeyHash,
) InputBuilderResult {
	ret := InputBuilderResult{
		Input:   b.input,
		Witness: VkeyWitnessData{KeyHash: keyHash},
	}
	ret.RequiredWitnesses.AddVkeyHash(keyHash)
	return ret
}

// NativeScript finalizes an input locked by a native script
func (b *SingleInputBuilder) NativeScript(
	script common.NativeScript,
	signers []common.AddrKeyHash,
) (InputBuilderResult, error) {
	ret := InputBuilderResult{Input: b.input}
	witness, err := nativeScriptWitness(script, signers, &ret.RequiredWitnesses)
	if err != nil {
		return InputBuilderResult{}, err
	}
	ret.Witness = witness
	return ret, nil
}

// PlutusScript finalizes an input locked by a Plutus script. The datum is
// only needed when the output being spent carries a datum hash
func (b *SingleInputBuilder) PlutusScript(
	witness PartialPlutusWitness,
	requiredSigners []common.AddrKeyHash,
	datum *common.Datum,
) (InputBuilderResult, error) {
	ret := InputBuilderResult{Input: b.input}
	tmpWitness, err := plutusScriptWitness(
		witness,
		requiredSigners,
		datum,
		&ret.RequiredWitnesses,
	)
	if err != nil {
		return InputBuilderResult{}, err
	}
	ret.Witness = tmpWitness
	return ret, nil
}

// SingleMintBuilder attaches a policy script to a set of minted or burned assets
type SingleMintBuilder struct {
	assets map[cbor.ByteString]int64
}

func NewSingleMintBuilder(assets map[cbor.ByteString]int64) *SingleMintBuilder {
	return &SingleMintBuilder{assets: assets}
}

func (b *SingleMintBuilder) NativeScript(
	script common.NativeScript,
	signers []common.AddrKeyHash,
) (MintBuilderResult, error) {
	if len(b.assets) == 0 {
		return MintBuilderResult{}, ErrEmptyMint
	}
	ret := MintBuilderResult{
		PolicyId: script.Hash(),
		Assets:   b.assets,
	}
	witness, err := nativeScriptWitness(script, signers, &ret.RequiredWitnesses)
	if err != nil {
		return MintBuilderResult{}, err
	}
	ret.Witness = witness
	return ret, nil
}

func (b *SingleMintBuilder) PlutusScript(
	witness PartialPlutusWitness,
	requiredSigners []common.AddrKeyHash,
) (MintBuilderResult, error) {
	if len(b.assets) == 0 {
		return MintBuilderResult{}, ErrEmptyMint
	}
	ret := MintBuilderResult{
		PolicyId: witness.Script.Hash(),
		Assets:   b.assets,
	}
	tmpWitness, err := plutusScriptWitness(
		witness,
		requiredSigners,
		nil,
		&ret.RequiredWitnesses,
	)
	if err != nil {
		return MintBuilderResult{}, err
	}
	ret.Witness = tmpWitness
	return ret, nil
}

// SingleWithdrawalBuilder attaches a witness to a reward withdrawal
type SingleWithdrawalBuilder struct {
	address common.RewardAddress
	amount  uint64
}

func NewSingleWithdrawalBuilder(
	address common.RewardAddress,
	amount uint64,
) *SingleWithdrawalBuilder {
	return &SingleWithdrawalBuilder{
		address: address,
		amount:  amount,
	}
}

func (b *SingleWithdrawalBuilder) PaymentKey() (WithdrawalBuilderResult, error) {
	cred := b.address.Credential
	if cred.IsScript() {
		return WithdrawalBuilderResult{}, fmt.Errorf(
			"%w: %s",
			ErrNotKeyCredential,
			b.address,
		)
	}
	ret := WithdrawalBuilderResult{
		Address: b.address,
		Amount:  b.amount,
		Witness: VkeyWitnessData{KeyHash: cred.Hash},
	}
	ret.RequiredWitnesses.AddVkeyHash(cred.Hash)
	return ret, nil
}

func (b *SingleWithdrawalBuilder) NativeScript(
	script common.NativeScript,
	signers []common.AddrKeyHash,
) (WithdrawalBuilderResult, error) {
	if err := checkScriptCredential(b.address.Credential, script.Hash()); err != nil {
		return WithdrawalBuilderResult{}, err
	}
	ret := WithdrawalBuilderResult{
		Address: b.address,
		Amount:  b.amount,
	}
	witness, err := nativeScriptWitness(script, signers, &ret.RequiredWitnesses)
	if err != nil {
		return WithdrawalBuilderResult{}, err
	}
	ret.Witness = witness
	return ret, nil
}

func (b *SingleWithdrawalBuilder) PlutusScript(
	witness PartialPlutusWitness,
	requiredSigners []common.AddrKeyHash,
) (WithdrawalBuilderResult, error) {
	if err := checkScriptCredential(b.address.Credential, witness.Script.Hash()); err != nil {
		return WithdrawalBuilderResult{}, err
	}
	ret := WithdrawalBuilderResult{
		Address: b.address,
		Amount:  b.amount,
	}
	tmpWitness, err := plutusScriptWitness(
		witness,
		requiredSigners,
		nil,
		&ret.RequiredWitnesses,
	)
	if err != nil {
		return WithdrawalBuilderResult{}, err
	}
	ret.Witness = tmpWitness
	return ret, nil
}

// SingleCertificateBuilder attaches a witness to a certificate
type SingleCertificateBuilder struct {
	cert common.Certificate
}

func NewSingleCertificateBuilder(cert common.Certificate) *SingleCertificateBuilder {
	return &SingleCertificateBuilder{cert: cert}
}

func (b *SingleCertificateBuilder) credential() (common.Credential, error) {
	credCert, ok := b.cert.(common.CredentialCertificate)
	if !ok {
		return common.Credential{}, ErrNotCredentialCert
	}
	return credCert.Credential(), nil
}

// SkipWitness finalizes a certificate that the ledger does not require a
// witness for, such as a pre-Conway stake registration
func (b *SingleCertificateBuilder) SkipWitness() CertificateBuilderResult {
	return CertificateBuilderResult{Certificate: b.cert}
}

func (b *SingleCertificateBuilder) PaymentKey() (CertificateBuilderResult, error) {
	cred, err := b.credential()
	if err != nil {
		return CertificateBuilderResult{}, err
	}
	if cred.IsScript() {
		return CertificateBuilderResult{}, fmt.Errorf(
			"%w: %s",
			ErrNotKeyCredential,
			cred,
		)
	}
	ret := CertificateBuilderResult{
		Certificate: b.cert,
		Witness:     VkeyWitnessData{KeyHash: cred.Hash},
	}
	ret.RequiredWitnesses.AddVkeyHash(cred.Hash)
	return ret, nil
}

func (b *SingleCertificateBuilder) NativeScript(
	script common.NativeScript,
	signers []common.AddrKeyHash,
) (CertificateBuilderResult, error) {
	cred, err := b.credential()
	if err != nil {
		return CertificateBuilderResult{}, err
	}
	if err := checkScriptCredential(cred, script.Hash()); err != nil {
		return CertificateBuilderResult{}, err
	}
	ret := CertificateBuilderResult{Certificate: b.cert}
	witness, err := nativeScriptWitness(script, signers, &ret.RequiredWitnesses)
	if err != nil {
		return CertificateBuilderResult{}, err
	}
	ret.Witness = witness
	return ret, nil
}

func (b *SingleCertificateBuilder) PlutusScript(
	witness PartialPlutusWitness,
	requiredSigners []common.AddrKeyHash,
) (CertificateBuilderResult, error) {
	cred, err := b.credential()
	if err != nil {
		return CertificateBuilderResult{}, err
	}
	if err := checkScriptCredential(cred, witness.Script.Hash()); err != nil {
		return CertificateBuilderResult{}, err
	}
	ret := CertificateBuilderResult{Certificate: b.cert}
	tmpWitness, err := plutusScriptWitness(
		witness,
		requiredSigners,
		nil,
		&ret.RequiredWitnesses,
	)
	if err != nil {
		return CertificateBuilderResult{}, err
	}
	ret.Witness = tmpWitness
	return ret, nil
}
