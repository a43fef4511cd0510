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
	"github.com/blinklabs-io/txbuilder/ledger/common"
)

// RedeemerWitnessKey addresses a redeemer by its tag and index before the
// redeemer list exists
type RedeemerWitnessKey = common.RedeemerKey

func NewRedeemerWitnessKey(tag common.RedeemerTag, index uint32) RedeemerWitnessKey {
	return RedeemerWitnessKey{
		Tag:   tag,
		Index: index,
	}
}

// PlutusScriptWitness is a Plutus script that is either included in the
// witness set or provided by a reference input
type PlutusScriptWitness struct {
	Script common.Script
	Ref    common.ScriptHash
}

func NewInlinePlutusScriptWitness(script common.Script) PlutusScriptWitness {
	return PlutusScriptWitness{Script: script}
}

func NewRefPlutusScriptWitness(hash common.ScriptHash) PlutusScriptWitness {
	return PlutusScriptWitness{Ref: hash}
}

func (w PlutusScriptWitness) Hash() common.ScriptHash {
	if w.Script != nil {
		return w.Script.Hash()
	}
	return w.Ref
}

// IsRef reports whether the script is expected to come from a reference input
func (w PlutusScriptWitness) IsRef() bool {
	return w.Script == nil
}

// PartialPlutusWitness is a Plutus script witness whose redeemer budget is
// not known yet
type PartialPlutusWitness struct {
	Script PlutusScriptWitness
	Data   common.Datum
}

func NewPartialPlutusWitness(
	script PlutusScriptWitness,
	data common.Datum,
) PartialPlutusWitness {
	return PartialPlutusWitness{
		Script: script,
		Data:   data,
	}
}

// AggregateWitness is the witness attached to an element of a transaction.
// It is one of VkeyWitnessData, NativeScriptWitnessData or
// PlutusScriptWitnessData
type AggregateWitness interface {
	isAggregateWitness()
	// PlutusData returns the redeemer data for a Plutus script witness
	PlutusData() (common.Datum, bool)
}

type VkeyWitnessData struct {
	KeyHash common.AddrKeyHash
}

func (VkeyWitnessData) isAggregateWitness() {}

func (VkeyWitnessData) PlutusData() (common.Datum, bool) {
	return common.Datum{}, false
}

type NativeScriptWitnessData struct {
	Script  common.NativeScript
	Signers []common.AddrKeyHash
}

func (NativeScriptWitnessData) isAggregateWitness() {}

func (NativeScriptWitnessData) PlutusData() (common.Datum, bool) {
	return common.Datum{}, false
}

type PlutusScriptWitnessData struct {
	Witness         PartialPlutusWitness
	RequiredSigners []common.AddrKeyHash
	// Datum is only set when spending an output locked by a datum hash
	Datum *common.Datum
}

func (PlutusScriptWitnessData) isAggregateWitness() {}

func (w PlutusScriptWitnessData) PlutusData() (common.Datum, bool) {
	return w.Witness.Data, true
}

func witnessPlutusData(witness AggregateWitness) (common.Datum, bool) {
	if witness == nil {
		return common.Datum{}, false
	}
	return witness.PlutusData()
}
