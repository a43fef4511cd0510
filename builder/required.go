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
	"slices"

	"github.com/blinklabs-io/txbuilder/ledger/common"
	"github.com/jinzhu/copier"
)

// RequiredWitnessSet lists the witnesses a transaction must carry because of
// the elements added to it
type RequiredWitnessSet struct {
	VkeyHashes       []common.AddrKeyHash
	ScriptHashes     []common.ScriptHash
	PlutusDataHashes []common.DatumHash
	Redeemers        []RedeemerWitnessKey
}

func (s *RequiredWitnessSet) AddVkeyHash(hash common.AddrKeyHash) {
	if !slices.Contains(s.VkeyHashes, hash) {
		s.VkeyHashes = append(s.VkeyHashes, hash)
	}
}

func (s *RequiredWitnessSet) AddScriptHash(hash common.ScriptHash) {
	if !slices.Contains(s.ScriptHashes, hash) {
		s.ScriptHashes = append(s.ScriptHashes, hash)
	}
}

func (s *RequiredWitnessSet) AddPlutusDataHash(hash common.DatumHash) {
	if !slices.Contains(s.PlutusDataHashes, hash) {
		s.PlutusDataHashes = append(s.PlutusDataHashes, hash)
	}
}

func (s *RequiredWitnessSet) AddRedeemer(key RedeemerWitnessKey) {
	if !slices.Contains(s.Redeemers, key) {
		s.Redeemers = append(s.Redeemers, key)
	}
}

// Merge adds every witness from other that is not already present
func (s *RequiredWitnessSet) Merge(other RequiredWitnessSet) {
	for _, hash := range other.VkeyHashes {
		s.AddVkeyHash(hash)
	}
	for _, hash := range other.ScriptHashes {
		s.AddScriptHash(hash)
	}
	for _, hash := range other.PlutusDataHashes {
		s.AddPlutusDataHash(hash)
	}
	for _, key := range other.Redeemers {
		s.AddRedeemer(key)
	}
}

func (s RequiredWitnessSet) Len() int {
	return len(s.VkeyHashes) +
		len(s.ScriptHashes) +
		len(s.PlutusDataHashes) +
		len(s.Redeemers)
}

// Clone returns a deep copy of the set
func (s RequiredWitnessSet) Clone() (RequiredWitnessSet, error) {
	var ret RequiredWitnessSet
	if err := copier.CopyWithOption(&ret, &s, copier.Option{DeepCopy: true}); err != nil {
		return RequiredWitnessSet{}, err
	}
	return ret, nil
}
