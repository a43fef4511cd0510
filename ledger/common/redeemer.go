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
	"iter"
	"slices"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

type RedeemerTag uint8

const (
	RedeemerTagSpend  RedeemerTag = 0
	RedeemerTagMint   RedeemerTag = 1
	RedeemerTagCert   RedeemerTag = 2
	RedeemerTagReward RedeemerTag = 3
)

func (t RedeemerTag) String() string {
	switch t {
	case RedeemerTagSpend:
		return "Spend"
	case RedeemerTagMint:
		return "Mint"
	case RedeemerTagCert:
		return "Cert"
	case RedeemerTagReward:
		return "Reward"
	default:
		return fmt.Sprintf("RedeemerTag(%d)", uint8(t))
	}
}

func (t RedeemerTag) Utxorpc() utxorpc.RedeemerPurpose {
	switch t {
	case RedeemerTagSpend:
		return utxorpc.RedeemerPurpose_REDEEMER_PURPOSE_SPEND
	case RedeemerTagMint:
		return utxorpc.RedeemerPurpose_REDEEMER_PURPOSE_MINT
	case RedeemerTagCert:
		return utxorpc.RedeemerPurpose_REDEEMER_PURPOSE_CERT
	case RedeemerTagReward:
		return utxorpc.RedeemerPurpose_REDEEMER_PURPOSE_REWARD
	default:
		return utxorpc.RedeemerPurpose_REDEEMER_PURPOSE_UNSPECIFIED
	}
}

// RedeemerKey addresses a redeemer by its purpose and the index of the object that triggered it
type RedeemerKey struct {
	Tag   RedeemerTag
	Index uint32
}

func (k RedeemerKey) String() string {
	return fmt.Sprintf("%s[%d]", k.Tag, k.Index)
}

type RedeemerValue struct {
	Data    Datum
	ExUnits ExUnits
}

// Redeemer is a single entry of the transaction witness set redeemer list
type Redeemer struct {
	cbor.StructAsArray
	Tag     RedeemerTag
	Index   uint32
	Data    Datum
	ExUnits ExUnits
}

func (r Redeemer) Key() RedeemerKey {
	return RedeemerKey{
		Tag:   r.Tag,
		Index: r.Index,
	}
}

func (r Redeemer) Utxorpc() *utxorpc.Redeemer {
	return &utxorpc.Redeemer{
		Purpose: r.Tag.Utxorpc(),
		Index:   r.Index,
		ExUnits: r.ExUnits.Utxorpc(),
	}
}

// Redeemers is the redeemer list of a transaction witness set, in the order it is serialized
type Redeemers []Redeemer

// Iter yields the redeemers sorted by tag and index
func (r Redeemers) Iter() iter.Seq2[RedeemerKey, RedeemerValue] {
	return func(yield func(RedeemerKey, RedeemerValue) bool) {
		sorted := slices.Clone(r)
		slices.SortStableFunc(
			sorted,
			func(a, b Redeemer) int {
				if a.Tag != b.Tag {
					return int(a.Tag) - int(b.Tag)
				}
				if a.Index < b.Index {
					return -1
				}
				if a.Index > b.Index {
					return 1
				}
				return 0
			},
		)
		for _, redeemer := range sorted {
			tmpVal := RedeemerValue{
				Data:    redeemer.Data,
				ExUnits: redeemer.ExUnits,
			}
			if !yield(redeemer.Key(), tmpVal) {
				return
			}
		}
	}
}

func (r Redeemers) Indexes(tag RedeemerTag) []uint {
	ret := []uint{}
	for _, redeemer := range r {
		if redeemer.Tag == tag {
			ret = append(ret, uint(redeemer.Index))
		}
	}
	return ret
}

func (r Redeemers) Value(
	index uint,
	tag RedeemerTag,
) RedeemerValue {
	for _, redeemer := range r {
		if redeemer.Tag == tag && uint(redeemer.Index) == index {
			return RedeemerValue{
				Data:    redeemer.Data,
				ExUnits: redeemer.ExUnits,
			}
		}
	}
	return RedeemerValue{}
}

// TotalExUnits returns the sum of the budgets of all redeemers
func (r Redeemers) TotalExUnits() ExUnits {
	var ret ExUnits
	for _, redeemer := range r {
		ret = ret.Add(redeemer.ExUnits)
	}
	return ret
}

func (r Redeemers) Utxorpc() []*utxorpc.Redeemer {
	ret := make([]*utxorpc.Redeemer, 0, len(r))
	for _, redeemer := range r {
		ret = append(ret, redeemer.Utxorpc())
	}
	return ret
}

func (r Redeemers) MarshalCBOR() ([]byte, error) {
	// Encode as the definite-length list form, accepted by every Plutus era
	tmp := make([]Redeemer, len(r))
	copy(tmp, r)
	return cbor.Encode(tmp)
}
