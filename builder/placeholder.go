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

// UntaggedRedeemer is a redeemer that has not been assigned its tag and index yet
type UntaggedRedeemer struct {
	Data    common.Datum
	ExUnits common.ExUnits
}

// redeemerPlaceholder is either a dataOnlyPlaceholder or a completePlaceholder
type redeemerPlaceholder interface {
	isRedeemerPlaceholder()
}

type dataOnlyPlaceholder struct {
	data common.Datum
}

func (dataOnlyPlaceholder) isRedeemerPlaceholder() {}

type completePlaceholder struct {
	redeemer UntaggedRedeemer
}

func (completePlaceholder) isRedeemerPlaceholder() {}

// withExUnits returns a complete placeholder carrying the data of p and the provided budget
func withExUnits(
	p redeemerPlaceholder,
	exUnits common.ExUnits,
) redeemerPlaceholder {
	switch p := p.(type) {
	case dataOnlyPlaceholder:
		return completePlaceholder{
			redeemer: UntaggedRedeemer{Data: p.data, ExUnits: exUnits},
		}
	case completePlaceholder:
		return completePlaceholder{
			redeemer: UntaggedRedeemer{Data: p.redeemer.Data, ExUnits: exUnits},
		}
	default:
		panic("unknown redeemer placeholder type")
	}
}

// finish returns the redeemer for p, substituting the dummy budget when
// useDummy is set. ok is false when no budget is available
func finish(p redeemerPlaceholder, useDummy bool) (UntaggedRedeemer, bool) {
	switch p := p.(type) {
	case completePlaceholder:
		return p.redeemer, true
	case dataOnlyPlaceholder:
		if !useDummy {
			return UntaggedRedeemer{}, false
		}
		return UntaggedRedeemer{
			Data:    p.data,
			ExUnits: common.DummyExUnits(),
		}, true
	default:
		panic("unknown redeemer placeholder type")
	}
}
