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
	"cmp"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// TransactionInput identifies a transaction output being consumed
type TransactionInput struct {
	cbor.StructAsArray
	TxId        TransactionId
	OutputIndex uint32
}

// NewTransactionInput returns a TransactionInput from a hex transaction ID and an output index
func NewTransactionInput(hash string, idx int) (TransactionInput, error) {
	tmpHash, err := hex.DecodeString(hash)
	if err != nil {
		return TransactionInput{}, fmt.Errorf(
			"failed to decode transaction hash: %w",
			err,
		)
	}
	if len(tmpHash) != Blake2b256Size {
		return TransactionInput{}, fmt.Errorf(
			"invalid transaction hash length: %d",
			len(tmpHash),
		)
	}
	if idx < 0 || uint64(idx) > math.MaxUint32 {
		return TransactionInput{}, fmt.Errorf("index out of range: %d", idx)
	}
	return TransactionInput{
		TxId:        NewBlake2b256(tmpHash),
		OutputIndex: uint32(idx), // #nosec G115
	}, nil
}

func (i TransactionInput) Id() TransactionId {
	return i.TxId
}

func (i TransactionInput) Index() uint32 {
	return i.OutputIndex
}

// Compare orders inputs by transaction ID bytes, then by output index
func (i TransactionInput) Compare(other TransactionInput) int {
	if c := i.TxId.Compare(other.TxId); c != 0 {
		return c
	}
	return cmp.Compare(i.OutputIndex, other.OutputIndex)
}

func (i TransactionInput) Utxorpc() *utxorpc.TxInput {
	return &utxorpc.TxInput{
		TxHash:      i.TxId.Bytes(),
		OutputIndex: i.OutputIndex,
	}
}

func (i TransactionInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxId, i.OutputIndex)
}

func (i TransactionInput) MarshalJSON() ([]byte, error) {
	return []byte("\"" + i.String() + "\""), nil
}
