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
	"errors"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txbuilder/cbor"
)

type DatumHash = Blake2b256

// Datum represents Plutus data, used both for datums and for redeemer arguments
type Datum struct {
	cbor.DecodeStoreCbor
	Data data.PlutusData
}

// NewDatum wraps the provided Plutus data
func NewDatum(pd data.PlutusData) Datum {
	return Datum{Data: pd}
}

func (d *Datum) UnmarshalCBOR(cborData []byte) error {
	tmpData, err := data.Decode(cborData)
	if err != nil {
		return err
	}
	d.Data = tmpData
	d.SetCbor(cborData)
	return nil
}

// MarshalCBOR returns the original CBOR when the datum was decoded, so that
// hashes computed over it stay stable
func (d Datum) MarshalCBOR() ([]byte, error) {
	if c := d.Cbor(); c != nil {
		return c, nil
	}
	if d.Data == nil {
		return nil, errors.New("datum has no data")
	}
	return data.Encode(d.Data)
}

func (d Datum) Hash() DatumHash {
	cborData, err := d.MarshalCBOR()
	if err != nil {
		return DatumHash{}
	}
	return Blake2b256Hash(cborData)
}

// Clone returns a deep copy of the datum that shares no memory with the original
func (d Datum) Clone() (Datum, error) {
	cborData, err := d.MarshalCBOR()
	if err != nil {
		return Datum{}, err
	}
	var ret Datum
	if err := ret.UnmarshalCBOR(cborData); err != nil {
		return Datum{}, err
	}
	return ret, nil
}
