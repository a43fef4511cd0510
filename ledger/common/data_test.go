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
	"math/big"
	"slices"
	"testing"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatumCborRoundTrip(t *testing.T) {
	datum := NewDatum(
		data.NewConstr(
			0,
			data.NewByteString([]byte{0xca, 0xfe}),
			data.NewInteger(big.NewInt(42)),
		),
	)
	cborData, err := cbor.Encode(datum)
	require.NoError(t, err)
	var decoded Datum
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, cborData, decoded.Cbor())
	assert.Equal(t, datum.Hash(), decoded.Hash())
	assert.Equal(t, Blake2b256Hash(cborData), decoded.Hash())
}

func TestDatumClone(t *testing.T) {
	datum := NewDatum(data.NewInteger(big.NewInt(7)))
	clone, err := datum.Clone()
	require.NoError(t, err)
	assert.Equal(t, datum.Hash(), clone.Hash())
	// The clone carries its own copy of the CBOR
	orig := slices.Clone(clone.Cbor())
	require.NotEmpty(t, orig)
	other, err := clone.Clone()
	require.NoError(t, err)
	other.Cbor()[0] ^= 0xff
	assert.Equal(t, orig, clone.Cbor())
}

func TestDatumEmpty(t *testing.T) {
	var datum Datum
	_, err := datum.MarshalCBOR()
	assert.Error(t, err)
	_, err = datum.Clone()
	assert.Error(t, err)
}
