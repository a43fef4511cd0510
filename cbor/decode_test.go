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

package cbor_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/txbuilder/cbor"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{uint64(1), uint64(2), uint64(3)},
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if test.BytesRead > 0 {
			if bytesRead != test.BytesRead {
				t.Fatalf(
					"expected to read %d bytes, read %d instead",
					test.BytesRead,
					bytesRead,
				)
			}
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf(
				"CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v",
				dest,
				test.Object,
			)
		}
	}
}

func TestListLength(t *testing.T) {
	testDefs := []struct {
		cborHex string
		length  int
	}{
		{cborHex: "80", length: 0},
		{cborHex: "8101", length: 1},
		{cborHex: "820103", length: 2},
		// 24 items requires a length prefix byte
		{
			cborHex: "9818000000000000000000000000000000000000000000000000",
			length:  24,
		},
	}
	for _, testDef := range testDefs {
		cborData, _ := hex.DecodeString(testDef.cborHex)
		length, err := cbor.ListLength(cborData)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if length != testDef.length {
			t.Fatalf("got length %d, wanted %d", length, testDef.length)
		}
	}
}

func TestDecodeIdFromList(t *testing.T) {
	testDefs := []struct {
		cborHex string
		id      int
		wantErr bool
	}{
		{cborHex: "820201", id: 2},
		// First item needs a length prefix
		{cborHex: "82181901", id: 25},
		{cborHex: "80", wantErr: true},
		// First item is a bytestring
		{cborHex: "824101", wantErr: true},
	}
	for _, testDef := range testDefs {
		cborData, _ := hex.DecodeString(testDef.cborHex)
		id, err := cbor.DecodeIdFromList(cborData)
		if testDef.wantErr {
			if err == nil {
				t.Fatalf("expected error for %s", testDef.cborHex)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if id != testDef.id {
			t.Fatalf("got ID %d, wanted %d", id, testDef.id)
		}
	}
}

type storedThing struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Id    uint
	Value []byte
}

func (s *storedThing) UnmarshalCBOR(data []byte) error {
	return s.UnmarshalCbor(data, s)
}

func TestDecodeStoreCbor(t *testing.T) {
	cborData, _ := hex.DecodeString("82074201ff")
	var thing storedThing
	if _, err := cbor.Decode(cborData, &thing); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if thing.Id != 7 {
		t.Fatalf("got ID %d, wanted 7", thing.Id)
	}
	if hex.EncodeToString(thing.Value) != "01ff" {
		t.Fatalf("got value %x, wanted 01ff", thing.Value)
	}
	if hex.EncodeToString(thing.Cbor()) != "82074201ff" {
		t.Fatalf("stored CBOR mismatch: %x", thing.Cbor())
	}
}
