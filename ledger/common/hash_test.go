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
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/txbuilder/cbor"
)

func TestBlake2bHashEmpty(t *testing.T) {
	if got := Blake2b224Hash(nil).String(); got != "836cc68931c2e4e3e838602eca1902591d216837bafddfe6f0c8cb07" {
		t.Fatalf("unexpected blake2b-224 hash: %s", got)
	}
	if got := Blake2b256Hash(nil).String(); got != "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8" {
		t.Fatalf("unexpected blake2b-256 hash: %s", got)
	}
}

func TestBlake2b224Cbor(t *testing.T) {
	hash := NewBlake2b224([]byte{0x01, 0x02})
	cborData, err := cbor.Encode(hash)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Zero-padded to the full hash length
	expected := "581c0102" + "0000000000000000000000000000000000000000000000000000"
	if hex.EncodeToString(cborData) != expected {
		t.Fatalf("got %x, wanted %s", cborData, expected)
	}
	var decoded Blake2b224
	if _, err := cbor.Decode(cborData, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded != hash {
		t.Fatalf("got %s, wanted %s", decoded, hash)
	}
	short, _ := hex.DecodeString("430102ff")
	if _, err := cbor.Decode(short, &decoded); err == nil {
		t.Fatal("expected error decoding short hash")
	}
}

func TestBlake2bCompare(t *testing.T) {
	a := NewBlake2b256([]byte{0x00, 0xff})
	b := NewBlake2b256([]byte{0x01})
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatal("unexpected Blake2b256 ordering")
	}
	c := NewBlake2b224([]byte{0x10})
	d := NewBlake2b224([]byte{0x10, 0x01})
	if c.Compare(d) != -1 {
		t.Fatal("unexpected Blake2b224 ordering")
	}
}
