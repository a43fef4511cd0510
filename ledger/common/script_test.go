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

func TestPlutusScriptHash(t *testing.T) {
	raw := []byte{0x4d, 0x01, 0x00, 0x00}
	testDefs := []struct {
		script Script
		prefix byte
	}{
		{script: PlutusV1Script(raw), prefix: ScriptRefTypePlutusV1},
		{script: PlutusV2Script(raw), prefix: ScriptRefTypePlutusV2},
		{script: PlutusV3Script(raw), prefix: ScriptRefTypePlutusV3},
	}
	seen := map[ScriptHash]bool{}
	for _, testDef := range testDefs {
		expected := Blake2b224Hash(append([]byte{testDef.prefix}, raw...))
		if got := testDef.script.Hash(); got != expected {
			t.Fatalf("got hash %s, wanted %s", got, expected)
		}
		seen[testDef.script.Hash()] = true
	}
	if len(seen) != 3 {
		t.Fatal("script hashes should differ by language version")
	}
}

func TestNativeScriptPubkey(t *testing.T) {
	keyHash := NewBlake2b224([]byte{0x01})
	script := NewNativeScriptPubkey(keyHash)
	expectedCbor := "8200581c" + hex.EncodeToString(keyHash.Bytes())
	if got := hex.EncodeToString(script.Cbor()); got != expectedCbor {
		t.Fatalf("got CBOR %s, wanted %s", got, expectedCbor)
	}
	expectedHash := Blake2b224Hash(append([]byte{0x00}, script.Cbor()...))
	if script.Hash() != expectedHash {
		t.Fatalf("got hash %s, wanted %s", script.Hash(), expectedHash)
	}
}

func TestNativeScriptDecodeKeyHashes(t *testing.T) {
	keyA := NewBlake2b224([]byte{0x0a})
	keyB := NewBlake2b224([]byte{0x0b})
	script := NewNativeScriptAll(
		NewNativeScriptPubkey(keyA),
		NewNativeScriptAny(
			NewNativeScriptPubkey(keyB),
			NewNativeScriptPubkey(keyA),
		),
		NewNativeScriptInvalidHereafter(1000),
	)
	cborData, err := cbor.Encode(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var decoded NativeScript
	if _, err := cbor.Decode(cborData, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded.Hash() != script.Hash() {
		t.Fatalf("decoded hash %s does not match %s", decoded.Hash(), script.Hash())
	}
	keyHashes := decoded.KeyHashes()
	if len(keyHashes) != 2 || keyHashes[0] != keyA || keyHashes[1] != keyB {
		t.Fatalf("unexpected key hashes: %v", keyHashes)
	}
	if _, ok := decoded.Item().(*NativeScriptAll); !ok {
		t.Fatalf("unexpected item type: %T", decoded.Item())
	}
}

func TestNativeScriptUnknownType(t *testing.T) {
	var decoded NativeScript
	cborData, _ := hex.DecodeString("820900")
	if _, err := cbor.Decode(cborData, &decoded); err == nil {
		t.Fatal("expected error for unknown native script type")
	}
}
