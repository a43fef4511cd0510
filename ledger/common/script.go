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
	"fmt"
	"slices"

	"github.com/blinklabs-io/txbuilder/cbor"
)

const (
	ScriptRefTypeNativeScript = 0
	ScriptRefTypePlutusV1     = 1
	ScriptRefTypePlutusV2     = 2
	ScriptRefTypePlutusV3     = 3
)

type Script interface {
	isScript()
	Hash() ScriptHash
	RawScriptBytes() []byte
}

type PlutusV1Script []byte

func (PlutusV1Script) isScript() {}

func (s PlutusV1Script) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypePlutusV1},
			[]byte(s),
		),
	)
}

func (s PlutusV1Script) RawScriptBytes() []byte {
	return []byte(s)
}

type PlutusV2Script []byte

func (PlutusV2Script) isScript() {}

func (s PlutusV2Script) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypePlutusV2},
			[]byte(s),
		),
	)
}

func (s PlutusV2Script) RawScriptBytes() []byte {
	return []byte(s)
}

type PlutusV3Script []byte

func (PlutusV3Script) isScript() {}

func (s PlutusV3Script) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypePlutusV3},
			[]byte(s),
		),
	)
}

func (s PlutusV3Script) RawScriptBytes() []byte {
	return []byte(s)
}

const (
	NativeScriptTypePubkey           = 0
	NativeScriptTypeAll              = 1
	NativeScriptTypeAny              = 2
	NativeScriptTypeNofK             = 3
	NativeScriptTypeInvalidBefore    = 4
	NativeScriptTypeInvalidHereafter = 5
)

// NativeScript is a timelock/multisig script. The original CBOR is kept so
// that the hash matches what was received
type NativeScript struct {
	cbor.DecodeStoreCbor
	item any
}

type NativeScriptPubkey struct {
	cbor.StructAsArray
	Type uint
	Hash AddrKeyHash
}

type NativeScriptAll struct {
	cbor.StructAsArray
	Type    uint
	Scripts []NativeScript
}

type NativeScriptAny struct {
	cbor.StructAsArray
	Type    uint
	Scripts []NativeScript
}

type NativeScriptNofK struct {
	cbor.StructAsArray
	Type    uint
	N       uint
	Scripts []NativeScript
}

type NativeScriptInvalidBefore struct {
	cbor.StructAsArray
	Type uint
	Slot uint64
}

type NativeScriptInvalidHereafter struct {
	cbor.StructAsArray
	Type uint
	Slot uint64
}

func newNativeScript(item any) NativeScript {
	ret := NativeScript{item: item}
	// Encoding our own item types cannot fail
	cborData, err := cbor.Encode(item)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding native script: %s", err))
	}
	ret.SetCbor(cborData)
	return ret
}

func NewNativeScriptPubkey(hash AddrKeyHash) NativeScript {
	return newNativeScript(
		&NativeScriptPubkey{Type: NativeScriptTypePubkey, Hash: hash},
	)
}

func NewNativeScriptAll(scripts ...NativeScript) NativeScript {
	return newNativeScript(
		&NativeScriptAll{Type: NativeScriptTypeAll, Scripts: scripts},
	)
}

func NewNativeScriptAny(scripts ...NativeScript) NativeScript {
	return newNativeScript(
		&NativeScriptAny{Type: NativeScriptTypeAny, Scripts: scripts},
	)
}

func NewNativeScriptNofK(n uint, scripts ...NativeScript) NativeScript {
	return newNativeScript(
		&NativeScriptNofK{Type: NativeScriptTypeNofK, N: n, Scripts: scripts},
	)
}

func NewNativeScriptInvalidBefore(slot uint64) NativeScript {
	return newNativeScript(
		&NativeScriptInvalidBefore{
			Type: NativeScriptTypeInvalidBefore,
			Slot: slot,
		},
	)
}

func NewNativeScriptInvalidHereafter(slot uint64) NativeScript {
	return newNativeScript(
		&NativeScriptInvalidHereafter{
			Type: NativeScriptTypeInvalidHereafter,
			Slot: slot,
		},
	)
}

func (NativeScript) isScript() {}

func (n *NativeScript) Item() any {
	return n.item
}

func (n *NativeScript) UnmarshalCBOR(data []byte) error {
	id, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	var tmpData any
	switch id {
	case NativeScriptTypePubkey:
		tmpData = &NativeScriptPubkey{}
	case NativeScriptTypeAll:
		tmpData = &NativeScriptAll{}
	case NativeScriptTypeAny:
		tmpData = &NativeScriptAny{}
	case NativeScriptTypeNofK:
		tmpData = &NativeScriptNofK{}
	case NativeScriptTypeInvalidBefore:
		tmpData = &NativeScriptInvalidBefore{}
	case NativeScriptTypeInvalidHereafter:
		tmpData = &NativeScriptInvalidHereafter{}
	default:
		return fmt.Errorf("unknown native script type %d", id)
	}
	if _, err := cbor.Decode(data, tmpData); err != nil {
		return err
	}
	n.item = tmpData
	n.SetCbor(data)
	return nil
}

func (n NativeScript) MarshalCBOR() ([]byte, error) {
	if c := n.Cbor(); c != nil {
		return c, nil
	}
	if n.item == nil {
		return nil, errors.New("empty native script")
	}
	return cbor.Encode(n.item)
}

func (n NativeScript) Hash() ScriptHash {
	return Blake2b224Hash(
		slices.Concat(
			[]byte{ScriptRefTypeNativeScript},
			n.Cbor(),
		),
	)
}

func (n NativeScript) RawScriptBytes() []byte {
	return n.Cbor()
}

// KeyHashes returns every key hash referenced by the script and its sub-scripts
func (n NativeScript) KeyHashes() []AddrKeyHash {
	var ret []AddrKeyHash
	var subScripts []NativeScript
	switch item := n.item.(type) {
	case *NativeScriptPubkey:
		return []AddrKeyHash{item.Hash}
	case *NativeScriptAll:
		subScripts = item.Scripts
	case *NativeScriptAny:
		subScripts = item.Scripts
	case *NativeScriptNofK:
		subScripts = item.Scripts
	}
	for _, s := range subScripts {
		for _, h := range s.KeyHashes() {
			if !slices.Contains(ret, h) {
				ret = append(ret, h)
			}
		}
	}
	return ret
}
