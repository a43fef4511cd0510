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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the encoding rules
// used for Cardano ledger data.
//
// Embed StructAsArray in a struct to encode it as a CBOR array in field
// order instead of a map. Embed DecodeStoreCbor to keep the original bytes
// of a decoded object, which is required wherever a hash is computed over
// the wire form rather than a re-encoding.
//
//	type Thing struct {
//	    cbor.StructAsArray
//	    cbor.DecodeStoreCbor
//	    Id    uint
//	    Value []byte
//	}
//
//	func (t *Thing) UnmarshalCBOR(data []byte) error {
//	    return t.UnmarshalCbor(data, t)
//	}
package cbor
