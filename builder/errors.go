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
	"errors"
	"fmt"

	"github.com/blinklabs-io/txbuilder/ledger/common"
)

var (
	ErrNoPlutusData       = errors.New("plutus witness has no redeemer data")
	ErrNotKeyCredential   = errors.New("credential is not a key hash")
	ErrNotCredentialCert  = errors.New("certificate does not act on a stake credential")
	ErrEmptyMint          = errors.New("mint has no assets")
	ErrScriptHashMismatch = errors.New("script hash does not match credential")
)

// MissingExUnitsError is returned by Build when a script witnessed element
// never received an execution budget
type MissingExUnitsError struct {
	Tag   common.RedeemerTag
	Index uint32
	// Key is a human readable rendering of the element
	Key string
}

func (e *MissingExUnitsError) Error() string {
	return fmt.Sprintf(
		"missing execution budget for redeemer of kind %s at index %d, key %s",
		e.Tag,
		e.Index,
		e.Key,
	)
}

// UnknownRedeemerError is returned when an evaluator reports a budget for a
// redeemer that the builder does not track
type UnknownRedeemerError struct {
	Key RedeemerWitnessKey
}

func (e *UnknownRedeemerError) Error() string {
	return "evaluator returned a budget for unknown redeemer " + e.Key.String()
}

// SignerNotInScriptError is returned when a native script witness names a
// signer that the script never references
type SignerNotInScriptError struct {
	Signer common.AddrKeyHash
}

func (e *SignerNotInScriptError) Error() string {
	return "signer " + e.Signer.String() + " is not referenced by the native script"
}
