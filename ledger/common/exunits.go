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
	"fmt"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// ExUnits represents the steps and memory usage for script execution
type ExUnits struct {
	cbor.StructAsArray
	Memory uint64
	Steps  uint64
}

func NewExUnits(memory, steps uint64) ExUnits {
	return ExUnits{
		Memory: memory,
		Steps:  steps,
	}
}

// DummyExUnits returns the zero budget used to assemble a transaction before
// its scripts have been evaluated
func DummyExUnits() ExUnits {
	return ExUnits{}
}

// Add returns the sum of both budgets
func (e ExUnits) Add(other ExUnits) ExUnits {
	return ExUnits{
		Memory: e.Memory + other.Memory,
		Steps:  e.Steps + other.Steps,
	}
}

func (e ExUnits) String() string {
	return fmt.Sprintf("{memory: %d, steps: %d}", e.Memory, e.Steps)
}

func (e ExUnits) Utxorpc() *utxorpc.ExUnits {
	return &utxorpc.ExUnits{
		Steps:  e.Steps,
		Memory: e.Memory,
	}
}
