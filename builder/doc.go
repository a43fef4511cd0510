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

// Package builder tracks the script-witnessed elements of a transaction
// under construction and assembles its redeemer list.
//
// Each element kind has its own ordering, which must match the one the ledger
// uses when it recomputes redeemer indexes:
//
//   - spent inputs sort by transaction ID then output index
//   - minted policies sort by policy ID
//   - reward withdrawals sort by network then stake credential
//   - certificates keep the order they were added in
//
// The position of an element is its rank within every element of its kind
// that was added, witnessed or not, so the outer builder must forward each
// element it adds to the transaction.
package builder
