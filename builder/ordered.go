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
	"fmt"
	"iter"
	"slices"

	"github.com/blinklabs-io/txbuilder/ledger/common"
)

type trackedElement[K fmt.Stringer] struct {
	key K
	// nil for elements without a Plutus script witness
	placeholder redeemerPlaceholder
}

// trackedCollection holds every element of one kind in ledger order. With a
// compare function elements are kept sorted and unique by key, otherwise
// they keep insertion order. The position of an element is its index
type trackedCollection[K fmt.Stringer] struct {
	tag      common.RedeemerTag
	compare  func(a, b K) int
	elements []trackedElement[K]
}

func newSortedCollection[K fmt.Stringer](
	tag common.RedeemerTag,
	compare func(a, b K) int,
) *trackedCollection[K] {
	return &trackedCollection[K]{
		tag:     tag,
		compare: compare,
	}
}

func newSequentialCollection[K fmt.Stringer](
	tag common.RedeemerTag,
) *trackedCollection[K] {
	return &trackedCollection[K]{tag: tag}
}

func (c *trackedCollection[K]) find(key K) (int, bool) {
	return slices.BinarySearchFunc(
		c.elements,
		key,
		func(e trackedElement[K], k K) int {
			return c.compare(e.key, k)
		},
	)
}

// add records an element. Re-adding a known key with a placeholder replaces
// the previous placeholder, re-adding it without one does nothing
func (c *trackedCollection[K]) add(key K, placeholder redeemerPlaceholder) {
	if c.compare == nil {
		c.elements = append(
			c.elements,
			trackedElement[K]{key: key, placeholder: placeholder},
		)
		return
	}
	idx, found := c.find(key)
	if found {
		if placeholder != nil {
			c.elements[idx].placeholder = placeholder
		}
		return
	}
	c.elements = slices.Insert(
		c.elements,
		idx,
		trackedElement[K]{key: key, placeholder: placeholder},
	)
}

// witnessKey returns the redeemer key of a witnessed element of a sorted collection
func (c *trackedCollection[K]) witnessKey(key K) (RedeemerWitnessKey, bool) {
	if c.compare == nil {
		return RedeemerWitnessKey{}, false
	}
	idx, found := c.find(key)
	if !found || c.elements[idx].placeholder == nil {
		return RedeemerWitnessKey{}, false
	}
	return NewRedeemerWitnessKey(c.tag, uint32(idx)), true // #nosec G115
}

func (c *trackedCollection[K]) size() int {
	return len(c.elements)
}

func (c *trackedCollection[K]) updateExUnits(pos int, exUnits common.ExUnits) {
	if pos < 0 || pos >= len(c.elements) {
		panic(
			fmt.Sprintf(
				"redeemer index %d out of range for %s with %d elements",
				pos,
				c.tag,
				len(c.elements),
			),
		)
	}
	elem := &c.elements[pos]
	if elem.placeholder == nil {
		panic(
			fmt.Sprintf(
				"%s element %s at index %d has no script witness",
				c.tag,
				elem.key,
				pos,
			),
		)
	}
	elem.placeholder = withExUnits(elem.placeholder, exUnits)
}

// placeholders yields the position, key and placeholder of every witnessed element in order
func (c *trackedCollection[K]) placeholders() iter.Seq2[int, trackedPlaceholder] {
	return func(yield func(int, trackedPlaceholder) bool) {
		for pos, elem := range c.elements {
			if elem.placeholder == nil {
				continue
			}
			tmp := trackedPlaceholder{
				key:         elem.key.String(),
				placeholder: elem.placeholder,
			}
			if !yield(pos, tmp) {
				return
			}
		}
	}
}

type trackedPlaceholder struct {
	key         string
	placeholder redeemerPlaceholder
}

// redeemerCollection is the view of a trackedCollection that does not
// depend on its key type
type redeemerCollection interface {
	updateExUnits(int, common.ExUnits)
	placeholders() iter.Seq2[int, trackedPlaceholder]
}

// certificateKey renders a certificate for error messages
type certificateKey struct {
	cert common.Certificate
}

func (k certificateKey) String() string {
	if k.cert == nil {
		return "<nil>"
	}
	name := common.CertificateName(k.cert.Type())
	if credCert, ok := k.cert.(common.CredentialCertificate); ok {
		return fmt.Sprintf("%s(%s)", name, credCert.Credential())
	}
	return name
}
