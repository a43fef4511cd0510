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
	"context"
	"fmt"
	"slices"

	"github.com/blinklabs-io/txbuilder/ledger/common"
)

// ExUnitsEvaluator computes the execution budget of each redeemer of a
// transaction, typically by running its scripts
type ExUnitsEvaluator interface {
	EvaluateRedeemers(
		ctx context.Context,
		redeemers common.Redeemers,
	) (map[RedeemerWitnessKey]common.ExUnits, error)
}

// ExUnitsEvaluatorFunc allows using a plain function as an ExUnitsEvaluator
type ExUnitsEvaluatorFunc func(context.Context, common.Redeemers) (map[RedeemerWitnessKey]common.ExUnits, error)

func (f ExUnitsEvaluatorFunc) EvaluateRedeemers(
	ctx context.Context,
	redeemers common.Redeemers,
) (map[RedeemerWitnessKey]common.ExUnits, error) {
	return f(ctx, redeemers)
}

// ApplyEvaluation builds the redeemers with dummy budgets, passes them to the
// evaluator and stores the returned budgets in the builder. It returns the
// final redeemers, which fails if the evaluator left any redeemer without a
// budget. No budget is stored if the evaluator returns an unknown key
func ApplyEvaluation(
	ctx context.Context,
	b *RedeemerSetBuilder,
	evaluator ExUnitsEvaluator,
) (common.Redeemers, error) {
	if b.IsEmpty() {
		return common.Redeemers{}, nil
	}
	draft, err := b.Build(true)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	budgets, err := evaluator.EvaluateRedeemers(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("evaluate redeemers: %w", err)
	}
	known := b.WitnessKeys()
	keys := make([]RedeemerWitnessKey, 0, len(budgets))
	for key := range budgets {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compareWitnessKeys)
	for _, key := range keys {
		if !slices.Contains(known, key) {
			return nil, &UnknownRedeemerError{Key: key}
		}
	}
	for _, key := range keys {
		b.UpdateExUnits(key, budgets[key])
	}
	return b.Build(false)
}

func compareWitnessKeys(a, b RedeemerWitnessKey) int {
	if a.Tag != b.Tag {
		return int(a.Tag) - int(b.Tag)
	}
	if a.Index < b.Index {
		return -1
	}
	if a.Index > b.Index {
		return 1
	}
	return 0
}
