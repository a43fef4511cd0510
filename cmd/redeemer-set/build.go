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

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/txbuilder/builder"
	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/blinklabs-io/txbuilder/internal/config"
	"github.com/blinklabs-io/txbuilder/internal/plan"
	"github.com/blinklabs-io/txbuilder/ledger/common"
	"github.com/spf13/cobra"
)

var buildFlags = struct {
	dummyExUnits bool
	outputFormat string
}{}

func buildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <plan.yaml>",
		Short: "Build the redeemer list described by a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				return errors.New("no config found in context")
			}
			// Flags override the config file and environment
			if cmd.Flags().Changed("dummy-exunits") {
				cfg.DummyExUnits = buildFlags.dummyExUnits
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputFormat = buildFlags.outputFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return buildRun(cmd.OutOrStdout(), cfg, args[0])
		},
	}
	cmd.Flags().
		BoolVar(&buildFlags.dummyExUnits, "dummy-exunits", false, "use a zero budget for redeemers without ex units")
	cmd.Flags().
		StringVarP(&buildFlags.outputFormat, "output", "o", config.OutputFormatCbor, "output format (cbor, json)")
	return cmd
}

func buildRun(out io.Writer, cfg *config.Config, planFile string) error {
	logger := commonRun()
	networkId, err := cfg.NetworkId()
	if err != nil {
		return err
	}
	p, err := plan.Load(planFile)
	if err != nil {
		return err
	}
	b := builder.NewRedeemerSetBuilder(builder.WithLogger(logger))
	if err := p.Apply(b, networkId); err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	redeemers, err := b.Build(cfg.DummyExUnits)
	if err != nil {
		return err
	}
	logger.Info(
		fmt.Sprintf("built %d redeemers", len(redeemers)),
		"component", programName,
		"total_ex_units", redeemers.TotalExUnits().String(),
	)
	return writeRedeemers(out, cfg.OutputFormat, redeemers)
}

type jsonRedeemer struct {
	Tag    string `json:"tag"`
	Index  uint32 `json:"index"`
	Data   string `json:"data"`
	Memory uint64 `json:"memory"`
	Steps  uint64 `json:"steps"`
}

func writeRedeemers(
	out io.Writer,
	outputFormat string,
	redeemers common.Redeemers,
) error {
	switch outputFormat {
	case config.OutputFormatJson:
		tmpRedeemers := make([]jsonRedeemer, 0, len(redeemers))
		for _, redeemer := range redeemers {
			dataCbor, err := redeemer.Data.MarshalCBOR()
			if err != nil {
				return err
			}
			tmpRedeemers = append(
				tmpRedeemers,
				jsonRedeemer{
					Tag:    redeemer.Tag.String(),
					Index:  redeemer.Index,
					Data:   hex.EncodeToString(dataCbor),
					Memory: redeemer.ExUnits.Memory,
					Steps:  redeemer.ExUnits.Steps,
				},
			)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tmpRedeemers)
	default:
		cborData, err := cbor.Encode(redeemers)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, hex.EncodeToString(cborData))
		return err
	}
}
