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

package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/blinklabs-io/txbuilder/ledger/common"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "txbuilder.config"

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

const (
	OutputFormatCbor = "cbor"
	OutputFormatJson = "json"
)

var ErrUnknownNetwork = errors.New("unknown network")

type Config struct {
	Network      string `yaml:"network"`
	DummyExUnits bool   `yaml:"dummyExUnits" split_words:"true"`
	OutputFormat string `yaml:"outputFormat" split_words:"true"`
}

func DefaultConfig() *Config {
	return &Config{
		Network:      "mainnet",
		OutputFormat: OutputFormatCbor,
	}
}

// NetworkId returns the address network ID for the configured network
func (c *Config) NetworkId() (uint8, error) {
	network, ok := common.NetworkByName(c.Network)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNetwork, c.Network)
	}
	return network.Id, nil
}

func (c *Config) Validate() error {
	if _, err := c.NetworkId(); err != nil {
		return err
	}
	switch c.OutputFormat {
	case OutputFormatCbor, OutputFormatJson:
	default:
		return fmt.Errorf("unknown output format: %s", c.OutputFormat)
	}
	return nil
}

// LoadConfig returns the default config, updated from the YAML file (if
// any) and then from TXBUILDER_* environment variables
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := envconfig.Process("txbuilder", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
