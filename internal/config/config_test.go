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
	"os"
	"path/filepath"
	"testing"

	"github.com/blinklabs-io/txbuilder/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "txbuilder.yaml")
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return tmpFile
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	tmpFile := writeConfigFile(t, `
network: preview
dummyExUnits: true
outputFormat: json
`)
	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	expected := &Config{
		Network:      "preview",
		DummyExUnits: true,
		OutputFormat: OutputFormatJson,
	}
	assert.Equal(t, expected, cfg)
	networkId, err := cfg.NetworkId()
	require.NoError(t, err)
	assert.Equal(t, uint8(common.AddressNetworkTestnet), networkId)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	tmpFile := writeConfigFile(t, "network: preview\n")
	t.Setenv("TXBUILDER_NETWORK", "mainnet")
	t.Setenv("TXBUILDER_DUMMY_EX_UNITS", "true")
	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cfg.Network)
	assert.True(t, cfg.DummyExUnits)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfigFile(t, "network: [\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfigFile(t, "network: moonnet\n"))
	assert.ErrorIs(t, err, ErrUnknownNetwork)

	_, err = LoadConfig(writeConfigFile(t, "outputFormat: xml\n"))
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	cfg := DefaultConfig()
	ctx := WithContext(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))
}
