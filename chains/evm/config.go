// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/across-testkit/config"
	"github.com/sprintertech/across-testkit/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	AcrossPool common.Address
	StartBlock uint64
	Seed       int64

	Tokens map[string]config.TokenConfig

	BlockTime time.Duration
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	AcrossPool string                    `mapstructure:"acrossPool"`
	StartBlock uint64                    `mapstructure:"startBlock" default:"100"`
	Seed       int64                     `mapstructure:"seed" default:"42"`
	Tokens     map[string]RawTokenConfig `mapstructure:"tokens"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.AcrossPool == "" {
		return fmt.Errorf("required field chain.AcrossPool empty for chain %v", *c.Id)
	}
	if !common.IsHexAddress(c.AcrossPool) {
		return fmt.Errorf("invalid across pool address %s for chain %v", c.AcrossPool, *c.Id)
	}
	for symbol, t := range c.Tokens {
		if !common.IsHexAddress(t.Address) {
			return fmt.Errorf("invalid address %s for token %s", t.Address, symbol)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, t := range c.Tokens {
		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(t.Address),
			Decimals: t.Decimals,
		}
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		AcrossPool:         common.HexToAddress(c.AcrossPool),
		StartBlock:         c.StartBlock,
		Seed:               c.Seed,
		Tokens:             tokens,
		// nolint:gosec
		BlockTime: time.Duration(c.Blocktime) * time.Second,
	}, nil
}
