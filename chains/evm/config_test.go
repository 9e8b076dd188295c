// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-testkit/chains/evm"
	"github.com/sprintertech/across-testkit/config"
	"github.com/sprintertech/across-testkit/config/chain"
)

type NewEVMConfigTestSuite struct {
	suite.Suite
}

func TestRunNewEVMConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewEVMConfigTestSuite))
}

func (s *NewEVMConfigTestSuite) Test_FailedDecode() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"startBlock": "invalid",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_FailedGeneralConfigValidation() {
	_, err := evm.NewEVMConfig(map[string]interface{}{})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_MissingAcrossPool() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"id":   1,
		"name": "evm1",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_InvalidAcrossPool() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"id":         1,
		"name":       "evm1",
		"acrossPool": "not-an-address",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_InvalidTokenAddress() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"id":         1,
		"name":       "evm1",
		"acrossPool": "0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"tokens": map[string]interface{}{
			"WETH": map[string]interface{}{
				"address": "not-an-address",
			},
		},
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_ValidConfig() {
	rawConfig := map[string]interface{}{
		"id":         1,
		"name":       "evm1",
		"acrossPool": "0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	id := new(uint64)
	*id = 1
	s.Nil(err)
	s.Equal(*actualConfig, evm.EVMConfig{
		GeneralChainConfig: chain.GeneralChainConfig{
			Name:      "evm1",
			Id:        id,
			Blocktime: 12,
		},
		AcrossPool: common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
		StartBlock: 100,
		Seed:       42,
		Tokens:     make(map[string]config.TokenConfig),
		BlockTime:  time.Duration(12) * time.Second,
	})
}

func (s *NewEVMConfigTestSuite) Test_ValidConfigWithCustomParams() {
	rawConfig := map[string]interface{}{
		"id":         1,
		"name":       "evm1",
		"blocktime":  2,
		"acrossPool": "0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"startBlock": 1000,
		"seed":       7,
		"tokens": map[string]interface{}{
			"WETH": map[string]interface{}{
				"address":  "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
				"decimals": 18,
			},
		},
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	id := new(uint64)
	*id = 1
	s.Nil(err)
	s.Equal(*actualConfig, evm.EVMConfig{
		GeneralChainConfig: chain.GeneralChainConfig{
			Name:      "evm1",
			Id:        id,
			Blocktime: 2,
		},
		AcrossPool: common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
		StartBlock: 1000,
		Seed:       7,
		Tokens: map[string]config.TokenConfig{
			"WETH": {
				Address:  common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
				Decimals: 18,
			},
		},
		BlockTime: time.Duration(2) * time.Second,
	})
}
