// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-testkit/config"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) write(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(content), 0600)
	s.Nil(err)
	return path
}

func (s *GetConfigTestSuite) Test_MissingFile() {
	_, err := config.GetConfigFromFile("invalid", config.DefaultConfig())

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_NoChains() {
	path := s.write(`
testkit:
  logLevel: debug
`)

	_, err := config.GetConfigFromFile(path, config.DefaultConfig())

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_DefaultsApplied() {
	path := s.write(`
chains:
  - id: 1
    name: evm1
    type: evm
`)

	c, err := config.GetConfigFromFile(path, config.DefaultConfig())

	s.Nil(err)
	s.Equal("info", c.TestkitConfig.LogLevel)
	s.Equal("local", c.TestkitConfig.Env)
	s.Equal(":8080", c.TestkitConfig.ApiAddr)
	s.Equal(uint16(9001), c.TestkitConfig.HealthPort)
	s.Len(c.ChainConfigs, 1)
}

func (s *GetConfigTestSuite) Test_FileOverridesDefaults() {
	path := s.write(`
testkit:
  logLevel: debug
  env: test
  opentelemetryCollectorURL: http://localhost:4318
chains:
  - id: 1
    name: evm1
    type: evm
  - id: 10
    name: evm2
    type: evm
`)

	c, err := config.GetConfigFromFile(path, config.DefaultConfig())

	s.Nil(err)
	s.Equal("debug", c.TestkitConfig.LogLevel)
	s.Equal("test", c.TestkitConfig.Env)
	s.Equal("http://localhost:4318", c.TestkitConfig.OpenTelemetryCollectorURL)
	s.Len(c.ChainConfigs, 2)
}
