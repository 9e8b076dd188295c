// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
)

type EventSigTestSuite struct {
	suite.Suite
}

func TestRunEventSigTestSuite(t *testing.T) {
	suite.Run(t, new(EventSigTestSuite))
}

func (s *EventSigTestSuite) Test_Name() {
	s.Equal("FundsDeposited", events.FundsDepositedSig.Name())
	s.Equal("FilledRelay", events.FilledRelaySig.Name())
	s.Equal("RequestedSpeedUpDeposit", events.RequestedSpeedUpDepositSig.Name())
	s.Equal("RequestedSlowFill", events.RequestedSlowFillSig.Name())
	s.Equal("ExecutedRelayerRefundRoot", events.ExecutedRelayerRefundRootSig.Name())
	s.Equal("EnabledDepositRoute", events.EnabledDepositRouteSig.Name())
}

func (s *EventSigTestSuite) Test_GetTopic() {
	expected := crypto.Keccak256Hash([]byte(events.EnabledDepositRouteSig))

	s.Equal(expected, events.EnabledDepositRouteSig.GetTopic())
}

func (s *EventSigTestSuite) Test_FillTypeString() {
	s.Equal("FastFill", events.FastFill.String())
	s.Equal("ReplacedSlowFill", events.ReplacedSlowFill.String())
	s.Equal("SlowFill", events.SlowFill.String())
}
