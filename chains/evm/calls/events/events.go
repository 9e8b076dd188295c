// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

// Name returns the event name without its argument list, matching the
// event type tag carried by synthesized events.
func (es EventSig) Name() string {
	i := strings.Index(string(es), "(")
	if i == -1 {
		return string(es)
	}
	return string(es)[:i]
}

const (
	FundsDepositedSig            EventSig = "FundsDeposited(bytes32,bytes32,uint256,uint256,uint256,uint256,uint32,uint32,uint32,bytes32,bytes32,bytes32,bytes)"
	FilledRelaySig               EventSig = "FilledRelay(bytes32,bytes32,uint256,uint256,uint256,uint256,uint256,uint32,uint32,bytes32,bytes32,bytes32,bytes32,bytes32,(bytes32,bytes32,uint256,uint8))"
	RequestedSpeedUpDepositSig   EventSig = "RequestedSpeedUpDeposit(uint256,uint256,bytes32,bytes32,bytes,bytes)"
	RequestedSlowFillSig         EventSig = "RequestedSlowFill(bytes32,bytes32,uint256,uint256,uint256,uint256,uint32,uint32,bytes32,bytes32,bytes32,bytes32)"
	ExecutedRelayerRefundRootSig EventSig = "ExecutedRelayerRefundRoot(uint256,uint256,uint256[],uint32,uint32,address,address[],bool,address)"
	EnabledDepositRouteSig       EventSig = "EnabledDepositRoute(address,uint256,bool)"
)

// FillType mirrors the uint8 enum emitted inside the relay execution info
// of FilledRelay events.
type FillType uint8

const (
	FastFill FillType = iota
	ReplacedSlowFill
	SlowFill
)

func (f FillType) String() string {
	switch f {
	case FastFill:
		return "FastFill"
	case ReplacedSlowFill:
		return "ReplacedSlowFill"
	case SlowFill:
		return "SlowFill"
	default:
		return "Unknown"
	}
}
