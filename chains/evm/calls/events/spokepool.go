package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FundsDeposited holds the argument layout of a spoke pool deposit.
// Indexed fields are destinationChainId, depositId and depositor, in
// that order. BlockNumber and TransactionIndex position the event when
// synthesized; zero values request automatic placement.
type FundsDeposited struct {
	InputToken          common.Address
	OutputToken         common.Address
	InputAmount         *big.Int
	OutputAmount        *big.Int
	OriginChainId       *big.Int
	DestinationChainId  *big.Int
	DepositId           *big.Int
	QuoteTimestamp      uint32
	FillDeadline        uint32
	ExclusivityDeadline uint32
	Depositor           common.Address
	Recipient           common.Address
	ExclusiveRelayer    common.Address
	Message             []byte

	BlockNumber      uint64
	TransactionIndex uint
}

// RelayExecutionInfo is the nested tuple emitted with every fill.
type RelayExecutionInfo struct {
	UpdatedRecipient    common.Address
	UpdatedMessage      []byte
	UpdatedOutputAmount *big.Int
	FillType            FillType
}

// FilledRelay holds the argument layout of a relayer fulfillment.
// Indexed fields are originChainId, depositId and relayer.
type FilledRelay struct {
	InputToken          common.Address
	OutputToken         common.Address
	InputAmount         *big.Int
	OutputAmount        *big.Int
	RepaymentChainId    *big.Int
	OriginChainId       *big.Int
	DepositId           *big.Int
	FillDeadline        uint32
	ExclusivityDeadline uint32
	ExclusiveRelayer    common.Address
	Relayer             common.Address
	Depositor           common.Address
	Recipient           common.Address
	Message             []byte
	RelayExecutionInfo  RelayExecutionInfo

	BlockNumber      uint64
	TransactionIndex uint
}

// RequestedSpeedUpDeposit is a depositor-signed amendment of an earlier
// deposit. Indexed fields are depositId and depositor.
type RequestedSpeedUpDeposit struct {
	UpdatedOutputAmount *big.Int
	DepositId           *big.Int
	Depositor           common.Address
	UpdatedRecipient    common.Address
	UpdatedMessage      []byte
	DepositorSignature  []byte

	BlockNumber      uint64
	TransactionIndex uint
}

// RequestedSlowFill requests deferred fulfillment of a deposit,
// referenced by the (originChainId, depositId) pair. Both are indexed.
type RequestedSlowFill struct {
	InputToken          common.Address
	OutputToken         common.Address
	InputAmount         *big.Int
	OutputAmount        *big.Int
	OriginChainId       *big.Int
	DepositId           *big.Int
	FillDeadline        uint32
	ExclusivityDeadline uint32
	ExclusiveRelayer    common.Address
	Depositor           common.Address
	Recipient           common.Address
	Message             []byte

	BlockNumber      uint64
	TransactionIndex uint
}

// ExecutedRelayerRefundRoot is one refund leaf executed out of a root
// bundle. RefundAddresses and RefundAmounts correlate by position and
// must have equal length. Indexed fields are chainId, rootBundleId and
// leafId.
type ExecutedRelayerRefundRoot struct {
	AmountToReturn  *big.Int
	ChainId         *big.Int
	RefundAmounts   []*big.Int
	RootBundleId    uint32
	LeafId          uint32
	L2TokenAddress  common.Address
	RefundAddresses []common.Address

	BlockNumber      uint64
	TransactionIndex uint
}

// EnabledDepositRoute toggles whether deposits for an origin token
// towards a destination chain are permitted. Indexed fields are
// originToken and destinationChainId.
type EnabledDepositRoute struct {
	OriginToken        common.Address
	DestinationChainId *big.Int
	Enabled            bool

	BlockNumber      uint64
	TransactionIndex uint
}

// RelayData is the relay tuple referenced by slow fill leaves.
type RelayData struct {
	Depositor           common.Address
	Recipient           common.Address
	ExclusiveRelayer    common.Address
	InputToken          common.Address
	OutputToken         common.Address
	InputAmount         *big.Int
	OutputAmount        *big.Int
	OriginChainId       *big.Int
	DepositId           *big.Int
	FillDeadline        uint32
	ExclusivityDeadline uint32
	Message             []byte
}

// SlowFillLeaf describes a slow fill settled through a refund bundle.
// The root bundle id and merkle proof accompanying a leaf on chain are
// of no interest here and are not modeled.
type SlowFillLeaf struct {
	RelayData           RelayData
	ChainId             *big.Int
	UpdatedOutputAmount *big.Int
}
