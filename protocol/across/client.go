package across

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/store"
)

// RealizedLpFee pairs a realized LP fee rate, expressed in 1e18 units,
// with the block the quoted deposit originated in.
type RealizedLpFee struct {
	Pct         *big.Int
	BlockNumber uint64
}

// UpdateResult is the snapshot a spoke pool client hands to downstream
// consumers after a poll. Events aligns positionally with the requested
// event type list; every position holds a non-nil slice.
type UpdateResult struct {
	Success         bool
	FirstDepositID  *big.Int
	LatestDepositID *big.Int
	CurrentTime     uint32
	OldestTime      uint32
	Events          [][]*store.Event
	SearchEndBlock  uint64
	CCTPEnabled     bool
}

// SpokePoolClient is the update contract shared by the chain-backed
// client and the simulated one, so a system under test cannot tell the
// two apart.
type SpokePoolClient interface {
	Update(ctx context.Context, eventsToQuery []string) (*UpdateResult, error)
	RealizedLpFee(ctx context.Context, deposit *events.FundsDeposited) (*RealizedLpFee, error)
	RealizedLpFees(ctx context.Context, deposits []*events.FundsDeposited) ([]*RealizedLpFee, error)
	DestinationToken(deposit *events.FundsDeposited) (common.Address, error)
	DepositIDAtBlock(ctx context.Context, blockTag int) (*big.Int, error)
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

var feeScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// realizedFeeFromAmounts derives the fee rate implied by a deposit's
// input and output amounts.
func realizedFeeFromAmounts(inputAmount *big.Int, outputAmount *big.Int) (*big.Int, error) {
	if inputAmount == nil || inputAmount.Sign() == 0 {
		return nil, fmt.Errorf("cannot derive fee without an input amount")
	}
	if outputAmount == nil {
		return nil, fmt.Errorf("cannot derive fee without an output amount")
	}

	spread := new(big.Int).Sub(inputAmount, outputAmount)
	return new(big.Int).Div(new(big.Int).Mul(spread, feeScale), inputAmount), nil
}
