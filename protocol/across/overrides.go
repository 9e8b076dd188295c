package across

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
)

// The overrides below short-circuit the chain-derived computation
// paths. Each is optional and independently toggleable; when inactive
// the call delegates to the configured client, or to the local
// derivation when no delegate is set.

// SetDefaultRealizedLpFeePct pins the fee returned by RealizedLpFee and
// RealizedLpFees.
func (s *SimulatedSpokePool) SetDefaultRealizedLpFeePct(pct *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeOverride = new(big.Int).Set(pct)
}

func (s *SimulatedSpokePool) UnsetDefaultRealizedLpFeePct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeOverride = nil
}

// SetDestinationTokenForChain pins the destination token resolved for
// deposits originating on the given chain.
func (s *SimulatedSpokePool) SetDestinationTokenForChain(originChainID uint64, token common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinationTokens[originChainID] = token
}

// SetDepositIDAtBlock installs the deposit counts reported per block
// tag. Ids must be non-decreasing; a violation leaves the table unset.
func (s *SimulatedSpokePool) SetDepositIDAtBlock(ids []*big.Int) error {
	for i := 1; i < len(ids); i++ {
		if ids[i].Cmp(ids[i-1]) < 0 {
			return fmt.Errorf(
				"deposit id table is not monotonic: id %s at position %d follows %s", ids[i], i, ids[i-1])
		}
	}

	table := make([]*big.Int, len(ids))
	for i, id := range ids {
		table[i] = new(big.Int).Set(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.depositIDsAtBlock = table
	return nil
}

// SetLatestBlockNumber pins the most recently searched block, letting a
// test advance the chain head independently of event synthesis.
func (s *SimulatedSpokePool) SetLatestBlockNumber(number uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latestBlockOverride = &number
}

func (s *SimulatedSpokePool) RealizedLpFee(ctx context.Context, deposit *events.FundsDeposited) (*RealizedLpFee, error) {
	s.mu.Lock()
	override := s.feeOverride
	s.mu.Unlock()

	if override != nil {
		return &RealizedLpFee{
			Pct:         new(big.Int).Set(override),
			BlockNumber: deposit.BlockNumber,
		}, nil
	}
	if s.delegate != nil {
		return s.delegate.RealizedLpFee(ctx, deposit)
	}

	pct, err := realizedFeeFromAmounts(deposit.InputAmount, deposit.OutputAmount)
	if err != nil {
		return nil, err
	}
	return &RealizedLpFee{Pct: pct, BlockNumber: deposit.BlockNumber}, nil
}

func (s *SimulatedSpokePool) RealizedLpFees(ctx context.Context, deposits []*events.FundsDeposited) ([]*RealizedLpFee, error) {
	fees := make([]*RealizedLpFee, 0, len(deposits))
	for _, d := range deposits {
		fee, err := s.RealizedLpFee(ctx, d)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

// DestinationToken resolves the output token for a deposit. An override
// for the deposit's origin chain wins over every other resolution.
func (s *SimulatedSpokePool) DestinationToken(deposit *events.FundsDeposited) (common.Address, error) {
	if deposit.OriginChainId == nil {
		return common.Address{}, fmt.Errorf("deposit carries no origin chain id")
	}

	s.mu.Lock()
	token, ok := s.destinationTokens[deposit.OriginChainId.Uint64()]
	s.mu.Unlock()
	if ok {
		return token, nil
	}

	if s.delegate != nil {
		return s.delegate.DestinationToken(deposit)
	}

	if !isZeroAddress(deposit.OutputToken) {
		return deposit.OutputToken, nil
	}
	return deposit.InputToken, nil
}

// DepositIDAtBlock reports the number of deposits as of the given block
// tag. With a table installed, positions past its end resolve to nil
// rather than failing, matching the sparseness of synthetic data.
func (s *SimulatedSpokePool) DepositIDAtBlock(ctx context.Context, blockTag int) (*big.Int, error) {
	s.mu.Lock()
	table := s.depositIDsAtBlock
	s.mu.Unlock()

	if table != nil {
		if blockTag < 0 || blockTag >= len(table) {
			return nil, nil
		}
		return new(big.Int).Set(table[blockTag]), nil
	}

	if s.delegate != nil {
		return s.delegate.DepositIDAtBlock(ctx, blockTag)
	}

	if blockTag < 0 {
		return big.NewInt(0), nil
	}
	count := int64(0)
	for _, e := range s.store.EventsByAddress(s.address) {
		if e.Type == events.FundsDepositedSig.Name() && e.BlockNumber <= uint64(blockTag) {
			count++
		}
	}
	return big.NewInt(count), nil
}

func (s *SimulatedSpokePool) LatestBlockNumber(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latestBlockOverride != nil {
		return *s.latestBlockOverride, nil
	}
	return s.store.CurrentBlockNumber(), nil
}
