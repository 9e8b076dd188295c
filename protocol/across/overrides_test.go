package across_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/protocol/across"
	mock_across "github.com/sprintertech/across-testkit/protocol/across/mock"
	"github.com/sprintertech/across-testkit/store"
)

type OverridesTestSuite struct {
	suite.Suite

	pool    *across.SimulatedSpokePool
	store   *store.EventStore
	clock   *across.ManualClock
	address common.Address
}

func TestRunOverridesTestSuite(t *testing.T) {
	suite.Run(t, new(OverridesTestSuite))
}

func (s *OverridesTestSuite) SetupTest() {
	s.clock = across.NewManualClock(1700000000)
	s.address = common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	s.store = store.NewEventStore(100, s.clock.Now)
	s.pool = across.NewSimulatedSpokePool(
		1,
		s.address,
		s.store,
		across.WithClock(s.clock),
		across.WithEntropy(across.NewEntropy(42)),
	)
}

func (s *OverridesTestSuite) Test_RealizedLpFee_Override() {
	d := &events.FundsDeposited{
		InputAmount: big.NewInt(1000),
	}
	_, err := s.pool.Deposit(d)
	s.Nil(err)

	s.pool.SetDefaultRealizedLpFeePct(big.NewInt(12345))

	fee, err := s.pool.RealizedLpFee(context.Background(), d)
	s.Nil(err)
	s.Equal(big.NewInt(12345), fee.Pct)
	s.Equal(d.BlockNumber, fee.BlockNumber)
}

func (s *OverridesTestSuite) Test_RealizedLpFee_DerivedWhenUnset() {
	d := &events.FundsDeposited{
		InputAmount:  big.NewInt(1000),
		OutputAmount: big.NewInt(950),
	}
	_, err := s.pool.Deposit(d)
	s.Nil(err)

	s.pool.SetDefaultRealizedLpFeePct(big.NewInt(12345))
	s.pool.UnsetDefaultRealizedLpFeePct()

	fee, err := s.pool.RealizedLpFee(context.Background(), d)
	s.Nil(err)
	// 5% spread at 1e18 scale.
	s.Equal(big.NewInt(50000000000000000), fee.Pct)
}

func (s *OverridesTestSuite) Test_RealizedLpFees() {
	deposits := []*events.FundsDeposited{}
	for i := 0; i < 2; i++ {
		d := &events.FundsDeposited{InputAmount: big.NewInt(1000)}
		_, err := s.pool.Deposit(d)
		s.Nil(err)
		deposits = append(deposits, d)
	}

	s.pool.SetDefaultRealizedLpFeePct(big.NewInt(777))

	fees, err := s.pool.RealizedLpFees(context.Background(), deposits)
	s.Nil(err)
	s.Len(fees, 2)
	for i, fee := range fees {
		s.Equal(big.NewInt(777), fee.Pct)
		s.Equal(deposits[i].BlockNumber, fee.BlockNumber)
	}
}

func (s *OverridesTestSuite) Test_DestinationToken_Override() {
	token := common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")
	s.pool.SetDestinationTokenForChain(10, token)

	resolved, err := s.pool.DestinationToken(&events.FundsDeposited{
		OriginChainId: big.NewInt(10),
		OutputToken:   common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
	})
	s.Nil(err)
	s.Equal(token, resolved)
}

func (s *OverridesTestSuite) Test_DestinationToken_FallsBackToDepositTokens() {
	output := common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	input := common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")

	resolved, err := s.pool.DestinationToken(&events.FundsDeposited{
		OriginChainId: big.NewInt(10),
		InputToken:    input,
		OutputToken:   output,
	})
	s.Nil(err)
	s.Equal(output, resolved)

	resolved, err = s.pool.DestinationToken(&events.FundsDeposited{
		OriginChainId: big.NewInt(10),
		InputToken:    input,
	})
	s.Nil(err)
	s.Equal(input, resolved)
}

func (s *OverridesTestSuite) Test_DestinationToken_MissingOriginChain() {
	_, err := s.pool.DestinationToken(&events.FundsDeposited{})
	s.NotNil(err)
}

func (s *OverridesTestSuite) Test_SetDepositIDAtBlock_RejectsNonMonotonicTable() {
	err := s.pool.SetDepositIDAtBlock([]*big.Int{
		big.NewInt(0), big.NewInt(2), big.NewInt(1),
	})
	s.NotNil(err)

	// The failed install leaves the table unset, so lookups fall back to
	// counting store deposits.
	id, err := s.pool.DepositIDAtBlock(context.Background(), 10)
	s.Nil(err)
	s.Equal(big.NewInt(0), id)
}

func (s *OverridesTestSuite) Test_DepositIDAtBlock_Table() {
	err := s.pool.SetDepositIDAtBlock([]*big.Int{
		big.NewInt(0), big.NewInt(0), big.NewInt(3), big.NewInt(3),
	})
	s.Nil(err)

	id, err := s.pool.DepositIDAtBlock(context.Background(), 2)
	s.Nil(err)
	s.Equal(big.NewInt(3), id)

	id, err = s.pool.DepositIDAtBlock(context.Background(), 9)
	s.Nil(err)
	s.Nil(id)
}

func (s *OverridesTestSuite) Test_DepositIDAtBlock_CountsStoredDeposits() {
	_, err := s.pool.Deposit(&events.FundsDeposited{})
	s.Nil(err)
	_, err = s.pool.Deposit(&events.FundsDeposited{})
	s.Nil(err)

	id, err := s.pool.DepositIDAtBlock(context.Background(), 101)
	s.Nil(err)
	s.Equal(big.NewInt(1), id)

	id, err = s.pool.DepositIDAtBlock(context.Background(), 200)
	s.Nil(err)
	s.Equal(big.NewInt(2), id)
}

func (s *OverridesTestSuite) Test_LatestBlockNumber() {
	_, err := s.pool.Deposit(&events.FundsDeposited{})
	s.Nil(err)

	latest, err := s.pool.LatestBlockNumber(context.Background())
	s.Nil(err)
	s.Equal(uint64(101), latest)

	s.pool.SetLatestBlockNumber(777)

	latest, err = s.pool.LatestBlockNumber(context.Background())
	s.Nil(err)
	s.Equal(uint64(777), latest)
}

type DelegationTestSuite struct {
	suite.Suite

	mockDelegate *mock_across.MockSpokePoolClient

	pool  *across.SimulatedSpokePool
	clock *across.ManualClock
}

func TestRunDelegationTestSuite(t *testing.T) {
	suite.Run(t, new(DelegationTestSuite))
}

func (s *DelegationTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockDelegate = mock_across.NewMockSpokePoolClient(ctrl)

	s.clock = across.NewManualClock(1700000000)
	s.pool = across.NewSimulatedSpokePool(
		1,
		common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
		store.NewEventStore(100, s.clock.Now),
		across.WithClock(s.clock),
		across.WithEntropy(across.NewEntropy(42)),
		across.WithDelegate(s.mockDelegate),
	)
}

func (s *DelegationTestSuite) Test_RealizedLpFee_DelegatedWhenNoOverride() {
	d := &events.FundsDeposited{InputAmount: big.NewInt(1000)}
	expected := &across.RealizedLpFee{Pct: big.NewInt(999), BlockNumber: 110}
	s.mockDelegate.EXPECT().RealizedLpFee(gomock.Any(), d).Return(expected, nil)

	fee, err := s.pool.RealizedLpFee(context.Background(), d)
	s.Nil(err)
	s.Equal(expected, fee)
}

func (s *DelegationTestSuite) Test_RealizedLpFee_OverrideWinsOverDelegate() {
	s.pool.SetDefaultRealizedLpFeePct(big.NewInt(12345))

	fee, err := s.pool.RealizedLpFee(context.Background(), &events.FundsDeposited{
		InputAmount: big.NewInt(1000),
		BlockNumber: 110,
	})
	s.Nil(err)
	s.Equal(big.NewInt(12345), fee.Pct)
}

func (s *DelegationTestSuite) Test_DestinationToken_DelegatedWhenNoOverride() {
	expected := common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")
	d := &events.FundsDeposited{OriginChainId: big.NewInt(10)}
	s.mockDelegate.EXPECT().DestinationToken(d).Return(expected, nil)

	token, err := s.pool.DestinationToken(d)
	s.Nil(err)
	s.Equal(expected, token)
}

func (s *DelegationTestSuite) Test_DepositIDAtBlock_DelegatedWhenNoTable() {
	s.mockDelegate.EXPECT().DepositIDAtBlock(gomock.Any(), 110).Return(big.NewInt(9), nil)

	id, err := s.pool.DepositIDAtBlock(context.Background(), 110)
	s.Nil(err)
	s.Equal(big.NewInt(9), id)
}

func (s *DelegationTestSuite) Test_DepositIDAtBlock_TableWinsOverDelegate() {
	err := s.pool.SetDepositIDAtBlock([]*big.Int{big.NewInt(0), big.NewInt(4)})
	s.Nil(err)

	id, err := s.pool.DepositIDAtBlock(context.Background(), 1)
	s.Nil(err)
	s.Equal(big.NewInt(4), id)
}
