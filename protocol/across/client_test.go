package across_test

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/config"
	"github.com/sprintertech/across-testkit/protocol/across"
	mock_across "github.com/sprintertech/across-testkit/protocol/across/mock"
)

type EVMSpokePoolClientTestSuite struct {
	suite.Suite

	mockEventFilterer *mock_across.MockEventFilterer
	mockTokenMatcher  *mock_across.MockTokenMatcher

	client *across.EVMSpokePoolClient
	pool   common.Address

	inputToken common.Address
	depositor  common.Address
	validLog   []byte
}

func TestRunEVMSpokePoolClientTestSuite(t *testing.T) {
	suite.Run(t, new(EVMSpokePoolClientTestSuite))
}

func (s *EVMSpokePoolClientTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockEventFilterer = mock_across.NewMockEventFilterer(ctrl)
	s.mockTokenMatcher = mock_across.NewMockTokenMatcher(ctrl)

	s.pool = common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	s.inputToken = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	s.depositor = common.HexToAddress("0x1886a1Eb051C10F20C7386576A6a0716B20B2734")

	s.validLog, _ = hex.DecodeString("000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead9083c756cc200000000000000000000000082af49447d8a07e3bd95bd0d56f35241523fbab100000000000000000000000000000000000000000000000000119baee0ab0400000000000000000000000000000000000000000000000000001199073ea3008d0000000000000000000000000000000000000000000000000000000067bc6e3f0000000000000000000000000000000000000000000000000000000067bc927b00000000000000000000000000000000000000000000000000000000000000000000000000000000000000001886a1eb051c10f20c7386576a6a0716b20b2734000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001400000000000000000000000000000000000000000000000000000000000000000")

	tokenStore := config.TokenStore{
		Tokens: map[uint64]map[string]config.TokenConfig{
			1: {
				"WETH": {Address: s.inputToken, Decimals: 18},
			},
		},
	}

	s.client = across.NewEVMSpokePoolClient(
		1,
		s.pool,
		s.mockEventFilterer,
		tokenStore,
		s.mockTokenMatcher,
	)
}

func (s *EVMSpokePoolClientTestSuite) depositLog(depositID int64, blockNumber uint64) types.Log {
	return types.Log{
		Address: s.pool,
		Topics: []common.Hash{
			events.FundsDepositedSig.GetTopic(),
			common.BigToHash(big.NewInt(42161)),
			common.BigToHash(big.NewInt(depositID)),
			common.BytesToHash(s.depositor.Bytes()),
		},
		Data:        s.validLog,
		BlockNumber: blockNumber,
		TxIndex:     0,
	}
}

func (s *EVMSpokePoolClientTestSuite) Test_Update_FailedHeadQuery() {
	s.mockEventFilterer.EXPECT().LatestBlock().Return(nil, fmt.Errorf("error"))

	_, err := s.client.Update(context.Background(), []string{"FundsDeposited"})
	s.NotNil(err)
}

func (s *EVMSpokePoolClientTestSuite) Test_Update_UnknownEventType() {
	s.mockEventFilterer.EXPECT().LatestBlock().Return(big.NewInt(120), nil)

	_, err := s.client.Update(context.Background(), []string{"NoSuchEvent"})
	s.NotNil(err)
}

func (s *EVMSpokePoolClientTestSuite) Test_Update_FailedLogQuery() {
	s.mockEventFilterer.EXPECT().LatestBlock().Return(big.NewInt(120), nil)
	s.mockEventFilterer.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("error"))

	_, err := s.client.Update(context.Background(), []string{"FundsDeposited"})
	s.NotNil(err)
}

func (s *EVMSpokePoolClientTestSuite) Test_Update_Successful() {
	s.mockEventFilterer.EXPECT().LatestBlock().Return(big.NewInt(120), nil)
	s.mockEventFilterer.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		s.depositLog(7, 110),
		{Removed: true},
	}, nil)
	s.mockEventFilterer.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{}, nil)

	result, err := s.client.Update(context.Background(), []string{"FundsDeposited", "FilledRelay"})

	s.Nil(err)
	s.True(result.Success)
	s.Len(result.Events, 2)
	s.Len(result.Events[0], 1)
	s.Len(result.Events[1], 0)
	s.Equal(big.NewInt(7), result.LatestDepositID)
	s.Equal(uint64(120), result.SearchEndBlock)

	e := result.Events[0][0]
	s.Equal("FundsDeposited", e.Type)
	s.Equal([]string{"42161", "7", s.depositor.Hex()}, e.Topics)
	s.Equal(uint64(110), e.BlockNumber)
	s.Equal(s.inputToken, e.Args["inputToken"])
}

func (s *EVMSpokePoolClientTestSuite) Test_Deposit_NotFound() {
	s.mockEventFilterer.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{}, nil)

	_, err := s.client.Deposit(context.Background(), big.NewInt(7))
	s.NotNil(err)
}

func (s *EVMSpokePoolClientTestSuite) Test_Deposit_Successful() {
	s.mockEventFilterer.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		s.depositLog(7, 110),
	}, nil)

	d, err := s.client.Deposit(context.Background(), big.NewInt(7))

	s.Nil(err)
	s.Equal(s.inputToken, d.InputToken)
	s.Equal(common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"), d.OutputToken)
	s.Equal(big.NewInt(1), d.OriginChainId)
	s.Equal(big.NewInt(42161), d.DestinationChainId)
	s.Equal(big.NewInt(7), d.DepositId)
	s.Equal(s.depositor, d.Depositor)
	s.Equal(s.depositor, d.Recipient)
	s.Equal(uint32(0x67bc6e3f), d.QuoteTimestamp)
	s.Equal(uint32(0x67bc927b), d.FillDeadline)
	s.Equal(uint64(110), d.BlockNumber)
}

func (s *EVMSpokePoolClientTestSuite) Test_RealizedLpFee() {
	fee, err := s.client.RealizedLpFee(context.Background(), &events.FundsDeposited{
		InputAmount:  big.NewInt(1000),
		OutputAmount: big.NewInt(950),
		BlockNumber:  110,
	})

	s.Nil(err)
	s.Equal(big.NewInt(50000000000000000), fee.Pct)
	s.Equal(uint64(110), fee.BlockNumber)
}

func (s *EVMSpokePoolClientTestSuite) Test_RealizedLpFee_ZeroInputAmount() {
	_, err := s.client.RealizedLpFee(context.Background(), &events.FundsDeposited{
		InputAmount:  big.NewInt(0),
		OutputAmount: big.NewInt(950),
	})
	s.NotNil(err)
}

func (s *EVMSpokePoolClientTestSuite) Test_DestinationToken() {
	expected := common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")
	s.mockTokenMatcher.EXPECT().DestinationToken(big.NewInt(42161), "WETH").Return(expected, nil)

	token, err := s.client.DestinationToken(&events.FundsDeposited{
		InputToken:         s.inputToken,
		DestinationChainId: big.NewInt(42161),
	})

	s.Nil(err)
	s.Equal(expected, token)
}

func (s *EVMSpokePoolClientTestSuite) Test_DestinationToken_UnknownToken() {
	_, err := s.client.DestinationToken(&events.FundsDeposited{
		InputToken:         common.HexToAddress("0x0000000000000000000000000000000000000001"),
		DestinationChainId: big.NewInt(42161),
	})
	s.NotNil(err)
}

func (s *EVMSpokePoolClientTestSuite) Test_DepositIDAtBlock() {
	s.mockEventFilterer.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		s.depositLog(0, 101),
		{Removed: true},
		s.depositLog(1, 105),
	}, nil)

	id, err := s.client.DepositIDAtBlock(context.Background(), 110)

	s.Nil(err)
	s.Equal(big.NewInt(2), id)
}

func (s *EVMSpokePoolClientTestSuite) Test_LatestBlockNumber() {
	s.mockEventFilterer.EXPECT().LatestBlock().Return(big.NewInt(120), nil)

	latest, err := s.client.LatestBlockNumber(context.Background())

	s.Nil(err)
	s.Equal(uint64(120), latest)
}
