package across

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/sprintertech/across-testkit/chains/evm/calls/consts"
	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/config"
	"github.com/sprintertech/across-testkit/store"
)

const (
	TRANSACTION_TIMEOUT = 30 * time.Second
)

type EventFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	LatestBlock() (*big.Int, error)
}

type TokenMatcher interface {
	DestinationToken(destinationChainId *big.Int, symbol string) (common.Address, error)
}

// rawDeposit matches the on-chain FundsDeposited argument encoding.
// Indexed fields are filled from topics after unpacking.
type rawDeposit struct {
	InputToken          [32]byte
	OutputToken         [32]byte
	InputAmount         *big.Int
	OutputAmount        *big.Int
	DestinationChainId  *big.Int
	DepositId           *big.Int
	QuoteTimestamp      uint32
	FillDeadline        uint32
	ExclusivityDeadline uint32
	Depositor           [32]byte
	Recipient           [32]byte
	ExclusiveRelayer    [32]byte
	Message             []byte
}

// EVMSpokePoolClient reads spoke pool events straight from a chain
// endpoint. It is the non-mock side of the SpokePoolClient contract and
// the delegate a simulated client falls back to when no override is
// active.
type EVMSpokePoolClient struct {
	chainID      uint64
	pool         common.Address
	client       EventFilterer
	tokenStore   config.TokenStore
	tokenMatcher TokenMatcher
	clock        Clock
}

func NewEVMSpokePoolClient(
	chainID uint64,
	pool common.Address,
	client EventFilterer,
	tokenStore config.TokenStore,
	tokenMatcher TokenMatcher,
) *EVMSpokePoolClient {
	return &EVMSpokePoolClient{
		chainID:      chainID,
		pool:         pool,
		client:       client,
		tokenStore:   tokenStore,
		tokenMatcher: tokenMatcher,
		clock:        WallClock(),
	}
}

var sigsByName = map[string]events.EventSig{
	events.FundsDepositedSig.Name():            events.FundsDepositedSig,
	events.FilledRelaySig.Name():               events.FilledRelaySig,
	events.RequestedSpeedUpDepositSig.Name():   events.RequestedSpeedUpDepositSig,
	events.RequestedSlowFillSig.Name():         events.RequestedSlowFillSig,
	events.ExecutedRelayerRefundRootSig.Name(): events.ExecutedRelayerRefundRootSig,
	events.EnabledDepositRouteSig.Name():       events.EnabledDepositRouteSig,
}

// Update queries one log filter per requested event type and returns
// the buckets positionally aligned with the request.
func (c *EVMSpokePoolClient) Update(ctx context.Context, eventsToQuery []string) (*UpdateResult, error) {
	head, err := c.client.LatestBlock()
	if err != nil {
		return nil, err
	}

	latestDepositID := big.NewInt(0)
	buckets := make([][]*store.Event, len(eventsToQuery))
	for i, name := range eventsToQuery {
		buckets[i] = []*store.Event{}

		sig, ok := sigsByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown spoke pool event type %s", name)
		}

		logs, err := c.client.FilterLogs(ctx, ethereum.FilterQuery{
			Addresses: []common.Address{c.pool},
			ToBlock:   head,
			Topics:    [][]common.Hash{{sig.GetTopic()}},
		})
		if err != nil {
			return nil, err
		}

		for _, l := range logs {
			if l.Removed {
				continue
			}

			e, err := c.eventFromLog(sig, l)
			if err != nil {
				return nil, err
			}
			buckets[i] = append(buckets[i], e)

			if sig == events.FundsDepositedSig && len(e.Topics) > 1 {
				if id, ok := new(big.Int).SetString(e.Topics[1], 10); ok && id.Cmp(latestDepositID) > 0 {
					latestDepositID = id
				}
			}
		}
	}

	return &UpdateResult{
		Success:         true,
		FirstDepositID:  big.NewInt(0),
		LatestDepositID: latestDepositID,
		CurrentTime:     c.clock.Now(),
		OldestTime:      0,
		Events:          buckets,
		SearchEndBlock:  head.Uint64(),
		CCTPEnabled:     false,
	}, nil
}

// eventFromLog reduces a raw log to the canonical event shape. Deposits
// get fully decoded arguments; other event kinds keep their payload
// opaque since only the mock synthesizes them in detail.
func (c *EVMSpokePoolClient) eventFromLog(sig events.EventSig, l types.Log) (*store.Event, error) {
	e := &store.Event{
		Type:             sig.Name(),
		Address:          l.Address,
		BlockNumber:      l.BlockNumber,
		TransactionIndex: l.TxIndex,
		Args:             map[string]interface{}{},
	}

	if sig == events.FundsDepositedSig {
		d, err := c.parseDeposit(l)
		if err != nil {
			return nil, err
		}
		e.Topics = []string{d.DestinationChainId.String(), d.DepositId.String(), d.Depositor.Hex()}
		e.Args = map[string]interface{}{
			"inputToken":          d.InputToken,
			"outputToken":         d.OutputToken,
			"inputAmount":         d.InputAmount,
			"outputAmount":        d.OutputAmount,
			"originChainId":       d.OriginChainId,
			"quoteTimestamp":      d.QuoteTimestamp,
			"fillDeadline":        d.FillDeadline,
			"exclusivityDeadline": d.ExclusivityDeadline,
			"recipient":           d.Recipient,
			"exclusiveRelayer":    d.ExclusiveRelayer,
			"message":             d.Message,
		}
		return e, nil
	}

	for _, t := range l.Topics[1:] {
		e.Topics = append(e.Topics, new(big.Int).SetBytes(t.Bytes()).String())
	}
	e.Args["data"] = common.Bytes2Hex(l.Data)
	return e, nil
}

// Deposit fetches a single deposit by id from the pool's logs.
func (c *EVMSpokePoolClient) Deposit(ctx context.Context, depositID *big.Int) (*events.FundsDeposited, error) {
	ctx, cancel := context.WithTimeout(ctx, TRANSACTION_TIMEOUT)
	defer cancel()

	logs, err := c.client.FilterLogs(ctx, ethereum.FilterQuery{
		Addresses: []common.Address{c.pool},
		Topics: [][]common.Hash{
			{events.FundsDepositedSig.GetTopic()},
			nil,
			{common.BigToHash(depositID)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("deposit with id %s not found", depositID)
	}

	return c.parseDeposit(logs[0])
}

func (c *EVMSpokePoolClient) parseDeposit(l types.Log) (*events.FundsDeposited, error) {
	raw := &rawDeposit{}
	err := consts.SpokePoolABI.UnpackIntoInterface(raw, "FundsDeposited", l.Data)
	if err != nil {
		return nil, err
	}

	if len(l.Topics) < 4 {
		return nil, fmt.Errorf("deposit log missing topics")
	}

	d := &events.FundsDeposited{
		InputToken:          common.BytesToAddress(raw.InputToken[12:]),
		OutputToken:         common.BytesToAddress(raw.OutputToken[12:]),
		InputAmount:         raw.InputAmount,
		OutputAmount:        raw.OutputAmount,
		OriginChainId:       new(big.Int).SetUint64(c.chainID),
		DestinationChainId:  new(big.Int).SetBytes(l.Topics[1].Bytes()),
		DepositId:           new(big.Int).SetBytes(l.Topics[2].Bytes()),
		QuoteTimestamp:      raw.QuoteTimestamp,
		FillDeadline:        raw.FillDeadline,
		ExclusivityDeadline: raw.ExclusivityDeadline,
		Depositor:           common.BytesToAddress(l.Topics[3].Bytes()[12:]),
		Recipient:           common.BytesToAddress(raw.Recipient[12:]),
		ExclusiveRelayer:    common.BytesToAddress(raw.ExclusiveRelayer[12:]),
		Message:             raw.Message,
		BlockNumber:         l.BlockNumber,
		TransactionIndex:    l.TxIndex,
	}
	return d, nil
}

func (c *EVMSpokePoolClient) RealizedLpFee(ctx context.Context, deposit *events.FundsDeposited) (*RealizedLpFee, error) {
	pct, err := realizedFeeFromAmounts(deposit.InputAmount, deposit.OutputAmount)
	if err != nil {
		return nil, err
	}
	return &RealizedLpFee{Pct: pct, BlockNumber: deposit.BlockNumber}, nil
}

func (c *EVMSpokePoolClient) RealizedLpFees(ctx context.Context, deposits []*events.FundsDeposited) ([]*RealizedLpFee, error) {
	fees := make([]*RealizedLpFee, 0, len(deposits))
	for _, d := range deposits {
		fee, err := c.RealizedLpFee(ctx, d)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

func (c *EVMSpokePoolClient) DestinationToken(deposit *events.FundsDeposited) (common.Address, error) {
	symbol, _, err := c.tokenStore.ConfigByAddress(c.chainID, deposit.InputToken)
	if err != nil {
		return common.Address{}, err
	}

	return c.tokenMatcher.DestinationToken(deposit.DestinationChainId, symbol)
}

// DepositIDAtBlock reports the number of deposits made up to and
// including the given block.
func (c *EVMSpokePoolClient) DepositIDAtBlock(ctx context.Context, blockTag int) (*big.Int, error) {
	logs, err := c.client.FilterLogs(ctx, ethereum.FilterQuery{
		Addresses: []common.Address{c.pool},
		ToBlock:   big.NewInt(int64(blockTag)),
		Topics:    [][]common.Hash{{events.FundsDepositedSig.GetTopic()}},
	})
	if err != nil {
		return nil, err
	}

	count := int64(0)
	for _, l := range logs {
		if !l.Removed {
			count++
		}
	}
	return big.NewInt(count), nil
}

func (c *EVMSpokePoolClient) LatestBlockNumber(ctx context.Context) (uint64, error) {
	head, err := c.client.LatestBlock()
	if err != nil {
		return 0, err
	}
	return head.Uint64(), nil
}
