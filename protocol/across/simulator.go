package across

import (
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/metrics"
	"github.com/sprintertech/across-testkit/store"
)

const (
	// Output amounts default to input minus this stand-in relay fee.
	defaultRelayFeeNumerator   = 95
	defaultRelayFeeDenominator = 100

	defaultFillDeadlineOffset        = 3600
	defaultExclusivityDeadlineOffset = 600
	fillDeadlineBuffer               = 60

	BLOCK_METADATA_TTL = time.Minute * 10
)

// SimulatedSpokePool synthesizes spoke pool events into an event store
// and serves the SpokePoolClient contract over them. One instance owns
// its deposit counter, overrides and block view; only the event store
// may be shared between instances.
type SimulatedSpokePool struct {
	chainID uint64
	address common.Address
	store   *store.EventStore
	clock   Clock
	entropy *Entropy

	delegate SpokePoolClient
	metrics  *metrics.SimulatorMetrics

	mu               sync.Mutex
	numberOfDeposits *big.Int
	latestDepositID  *big.Int

	feeOverride         *big.Int
	destinationTokens   map[uint64]common.Address
	depositIDsAtBlock   []*big.Int
	latestBlockOverride *uint64

	blockTimes *ttlcache.Cache[uint64, uint32]
}

type Option func(*SimulatedSpokePool)

func WithClock(c Clock) Option {
	return func(s *SimulatedSpokePool) { s.clock = c }
}

func WithEntropy(e *Entropy) Option {
	return func(s *SimulatedSpokePool) { s.entropy = e }
}

// WithDelegate sets the client consulted for fee, token and deposit-id
// derivations whenever no override is active.
func WithDelegate(c SpokePoolClient) Option {
	return func(s *SimulatedSpokePool) { s.delegate = c }
}

func WithMetrics(m *metrics.SimulatorMetrics) Option {
	return func(s *SimulatedSpokePool) { s.metrics = m }
}

func NewSimulatedSpokePool(chainID uint64, address common.Address, st *store.EventStore, opts ...Option) *SimulatedSpokePool {
	cache := ttlcache.New(
		ttlcache.WithTTL[uint64, uint32](BLOCK_METADATA_TTL),
	)

	s := &SimulatedSpokePool{
		chainID:           chainID,
		address:           address,
		store:             st,
		clock:             WallClock(),
		entropy:           NewEntropy(time.Now().UnixNano()),
		numberOfDeposits:  big.NewInt(0),
		latestDepositID:   big.NewInt(0),
		destinationTokens: make(map[uint64]common.Address),
		blockTimes:        cache,
	}
	for _, opt := range opts {
		opt(s)
	}

	go cache.Start()
	return s
}

func (s *SimulatedSpokePool) ChainID() uint64 {
	return s.chainID
}

func (s *SimulatedSpokePool) Address() common.Address {
	return s.address
}

// NumberOfDeposits returns the id the next defaulted deposit will take.
func (s *SimulatedSpokePool) NumberOfDeposits() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return new(big.Int).Set(s.numberOfDeposits)
}

// Deposit fills the unset fields of d with protocol-consistent defaults,
// stores the resulting FundsDeposited event and returns it. The deposit
// id must not fall behind the running deposit count.
func (s *SimulatedSpokePool) Deposit(d *events.FundsDeposited) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.DepositId == nil {
		d.DepositId = new(big.Int).Set(s.numberOfDeposits)
	} else if d.DepositId.Cmp(s.numberOfDeposits) < 0 {
		return nil, fmt.Errorf("deposit id %s below the running deposit count %s", d.DepositId, s.numberOfDeposits)
	}
	s.numberOfDeposits = new(big.Int).Add(d.DepositId, big.NewInt(1))

	if d.OriginChainId == nil {
		d.OriginChainId = new(big.Int).SetUint64(s.chainID)
	}
	if d.DestinationChainId == nil {
		d.DestinationChainId = s.entropy.ChainID()
	}
	if isZeroAddress(d.Depositor) {
		d.Depositor = s.entropy.Address()
	}
	if isZeroAddress(d.Recipient) {
		d.Recipient = s.entropy.Address()
	}
	if isZeroAddress(d.InputToken) {
		d.InputToken = s.entropy.Address()
	}
	if d.InputAmount == nil {
		d.InputAmount = s.entropy.Amount()
	}
	if isZeroAddress(d.OutputToken) {
		d.OutputToken = d.InputToken
	}
	if d.OutputAmount == nil {
		d.OutputAmount = applyRelayFee(d.InputAmount)
	}
	if d.QuoteTimestamp == 0 {
		d.QuoteTimestamp = s.clock.Now()
	}
	if d.FillDeadline == 0 {
		d.FillDeadline = d.QuoteTimestamp + defaultFillDeadlineOffset
	}
	if d.ExclusivityDeadline == 0 {
		d.ExclusivityDeadline = d.QuoteTimestamp + defaultExclusivityDeadlineOffset
	}

	block, txIndex := s.store.NextPosition(d.BlockNumber)
	if d.TransactionIndex != 0 {
		txIndex = d.TransactionIndex
	}
	if len(d.Message) == 0 {
		d.Message = []byte(fmt.Sprintf("deposit %s @ block %d, index %d", d.DepositId, block, txIndex))
	}

	stored := s.store.Append(&store.Event{
		Type:    events.FundsDepositedSig.Name(),
		Address: s.address,
		Topics:  []string{d.DestinationChainId.String(), d.DepositId.String(), d.Depositor.Hex()},
		Args: map[string]interface{}{
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
		},
		BlockNumber:      block,
		TransactionIndex: txIndex,
	})
	d.BlockNumber = stored.BlockNumber
	d.TransactionIndex = stored.TransactionIndex

	s.count(stored.Type)
	return stored, nil
}

// Fill defaults the unset fields of f, stores the FilledRelay event and
// returns it. The relay execution info inherits from the top-level
// fields it amends.
func (s *SimulatedSpokePool) Fill(f *events.FilledRelay) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.OriginChainId == nil {
		f.OriginChainId = s.entropy.ChainID()
	}
	if f.DepositId == nil {
		f.DepositId = s.entropy.DepositID()
	}
	if isZeroAddress(f.InputToken) {
		f.InputToken = s.entropy.Address()
	}
	if f.InputAmount == nil {
		f.InputAmount = s.entropy.Amount()
	}
	if isZeroAddress(f.OutputToken) {
		f.OutputToken = f.InputToken
	}
	if f.OutputAmount == nil {
		f.OutputAmount = f.InputAmount
	}
	if f.FillDeadline == 0 {
		f.FillDeadline = s.clock.Now() + fillDeadlineBuffer
	}
	if f.RepaymentChainId == nil {
		f.RepaymentChainId = new(big.Int).SetUint64(s.chainID)
	}
	if isZeroAddress(f.Relayer) {
		f.Relayer = s.entropy.Address()
	}
	if isZeroAddress(f.Depositor) {
		f.Depositor = s.entropy.Address()
	}
	if isZeroAddress(f.Recipient) {
		f.Recipient = s.entropy.Address()
	}

	return s.appendFill(f)
}

// appendFill stores a fill without touching the relayer field, so slow
// fill executions keep the zero relayer.
func (s *SimulatedSpokePool) appendFill(f *events.FilledRelay) (*store.Event, error) {
	if isZeroAddress(f.RelayExecutionInfo.UpdatedRecipient) {
		f.RelayExecutionInfo.UpdatedRecipient = f.Recipient
	}
	if len(f.RelayExecutionInfo.UpdatedMessage) == 0 {
		f.RelayExecutionInfo.UpdatedMessage = f.Message
	}
	if f.RelayExecutionInfo.UpdatedOutputAmount == nil {
		f.RelayExecutionInfo.UpdatedOutputAmount = f.OutputAmount
	}

	block, txIndex := s.store.NextPosition(f.BlockNumber)
	if f.TransactionIndex != 0 {
		txIndex = f.TransactionIndex
	}

	stored := s.store.Append(&store.Event{
		Type:    events.FilledRelaySig.Name(),
		Address: s.address,
		Topics:  []string{f.OriginChainId.String(), f.DepositId.String(), f.Relayer.Hex()},
		Args: map[string]interface{}{
			"inputToken":          f.InputToken,
			"outputToken":         f.OutputToken,
			"inputAmount":         f.InputAmount,
			"outputAmount":        f.OutputAmount,
			"repaymentChainId":    f.RepaymentChainId,
			"fillDeadline":        f.FillDeadline,
			"exclusivityDeadline": f.ExclusivityDeadline,
			"exclusiveRelayer":    f.ExclusiveRelayer,
			"depositor":           f.Depositor,
			"recipient":           f.Recipient,
			"message":             f.Message,
			"relayExecutionInfo":  f.RelayExecutionInfo,
		},
		BlockNumber:      block,
		TransactionIndex: txIndex,
	})
	f.BlockNumber = stored.BlockNumber
	f.TransactionIndex = stored.TransactionIndex

	s.count(stored.Type)
	return stored, nil
}

// SpeedUp stores a depositor-issued amendment of an earlier deposit.
// It is a pass-through; the only synthesis is topic derivation.
func (s *SimulatedSpokePool) SpeedUp(u *events.RequestedSpeedUpDeposit) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.DepositId == nil {
		return nil, fmt.Errorf("speed up requires a deposit id")
	}
	if isZeroAddress(u.Depositor) {
		return nil, fmt.Errorf("speed up for deposit %s requires the original depositor", u.DepositId)
	}

	block, txIndex := s.store.NextPosition(u.BlockNumber)
	if u.TransactionIndex != 0 {
		txIndex = u.TransactionIndex
	}

	stored := s.store.Append(&store.Event{
		Type:    events.RequestedSpeedUpDepositSig.Name(),
		Address: s.address,
		Topics:  []string{u.DepositId.String(), u.Depositor.Hex()},
		Args: map[string]interface{}{
			"updatedOutputAmount": u.UpdatedOutputAmount,
			"updatedRecipient":    u.UpdatedRecipient,
			"updatedMessage":      u.UpdatedMessage,
			"depositorSignature":  u.DepositorSignature,
		},
		BlockNumber:      block,
		TransactionIndex: txIndex,
	})
	u.BlockNumber = stored.BlockNumber
	u.TransactionIndex = stored.TransactionIndex

	s.count(stored.Type)
	return stored, nil
}

// RequestSlowFill stores a deferred fulfillment request referencing a
// deposit by its (originChainId, depositId) pair.
func (s *SimulatedSpokePool) RequestSlowFill(r *events.RequestedSlowFill) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.OriginChainId == nil || r.DepositId == nil {
		return nil, fmt.Errorf("slow fill request requires an origin chain id and a deposit id")
	}

	block, txIndex := s.store.NextPosition(r.BlockNumber)
	if r.TransactionIndex != 0 {
		txIndex = r.TransactionIndex
	}

	stored := s.store.Append(&store.Event{
		Type:    events.RequestedSlowFillSig.Name(),
		Address: s.address,
		Topics:  []string{r.OriginChainId.String(), r.DepositId.String()},
		Args: map[string]interface{}{
			"inputToken":          r.InputToken,
			"outputToken":         r.OutputToken,
			"inputAmount":         r.InputAmount,
			"outputAmount":        r.OutputAmount,
			"fillDeadline":        r.FillDeadline,
			"exclusivityDeadline": r.ExclusivityDeadline,
			"exclusiveRelayer":    r.ExclusiveRelayer,
			"depositor":           r.Depositor,
			"recipient":           r.Recipient,
			"message":             r.Message,
		},
		BlockNumber:      block,
		TransactionIndex: txIndex,
	})
	r.BlockNumber = stored.BlockNumber
	r.TransactionIndex = stored.TransactionIndex

	s.count(stored.Type)
	return stored, nil
}

// ExecuteRelayerRefundLeaf stores one refund leaf. Refunds are always
// synthesized from the perspective of this client's chain.
func (s *SimulatedSpokePool) ExecuteRelayerRefundLeaf(l *events.ExecutedRelayerRefundRoot) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.ChainId == nil {
		l.ChainId = new(big.Int).SetUint64(s.chainID)
	} else if l.ChainId.Uint64() != s.chainID {
		return nil, fmt.Errorf("refund leaf chain id %s does not match client chain id %d", l.ChainId, s.chainID)
	}
	if len(l.RefundAddresses) != len(l.RefundAmounts) {
		return nil, fmt.Errorf(
			"refund leaf has %d addresses but %d amounts", len(l.RefundAddresses), len(l.RefundAmounts))
	}
	if l.AmountToReturn == nil {
		l.AmountToReturn = big.NewInt(0)
	}

	block, txIndex := s.store.NextPosition(l.BlockNumber)
	if l.TransactionIndex != 0 {
		txIndex = l.TransactionIndex
	}

	stored := s.store.Append(&store.Event{
		Type:    events.ExecutedRelayerRefundRootSig.Name(),
		Address: s.address,
		Topics: []string{
			l.ChainId.String(),
			strconv.FormatUint(uint64(l.RootBundleId), 10),
			strconv.FormatUint(uint64(l.LeafId), 10),
		},
		Args: map[string]interface{}{
			"amountToReturn":  l.AmountToReturn,
			"refundAmounts":   l.RefundAmounts,
			"l2TokenAddress":  l.L2TokenAddress,
			"refundAddresses": l.RefundAddresses,
		},
		BlockNumber:      block,
		TransactionIndex: txIndex,
	})
	l.BlockNumber = stored.BlockNumber
	l.TransactionIndex = stored.TransactionIndex

	s.count(stored.Type)
	return stored, nil
}

// SetEnableRoute stores a route enablement toggle.
func (s *SimulatedSpokePool) SetEnableRoute(r *events.EnabledDepositRoute) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.DestinationChainId == nil {
		return nil, fmt.Errorf("route enablement requires a destination chain id")
	}

	block, txIndex := s.store.NextPosition(r.BlockNumber)
	if r.TransactionIndex != 0 {
		txIndex = r.TransactionIndex
	}

	stored := s.store.Append(&store.Event{
		Type:    events.EnabledDepositRouteSig.Name(),
		Address: s.address,
		Topics:  []string{r.OriginToken.Hex(), r.DestinationChainId.String()},
		Args: map[string]interface{}{
			"enabled": r.Enabled,
		},
		BlockNumber:      block,
		TransactionIndex: txIndex,
	})
	r.BlockNumber = stored.BlockNumber
	r.TransactionIndex = stored.TransactionIndex

	s.count(stored.Type)
	return stored, nil
}

// ExecuteSlowFillLeaf settles a slow fill: the resulting FilledRelay
// carries the SlowFill type and the zero relayer since nobody fronted
// the funds. The root bundle id and merkle proof that accompany a leaf
// on chain are deliberately not verified.
func (s *SimulatedSpokePool) ExecuteSlowFillLeaf(l *events.SlowFillLeaf) (*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.RelayData.OriginChainId == nil || l.RelayData.DepositId == nil {
		return nil, fmt.Errorf("slow fill leaf requires an origin chain id and a deposit id")
	}

	updatedOutputAmount := l.UpdatedOutputAmount
	if updatedOutputAmount == nil {
		updatedOutputAmount = l.RelayData.OutputAmount
	}

	f := &events.FilledRelay{
		InputToken:          l.RelayData.InputToken,
		OutputToken:         l.RelayData.OutputToken,
		InputAmount:         l.RelayData.InputAmount,
		OutputAmount:        l.RelayData.OutputAmount,
		RepaymentChainId:    big.NewInt(0),
		OriginChainId:       l.RelayData.OriginChainId,
		DepositId:           l.RelayData.DepositId,
		FillDeadline:        l.RelayData.FillDeadline,
		ExclusivityDeadline: l.RelayData.ExclusivityDeadline,
		ExclusiveRelayer:    l.RelayData.ExclusiveRelayer,
		Relayer:             common.Address{},
		Depositor:           l.RelayData.Depositor,
		Recipient:           l.RelayData.Recipient,
		Message:             l.RelayData.Message,
		RelayExecutionInfo: events.RelayExecutionInfo{
			UpdatedOutputAmount: updatedOutputAmount,
			FillType:            events.SlowFill,
		},
	}
	return s.appendFill(f)
}

func (s *SimulatedSpokePool) count(eventType string) {
	if s.metrics != nil {
		s.metrics.RecordSynthesized(eventType)
	}
}

func applyRelayFee(amount *big.Int) *big.Int {
	out := new(big.Int).Mul(amount, big.NewInt(defaultRelayFeeNumerator))
	return out.Div(out, big.NewInt(defaultRelayFeeDenominator))
}

func isZeroAddress(a common.Address) bool {
	return a == (common.Address{})
}
