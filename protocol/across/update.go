package across

import (
	"context"
	"math/big"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"

	"github.com/sprintertech/across-testkit/chains/evm/calls/events"
	"github.com/sprintertech/across-testkit/store"
)

// Update scans the event store once and returns a snapshot for the
// requested event types. Buckets align positionally with eventsToQuery
// and are present even when empty. The latest deposit id is a running
// maximum: it never regresses across successive updates, regardless of
// explicitly supplied smaller ids later in the sequence.
func (s *SimulatedSpokePool) Update(ctx context.Context, eventsToQuery []string) (*UpdateResult, error) {
	start := time.Now()

	flat := flatten(s.store.AllEvents())
	if err := s.prefetchBlockTimes(ctx, flat); err != nil {
		return nil, err
	}

	buckets := make([][]*store.Event, len(eventsToQuery))
	for i := range buckets {
		buckets[i] = []*store.Event{}
	}

	s.mu.Lock()
	for _, e := range flat {
		if e.Type == events.FundsDepositedSig.Name() && len(e.Topics) > 1 {
			if id, ok := new(big.Int).SetString(e.Topics[1], 10); ok && id.Cmp(s.latestDepositID) > 0 {
				s.latestDepositID = id
			}
		}

		for i, name := range eventsToQuery {
			if e.Type == name {
				buckets[i] = append(buckets[i], e)
			}
		}
	}
	latestDepositID := new(big.Int).Set(s.latestDepositID)
	searchEndBlock := s.store.CurrentBlockNumber()
	if s.latestBlockOverride != nil {
		searchEndBlock = *s.latestBlockOverride
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ObserveUpdate(time.Since(start))
	}

	return &UpdateResult{
		Success:         true,
		FirstDepositID:  big.NewInt(0),
		LatestDepositID: latestDepositID,
		CurrentTime:     s.clock.Now(),
		OldestTime:      0,
		Events:          buckets,
		SearchEndBlock:  searchEndBlock,
		CCTPEnabled:     false,
	}, nil
}

// prefetchBlockTimes warms the block metadata cache for every distinct
// block carrying events. Lookups are independent and run concurrently;
// bucket assignment afterwards follows the original event order.
func (s *SimulatedSpokePool) prefetchBlockTimes(ctx context.Context, flat []*store.Event) error {
	seen := make(map[uint64]struct{})
	numbers := make([]uint64, 0, len(flat))
	for _, e := range flat {
		if _, ok := seen[e.BlockNumber]; ok {
			continue
		}
		seen[e.BlockNumber] = struct{}{}
		numbers = append(numbers, e.BlockNumber)
	}
	slices.Sort(numbers)

	p := pool.New().WithErrors()
	for _, n := range numbers {
		n := n
		p.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.BlockTimestamp(n)
			return nil
		})
	}
	return p.Wait()
}

// BlockTimestamp resolves the timestamp of a stored block, caching the
// result. Blocks absent from the store resolve to zero.
func (s *SimulatedSpokePool) BlockTimestamp(number uint64) uint32 {
	if it := s.blockTimes.Get(number); it != nil {
		return it.Value()
	}

	b, ok := s.store.BlockAt(number)
	if !ok {
		return 0
	}

	s.blockTimes.Set(number, b.Timestamp, ttlcache.DefaultTTL)
	return b.Timestamp
}

func flatten(groups [][]*store.Event) []*store.Event {
	flat := make([]*store.Event, 0, len(groups))
	for _, g := range groups {
		flat = append(flat, g...)
	}
	return flat
}
