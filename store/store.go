package store

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Event is the canonical wire shape shared by the event store and every
// consumer of synthesized logs. Topics carries the stringified indexed
// values in contract order; all remaining arguments live in Args.
type Event struct {
	Type             string
	Address          common.Address
	Topics           []string
	Args             map[string]interface{}
	BlockNumber      uint64
	TransactionIndex uint
}

// Block groups the events appended at one block height.
type Block struct {
	Number    uint64
	Timestamp uint32
	Events    []*Event
}

// EventStore keeps synthesized events ordered by a monotonically
// increasing block counter, with a per-address registry on the side.
// Appends are expected to be serial; reads may happen concurrently.
type EventStore struct {
	mu sync.RWMutex

	blocks    []*Block
	byNumber  map[uint64]*Block
	byAddress map[common.Address][]*Event
	latest    uint64

	now func() uint32
}

// NewEventStore returns a store whose first auto-assigned block is
// firstBlock+1. Block timestamps are taken from now at creation time.
func NewEventStore(firstBlock uint64, now func() uint32) *EventStore {
	return &EventStore{
		byNumber:  make(map[uint64]*Block),
		byAddress: make(map[common.Address][]*Event),
		latest:    firstBlock,
		now:       now,
	}
}

// NextPosition reports the block number and transaction index the next
// append would occupy. A non-zero requested block pins the block number;
// zero requests automatic placement at the head.
func (s *EventStore) NextPosition(requested uint64) (uint64, uint) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	number := requested
	if number == 0 {
		number = s.latest + 1
	}
	if b, ok := s.byNumber[number]; ok {
		return number, uint(len(b.Events))
	}
	return number, 0
}

// Append stores the event, assigning its block number and transaction
// index when unset, and returns the stored event.
func (s *EventStore) Append(e *Event) *Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := e.BlockNumber
	if number == 0 {
		number = s.latest + 1
	}

	b, ok := s.byNumber[number]
	if !ok {
		b = &Block{Number: number, Timestamp: s.now()}
		s.byNumber[number] = b
		s.insertBlock(b)
	}
	if number > s.latest {
		s.latest = number
	}

	e.BlockNumber = number
	if e.TransactionIndex == 0 {
		e.TransactionIndex = uint(len(b.Events))
	}

	b.Events = append(b.Events, e)
	s.byAddress[e.Address] = append(s.byAddress[e.Address], e)
	return e
}

// insertBlock keeps s.blocks sorted by number. Appends dominate, so the
// scan from the tail is almost always a single comparison.
func (s *EventStore) insertBlock(b *Block) {
	i := len(s.blocks)
	for i > 0 && s.blocks[i-1].Number > b.Number {
		i--
	}
	s.blocks = append(s.blocks, nil)
	copy(s.blocks[i+1:], s.blocks[i:])
	s.blocks[i] = b
}

// CurrentBlockNumber returns the highest block number assigned so far.
func (s *EventStore) CurrentBlockNumber() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// AllEvents returns the stored events grouped by block, in block order.
// The inner slices preserve insertion order.
func (s *EventStore) AllEvents() [][]*Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([][]*Event, 0, len(s.blocks))
	for _, b := range s.blocks {
		group := make([]*Event, len(b.Events))
		copy(group, b.Events)
		groups = append(groups, group)
	}
	return groups
}

// EventsByAddress returns the events emitted by one address, in
// insertion order.
func (s *EventStore) EventsByAddress(address common.Address) []*Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	es := make([]*Event, len(s.byAddress[address]))
	copy(es, s.byAddress[address])
	return es
}

// BlockAt returns the block stored at the given number. Synthetic data
// is sparse, so a missing block is reported through ok, not an error.
func (s *EventStore) BlockAt(number uint64) (*Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byNumber[number]
	return b, ok
}
