package across

import (
	"math/big"
	"math/rand"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Entropy generates the unconstrained field defaults. The defaulting
// rules themselves are deterministic; only fields the caller left open
// draw from here, so a fixed seed makes whole scenarios reproducible.
type Entropy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEntropy(seed int64) *Entropy {
	return &Entropy{rng: rand.New(rand.NewSource(seed))}
}

func (e *Entropy) Address() common.Address {
	e.mu.Lock()
	defer e.mu.Unlock()

	var a common.Address
	e.rng.Read(a[:])
	return a
}

func (e *Entropy) ChainID() *big.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return big.NewInt(e.rng.Int63n(100_000) + 1)
}

func (e *Entropy) Amount() *big.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return big.NewInt(e.rng.Int63n(1_000_000_000_000_000_000) + 1)
}

func (e *Entropy) DepositID() *big.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return big.NewInt(e.rng.Int63n(1_000_000))
}
