package config

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type TokenConfig struct {
	Address  common.Address
	Decimals uint8
}

// TokenStore maps chain id and token symbol to token configuration.
// It doubles as the default destination token resolution for deposits
// whose output token is left open.
type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// DestinationToken resolves the address a symbol maps to on the
// destination chain.
func (s *TokenStore) DestinationToken(destinationChainID *big.Int, symbol string) (common.Address, error) {
	c, err := s.ConfigBySymbol(destinationChainID.Uint64(), symbol)
	if err != nil {
		return common.Address{}, err
	}
	return c.Address, nil
}
