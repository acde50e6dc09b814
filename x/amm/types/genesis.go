package types

import (
	"fmt"
)

// GenesisState is the full exported state of the amm module.
type GenesisState struct {
	Params   Params `json:"params"`
	Pairs    []Pair `json:"pairs"`
	NextPair uint64 `json:"next_pair"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Pairs:    []Pair{},
		NextPair: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[uint64]struct{}, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if _, dup := seen[pair.Id]; dup {
			return fmt.Errorf("duplicate pair id %d", pair.Id)
		}
		seen[pair.Id] = struct{}{}
		if pair.Id >= gs.NextPair {
			return fmt.Errorf("pair id %d not below next pair counter %d", pair.Id, gs.NextPair)
		}
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("invalid pair %d: %w", pair.Id, err)
		}
	}
	return nil
}
