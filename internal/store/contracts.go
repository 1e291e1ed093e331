package store

import (
	"sync"

	"estate-console/internal/domain"
)

// ContractStore holds the normalized rental contracts.
type ContractStore struct {
	mu        sync.RWMutex
	contracts []domain.RentalContract
}

func NewContractStore() *ContractStore {
	return &ContractStore{}
}

// Set replaces the contract slice.
func (s *ContractStore) Set(contracts []domain.RentalContract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = append([]domain.RentalContract(nil), contracts...)
}

// All returns a copy of every contract.
func (s *ContractStore) All() []domain.RentalContract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RentalContract(nil), s.contracts...)
}

// Get returns one contract by id.
func (s *ContractStore) Get(id string) (domain.RentalContract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			return s.contracts[i], true
		}
	}
	return domain.RentalContract{}, false
}

// Upsert inserts or replaces one contract.
func (s *ContractStore) Upsert(c domain.RentalContract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contracts {
		if s.contracts[i].ID == c.ID {
			s.contracts[i] = c
			return
		}
	}
	s.contracts = append(s.contracts, c)
}

// Remove drops one contract by id.
func (s *ContractStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts = append(s.contracts[:i], s.contracts[i+1:]...)
			return
		}
	}
}
