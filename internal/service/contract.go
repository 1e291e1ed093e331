package service

import (
	"context"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/logger"
	"estate-console/internal/store"
	"estate-console/internal/transform"
)

type contractService struct {
	client *backend.Client
	state  *store.Store
}

func NewContractService(client *backend.Client, state *store.Store) ContractService {
	return &contractService{client: client, state: state}
}

// Refresh reloads the contract cache from the backend.
func (s *contractService) Refresh(ctx context.Context) ([]domain.RentalContract, error) {
	dtos, err := s.client.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	contracts := make([]domain.RentalContract, 0, len(dtos))
	for _, dto := range dtos {
		contracts = append(contracts, transform.ContractFromAPI(dto))
	}
	s.state.Contracts.Set(contracts)
	return contracts, nil
}

// Get returns one contract, serving from the cache when possible.
func (s *contractService) Get(ctx context.Context, id string) (*domain.RentalContract, error) {
	if cached, ok := s.state.Contracts.Get(id); ok {
		return &cached, nil
	}
	dto, err := s.client.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}
	contract := transform.ContractFromAPI(*dto)
	s.state.Contracts.Upsert(contract)
	return &contract, nil
}

func (s *contractService) Create(ctx context.Context, c domain.RentalContract) (*domain.RentalContract, error) {
	dto, err := transform.ContractToAPI(c)
	if err != nil {
		return nil, err
	}
	created, err := s.client.CreateContract(ctx, dto)
	if err != nil {
		return nil, err
	}
	contract := transform.ContractFromAPI(*created)
	s.state.Contracts.Upsert(contract)
	logger.Info("Created rental contract", "contract_number", contract.ContractNumber)
	return &contract, nil
}

func (s *contractService) Update(ctx context.Context, c domain.RentalContract) (*domain.RentalContract, error) {
	dto, err := transform.ContractToAPI(c)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.UpdateContract(ctx, c.ID, dto)
	if err != nil {
		return nil, err
	}
	contract := transform.ContractFromAPI(*updated)
	s.state.Contracts.Upsert(contract)
	return &contract, nil
}

// Delete removes a contract after the caller has confirmed.
func (s *contractService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteContract(ctx, id); err != nil {
		return err
	}
	s.state.Contracts.Remove(id)
	return nil
}

// Renew extends a contract in place with a new end date and rent. The
// contract keeps its id and number.
func (s *contractService) Renew(ctx context.Context, id, newEndDate, newMonthlyRent string) (*domain.RentalContract, error) {
	dto, err := s.client.RenewContract(ctx, id, newEndDate, newMonthlyRent)
	if err != nil {
		return nil, err
	}
	contract := transform.ContractFromAPI(*dto)
	s.state.Contracts.Upsert(contract)
	logger.Info("Renewed rental contract",
		"contract_number", contract.ContractNumber, "end_date", contract.EndDate)
	return &contract, nil
}

// RecordPayment records a payment and refetches the contract so the cached
// totals reflect the backend's recomputed balance.
func (s *contractService) RecordPayment(ctx context.Context, id string, p domain.ContractPayment) (*domain.ContractPayment, error) {
	dto, err := s.client.RecordPayment(ctx, id, transform.PaymentToAPI(p))
	if err != nil {
		return nil, err
	}
	payment := transform.PaymentFromAPI(*dto)

	refreshed, err := s.client.GetContract(ctx, id)
	if err != nil {
		logger.Warn("Recorded payment but failed to resync contract", "contract_id", id, "error", err)
		return &payment, nil
	}
	s.state.Contracts.Upsert(transform.ContractFromAPI(*refreshed))
	return &payment, nil
}

func (s *contractService) Payments(ctx context.Context, id string) ([]domain.ContractPayment, error) {
	dtos, err := s.client.ListPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	payments := make([]domain.ContractPayment, 0, len(dtos))
	for _, dto := range dtos {
		payments = append(payments, transform.PaymentFromAPI(dto))
	}
	return payments, nil
}

func (s *contractService) DueForRenewal(ctx context.Context) ([]domain.RentalContract, error) {
	return s.fetchList(ctx, s.client.ListContractsDueForRenewal)
}

func (s *contractService) OverduePayments(ctx context.Context) ([]domain.RentalContract, error) {
	return s.fetchList(ctx, s.client.ListOverduePayments)
}

func (s *contractService) fetchList(ctx context.Context, fetch func(context.Context) ([]backend.RentalContractDTO, error)) ([]domain.RentalContract, error) {
	dtos, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	contracts := make([]domain.RentalContract, 0, len(dtos))
	for _, dto := range dtos {
		contracts = append(contracts, transform.ContractFromAPI(dto))
	}
	return contracts, nil
}
