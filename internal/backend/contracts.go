package backend

import "context"

// ListContracts fetches all rental contracts.
func (c *Client) ListContracts(ctx context.Context) ([]RentalContractDTO, error) {
	var out []RentalContractDTO
	if err := c.get(ctx, "/rental-contracts/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetContract fetches one rental contract by id.
func (c *Client) GetContract(ctx context.Context, id string) (*RentalContractDTO, error) {
	var out RentalContractDTO
	if err := c.get(ctx, "/rental-contracts/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContract creates a rental contract in draft status.
func (c *Client) CreateContract(ctx context.Context, payload RentalContractDTO) (*RentalContractDTO, error) {
	var out RentalContractDTO
	if err := c.postJSON(ctx, "/rental-contracts/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContract updates a rental contract by id.
func (c *Client) UpdateContract(ctx context.Context, id string, payload RentalContractDTO) (*RentalContractDTO, error) {
	var out RentalContractDTO
	if err := c.putJSON(ctx, "/rental-contracts/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContract removes a rental contract.
func (c *Client) DeleteContract(ctx context.Context, id string) error {
	return c.delete(ctx, "/rental-contracts/"+id)
}

// RenewContract extends a contract with a new end date and rent; the
// contract keeps its id.
func (c *Client) RenewContract(ctx context.Context, id, newEndDate, newMonthlyRent string) (*RentalContractDTO, error) {
	body := struct {
		EndDate     string `json:"end_date"`
		MonthlyRent string `json:"monthly_rent"`
	}{EndDate: newEndDate, MonthlyRent: newMonthlyRent}

	var out RentalContractDTO
	if err := c.postJSON(ctx, "/rental-contracts/"+id+"/renew", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment records a payment against a contract.
func (c *Client) RecordPayment(ctx context.Context, id string, payload ContractPaymentDTO) (*ContractPaymentDTO, error) {
	var out ContractPaymentDTO
	if err := c.postJSON(ctx, "/rental-contracts/"+id+"/payments", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments fetches the payment history for a contract.
func (c *Client) ListPayments(ctx context.Context, id string) ([]ContractPaymentDTO, error) {
	var out []ContractPaymentDTO
	if err := c.get(ctx, "/rental-contracts/"+id+"/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListContractsDueForRenewal fetches contracts inside their renewal window.
func (c *Client) ListContractsDueForRenewal(ctx context.Context) ([]RentalContractDTO, error) {
	var out []RentalContractDTO
	if err := c.get(ctx, "/rental-contracts/due-for-renewal", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListOverduePayments fetches contracts with payments past due.
func (c *Client) ListOverduePayments(ctx context.Context) ([]RentalContractDTO, error) {
	var out []RentalContractDTO
	if err := c.get(ctx, "/rental-contracts/overdue-payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
