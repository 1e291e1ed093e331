package transform

import (
	"fmt"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/phone"
)

// ContractFromAPI normalizes a wire rental contract. RemainingBalance is
// trusted as returned; the backend maintains the totalAmount - totalPaid
// invariant.
func ContractFromAPI(dto backend.RentalContractDTO) domain.RentalContract {
	status := domain.ParseContractStatus(dto.Status)
	return domain.RentalContract{
		ID:             dto.ID.String(),
		ContractNumber: dto.ContractNumber,
		StudioID:       dto.StudioID.String(),
		ApartmentID:    dto.ApartmentID.String(),
		Customer: domain.ContractCustomer{
			FullName:         dto.Customer.FullName,
			Email:            dto.Customer.Email,
			Phone:            dto.Customer.Phone,
			NationalID:       dto.Customer.NationalID,
			Address:          dto.Customer.Address,
			EmergencyContact: dto.Customer.EmergencyContact,
		},
		StartDate:        dto.StartDate,
		EndDate:          dto.EndDate,
		SignedDate:       dto.SignedDate,
		MonthlyRent:      decimalString(dto.MonthlyRent.String(), "0"),
		SecurityDeposit:  decimalString(dto.SecurityDeposit.String(), "0"),
		TotalAmount:      decimalString(dto.TotalAmount.String(), "0"),
		PaymentFrequency: dto.PaymentFrequency,
		Status:           status,
		StatusLabel:      status.Label(),
		TotalPaid:        decimalString(dto.TotalPaid.String(), "0"),
		RemainingBalance: decimalString(dto.RemainingBalance.String(), "0"),
		NextPaymentDue:   dto.NextPaymentDue,
		AutoRenewal:      dto.AutoRenewal.Bool(),
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	}
}

// ContractToAPI denormalizes a rental contract, validating the status enum
// and the customer phone before anything reaches the client.
func ContractToAPI(c domain.RentalContract) (backend.RentalContractDTO, error) {
	if err := c.Status.Validate(); err != nil {
		return backend.RentalContractDTO{}, fmt.Errorf("contract data validation failed: %w", err)
	}
	customerPhone := c.Customer.Phone
	if customerPhone != "" {
		if err := phone.ValidateEgyptian(customerPhone); err != nil {
			return backend.RentalContractDTO{}, fmt.Errorf("contract data validation failed: %w", err)
		}
		customerPhone = phone.FormatForAPI(customerPhone)
	}

	return backend.RentalContractDTO{
		ID:             backend.FlexString(c.ID),
		ContractNumber: c.ContractNumber,
		StudioID:       backend.FlexString(c.StudioID),
		ApartmentID:    backend.FlexString(c.ApartmentID),
		Customer: backend.ContractCustomerDTO{
			FullName:         c.Customer.FullName,
			Email:            c.Customer.Email,
			Phone:            customerPhone,
			NationalID:       c.Customer.NationalID,
			Address:          c.Customer.Address,
			EmergencyContact: c.Customer.EmergencyContact,
		},
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		SignedDate:       c.SignedDate,
		MonthlyRent:      backend.FlexString(decimalString(c.MonthlyRent, "0")),
		SecurityDeposit:  backend.FlexString(decimalString(c.SecurityDeposit, "0")),
		TotalAmount:      backend.FlexString(decimalString(c.TotalAmount, "0")),
		PaymentFrequency: c.PaymentFrequency,
		Status:           string(c.Status),
		TotalPaid:        backend.FlexString(decimalString(c.TotalPaid, "0")),
		NextPaymentDue:   c.NextPaymentDue,
		AutoRenewal:      backend.FlexBool(c.AutoRenewal),
	}, nil
}

// PaymentFromAPI normalizes one recorded payment.
func PaymentFromAPI(dto backend.ContractPaymentDTO) domain.ContractPayment {
	return domain.ContractPayment{
		ID:         dto.ID.String(),
		ContractID: dto.ContractID.String(),
		Amount:     decimalString(dto.Amount.String(), "0"),
		PaidDate:   dto.PaidDate,
		Method:     dto.Method,
		Reference:  dto.Reference,
		Notes:      dto.Notes,
	}
}

// PaymentToAPI denormalizes a payment for recording.
func PaymentToAPI(p domain.ContractPayment) backend.ContractPaymentDTO {
	return backend.ContractPaymentDTO{
		ID:         backend.FlexString(p.ID),
		ContractID: backend.FlexString(p.ContractID),
		Amount:     backend.FlexString(decimalString(p.Amount, "0")),
		PaidDate:   p.PaidDate,
		Method:     p.Method,
		Reference:  p.Reference,
		Notes:      p.Notes,
	}
}
