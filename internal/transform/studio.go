package transform

import (
	"fmt"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/phone"
)

// StudioFromAPI normalizes a wire studio. Total: missing optional fields get
// documented defaults (slices [], counts 0, strings "") and nothing panics
// on an empty DTO.
//
// Candidate order per target field:
//
//	Title:        title > unit_number
//	MonthlyPrice: monthly_price > price
//	Photos:       photos > images
func StudioFromAPI(dto backend.StudioDTO) domain.Studio {
	status := domain.ParsePartStatus(dto.Status)
	s := domain.Studio{
		ID:           dto.ID.String(),
		ApartmentID:  dto.ApartmentID.String(),
		Title:        firstNonEmpty(dto.Title, dto.UnitNumber),
		Area:         decimalString(dto.Area.String(), "0"),
		MonthlyPrice: decimalString(firstNonEmpty(dto.MonthlyPrice.String(), dto.Price.String()), "0"),
		Bedrooms:     countOrDefault(dto.Bedrooms.Int(), 0, 0),
		Bathrooms:    domain.ParseBathrooms(dto.Bathrooms),
		Furnished:    domain.ParseFurnished(dto.Furnished),
		Balcony:      domain.ParseBalcony(dto.Balcony),
		Description:  dto.Description,
		Photos:       firstNonEmptySlice(dto.Photos, dto.Images),
		Status:       status,
		StatusLabel:  status.Label(),
		IsAvailable:  status == domain.PartStatusAvailable,
		Floor:        countOrDefault(dto.Floor.Int(), 0, 0),
		CreatedBy:    dto.CreatedBy,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
	if dto.Rental != nil {
		s.Rental = rentalFromAPI(dto.Rental)
	}
	return s
}

// Tenant contact candidate order: tenant_contact > tenant_phone.
// Platform source candidate order: platform_source > source.
func rentalFromAPI(dto *backend.RentalDTO) *domain.Rental {
	return &domain.Rental{
		IsRented:       dto.IsRented.Bool(),
		TenantName:     dto.TenantName,
		TenantContact:  firstNonEmpty(dto.TenantContact, dto.TenantPhone),
		StartDate:      dto.StartDate,
		EndDate:        dto.EndDate,
		BookingDate:    dto.BookingDate,
		CustomerID:     dto.CustomerID.String(),
		PaidDeposit:    decimalString(dto.PaidDeposit.String(), "0"),
		Warranty:       decimalString(dto.Warranty.String(), "0"),
		RentPeriod:     countOrDefault(dto.RentPeriod.Int(), 0, 0),
		PlatformSource: domain.ParseCustomerSource(firstNonEmpty(dto.PlatformSource, dto.Source)),
		NeedsRenewal:   dto.NeedsRenewal.Bool(),
	}
}

// StudioToAPI denormalizes a studio for the backend, validating every enum
// first. This validation is the only defense against sending a malformed
// enum code to the backend, so it runs before any network call.
func StudioToAPI(s domain.Studio) (backend.StudioDTO, error) {
	if err := validateStudioEnums(s); err != nil {
		return backend.StudioDTO{}, fmt.Errorf("studio data validation failed: %w", err)
	}

	dto := backend.StudioDTO{
		ID:           backend.FlexString(s.ID),
		ApartmentID:  backend.FlexString(s.ApartmentID),
		Title:        s.Title,
		Area:         backend.FlexString(decimalString(s.Area, "0")),
		MonthlyPrice: backend.FlexString(decimalString(s.MonthlyPrice, "0")),
		Bedrooms:     backend.FlexInt(s.Bedrooms),
		Bathrooms:    string(s.Bathrooms),
		Furnished:    string(s.Furnished),
		Balcony:      string(s.Balcony),
		Description:  s.Description,
		Photos:       firstNonEmptySlice(s.Photos),
		Status:       string(s.Status),
		Floor:        backend.FlexInt(s.Floor),
		CreatedBy:    s.CreatedBy,
	}
	if s.Rental != nil {
		r, err := rentalToAPI(s.Rental)
		if err != nil {
			return backend.StudioDTO{}, fmt.Errorf("studio data validation failed: %w", err)
		}
		dto.Rental = r
	}
	return dto, nil
}

func validateStudioEnums(s domain.Studio) error {
	if err := s.Bathrooms.Validate(); err != nil {
		return err
	}
	if err := s.Furnished.Validate(); err != nil {
		return err
	}
	if err := s.Balcony.Validate(); err != nil {
		return err
	}
	return s.Status.Validate()
}

func rentalToAPI(r *domain.Rental) (*backend.RentalDTO, error) {
	if r.PlatformSource != "" {
		if err := r.PlatformSource.Validate(); err != nil {
			return nil, err
		}
	}
	contact := r.TenantContact
	if contact != "" {
		contact = phone.FormatForAPI(contact)
	}
	return &backend.RentalDTO{
		IsRented:       backend.FlexBool(r.IsRented),
		TenantName:     r.TenantName,
		TenantContact:  contact,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		BookingDate:    r.BookingDate,
		CustomerID:     backend.FlexString(r.CustomerID),
		PaidDeposit:    backend.FlexString(decimalString(r.PaidDeposit, "0")),
		Warranty:       backend.FlexString(decimalString(r.Warranty, "0")),
		RentPeriod:     backend.FlexInt(r.RentPeriod),
		PlatformSource: string(r.PlatformSource),
		NeedsRenewal:   backend.FlexBool(r.NeedsRenewal),
	}, nil
}
