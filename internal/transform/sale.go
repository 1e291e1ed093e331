package transform

import (
	"fmt"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/phone"
)

// SaleApartmentFromAPI normalizes a wire sale listing.
//
// Candidate order per target field:
//
//	Name:   name > title
//	Images: images > photos
//
// IsAvailable defaults to true when the backend omits the flag: a listing is
// for sale until explicitly marked sold.
func SaleApartmentFromAPI(dto backend.SaleApartmentDTO) domain.SaleApartment {
	loc := domain.ParseLocation(dto.Location)
	available := true
	if dto.IsAvailable != nil {
		available = dto.IsAvailable.Bool()
	}

	return domain.SaleApartment{
		ID:              dto.ID.String(),
		Name:            firstNonEmpty(dto.Name, dto.Title),
		Location:        loc,
		LocationLabel:   loc.Label(),
		Address:         dto.Address,
		Price:           decimalString(dto.Price.String(), "0"),
		Area:            decimalString(dto.Area.String(), "0"),
		Bedrooms:        countOrDefault(dto.Bedrooms.Int(), 0, 0),
		Bathrooms:       domain.ParseBathrooms(dto.Bathrooms),
		ApartmentNumber: dto.ApartmentNumber.String(),
		Floor:           countOrDefault(dto.Floor.Int(), 0, 0),
		Images:          firstNonEmptySlice(dto.Images, dto.Photos),
		Facilities:      firstNonEmptySlice(dto.Facilities),
		ContactNumber:   dto.ContactNumber,
		IsAvailable:     available,
		CreatedBy:       dto.CreatedBy,
		ListedAt:        firstNonEmpty(dto.ListedAt, dto.CreatedAt),
		CreatedAt:       dto.CreatedAt,
	}
}

// SaleApartmentToAPI denormalizes a sale listing, validating enums and
// canonicalizing the contact number to international form.
func SaleApartmentToAPI(s domain.SaleApartment) (backend.SaleApartmentDTO, error) {
	if err := s.Location.Validate(); err != nil {
		return backend.SaleApartmentDTO{}, fmt.Errorf("sale apartment data validation failed: %w", err)
	}
	if err := s.Bathrooms.Validate(); err != nil {
		return backend.SaleApartmentDTO{}, fmt.Errorf("sale apartment data validation failed: %w", err)
	}

	contact := s.ContactNumber
	if contact != "" {
		if err := phone.ValidateEgyptian(contact); err != nil {
			return backend.SaleApartmentDTO{}, fmt.Errorf("sale apartment data validation failed: %w", err)
		}
		contact = phone.FormatForAPI(contact)
	}

	available := backend.FlexBool(s.IsAvailable)
	return backend.SaleApartmentDTO{
		ID:              backend.FlexString(s.ID),
		Name:            s.Name,
		Location:        string(s.Location),
		Address:         s.Address,
		Price:           backend.FlexString(decimalString(s.Price, "0")),
		Area:            backend.FlexString(decimalString(s.Area, "0")),
		Bedrooms:        backend.FlexInt(s.Bedrooms),
		Bathrooms:       string(s.Bathrooms),
		ApartmentNumber: backend.FlexString(s.ApartmentNumber),
		Floor:           backend.FlexInt(s.Floor),
		Images:          firstNonEmptySlice(s.Images),
		Facilities:      firstNonEmptySlice(s.Facilities),
		ContactNumber:   contact,
		IsAvailable:     &available,
		CreatedBy:       s.CreatedBy,
		ListedAt:        s.ListedAt,
	}, nil
}
