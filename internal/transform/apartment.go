package transform

import (
	"fmt"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
)

// ApartmentFromAPI normalizes a wire rental apartment, mapping nested
// apartment_parts element-wise through the studio transformer.
//
// Candidate order per target field:
//
//	Name:       name > title
//	Photos:     photos > images
//	MapURL:     map_url > coordinates
//	TotalParts: total_parts > total_studios (minimum 1)
func ApartmentFromAPI(dto backend.ApartmentDTO) domain.Apartment {
	loc := domain.ParseLocation(dto.Location)
	totalParts := dto.TotalParts.Int()
	if totalParts < 1 {
		totalParts = dto.TotalStudios.Int()
	}

	a := domain.Apartment{
		ID:            dto.ID.String(),
		Name:          firstNonEmpty(dto.Name, dto.Title),
		Location:      loc,
		LocationLabel: loc.Label(),
		Address:       dto.Address,
		Area:          decimalString(dto.Area.String(), "0"),
		Price:         decimalString(dto.Price.String(), "0"),
		Bedrooms:      countOrDefault(dto.Bedrooms.Int(), 0, 0),
		Bathrooms:     domain.ParseBathrooms(dto.Bathrooms),
		Description:   dto.Description,
		Photos:        firstNonEmptySlice(dto.Photos, dto.Images),
		MapURL:        firstNonEmpty(dto.MapURL, dto.Coordinates),
		Facilities:    firstNonEmptySlice(dto.Facilities),
		Floor:         countOrDefault(dto.Floor.Int(), 0, 0),
		TotalParts:    countOrDefault(totalParts, 1, 1),
		Studios:       make([]domain.Studio, 0, len(dto.Parts)),
		CreatedBy:     dto.CreatedBy,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}
	for _, part := range dto.Parts {
		studio := StudioFromAPI(part)
		if studio.ApartmentID == "" {
			studio.ApartmentID = a.ID
		}
		a.Studios = append(a.Studios, studio)
	}
	return a
}

// ApartmentToAPI denormalizes a rental apartment, validating enums before it
// can reach the client. Nested studios are not sent: parts have their own
// endpoints.
func ApartmentToAPI(a domain.Apartment) (backend.ApartmentDTO, error) {
	if err := a.Location.Validate(); err != nil {
		return backend.ApartmentDTO{}, fmt.Errorf("apartment data validation failed: %w", err)
	}
	if err := a.Bathrooms.Validate(); err != nil {
		return backend.ApartmentDTO{}, fmt.Errorf("apartment data validation failed: %w", err)
	}

	return backend.ApartmentDTO{
		ID:          backend.FlexString(a.ID),
		Name:        a.Name,
		Location:    string(a.Location),
		Address:     a.Address,
		Area:        backend.FlexString(decimalString(a.Area, "0")),
		Price:       backend.FlexString(decimalString(a.Price, "0")),
		Bedrooms:    backend.FlexInt(a.Bedrooms),
		Bathrooms:   string(a.Bathrooms),
		Description: a.Description,
		Photos:      firstNonEmptySlice(a.Photos),
		MapURL:      a.MapURL,
		Facilities:  firstNonEmptySlice(a.Facilities),
		Floor:       backend.FlexInt(a.Floor),
		TotalParts:  backend.FlexInt(countOrDefault(a.TotalParts, 1, 1)),
		CreatedBy:   a.CreatedBy,
	}, nil
}
