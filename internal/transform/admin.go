package transform

import (
	"fmt"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/phone"
)

// AdminFromAPI normalizes a wire admin account.
//
// Candidate order: FullName: full_name > name.
//
// IsActive defaults to true when the backend omits the flag: an account is
// live until explicitly deactivated, so it keeps receiving alert digests.
func AdminFromAPI(dto backend.AdminDTO) domain.Admin {
	role := domain.ParseAdminRole(dto.Role)
	active := true
	if dto.IsActive != nil {
		active = dto.IsActive.Bool()
	}
	return domain.Admin{
		ID:        dto.ID.String(),
		FullName:  firstNonEmpty(dto.FullName, dto.Name),
		Email:     dto.Email,
		Phone:     dto.Phone,
		Role:      role,
		RoleLabel: role.Label(),
		IsActive:  active,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// AdminToAPI denormalizes an admin account, validating role and phone.
func AdminToAPI(a domain.Admin) (backend.AdminDTO, error) {
	if err := a.Role.Validate(); err != nil {
		return backend.AdminDTO{}, fmt.Errorf("admin data validation failed: %w", err)
	}
	adminPhone := a.Phone
	if adminPhone != "" {
		if err := phone.ValidateEgyptian(adminPhone); err != nil {
			return backend.AdminDTO{}, fmt.Errorf("admin data validation failed: %w", err)
		}
		adminPhone = phone.FormatForAPI(adminPhone)
	}

	active := backend.FlexBool(a.IsActive)
	return backend.AdminDTO{
		ID:       backend.FlexString(a.ID),
		FullName: a.FullName,
		Email:    a.Email,
		Phone:    adminPhone,
		Role:     string(a.Role),
		IsActive: &active,
	}, nil
}
