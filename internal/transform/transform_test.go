package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
)

func TestHelpers(t *testing.T) {
	t.Run("firstNonEmpty respects candidate order", func(t *testing.T) {
		assert.Equal(t, "a", firstNonEmpty("a", "b"))
		assert.Equal(t, "b", firstNonEmpty("", "b"))
		assert.Equal(t, "b", firstNonEmpty("   ", "b"))
		assert.Equal(t, "", firstNonEmpty("", ""))
	})

	t.Run("firstNonEmptySlice never returns nil", func(t *testing.T) {
		assert.Equal(t, []string{"x"}, firstNonEmptySlice(nil, []string{"x"}))
		out := firstNonEmptySlice(nil, nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("decimalString strips noise and keeps the separator", func(t *testing.T) {
		tests := []struct {
			raw      string
			expected string
		}{
			{"1500", "1500"},
			{"1500.50", "1500.50"},
			{"1,500", "1.500"},
			{"EGP 1500", "1500"},
			{"  85.5 m2 ", "85.5"},
			{"", "0"},
			{"n/a", "0"},
			{"1500.", "1500"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, decimalString(tt.raw, "0"), "raw: %q", tt.raw)
		}
	})

	t.Run("countOrDefault enforces minimums", func(t *testing.T) {
		assert.Equal(t, 3, countOrDefault(3, 1, 1))
		assert.Equal(t, 1, countOrDefault(0, 1, 1))
		assert.Equal(t, 0, countOrDefault(-2, 0, 0))
	})
}

func TestStudioFromAPI(t *testing.T) {
	t.Run("empty DTO gets safe defaults", func(t *testing.T) {
		s := StudioFromAPI(backend.StudioDTO{})
		assert.Equal(t, "0", s.Area)
		assert.Equal(t, "0", s.MonthlyPrice)
		assert.NotNil(t, s.Photos)
		assert.Empty(t, s.Photos)
		assert.Nil(t, s.Rental)
		assert.False(t, s.IsAvailable)
	})

	t.Run("candidate order title over unit number", func(t *testing.T) {
		s := StudioFromAPI(backend.StudioDTO{Title: "Studio A", UnitNumber: "U-1"})
		assert.Equal(t, "Studio A", s.Title)

		s = StudioFromAPI(backend.StudioDTO{UnitNumber: "U-1"})
		assert.Equal(t, "U-1", s.Title)
	})

	t.Run("monthly price falls back to legacy price", func(t *testing.T) {
		s := StudioFromAPI(backend.StudioDTO{Price: backend.FlexString("3000")})
		assert.Equal(t, "3000", s.MonthlyPrice)
	})

	t.Run("availability derives from status", func(t *testing.T) {
		s := StudioFromAPI(backend.StudioDTO{Status: "Available"})
		assert.True(t, s.IsAvailable)
		assert.Equal(t, domain.PartStatusAvailable, s.Status)
		assert.Equal(t, "Available", s.StatusLabel)

		s = StudioFromAPI(backend.StudioDTO{Status: "rented"})
		assert.False(t, s.IsAvailable)
	})

	t.Run("rental sub-record candidate orders", func(t *testing.T) {
		s := StudioFromAPI(backend.StudioDTO{
			Rental: &backend.RentalDTO{
				IsRented:    backend.FlexBool(true),
				TenantPhone: "01012345678",
				Source:      "fb",
			},
		})
		require.NotNil(t, s.Rental)
		assert.Equal(t, "01012345678", s.Rental.TenantContact)
		assert.Equal(t, domain.CustomerSourceFacebook, s.Rental.PlatformSource)
	})
}

func TestStudioToAPI(t *testing.T) {
	validStudio := func() domain.Studio {
		return domain.Studio{
			ID:           "s1",
			Title:        "Studio A",
			Area:         "25",
			MonthlyPrice: "3000",
			Bathrooms:    domain.BathroomsPrivate,
			Furnished:    domain.FurnishedYes,
			Balcony:      domain.BalconyNo,
			Status:       domain.PartStatusAvailable,
		}
	}

	t.Run("valid studio round trips", func(t *testing.T) {
		dto, err := StudioToAPI(validStudio())
		require.NoError(t, err)
		assert.Equal(t, "available", dto.Status)
		assert.Equal(t, "private", dto.Bathrooms)
	})

	t.Run("invalid enum is rejected before the wire", func(t *testing.T) {
		s := validStudio()
		s.Status = "bogus"
		_, err := StudioToAPI(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "studio data validation failed")
		assert.Contains(t, err.Error(), "part status")
	})

	t.Run("tenant contact is canonicalized", func(t *testing.T) {
		s := validStudio()
		s.Status = domain.PartStatusRented
		s.Rental = &domain.Rental{
			IsRented:      true,
			TenantContact: "01012345678",
		}
		dto, err := StudioToAPI(s)
		require.NoError(t, err)
		require.NotNil(t, dto.Rental)
		assert.Equal(t, "+201012345678", dto.Rental.TenantContact)
	})

	t.Run("invalid platform source fails validation", func(t *testing.T) {
		s := validStudio()
		s.Rental = &domain.Rental{IsRented: true, PlatformSource: "carrier pigeon"}
		_, err := StudioToAPI(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer source")
	})
}

func TestApartmentFromAPI(t *testing.T) {
	t.Run("nested parts go through the studio transformer", func(t *testing.T) {
		raw := []byte(`{
			"id": 7,
			"title": "Legacy Building",
			"location": "El Maadi",
			"area": "120.5",
			"price": 9000,
			"total_studios": "4",
			"apartment_parts": [
				{"unit_number": "A", "status": "available", "price": "2500"}
			]
		}`)
		var dto backend.ApartmentDTO
		require.NoError(t, json.Unmarshal(raw, &dto))

		a := ApartmentFromAPI(dto)
		assert.Equal(t, "7", a.ID)
		assert.Equal(t, "Legacy Building", a.Name)
		assert.Equal(t, domain.LocationMaadi, a.Location)
		assert.Equal(t, "120.5", a.Area)
		assert.Equal(t, "9000", a.Price)
		assert.Equal(t, 4, a.TotalParts)

		require.Len(t, a.Studios, 1)
		assert.Equal(t, "A", a.Studios[0].Title)
		assert.Equal(t, "2500", a.Studios[0].MonthlyPrice)
		assert.Equal(t, "7", a.Studios[0].ApartmentID)
	})

	t.Run("total parts has a floor of one", func(t *testing.T) {
		a := ApartmentFromAPI(backend.ApartmentDTO{})
		assert.Equal(t, 1, a.TotalParts)
	})

	t.Run("invalid location is rejected on the way out", func(t *testing.T) {
		_, err := ApartmentToAPI(domain.Apartment{
			Location:  "downtown",
			Bathrooms: domain.BathroomsShared,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "apartment data validation failed")
	})
}

func TestSaleApartmentFromAPI(t *testing.T) {
	t.Run("availability defaults to true when omitted", func(t *testing.T) {
		s := SaleApartmentFromAPI(backend.SaleApartmentDTO{})
		assert.True(t, s.IsAvailable)
	})

	t.Run("explicit availability is honored", func(t *testing.T) {
		sold := backend.FlexBool(false)
		s := SaleApartmentFromAPI(backend.SaleApartmentDTO{IsAvailable: &sold})
		assert.False(t, s.IsAvailable)
	})

	t.Run("listed at falls back to created at", func(t *testing.T) {
		s := SaleApartmentFromAPI(backend.SaleApartmentDTO{CreatedAt: "2026-01-15"})
		assert.Equal(t, "2026-01-15", s.ListedAt)
	})
}

func TestSaleApartmentToAPI(t *testing.T) {
	valid := func() domain.SaleApartment {
		return domain.SaleApartment{
			Name:          "Sale Unit",
			Location:      domain.LocationMokkattam,
			Bathrooms:     domain.BathroomsShared,
			ContactNumber: "01012345678",
			IsAvailable:   true,
		}
	}

	t.Run("contact number is validated and canonicalized", func(t *testing.T) {
		dto, err := SaleApartmentToAPI(valid())
		require.NoError(t, err)
		assert.Equal(t, "+201012345678", dto.ContactNumber)
	})

	t.Run("malformed contact number fails", func(t *testing.T) {
		s := valid()
		s.ContactNumber = "12345"
		_, err := SaleApartmentToAPI(s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sale apartment data validation failed")
	})
}

func TestContractTransforms(t *testing.T) {
	t.Run("from api normalizes money fields and status", func(t *testing.T) {
		c := ContractFromAPI(backend.RentalContractDTO{
			ID:          backend.FlexString("c1"),
			MonthlyRent: backend.FlexString("EGP 4,500"),
			Status:      "Signed",
		})
		assert.Equal(t, "4.500", c.MonthlyRent)
		assert.Equal(t, domain.ContractStatusActive, c.Status)
		assert.Equal(t, "Active", c.StatusLabel)
	})

	t.Run("to api rejects invalid status", func(t *testing.T) {
		_, err := ContractToAPI(domain.RentalContract{Status: "limbo"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contract data validation failed")
	})

	t.Run("customer phone is canonicalized", func(t *testing.T) {
		dto, err := ContractToAPI(domain.RentalContract{
			Status: domain.ContractStatusDraft,
			Customer: domain.ContractCustomer{
				FullName: "Tenant",
				Phone:    "1012345678",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "+201012345678", dto.Customer.Phone)
	})
}

func TestAdminTransforms(t *testing.T) {
	t.Run("full name falls back to legacy name", func(t *testing.T) {
		a := AdminFromAPI(backend.AdminDTO{Name: "Old Style", Role: "super"})
		assert.Equal(t, "Old Style", a.FullName)
		assert.Equal(t, domain.AdminRoleSuperAdmin, a.Role)
	})

	t.Run("missing is_active means the account is live", func(t *testing.T) {
		var dto backend.AdminDTO
		raw := `{"id": "1", "full_name": "Admin", "email": "a@b.c", "role": "studio_rental"}`
		require.NoError(t, json.Unmarshal([]byte(raw), &dto))
		assert.True(t, AdminFromAPI(dto).IsActive)
	})

	t.Run("explicit is_active false is kept", func(t *testing.T) {
		var dto backend.AdminDTO
		raw := `{"id": "1", "role": "studio_rental", "is_active": false}`
		require.NoError(t, json.Unmarshal([]byte(raw), &dto))
		assert.False(t, AdminFromAPI(dto).IsActive)
	})

	t.Run("to api validates role and phone", func(t *testing.T) {
		_, err := AdminToAPI(domain.Admin{Role: "viewer"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin data validation failed")

		dto, err := AdminToAPI(domain.Admin{
			Role:  domain.AdminRoleStudioRental,
			Phone: "01012345678",
		})
		require.NoError(t, err)
		assert.Equal(t, "+201012345678", dto.Phone)
	})
}
