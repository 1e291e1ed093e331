package domain

import (
	"fmt"
	"strings"
)

// The backend speaks in fixed lowercase enum codes. Parsing is deliberately
// permissive (case-insensitive, known synonyms) so free-text legacy values can
// still land on a canonical code, while Validate is strict: anything outside
// the closed set is rejected before it can reach the backend. Unrecognized
// input passes through Parse lowercased so that Validate can name it in the
// error instead of silently truncating it.

func validateEnum(value, fieldName string, valid []string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %q. Valid values are: %s", fieldName, value, strings.Join(valid, ", "))
}

func normalizeEnumInput(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

type Location string

const (
	LocationMaadi     Location = "maadi"
	LocationMokkattam Location = "mokkattam"
)

var locationValues = []string{string(LocationMaadi), string(LocationMokkattam)}

func ParseLocation(s string) Location {
	switch normalizeEnumInput(s) {
	case "maadi", "el_maadi":
		return LocationMaadi
	case "mokkattam", "mokattam", "el_mokattam":
		return LocationMokkattam
	}
	return Location(normalizeEnumInput(s))
}

func (l Location) Label() string {
	switch l {
	case LocationMaadi:
		return "Maadi"
	case LocationMokkattam:
		return "Mokattam"
	}
	return string(l)
}

func (l Location) Validate() error {
	return validateEnum(string(l), "location", locationValues)
}

type Bathrooms string

const (
	BathroomsPrivate Bathrooms = "private"
	BathroomsShared  Bathrooms = "shared"
)

var bathroomsValues = []string{string(BathroomsPrivate), string(BathroomsShared)}

func ParseBathrooms(s string) Bathrooms {
	switch normalizeEnumInput(s) {
	case "private", "own", "ensuite", "en_suite":
		return BathroomsPrivate
	case "shared", "common":
		return BathroomsShared
	}
	return Bathrooms(normalizeEnumInput(s))
}

func (b Bathrooms) Label() string {
	switch b {
	case BathroomsPrivate:
		return "Private"
	case BathroomsShared:
		return "Shared"
	}
	return string(b)
}

func (b Bathrooms) Validate() error {
	return validateEnum(string(b), "bathrooms", bathroomsValues)
}

type Furnished string

const (
	FurnishedYes Furnished = "yes"
	FurnishedNo  Furnished = "no"
)

var furnishedValues = []string{string(FurnishedYes), string(FurnishedNo)}

func ParseFurnished(s string) Furnished {
	switch normalizeEnumInput(s) {
	case "yes", "y", "true", "furnished":
		return FurnishedYes
	case "no", "n", "false", "unfurnished":
		return FurnishedNo
	}
	return Furnished(normalizeEnumInput(s))
}

func (f Furnished) Label() string {
	switch f {
	case FurnishedYes:
		return "Furnished"
	case FurnishedNo:
		return "Unfurnished"
	}
	return string(f)
}

func (f Furnished) Validate() error {
	return validateEnum(string(f), "furnished", furnishedValues)
}

type Balcony string

const (
	BalconyYes    Balcony = "yes"
	BalconyShared Balcony = "shared"
	BalconyNo     Balcony = "no"
)

var balconyValues = []string{string(BalconyYes), string(BalconyShared), string(BalconyNo)}

func ParseBalcony(s string) Balcony {
	switch normalizeEnumInput(s) {
	case "yes", "y", "true", "private":
		return BalconyYes
	case "shared", "common":
		return BalconyShared
	case "no", "n", "false", "none":
		return BalconyNo
	}
	return Balcony(normalizeEnumInput(s))
}

func (b Balcony) Label() string {
	switch b {
	case BalconyYes:
		return "Yes"
	case BalconyShared:
		return "Shared"
	case BalconyNo:
		return "No"
	}
	return string(b)
}

func (b Balcony) Validate() error {
	return validateEnum(string(b), "balcony", balconyValues)
}

type PartStatus string

const (
	PartStatusAvailable   PartStatus = "available"
	PartStatusRented      PartStatus = "rented"
	PartStatusUpcomingEnd PartStatus = "upcoming_end"
)

var partStatusValues = []string{string(PartStatusAvailable), string(PartStatusRented), string(PartStatusUpcomingEnd)}

func ParsePartStatus(s string) PartStatus {
	switch normalizeEnumInput(s) {
	case "available", "free", "vacant":
		return PartStatusAvailable
	case "rented", "occupied":
		return PartStatusRented
	case "upcoming_end", "ending_soon", "expiring":
		return PartStatusUpcomingEnd
	}
	return PartStatus(normalizeEnumInput(s))
}

func (p PartStatus) Label() string {
	switch p {
	case PartStatusAvailable:
		return "Available"
	case PartStatusRented:
		return "Rented"
	case PartStatusUpcomingEnd:
		return "Upcoming End"
	}
	return string(p)
}

func (p PartStatus) Validate() error {
	return validateEnum(string(p), "part status", partStatusValues)
}

type CustomerSource string

const (
	CustomerSourceFacebook  CustomerSource = "facebook"
	CustomerSourceInstagram CustomerSource = "instagram"
	CustomerSourceWhatsApp  CustomerSource = "whatsapp"
	CustomerSourceDubizzle  CustomerSource = "dubizzle"
	CustomerSourceReferral  CustomerSource = "referral"
	CustomerSourceOther     CustomerSource = "other"
)

var customerSourceValues = []string{
	string(CustomerSourceFacebook),
	string(CustomerSourceInstagram),
	string(CustomerSourceWhatsApp),
	string(CustomerSourceDubizzle),
	string(CustomerSourceReferral),
	string(CustomerSourceOther),
}

func ParseCustomerSource(s string) CustomerSource {
	switch normalizeEnumInput(s) {
	case "facebook", "fb":
		return CustomerSourceFacebook
	case "instagram", "ig", "insta":
		return CustomerSourceInstagram
	case "whatsapp", "wa":
		return CustomerSourceWhatsApp
	case "dubizzle", "olx":
		return CustomerSourceDubizzle
	case "referral", "friend", "word_of_mouth":
		return CustomerSourceReferral
	case "other":
		return CustomerSourceOther
	}
	return CustomerSource(normalizeEnumInput(s))
}

func (c CustomerSource) Label() string {
	switch c {
	case CustomerSourceFacebook:
		return "Facebook"
	case CustomerSourceInstagram:
		return "Instagram"
	case CustomerSourceWhatsApp:
		return "WhatsApp"
	case CustomerSourceDubizzle:
		return "Dubizzle"
	case CustomerSourceReferral:
		return "Referral"
	case CustomerSourceOther:
		return "Other"
	}
	return string(c)
}

func (c CustomerSource) Validate() error {
	return validateEnum(string(c), "customer source", customerSourceValues)
}

type AdminRole string

const (
	AdminRoleSuperAdmin    AdminRole = "super_admin"
	AdminRoleStudioRental  AdminRole = "studio_rental"
	AdminRoleApartmentSale AdminRole = "apartment_sale"
)

var adminRoleValues = []string{string(AdminRoleSuperAdmin), string(AdminRoleStudioRental), string(AdminRoleApartmentSale)}

func ParseAdminRole(s string) AdminRole {
	switch normalizeEnumInput(s) {
	case "super_admin", "superadmin", "super":
		return AdminRoleSuperAdmin
	case "studio_rental", "rental", "studio":
		return AdminRoleStudioRental
	case "apartment_sale", "sale", "sales":
		return AdminRoleApartmentSale
	}
	return AdminRole(normalizeEnumInput(s))
}

func (r AdminRole) Label() string {
	switch r {
	case AdminRoleSuperAdmin:
		return "Super Admin"
	case AdminRoleStudioRental:
		return "Studio Rental"
	case AdminRoleApartmentSale:
		return "Apartment Sale"
	}
	return string(r)
}

func (r AdminRole) Validate() error {
	return validateEnum(string(r), "admin role", adminRoleValues)
}

type ContractStatus string

const (
	ContractStatusDraft          ContractStatus = "draft"
	ContractStatusActive         ContractStatus = "active"
	ContractStatusExpired        ContractStatus = "expired"
	ContractStatusTerminated     ContractStatus = "terminated"
	ContractStatusRenewalPending ContractStatus = "renewal_pending"
)

var contractStatusValues = []string{
	string(ContractStatusDraft),
	string(ContractStatusActive),
	string(ContractStatusExpired),
	string(ContractStatusTerminated),
	string(ContractStatusRenewalPending),
}

func ParseContractStatus(s string) ContractStatus {
	switch normalizeEnumInput(s) {
	case "draft", "new":
		return ContractStatusDraft
	case "active", "signed", "running":
		return ContractStatusActive
	case "expired":
		return ContractStatusExpired
	case "terminated", "cancelled", "canceled":
		return ContractStatusTerminated
	case "renewal_pending", "renewing":
		return ContractStatusRenewalPending
	}
	return ContractStatus(normalizeEnumInput(s))
}

func (s ContractStatus) Label() string {
	switch s {
	case ContractStatusDraft:
		return "Draft"
	case ContractStatusActive:
		return "Active"
	case ContractStatusExpired:
		return "Expired"
	case ContractStatusTerminated:
		return "Terminated"
	case ContractStatusRenewalPending:
		return "Renewal Pending"
	}
	return string(s)
}

func (s ContractStatus) Validate() error {
	return validateEnum(string(s), "contract status", contractStatusValues)
}
