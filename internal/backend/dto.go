package backend

// Wire DTOs for the estate backend. Field pairs like Name/Title or
// TotalParts/TotalStudios exist because older backend revisions used
// different column names; the transform layer resolves each pair through an
// explicit candidate order rather than ad hoc fallbacks.

// TokenResponse is the login reply.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MasterAdminStatus is the first-time-setup gate reply.
type MasterAdminStatus struct {
	Exists bool `json:"exists"`
}

// AdminDTO is the wire form of an admin account.
type AdminDTO struct {
	ID        FlexString `json:"id"`
	FullName  string     `json:"full_name"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	IsActive  *FlexBool  `json:"is_active"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// RentalDTO is the tenancy sub-record on a studio.
type RentalDTO struct {
	IsRented       FlexBool   `json:"is_rented"`
	TenantName     string     `json:"tenant_name"`
	TenantContact  string     `json:"tenant_contact"`
	TenantPhone    string     `json:"tenant_phone"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	BookingDate    string     `json:"booking_date"`
	CustomerID     FlexString `json:"customer_id"`
	PaidDeposit    FlexString `json:"paid_deposit"`
	Warranty       FlexString `json:"warranty"`
	RentPeriod     FlexInt    `json:"rent_period"`
	PlatformSource string     `json:"platform_source"`
	Source         string     `json:"source"`
	NeedsRenewal   FlexBool   `json:"needs_renewal"`
}

// StudioDTO is the wire form of an apartment part.
type StudioDTO struct {
	ID          FlexString `json:"id"`
	ApartmentID FlexString `json:"apartment_id"`
	Title       string     `json:"title"`
	UnitNumber  string     `json:"unit_number"`
	Area        FlexString `json:"area"`
	MonthlyPrice FlexString `json:"monthly_price"`
	Price        FlexString `json:"price"`
	Bedrooms    FlexInt    `json:"bedrooms"`
	Bathrooms   string     `json:"bathrooms"`
	Furnished   string     `json:"furnished"`
	Balcony     string     `json:"balcony"`
	Description string     `json:"description"`
	Photos      []string   `json:"photos"`
	Images      []string   `json:"images"`
	Status      string     `json:"status"`
	Floor       FlexInt    `json:"floor"`
	Rental      *RentalDTO `json:"rental"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// ApartmentDTO is the wire form of a rental apartment, including its nested
// parts.
type ApartmentDTO struct {
	ID           FlexString  `json:"id"`
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Location     string      `json:"location"`
	Address      string      `json:"address"`
	Area         FlexString  `json:"area"`
	Price        FlexString  `json:"price"`
	Bedrooms     FlexInt     `json:"bedrooms"`
	Bathrooms    string      `json:"bathrooms"`
	Description  string      `json:"description"`
	Photos       []string    `json:"photos"`
	Images       []string    `json:"images"`
	MapURL       string      `json:"map_url"`
	Coordinates  string      `json:"coordinates"`
	Facilities   []string    `json:"facilities"`
	Floor        FlexInt     `json:"floor"`
	TotalParts   FlexInt     `json:"total_parts"`
	TotalStudios FlexInt     `json:"total_studios"`
	Parts        []StudioDTO `json:"apartment_parts"`
	CreatedBy    string      `json:"created_by"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// SaleApartmentDTO is the wire form of a sale listing.
type SaleApartmentDTO struct {
	ID              FlexString `json:"id"`
	Name            string     `json:"name"`
	Title           string     `json:"title"`
	Location        string     `json:"location"`
	Address         string     `json:"address"`
	Price           FlexString `json:"price"`
	Area            FlexString `json:"area"`
	Bedrooms        FlexInt    `json:"bedrooms"`
	Bathrooms       string     `json:"bathrooms"`
	ApartmentNumber FlexString `json:"apartment_number"`
	Floor           FlexInt    `json:"floor"`
	Images          []string   `json:"images"`
	Photos          []string   `json:"photos"`
	Facilities      []string   `json:"facilities"`
	ContactNumber   string     `json:"contact_number"`
	IsAvailable     *FlexBool  `json:"is_available"`
	CreatedBy       string     `json:"created_by"`
	ListedAt        string     `json:"listed_at"`
	CreatedAt       string     `json:"created_at"`
}

// ContractCustomerDTO is the tenant block on a rental contract.
type ContractCustomerDTO struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	NationalID       string `json:"national_id"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
}

// RentalContractDTO is the wire form of a rental contract.
type RentalContractDTO struct {
	ID               FlexString          `json:"id"`
	ContractNumber   string              `json:"contract_number"`
	StudioID         FlexString          `json:"studio_id"`
	ApartmentID      FlexString          `json:"apartment_id"`
	Customer         ContractCustomerDTO `json:"customer"`
	StartDate        string              `json:"start_date"`
	EndDate          string              `json:"end_date"`
	SignedDate       string              `json:"signed_date"`
	MonthlyRent      FlexString          `json:"monthly_rent"`
	SecurityDeposit  FlexString          `json:"security_deposit"`
	TotalAmount      FlexString          `json:"total_amount"`
	PaymentFrequency string              `json:"payment_frequency"`
	Status           string              `json:"status"`
	TotalPaid        FlexString          `json:"total_paid"`
	RemainingBalance FlexString          `json:"remaining_balance"`
	NextPaymentDue   string              `json:"next_payment_due"`
	AutoRenewal      FlexBool            `json:"auto_renewal"`
	CreatedAt        string              `json:"created_at"`
	UpdatedAt        string              `json:"updated_at"`
}

// ContractPaymentDTO is one recorded payment.
type ContractPaymentDTO struct {
	ID         FlexString `json:"id"`
	ContractID FlexString `json:"contract_id"`
	Amount     FlexString `json:"amount"`
	PaidDate   string     `json:"paid_date"`
	Method     string     `json:"method"`
	Reference  string     `json:"reference"`
	Notes      string     `json:"notes"`
}

// WhatsAppLink is the share-link reply for a rental apartment.
type WhatsAppLink struct {
	URL string `json:"url"`
}

// MyContent groups everything owned by the logged-in admin.
type MyContent struct {
	Apartments     []ApartmentDTO     `json:"apartments"`
	SaleApartments []SaleApartmentDTO `json:"sale_apartments"`
}
