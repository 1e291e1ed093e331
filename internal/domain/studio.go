package domain

// Studio is a single rentable unit ("apartment part") inside a rental
// apartment. It belongs to exactly one parent apartment and carries at most
// one active rental record at a time.
type Studio struct {
	ID           string     `json:"id"`
	ApartmentID  string     `json:"apartment_id"`
	Title        string     `json:"title"`
	Area         string     `json:"area"`
	MonthlyPrice string     `json:"monthly_price"`
	Bedrooms     int        `json:"bedrooms"`
	Bathrooms    Bathrooms  `json:"bathrooms"`
	Furnished    Furnished  `json:"furnished"`
	Balcony      Balcony    `json:"balcony"`
	Description  string     `json:"description"`
	Photos       []string   `json:"photos"`
	// Status keeps the raw backend code; StatusLabel the display form. Both
	// are retained: the raw code goes back out on subsequent API calls.
	Status      PartStatus `json:"status"`
	StatusLabel string     `json:"status_label"`
	IsAvailable bool       `json:"is_available"`
	Floor       int        `json:"floor"`
	Rental      *Rental    `json:"rental,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// Rental is the tenancy sub-record attached to a rented studio.
// Dates are calendar dates in yyyy-mm-dd form.
type Rental struct {
	IsRented       bool           `json:"is_rented"`
	TenantName     string         `json:"tenant_name"`
	TenantContact  string         `json:"tenant_contact"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	BookingDate    string         `json:"booking_date"`
	CustomerID     string         `json:"customer_id"`
	PaidDeposit    string         `json:"paid_deposit"`
	Warranty       string         `json:"warranty"`
	RentPeriod     int            `json:"rent_period"`
	PlatformSource CustomerSource `json:"platform_source"`
	NeedsRenewal   bool           `json:"needs_renewal"`
}
