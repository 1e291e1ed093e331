package domain

// ContractCustomer identifies the tenant on a rental contract.
type ContractCustomer struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	NationalID       string `json:"national_id"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
}

// RentalContract is the formal tenancy agreement for one studio.
// RemainingBalance = TotalAmount - TotalPaid is maintained by the backend;
// the console trusts the returned value.
type RentalContract struct {
	ID               string           `json:"id"`
	ContractNumber   string           `json:"contract_number"`
	StudioID         string           `json:"studio_id"`
	ApartmentID      string           `json:"apartment_id"`
	Customer         ContractCustomer `json:"customer"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	SignedDate       string           `json:"signed_date"`
	MonthlyRent      string           `json:"monthly_rent"`
	SecurityDeposit  string           `json:"security_deposit"`
	TotalAmount      string           `json:"total_amount"`
	PaymentFrequency string           `json:"payment_frequency"`
	Status           ContractStatus   `json:"status"`
	StatusLabel      string           `json:"status_label"`
	TotalPaid        string           `json:"total_paid"`
	RemainingBalance string           `json:"remaining_balance"`
	NextPaymentDue   string           `json:"next_payment_due"`
	AutoRenewal      bool             `json:"auto_renewal"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

// ContractPayment is a single recorded payment against a contract.
type ContractPayment struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`
	Amount     string `json:"amount"`
	PaidDate   string `json:"paid_date"`
	Method     string `json:"method"`
	Reference  string `json:"reference"`
	Notes      string `json:"notes"`
}
