package domain

// SaleApartment is an apartment listed for sale. It has no studios relation;
// IsAvailable flips to false once sold.
type SaleApartment struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        Location  `json:"location"`
	LocationLabel   string    `json:"location_label"`
	Address         string    `json:"address"`
	Price           string    `json:"price"`
	Area            string    `json:"area"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       Bathrooms `json:"bathrooms"`
	ApartmentNumber string    `json:"apartment_number"`
	Floor           int       `json:"floor"`
	Images          []string  `json:"images"`
	Facilities      []string  `json:"facilities"`
	ContactNumber   string    `json:"contact_number"`
	IsAvailable     bool      `json:"is_available"`
	CreatedBy       string    `json:"created_by"`
	ListedAt        string    `json:"listed_at"`
	CreatedAt       string    `json:"created_at"`
}
