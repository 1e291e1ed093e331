package domain

// Apartment is a rental apartment building that owns zero or more studios.
// Area and Price stay decimal strings end to end; the backend sends them as
// either numbers or strings and the transform layer canonicalizes.
type Apartment struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      Location   `json:"location"`
	LocationLabel string     `json:"location_label"`
	Address       string     `json:"address"`
	Area          string     `json:"area"`
	Price         string     `json:"price"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     Bathrooms  `json:"bathrooms"`
	Description   string     `json:"description"`
	Photos        []string   `json:"photos"`
	MapURL        string     `json:"map_url"`
	Facilities    []string   `json:"facilities"`
	Floor         int        `json:"floor"`
	TotalParts    int        `json:"total_parts"`
	Studios       []Studio   `json:"studios"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

// AvailableParts counts studios currently open for rent.
func (a *Apartment) AvailableParts() int {
	n := 0
	for i := range a.Studios {
		if a.Studios[i].IsAvailable {
			n++
		}
	}
	return n
}
