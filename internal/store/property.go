package store

import (
	"sync"

	"estate-console/internal/domain"
)

// PropertyStore holds normalized rental apartments (with embedded studios)
// and sale listings.
type PropertyStore struct {
	mu         sync.RWMutex
	apartments []domain.Apartment
	sales      []domain.SaleApartment
}

func NewPropertyStore() *PropertyStore {
	return &PropertyStore{}
}

// SetApartments replaces the rental apartment slice.
func (s *PropertyStore) SetApartments(apartments []domain.Apartment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apartments = cloneApartments(apartments)
}

// Apartments returns a deep copy of all rental apartments.
func (s *PropertyStore) Apartments() []domain.Apartment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneApartments(s.apartments)
}

// Apartment returns one rental apartment by id.
func (s *PropertyStore) Apartment(id string) (domain.Apartment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.apartments {
		if s.apartments[i].ID == id {
			return cloneApartment(s.apartments[i]), true
		}
	}
	return domain.Apartment{}, false
}

// UpsertApartment inserts or replaces one rental apartment.
func (s *PropertyStore) UpsertApartment(a domain.Apartment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a = cloneApartment(a)
	for i := range s.apartments {
		if s.apartments[i].ID == a.ID {
			s.apartments[i] = a
			return
		}
	}
	s.apartments = append(s.apartments, a)
}

// RemoveApartment drops one rental apartment (and with it its studios).
func (s *PropertyStore) RemoveApartment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apartments {
		if s.apartments[i].ID == id {
			s.apartments = append(s.apartments[:i], s.apartments[i+1:]...)
			return
		}
	}
}

// UpsertStudio inserts or replaces a studio under its parent apartment.
func (s *PropertyStore) UpsertStudio(studio domain.Studio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apartments {
		if s.apartments[i].ID != studio.ApartmentID {
			continue
		}
		apt := &s.apartments[i]
		studio = cloneStudio(studio)
		for j := range apt.Studios {
			if apt.Studios[j].ID == studio.ID {
				apt.Studios[j] = studio
				return
			}
		}
		apt.Studios = append(apt.Studios, studio)
		return
	}
}

// RemoveStudio drops a studio from its parent apartment.
func (s *PropertyStore) RemoveStudio(studioID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apartments {
		studios := s.apartments[i].Studios
		for j := range studios {
			if studios[j].ID == studioID {
				s.apartments[i].Studios = append(studios[:j], studios[j+1:]...)
				return
			}
		}
	}
}

// SetSales replaces the sale listing slice.
func (s *PropertyStore) SetSales(sales []domain.SaleApartment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = cloneSales(sales)
}

// Sales returns a copy of all sale listings.
func (s *PropertyStore) Sales() []domain.SaleApartment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSales(s.sales)
}

// UpsertSale inserts or replaces one sale listing.
func (s *PropertyStore) UpsertSale(sale domain.SaleApartment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sales {
		if s.sales[i].ID == sale.ID {
			s.sales[i] = cloneSale(sale)
			return
		}
	}
	s.sales = append(s.sales, cloneSale(sale))
}

// RemoveSale drops one sale listing.
func (s *PropertyStore) RemoveSale(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sales {
		if s.sales[i].ID == id {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			return
		}
	}
}

func cloneApartments(in []domain.Apartment) []domain.Apartment {
	out := make([]domain.Apartment, len(in))
	for i := range in {
		out[i] = cloneApartment(in[i])
	}
	return out
}

func cloneApartment(a domain.Apartment) domain.Apartment {
	a.Photos = append([]string(nil), a.Photos...)
	a.Facilities = append([]string(nil), a.Facilities...)
	studios := make([]domain.Studio, len(a.Studios))
	for i := range a.Studios {
		studios[i] = cloneStudio(a.Studios[i])
	}
	a.Studios = studios
	return a
}

func cloneStudio(s domain.Studio) domain.Studio {
	s.Photos = append([]string(nil), s.Photos...)
	if s.Rental != nil {
		r := *s.Rental
		s.Rental = &r
	}
	return s
}

func cloneSales(in []domain.SaleApartment) []domain.SaleApartment {
	out := make([]domain.SaleApartment, len(in))
	for i := range in {
		out[i] = cloneSale(in[i])
	}
	return out
}

func cloneSale(s domain.SaleApartment) domain.SaleApartment {
	s.Images = append([]string(nil), s.Images...)
	s.Facilities = append([]string(nil), s.Facilities...)
	return s
}
