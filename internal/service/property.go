package service

import (
	"context"
	"time"

	"estate-console/internal/alerts"
	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/logger"
	"estate-console/internal/store"
	"estate-console/internal/transform"
)

type propertyService struct {
	client *backend.Client
	state  *store.Store
}

func NewPropertyService(client *backend.Client, state *store.Store) PropertyService {
	return &propertyService{client: client, state: state}
}

// RefreshApartments reloads the rental apartment cache from the backend.
func (s *propertyService) RefreshApartments(ctx context.Context) ([]domain.Apartment, error) {
	dtos, err := s.client.ListRentalApartments(ctx)
	if err != nil {
		return nil, err
	}
	apartments := make([]domain.Apartment, 0, len(dtos))
	for _, dto := range dtos {
		apartments = append(apartments, transform.ApartmentFromAPI(dto))
	}
	s.state.Property.SetApartments(apartments)
	logger.Info("Refreshed rental apartments", "count", len(apartments))
	return apartments, nil
}

// RefreshSales reloads the sale listing cache from the backend.
func (s *propertyService) RefreshSales(ctx context.Context) ([]domain.SaleApartment, error) {
	dtos, err := s.client.ListSaleApartments(ctx)
	if err != nil {
		return nil, err
	}
	sales := make([]domain.SaleApartment, 0, len(dtos))
	for _, dto := range dtos {
		sales = append(sales, transform.SaleApartmentFromAPI(dto))
	}
	s.state.Property.SetSales(sales)
	logger.Info("Refreshed sale listings", "count", len(sales))
	return sales, nil
}

// RefreshMyContent reloads only the listings owned by the logged-in admin,
// merging them into the cache without dropping other admins' entries.
func (s *propertyService) RefreshMyContent(ctx context.Context) error {
	content, err := s.client.GetMyContent(ctx)
	if err != nil {
		return err
	}
	for _, dto := range content.Apartments {
		s.state.Property.UpsertApartment(transform.ApartmentFromAPI(dto))
	}
	for _, dto := range content.SaleApartments {
		s.state.Property.UpsertSale(transform.SaleApartmentFromAPI(dto))
	}
	logger.Info("Refreshed owned content",
		"apartments", len(content.Apartments),
		"sale_apartments", len(content.SaleApartments))
	return nil
}

func (s *propertyService) CreateApartment(ctx context.Context, a domain.Apartment) (*domain.Apartment, error) {
	dto, err := transform.ApartmentToAPI(a)
	if err != nil {
		return nil, err
	}
	created, err := s.client.CreateRentalApartment(ctx, dto)
	if err != nil {
		return nil, err
	}
	apartment := transform.ApartmentFromAPI(*created)
	s.state.Property.UpsertApartment(apartment)
	return &apartment, nil
}

func (s *propertyService) UpdateApartment(ctx context.Context, a domain.Apartment) (*domain.Apartment, error) {
	dto, err := transform.ApartmentToAPI(a)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.UpdateRentalApartment(ctx, a.ID, dto)
	if err != nil {
		return nil, err
	}
	apartment := transform.ApartmentFromAPI(*updated)
	// The update reply omits nested parts; keep the cached studios.
	if len(apartment.Studios) == 0 {
		if cached, ok := s.state.Property.Apartment(apartment.ID); ok {
			apartment.Studios = cached.Studios
		}
	}
	s.state.Property.UpsertApartment(apartment)
	return &apartment, nil
}

// DeleteApartment removes an apartment and, via the backend cascade, its
// studios. The cache entry goes only after the backend confirms.
func (s *propertyService) DeleteApartment(ctx context.Context, id string) error {
	if err := s.client.DeleteRentalApartment(ctx, id); err != nil {
		return err
	}
	s.state.Property.RemoveApartment(id)
	return nil
}

func (s *propertyService) CreateStudio(ctx context.Context, apartmentID string, st domain.Studio) (*domain.Studio, error) {
	dto, err := transform.StudioToAPI(st)
	if err != nil {
		return nil, err
	}
	created, err := s.client.CreatePart(ctx, apartmentID, dto)
	if err != nil {
		return nil, err
	}
	studio := transform.StudioFromAPI(*created)
	if studio.ApartmentID == "" {
		studio.ApartmentID = apartmentID
	}
	s.state.Property.UpsertStudio(studio)
	return &studio, nil
}

func (s *propertyService) UpdateStudio(ctx context.Context, st domain.Studio) (*domain.Studio, error) {
	dto, err := transform.StudioToAPI(st)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.UpdatePart(ctx, st.ID, dto)
	if err != nil {
		return nil, err
	}
	studio := transform.StudioFromAPI(*updated)
	if studio.ApartmentID == "" {
		studio.ApartmentID = st.ApartmentID
	}
	s.state.Property.UpsertStudio(studio)
	return &studio, nil
}

func (s *propertyService) DeleteStudio(ctx context.Context, id string) error {
	if err := s.client.DeletePart(ctx, id); err != nil {
		return err
	}
	s.state.Property.RemoveStudio(id)
	return nil
}

func (s *propertyService) CreateSale(ctx context.Context, sale domain.SaleApartment) (*domain.SaleApartment, error) {
	dto, err := transform.SaleApartmentToAPI(sale)
	if err != nil {
		return nil, err
	}
	created, err := s.client.CreateSaleApartment(ctx, dto)
	if err != nil {
		return nil, err
	}
	out := transform.SaleApartmentFromAPI(*created)
	s.state.Property.UpsertSale(out)
	return &out, nil
}

func (s *propertyService) UpdateSale(ctx context.Context, sale domain.SaleApartment) (*domain.SaleApartment, error) {
	dto, err := transform.SaleApartmentToAPI(sale)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.UpdateSaleApartment(ctx, sale.ID, dto)
	if err != nil {
		return nil, err
	}
	out := transform.SaleApartmentFromAPI(*updated)
	s.state.Property.UpsertSale(out)
	return &out, nil
}

func (s *propertyService) DeleteSale(ctx context.Context, id string) error {
	if err := s.client.DeleteSaleApartment(ctx, id); err != nil {
		return err
	}
	s.state.Property.RemoveSale(id)
	return nil
}

func (s *propertyService) WhatsAppLink(ctx context.Context, apartmentID string) (string, error) {
	return s.client.GetApartmentWhatsAppLink(ctx, apartmentID)
}

// RenewalAlerts computes renewal alerts from the cached apartments. No
// network call: callers refresh first when they need live data.
func (s *propertyService) RenewalAlerts(now time.Time) []alerts.StudioAlert {
	return alerts.StudiosNeedingRenewal(s.state.Property.Apartments(), now)
}
