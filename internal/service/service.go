package service

import (
	"context"
	"time"

	"estate-console/internal/alerts"
	"estate-console/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Admin, error)
	Logout(ctx context.Context) error
	CheckMasterAdmin(ctx context.Context) (bool, error)
	CreateMasterAdmin(ctx context.Context, admin domain.Admin, password string) error
	CurrentAdmin(ctx context.Context) (*domain.Admin, error)
}

type PropertyService interface {
	RefreshApartments(ctx context.Context) ([]domain.Apartment, error)
	RefreshSales(ctx context.Context) ([]domain.SaleApartment, error)
	RefreshMyContent(ctx context.Context) error
	CreateApartment(ctx context.Context, a domain.Apartment) (*domain.Apartment, error)
	UpdateApartment(ctx context.Context, a domain.Apartment) (*domain.Apartment, error)
	DeleteApartment(ctx context.Context, id string) error
	CreateStudio(ctx context.Context, apartmentID string, s domain.Studio) (*domain.Studio, error)
	UpdateStudio(ctx context.Context, s domain.Studio) (*domain.Studio, error)
	DeleteStudio(ctx context.Context, id string) error
	CreateSale(ctx context.Context, s domain.SaleApartment) (*domain.SaleApartment, error)
	UpdateSale(ctx context.Context, s domain.SaleApartment) (*domain.SaleApartment, error)
	DeleteSale(ctx context.Context, id string) error
	WhatsAppLink(ctx context.Context, apartmentID string) (string, error)
	RenewalAlerts(now time.Time) []alerts.StudioAlert
}

type AdminService interface {
	Refresh(ctx context.Context) ([]domain.Admin, error)
	Create(ctx context.Context, a domain.Admin, password string) (*domain.Admin, error)
	Update(ctx context.Context, a domain.Admin) (*domain.Admin, error)
	Delete(ctx context.Context, id string) error
}

type ContractService interface {
	Refresh(ctx context.Context) ([]domain.RentalContract, error)
	Get(ctx context.Context, id string) (*domain.RentalContract, error)
	Create(ctx context.Context, c domain.RentalContract) (*domain.RentalContract, error)
	Update(ctx context.Context, c domain.RentalContract) (*domain.RentalContract, error)
	Delete(ctx context.Context, id string) error
	Renew(ctx context.Context, id, newEndDate, newMonthlyRent string) (*domain.RentalContract, error)
	RecordPayment(ctx context.Context, id string, p domain.ContractPayment) (*domain.ContractPayment, error)
	Payments(ctx context.Context, id string) ([]domain.ContractPayment, error)
	DueForRenewal(ctx context.Context) ([]domain.RentalContract, error)
	OverduePayments(ctx context.Context) ([]domain.RentalContract, error)
}
